// seehuhn.de/go/pixcurve - tone curves for RGB pixel buffers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pixcurve

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelConfig configures batch processing.
type ParallelConfig struct {
	// NumWorkers is the number of worker goroutines.
	// 0 means runtime.GOMAXPROCS(0).
	NumWorkers int
}

// DefaultParallelConfig returns the default parallel configuration.
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{NumWorkers: 0}
}

func (c ParallelConfig) workers() int {
	if c.NumWorkers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.NumWorkers
}

// ApplyBatch applies the curve selected by sel to each of the buffers,
// using up to p.Parallel.NumWorkers goroutines.  Each buffer is processed
// as by [Processor.Apply].
//
// The selector is checked before any buffer is touched.  The buffers must
// not share memory.  If ctx is cancelled, no further buffers are started
// and the context error is returned; buffers which were already started
// are completed.
func (p *Processor) ApplyBatch(ctx context.Context, sel Selector, bufs [][]byte) error {
	table, err := p.resolve(sel)
	if err != nil {
		return err
	}
	if table == nil || len(bufs) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Parallel.workers())
	for _, buf := range bufs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			mapSamples(table, buf)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
