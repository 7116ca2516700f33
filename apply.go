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
	"github.com/rs/zerolog"
)

// Processor applies tone curves from a registry to pixel buffers.
//
// Create a Processor using [NewProcessor], or use the package level
// [Apply] function for the [Builtin] curves.
// A Processor is safe for concurrent use, as long as no two calls
// operate on the same buffer at the same time.
type Processor struct {
	// Curves is the registry used to resolve selectors.
	// If this is nil, [Builtin] is used.
	Curves *Registry

	// Log receives diagnostics.  Layout errors are logged at error level,
	// rejected selectors at debug level.
	Log zerolog.Logger

	// Parallel controls the number of goroutines used by
	// [Processor.ApplyBatch].
	Parallel ParallelConfig
}

// NewProcessor creates a processor for the given registry.
// If r is nil, the [Builtin] curves are used.  The processor does not log.
func NewProcessor(r *Registry) *Processor {
	return &Processor{
		Curves:   r,
		Log:      zerolog.Nop(),
		Parallel: DefaultParallelConfig(),
	}
}

var defaultProcessor = NewProcessor(Builtin)

// Apply maps every complete R, G, B group in buf through the built-in curve
// selected by sel.  See [Processor.Apply] for details.
func Apply(sel Selector, buf []byte) error {
	return defaultProcessor.Apply(sel, buf)
}

func (p *Processor) registry() *Registry {
	if p.Curves == nil {
		return Builtin
	}
	return p.Curves
}

// resolve finds the curve for sel.  The returned table is nil for the
// identity curve, signalling that no work is needed.
func (p *Processor) resolve(sel Selector) (*[256]uint8, error) {
	c, err := p.registry().Lookup(sel)
	if err != nil {
		p.Log.Debug().Err(err).Uint("selector", uint(sel)).Msg("curve selector rejected")
		return nil, err
	}
	if sel == None || c.IsIdentity() {
		return nil, nil
	}
	return c.Table(), nil
}

// Apply rewrites buf in place, replacing every sample with its image
// under the curve selected by sel.
//
// The buffer is processed from left to right in groups of [Channels]
// bytes.  If len(buf) is not a multiple of [Channels], the incomplete
// group at the end is left unchanged.
//
// If sel is out of range, an [*InvalidSelectorError] is returned and buf
// is not modified.  If sel selects the identity curve, buf is not written
// to at all.
func (p *Processor) Apply(sel Selector, buf []byte) error {
	table, err := p.resolve(sel)
	if err != nil || table == nil {
		return err
	}
	mapSamples(table, buf)
	return nil
}

// mapSamples replaces the samples of all complete pixels in buf using
// the lookup table.
func mapSamples(table *[256]uint8, buf []byte) {
	n := len(buf) - len(buf)%Channels
	for i := 0; i < n; i += Channels {
		px := buf[i : i+Channels : i+Channels]
		px[0] = table[px[0]]
		px[1] = table[px[1]]
		px[2] = table[px[2]]
	}
}

// PixBuf describes the pixel memory of an RGB image, as handed out by
// image toolkits.  Rows start Stride bytes apart.
//
// Width and Height describe the layout only.  They never limit which bytes
// of Pix are processed.
type PixBuf struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
}

// Contiguous reports whether the rows of the image follow each other
// without padding.
func (b PixBuf) Contiguous() bool {
	return b.Height <= 1 || b.Stride == b.Width*Channels
}

// ApplyPixBuf works like [Processor.Apply], but first checks that the
// image has no padding between rows.
//
// For padded images, a [*NonContiguousError] is returned and the image
// is not modified.
func (p *Processor) ApplyPixBuf(sel Selector, img PixBuf) error {
	table, err := p.resolve(sel)
	if err != nil {
		return err
	}
	if !img.Contiguous() {
		err := &NonContiguousError{Width: img.Width, Height: img.Height, Stride: img.Stride}
		p.Log.Error().Err(err).
			Int("width", img.Width).
			Int("height", img.Height).
			Int("stride", img.Stride).
			Int("len", len(img.Pix)).
			Msg("refusing to process strided pixel buffer")
		return err
	}
	if table == nil {
		return nil
	}
	mapSamples(table, img.Pix)
	return nil
}
