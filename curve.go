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
	"fmt"
	"math"
	"sync"
)

// maxSample is the largest value of an 8-bit channel sample.
const maxSample = 255

// Point is a control point of a tone curve.
// Both coordinates are in the sample range [0, 255].
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Curve is a piecewise-linear tone curve on the sample range [0, 255].
//
// Points lists the breakpoints where the curve changes slope, in order of
// increasing X. The end points (0, 0) and (255, 255) are implicit and must
// not be listed. A curve without points is the identity.
//
// A Curve must not be modified after it has been evaluated for the first
// time. After that it is safe for concurrent use.
type Curve struct {
	Name   string  `yaml:"name"`
	Points []Point `yaml:"points,omitempty"`

	tableOnce sync.Once
	table     [256]uint8
}

// Evaluate computes the output value for an input sample x.
// The input is clamped to [0, 255] before evaluation, and the output is
// clamped to the same range.
//
// Within each segment the curve is y0 + (x-x0)/(x1-x0) * (y1-y0).
// A segment includes its left end point; the last segment also includes
// its right end point.
func (c *Curve) Evaluate(x float64) float64 {
	x = clamp(x, 0, maxSample)
	if len(c.Points) == 0 {
		return x
	}

	x0, y0 := 0.0, 0.0
	x1, y1 := float64(maxSample), float64(maxSample)
	for _, p := range c.Points {
		if x < p.X {
			x1, y1 = p.X, p.Y
			break
		}
		x0, y0 = p.X, p.Y
	}

	y := y0 + ((x-x0)/(x1-x0))*(y1-y0)
	return clamp(y, 0, maxSample)
}

// IsIdentity returns true if the curve maps every sample to itself.
func (c *Curve) IsIdentity() bool {
	for _, p := range c.Points {
		if p.X != p.Y {
			return false
		}
	}
	return true
}

// Table returns the curve as a lookup table from input samples to output
// samples. Entry i is Evaluate(i), rounded to the nearest integer.
//
// The table is computed on first use. The caller must not modify it.
func (c *Curve) Table() *[256]uint8 {
	c.tableOnce.Do(func() {
		for i := range c.table {
			c.table[i] = toSample(c.Evaluate(float64(i)))
		}
	})
	return &c.table
}

// Check verifies that the curve is well-formed.
func (c *Curve) Check() error {
	prev := 0.0
	for i, p := range c.Points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return invalidCurve(c.Name, fmt.Sprintf("point %d is not a number", i))
		}
		if p.X <= 0 || p.X >= maxSample {
			return invalidCurve(c.Name,
				fmt.Sprintf("point %d: x=%g outside (0, %d)", i, p.X, maxSample))
		}
		if p.Y < 0 || p.Y > maxSample {
			return invalidCurve(c.Name,
				fmt.Sprintf("point %d: y=%g outside [0, %d]", i, p.Y, maxSample))
		}
		if p.X <= prev {
			return invalidCurve(c.Name,
				fmt.Sprintf("point %d: x=%g not increasing", i, p.X))
		}
		prev = p.X
	}
	return nil
}

// toSample converts the result of Evaluate into an 8-bit sample.
// Halves are rounded away from zero.
func toSample(y float64) uint8 {
	return uint8(clamp(math.Round(y), 0, maxSample))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
