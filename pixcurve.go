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

// Package pixcurve applies "Curves"-style tone adjustments to raw RGB
// pixel buffers.
//
// A tone curve is a piecewise-linear map from an 8-bit channel sample to a
// new 8-bit sample, in the manner of the GIMP "Colors > Curves" tool.
// The curves are kept in a [Registry] and are addressed by a small integer
// [Selector]. Selector 0 is always the identity curve.
//
// # Applying a Curve
//
// Use [Apply] to rewrite an interleaved RGB buffer in place, using one of
// the [Builtin] curves:
//
//	buf := pixbuf.Pixels() // R, G, B, R, G, B, ...
//	err := pixcurve.Apply(pixcurve.Light, buf)
//	if err != nil {
//	    // handle error
//	}
//
// Every complete group of three bytes is mapped through the curve.
// Trailing bytes which do not form a complete group are left alone.
//
// Buffers handed out by GUI toolkits often pad their rows. Wrap these in a
// [PixBuf] and use [Processor.ApplyPixBuf], which refuses padded layouts
// instead of mapping the padding bytes.
//
// # Custom Curves
//
// Additional curves can be defined in YAML and loaded with [LoadConfig]:
//
//	curves:
//	  - name: deep shadows
//	    points:
//	      - {x: 60, y: 10}
//	      - {x: 200, y: 240}
//
// The custom curves are numbered after the built-in ones.
package pixcurve

import "fmt"

// Channels is the number of interleaved samples which make up one pixel.
const Channels = 3

// Selector identifies a curve in a [Registry].
type Selector uint

// The selectors of the [Builtin] curves.
const (
	None  Selector = 0 // identity, buffers are not touched
	Light Selector = 1 // boost light colours
	Mid   Selector = 2 // stretch the mid range
	Dark  Selector = 3 // boost dark colours
)

func (s Selector) String() string {
	if c, err := Builtin.Lookup(s); err == nil {
		return c.Name
	}
	return fmt.Sprintf("Selector(%d)", uint(s))
}

// CurveInfo describes one entry of a [Registry].
type CurveInfo struct {
	Selector Selector
	Name     string
}

// Curves lists the built-in curves in selector order.
func Curves() []CurveInfo {
	return Builtin.List()
}
