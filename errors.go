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
	"errors"
	"fmt"
)

// InvalidSelectorError is returned when a selector does not refer to a curve
// in the registry. The buffer is not modified in this case.
type InvalidSelectorError struct {
	Given Selector
	Max   Selector
}

func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("pixcurve: invalid curve selector %d (max %d)",
		uint(e.Given), uint(e.Max))
}

// ErrNonContiguous indicates that a pixel buffer has gaps between its rows.
//
// This is never caused by the pixel values themselves.  It means that the
// calling code passed a memory layout which the engine cannot process, and
// usually points to a bug in the caller.
var ErrNonContiguous = errors.New("pixcurve: pixel buffer is not contiguous")

// NonContiguousError describes a [PixBuf] whose rows are padded.
// It wraps [ErrNonContiguous].
type NonContiguousError struct {
	Width  int
	Height int
	Stride int
}

func (e *NonContiguousError) Error() string {
	return fmt.Sprintf("pixcurve: pixel buffer is not contiguous (%dx%d, stride %d, want %d)",
		e.Width, e.Height, e.Stride, e.Width*Channels)
}

func (e *NonContiguousError) Unwrap() error {
	return ErrNonContiguous
}

// InvalidCurveError indicates a malformed curve definition.
type InvalidCurveError struct {
	Name   string
	Reason string
}

func invalidCurve(name, reason string) error {
	return &InvalidCurveError{Name: name, Reason: reason}
}

func (e *InvalidCurveError) Error() string {
	return fmt.Sprintf("pixcurve: invalid curve %q: %s", e.Name, e.Reason)
}
