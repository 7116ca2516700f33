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

import "fmt"

// Registry is an immutable, numbered collection of tone curves.
// Entry 0 is always the identity curve.
//
// A Registry is safe for concurrent use.
type Registry struct {
	curves []*Curve
	byName map[string]Selector
}

// identityName is the name of the curve with selector 0.
const identityName = "none"

// Builtin holds the standard curves, selected by [None], [Light], [Mid]
// and [Dark].
var Builtin = mustRegistry(
	// --------x
	//        /
	//       /
	//      /
	//   --o = (170,20)
	//  /
	// x--------
	&Curve{Name: "light shades", Points: []Point{{170, 20}}},

	// ---------x
	//       b-/ = (170,220)
	//      /
	//     /
	//  /-a = (120,20)
	// x--------
	&Curve{Name: "mid shades", Points: []Point{{120, 20}, {170, 220}}},

	// ------o---x = (120,220)
	//      /
	//     /
	//    /
	//   /
	// x--------
	&Curve{Name: "dark shades", Points: []Point{{120, 220}}},
)

// NewRegistry creates a registry holding the identity curve, followed by
// the given curves. The curve at index i is selected by Selector(i+1).
//
// The curves are checked using [Curve.Check], and names must be unique.
// The registry takes ownership of the curves.
func NewRegistry(curves ...*Curve) (*Registry, error) {
	r := &Registry{
		curves: make([]*Curve, 0, len(curves)+1),
		byName: make(map[string]Selector, len(curves)+1),
	}
	r.add(&Curve{Name: identityName})
	for _, c := range curves {
		if c == nil {
			return nil, invalidCurve("", "missing curve")
		}
		if err := c.Check(); err != nil {
			return nil, err
		}
		if _, dup := r.byName[c.Name]; dup {
			return nil, invalidCurve(c.Name, "duplicate name")
		}
		r.add(c)
	}
	return r, nil
}

func mustRegistry(curves ...*Curve) *Registry {
	r, err := NewRegistry(curves...)
	if err != nil {
		panic(err)
	}
	for _, c := range r.curves {
		c.Table()
	}
	return r
}

func (r *Registry) add(c *Curve) {
	r.byName[c.Name] = Selector(len(r.curves))
	r.curves = append(r.curves, c)
}

// Max returns the largest valid selector.
func (r *Registry) Max() Selector {
	return Selector(len(r.curves) - 1)
}

// Lookup returns the curve for the given selector.
// If the selector is out of range, an [*InvalidSelectorError] is returned.
func (r *Registry) Lookup(sel Selector) (*Curve, error) {
	if sel > r.Max() {
		return nil, &InvalidSelectorError{Given: sel, Max: r.Max()}
	}
	return r.curves[sel], nil
}

// Find returns the selector of the curve with the given name.
func (r *Registry) Find(name string) (Selector, bool) {
	sel, ok := r.byName[name]
	return sel, ok
}

// List describes all curves in the registry, in selector order.
func (r *Registry) List() []CurveInfo {
	res := make([]CurveInfo, len(r.curves))
	for i, c := range r.curves {
		res[i] = CurveInfo{Selector: Selector(i), Name: c.Name}
	}
	return res
}

// Extend returns a new registry which holds the curves of r, followed by
// the given curves. The selectors of the existing curves do not change.
func (r *Registry) Extend(curves ...*Curve) (*Registry, error) {
	all := make([]*Curve, 0, len(r.curves)-1+len(curves))
	all = append(all, r.curves[1:]...)
	all = append(all, curves...)
	res, err := NewRegistry(all...)
	if err != nil {
		return nil, fmt.Errorf("pixcurve: extending registry: %w", err)
	}
	return res, nil
}
