// seehuhn.de/go/lattice - tiling under linear 2D bases
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

package basis

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lattice/la"
)

// ChangeBasis maps v, given in coordinates relative to b, to screen
// coordinates.
func ChangeBasis(b Basis, v vec.Vec2) vec.Vec2 {
	return b.Matrix().Apply(v)
}

// Inverse returns the map from screen coordinates to coordinates relative
// to b.  The inverse is derived from the basis matrix on every call.
//
// If the basis matrix is singular, the error wraps [la.ErrNotInvertible].
func Inverse(b Basis) (func(vec.Vec2) vec.Vec2, error) {
	inv, err := b.Matrix().Inverse()
	if err != nil {
		return nil, fmt.Errorf("basis %s: %w", b, err)
	}
	return la.Apply(inv), nil
}

// Invert maps the screen point v to coordinates relative to b.
func Invert(b Basis, v vec.Vec2) (vec.Vec2, error) {
	f, err := Inverse(b)
	if err != nil {
		return vec.Vec2{}, err
	}
	return f(v), nil
}
