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

// Package basis defines the named bases used to project lattice
// coordinates onto the screen, together with the forward and inverse
// projections.
//
// Each basis is given by two unit vectors, its columns.  The table of
// unit vectors is fixed at compile time.
package basis

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lattice/la"
)

// Basis identifies one of the supported bases.
type Basis int

// The supported bases.
const (
	// Standard is the orthonormal basis of the screen itself.
	Standard Basis = iota

	// Isometric tilts both axes by 30° from the horizontal, so that
	// lattice squares appear as diamonds.
	Isometric

	// FortyFive rotates the standard basis by 45°.
	FortyFive
)

// All lists the supported bases in declaration order.
var All = []Basis{Standard, Isometric, FortyFive}

const (
	halfSqrt3 = 0.8660254037844386 // √3/2
	halfSqrt2 = math.Sqrt2 / 2
)

type unitPair [2]vec.Vec2

var units = [...]unitPair{
	Standard: {
		{X: 1, Y: 0},
		{X: 0, Y: 1},
	},
	Isometric: {
		{X: halfSqrt3, Y: 0.5},
		{X: -halfSqrt3, Y: 0.5},
	},
	FortyFive: {
		{X: halfSqrt2, Y: halfSqrt2},
		{X: -halfSqrt2, Y: halfSqrt2},
	},
}

var names = [...]string{
	Standard:  "standard",
	Isometric: "isometric",
	FortyFive: "fortyfive",
}

// Valid reports whether b is one of the supported bases.
func (b Basis) Valid() bool {
	return b >= 0 && int(b) < len(units)
}

// Units returns the two unit vectors of the basis.  For an invalid basis
// both vectors are zero.
func (b Basis) Units() (u0, u1 vec.Vec2) {
	if !b.Valid() {
		return vec.Vec2{}, vec.Vec2{}
	}
	p := units[b]
	return p[0], p[1]
}

// Matrix returns the matrix whose columns are the unit vectors of b.
func (b Basis) Matrix() la.Matrix {
	u0, u1 := b.Units()
	return la.Columns(u0, u1)
}

func (b Basis) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Basis(%d)", int(b))
	}
	return names[b]
}

// ParseBasis returns the basis with the given name.
func ParseBasis(name string) (Basis, error) {
	for i, n := range names {
		if n == name {
			return Basis(i), nil
		}
	}
	return 0, fmt.Errorf("unknown basis %q", name)
}

// MarshalText implements [encoding.TextMarshaler].
func (b Basis) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("invalid basis %d", int(b))
	}
	return []byte(names[b]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (b *Basis) UnmarshalText(text []byte) error {
	v, err := ParseBasis(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
