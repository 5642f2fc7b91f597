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

package lattice

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lattice/basis"
	"seehuhn.de/go/lattice/la"
)

// Direction is one of the four directions along the lattice axes.
type Direction int

// The four directions.  Right and Left follow the first unit vector of
// the basis, Down and Up the second one.
const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ErrUnreachableDirection is the panic value (wrapped) raised by Step for
// a Direction outside the four defined constants.
var ErrUnreachableDirection = errors.New("unreachable direction")

// Step returns the screen point reached by walking one tile edge of
// length size from v in direction dir.  The point v is already in screen
// coordinates; only the unit vectors of b are used.
//
// Step panics if dir is not one of Up, Down, Left or Right.
func Step(b basis.Basis, v vec.Vec2, size float64, dir Direction) vec.Vec2 {
	u0, u1 := b.Units()
	switch dir {
	case Up:
		return la.Add(v, la.Scale(-size, u1))
	case Down:
		return la.Add(v, la.Scale(size, u1))
	case Left:
		return la.Add(v, la.Scale(-size, u0))
	case Right:
		return la.Add(v, la.Scale(size, u0))
	default:
		panic(fmt.Errorf("lattice.Step: %w %d", ErrUnreachableDirection, int(dir)))
	}
}

// TileQuad returns the outline of the tile whose origin corner is at the
// screen point origin, obtained by stepping right, down and left.
// A final step up returns to origin.
func TileQuad(b basis.Basis, origin vec.Vec2, size float64) Quad {
	p1 := Step(b, origin, size, Right)
	p2 := Step(b, p1, size, Down)
	p3 := Step(b, p2, size, Left)
	return Quad{origin, p1, p2, p3}
}
