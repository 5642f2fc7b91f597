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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lattice/basis"
)

// snapTolerance is the distance, in tiles, within which a lattice
// coordinate counts as lying on a tile boundary.  It absorbs the rounding
// error of the screen/lattice round trip.
const snapTolerance = 1e-9

// ClampToTile returns the screen position of the origin corner of the
// tile containing the screen point v.
//
// The lattice x coordinate is rounded towards -∞: a negative coordinate
// which is not on a tile boundary moves one further tile down before
// truncation.  The lattice y coordinate is truncated towards zero.
// ClampToTile is idempotent.
func ClampToTile(b basis.Basis, v vec.Vec2, size float64) (vec.Vec2, error) {
	if !(size > 0) {
		return vec.Vec2{}, fmt.Errorf("clamp: %w (got %g)", ErrTileSize, size)
	}
	l, err := basis.Invert(b, v)
	if err != nil {
		return vec.Vec2{}, fmt.Errorf("clamp: %w", err)
	}
	snapped := vec.Vec2{
		X: snapCoord(l.X, size, true),
		Y: snapCoord(l.Y, size, false),
	}
	return basis.ChangeBasis(b, snapped), nil
}

// snapCoord rounds x to a multiple of size.  If signed is set, negative
// values off the grid are moved down by one tile before truncation.
func snapCoord(x, size float64, signed bool) float64 {
	q := x / size
	if r := math.Round(q); math.Abs(q-r) < snapTolerance {
		q = r
	}
	if signed && q < 0 && q != math.Trunc(q) {
		q--
	}
	return math.Trunc(q) * size
}
