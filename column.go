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
	"cmp"
	"fmt"
	"image/color"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lattice/basis"
	"seehuhn.de/go/lattice/la"
)

// Face identifies one of the visible faces of a column.
type Face int

// The faces of a column, in drawing order.
const (
	FaceLeft Face = iota
	FaceTop
	FaceRight
)

func (f Face) String() string {
	switch f {
	case FaceLeft:
		return "left"
	case FaceTop:
		return "top"
	case FaceRight:
		return "right"
	default:
		return fmt.Sprintf("Face(%d)", int(f))
	}
}

// ColumnFaces returns the left, top and right faces of a prism standing
// on the tile with origin corner p (in lattice coordinates), raised by
// height screen units towards the top of the screen.
//
// The faces are returned in the order in which they must be painted.
func ColumnFaces(p vec.Vec2, height, size float64, b basis.Basis) [3]Quad {
	lift := vec.Vec2{Y: -height}

	o := la.Scale(size, basis.ChangeBasis(b, p))
	r := Step(b, o, size, Right)
	rd := Step(b, r, size, Down)
	d := Step(b, rd, size, Left)

	top := TileQuad(b, la.Add(o, lift), size)

	return [3]Quad{
		FaceLeft:  {d, rd, la.Add(rd, lift), la.Add(d, lift)},
		FaceTop:   top,
		FaceRight: {rd, r, la.Add(r, lift), la.Add(rd, lift)},
	}
}

// DrawColumn paints a column standing on the tile with origin corner p.
// The left face is drawn first, then the top, then the right face; later
// faces cover earlier ones where they overlap.
func DrawColumn(s Surface, p vec.Vec2, height float64, colorTop, colorLeft, colorRight color.Color, size float64, b basis.Basis) error {
	if !(size > 0) {
		return fmt.Errorf("column: %w (got %g)", ErrTileSize, size)
	}
	faces := ColumnFaces(p, height, size, b)
	colors := [3]color.Color{
		FaceLeft:  colorLeft,
		FaceTop:   colorTop,
		FaceRight: colorRight,
	}
	for f, q := range faces {
		s.SetFillColor(colors[f])
		q.trace(s)
		if err := s.Fill(); err != nil {
			return fmt.Errorf("column at %v, %s face: %w", p, Face(f), err)
		}
	}
	return nil
}

// Column is a prism standing on a lattice tile.
type Column struct {
	At     vec.Vec2 // origin corner, in lattice coordinates
	Height float64  // in screen units

	Top, Left, Right color.Color
}

// DrawColumns paints a set of columns back to front: columns whose base
// lies higher on the screen are painted first.  The slice is not
// modified.
//
// The ordering is correct for height fields where each column only
// occludes columns behind it.
func DrawColumns(s Surface, cols []Column, size float64, b basis.Basis) error {
	order := slices.Clone(cols)
	slices.SortStableFunc(order, func(c1, c2 Column) int {
		p1 := basis.ChangeBasis(b, c1.At)
		p2 := basis.ChangeBasis(b, c2.At)
		if c := cmp.Compare(p1.Y, p2.Y); c != 0 {
			return c
		}
		return cmp.Compare(p1.X, p2.X)
	})

	for _, c := range order {
		err := DrawColumn(s, c.At, c.Height, c.Top, c.Left, c.Right, size, b)
		if err != nil {
			return err
		}
	}
	Logger().Debug("columns drawn", "basis", b, "columns", len(order))
	return nil
}
