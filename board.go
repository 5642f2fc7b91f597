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
	"image/color"
	"iter"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lattice/basis"
	"seehuhn.de/go/lattice/la"
)

// ErrTileSize is returned for a tile size which is not positive.
var ErrTileSize = errors.New("tile size must be positive")

// Tile is the index of a lattice cell.  Cell (X, Y) covers the lattice
// coordinates [X, X+1) × [Y, Y+1), in units of the tile size.
type Tile struct {
	X, Y int
}

// Vec returns the lattice coordinates of the tile's origin corner.
func (t Tile) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(t.X), Y: float64(t.Y)}
}

// Odd reports whether X+Y is odd.  Horizontally or vertically adjacent
// tiles always differ in parity.
func (t Tile) Odd() bool {
	return (t.X+t.Y)&1 == 1
}

// Origin returns the screen position of the origin corner of t.
func (t Tile) Origin(b basis.Basis, size float64) vec.Vec2 {
	return la.Scale(size, basis.ChangeBasis(b, t.Vec()))
}

// Range is a half-open rectangle of tile indices,
// [XMin, XMax) × [YMin, YMax).
type Range struct {
	XMin, XMax int
	YMin, YMax int
}

// Empty reports whether r contains no tiles.
func (r Range) Empty() bool {
	return r.XMin >= r.XMax || r.YMin >= r.YMax
}

// Contains reports whether t lies in r.
func (r Range) Contains(t Tile) bool {
	return t.X >= r.XMin && t.X < r.XMax && t.Y >= r.YMin && t.Y < r.YMax
}

// Board describes the lattice visible through a screen rectangle
// [0, Width] × [0, Height].
type Board struct {
	Width, Height float64
	Size          float64 // tile edge length in screen units
	Basis         basis.Basis
}

// footprint returns the screen rectangle's corners in lattice coordinates,
// in units of the tile size.  The corners are listed in cyclic order, so
// they form a convex quadrilateral.
func (bd *Board) footprint() ([4]vec.Vec2, error) {
	var q [4]vec.Vec2
	if !(bd.Size > 0) {
		return q, fmt.Errorf("board: %w (got %g)", ErrTileSize, bd.Size)
	}
	inv, err := basis.Inverse(bd.Basis)
	if err != nil {
		return q, fmt.Errorf("board: %w", err)
	}
	corners := [4]vec.Vec2{
		{X: 0, Y: 0},
		{X: bd.Width, Y: 0},
		{X: bd.Width, Y: bd.Height},
		{X: 0, Y: bd.Height},
	}
	for i, c := range corners {
		p := inv(c)
		q[i] = vec.Vec2{X: p.X / bd.Size, Y: p.Y / bd.Size}
	}
	return q, nil
}

// Bounds returns the smallest range of tile indices which contains every
// tile that can intersect the screen rectangle.  For a skewed basis the
// range includes tiles near its corners which are not visible; [Board.Tiles]
// skips those.
func (bd *Board) Bounds() (Range, error) {
	q, err := bd.footprint()
	if err != nil {
		return Range{}, err
	}
	return boundsOf(q), nil
}

func boundsOf(q [4]vec.Vec2) Range {
	xMin, xMax := q[0].X, q[0].X
	yMin, yMax := q[0].Y, q[0].Y
	for _, p := range q[1:] {
		xMin = min(xMin, p.X)
		xMax = max(xMax, p.X)
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	return Range{
		XMin: int(math.Floor(xMin)),
		XMax: int(math.Ceil(xMax)),
		YMin: int(math.Floor(yMin)),
		YMax: int(math.Ceil(yMax)),
	}
}

// rowSpan returns the x-extent of the part of the convex quadrilateral q
// which lies in the strip y0 ≤ y ≤ y1.
func rowSpan(q [4]vec.Vec2, y0, y1 float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	add := func(x float64) {
		lo = min(lo, x)
		hi = max(hi, x)
		ok = true
	}
	for i, a := range q {
		if a.Y >= y0 && a.Y <= y1 {
			add(a.X)
		}
		b := q[(i+1)%len(q)]
		if a.Y == b.Y {
			continue
		}
		for _, y := range [2]float64{y0, y1} {
			if (a.Y < y) != (b.Y < y) {
				t := (y - a.Y) / (b.Y - a.Y)
				add(a.X + t*(b.X-a.X))
			}
		}
	}
	return lo, hi, ok
}

// Tiles returns an iterator over all tiles which intersect the screen
// rectangle, each visited exactly once.  Rows (increasing Y) form the
// outer loop and X increases within a row.
func (bd *Board) Tiles() (iter.Seq[Tile], error) {
	q, err := bd.footprint()
	if err != nil {
		return nil, err
	}
	r := boundsOf(q)
	seq := func(yield func(Tile) bool) {
		for y := r.YMin; y < r.YMax; y++ {
			lo, hi, ok := rowSpan(q, float64(y), float64(y+1))
			if !ok {
				continue
			}
			x0 := max(int(math.Floor(lo)), r.XMin)
			x1 := min(int(math.Ceil(hi)), r.XMax)
			for x := x0; x < x1; x++ {
				if !yield(Tile{X: x, Y: y}) {
					return
				}
			}
		}
	}
	return seq, nil
}

// DrawBoard fills every tile visible in the rectangle [0, width] ×
// [0, height] as a checkerboard: odd tiles get color1, even tiles color2.
func DrawBoard(s Surface, size, width, height float64, color1, color2 color.Color, b basis.Basis) error {
	bd := &Board{Width: width, Height: height, Size: size, Basis: b}
	tiles, err := bd.Tiles()
	if err != nil {
		return err
	}

	n := 0
	for t := range tiles {
		c := color2
		if t.Odd() {
			c = color1
		}
		if err := FillTile(s, t, c, size, b); err != nil {
			return err
		}
		n++
	}
	Logger().Debug("board drawn", "basis", b, "size", size, "tiles", n)
	return nil
}

// DrawGrid strokes the outline of every tile visible in the rectangle
// [0, width] × [0, height] with a line width of 1.
func DrawGrid(s Surface, size, width, height float64, col color.Color, b basis.Basis) error {
	bd := &Board{Width: width, Height: height, Size: size, Basis: b}
	tiles, err := bd.Tiles()
	if err != nil {
		return err
	}

	s.SetLineWidth(1)
	s.SetStrokeColor(col)
	n := 0
	for t := range tiles {
		TileQuad(b, t.Origin(b, size), size).trace(s)
		if err := s.Stroke(); err != nil {
			return fmt.Errorf("tile %v: %w", t, err)
		}
		n++
	}
	Logger().Debug("grid drawn", "basis", b, "size", size, "tiles", n)
	return nil
}

// FillTile fills the single tile t with col.
func FillTile(s Surface, t Tile, col color.Color, size float64, b basis.Basis) error {
	if !(size > 0) {
		return fmt.Errorf("tile %v: %w (got %g)", t, ErrTileSize, size)
	}
	s.SetFillColor(col)
	TileQuad(b, t.Origin(b, size), size).trace(s)
	if err := s.Fill(); err != nil {
		return fmt.Errorf("tile %v: %w", t, err)
	}
	return nil
}
