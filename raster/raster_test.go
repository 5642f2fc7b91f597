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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// coverageGrid rasterises into a w×h grid of coverage values.
func coverageGrid(w, h int) ([][]float32, func(y, xMin int, coverage []float32)) {
	grid := make([][]float32, h)
	for y := range grid {
		grid[y] = make([]float32, w)
	}
	emit := func(y, xMin int, coverage []float32) {
		copy(grid[y][xMin:], coverage)
	}
	return grid, emit
}

func polygon(pts ...vec.Vec2) *path.Data {
	p := &path.Data{}
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.Close()
	return p
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	trianglePath := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasterizer(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1})
	grid, emit := coverageGrid(10, 1)
	r.FillNonZero(trianglePath, emit)

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		actual := grid[0][x]
		if math.Abs(float64(actual-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, actual)
		}
	}
}

func TestFillOrientation(t *testing.T) {
	square := []vec.Vec2{{X: 2, Y: 2}, {X: 6, Y: 2}, {X: 6, Y: 6}, {X: 2, Y: 6}}
	reversed := []vec.Vec2{square[3], square[2], square[1], square[0]}

	for _, pts := range [][]vec.Vec2{square, reversed} {
		r := NewRasterizer(rect.Rect{URx: 8, URy: 8})
		grid, emit := coverageGrid(8, 8)
		r.FillNonZero(polygon(pts...), emit)
		for y := range 8 {
			for x := range 8 {
				want := float32(0)
				if x >= 2 && x < 6 && y >= 2 && y < 6 {
					want = 1
				}
				if grid[y][x] != want {
					t.Errorf("pixel (%d,%d): got %.3f, want %.0f", x, y, grid[y][x], want)
				}
			}
		}
	}
}

func TestFillNonZeroOverlap(t *testing.T) {
	// two squares with the same orientation, overlapping in [3,4)×[0,4)
	p := polygon(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 4, Y: 0}, vec.Vec2{X: 4, Y: 4}, vec.Vec2{X: 0, Y: 4})
	q := polygon(vec.Vec2{X: 3, Y: 0}, vec.Vec2{X: 7, Y: 0}, vec.Vec2{X: 7, Y: 4}, vec.Vec2{X: 3, Y: 4})
	p.Cmds = append(p.Cmds, q.Cmds...)
	p.Coords = append(p.Coords, q.Coords...)

	r := NewRasterizer(rect.Rect{URx: 8, URy: 4})
	grid, emit := coverageGrid(8, 4)
	r.FillNonZero(p, emit)
	for x := range 7 {
		if grid[1][x] != 1 {
			t.Errorf("pixel %d: got %.3f, want 1", x, grid[1][x])
		}
	}
	if grid[1][7] != 0 {
		t.Errorf("pixel 7: got %.3f, want 0", grid[1][7])
	}
}

func TestFillClip(t *testing.T) {
	r := NewRasterizer(rect.Rect{LLx: 2, LLy: 2, URx: 4, URy: 4})
	p := polygon(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 0, Y: 10})
	rows := 0
	r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		rows++
		if y < 2 || y >= 4 {
			t.Errorf("row %d outside the clip rectangle", y)
		}
		if xMin != 2 || len(coverage) != 2 {
			t.Errorf("row %d: xMin=%d, len=%d", y, xMin, len(coverage))
		}
	})
	if rows != 2 {
		t.Errorf("got %d rows, want 2", rows)
	}
}

func TestFillCTM(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 8, URy: 8})
	r.CTM = matrix.Matrix{2, 0, 0, 2, 1, 1}
	grid, emit := coverageGrid(8, 8)
	r.FillNonZero(polygon(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 2, Y: 0}, vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 0, Y: 2}), emit)
	if grid[1][1] != 1 || grid[4][4] != 1 {
		t.Errorf("interior not covered: %.3f %.3f", grid[1][1], grid[4][4])
	}
	if grid[0][0] != 0 || grid[5][5] != 0 {
		t.Errorf("exterior covered: %.3f %.3f", grid[0][0], grid[5][5])
	}
}

func TestFillCurve(t *testing.T) {
	// a quarter disc of radius 8, drawn with a quadratic segment
	p := &path.Data{
		Cmds: []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdQuadTo, path.CmdClose},
		Coords: []vec.Vec2{
			{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 8}, {X: 0, Y: 8},
		},
	}
	r := NewRasterizer(rect.Rect{URx: 8, URy: 8})
	grid, emit := coverageGrid(8, 8)
	r.FillNonZero(p, emit)

	var total float64
	for _, row := range grid {
		for _, c := range row {
			total += float64(c)
		}
	}
	// a triangle of area 32 plus 2/3 of the control triangle
	if want := 32 + 32*2.0/3; math.Abs(total-want) > 0.5 {
		t.Errorf("covered area %.3f, want %.3f", total, want)
	}
}

func TestStrokeCaps(t *testing.T) {
	line := (&path.Data{}).MoveTo(vec.Vec2{X: 2, Y: 5}).LineTo(vec.Vec2{X: 8, Y: 5})

	cases := []struct {
		cap      graphics.LineCapStyle
		from, to int // fully covered pixel columns
	}{
		{graphics.LineCapButt, 2, 8},
		{graphics.LineCapSquare, 1, 9},
	}
	for _, tc := range cases {
		t.Run(tc.cap.String(), func(t *testing.T) {
			r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
			r.Width = 2
			r.Cap = tc.cap
			grid, emit := coverageGrid(10, 10)
			r.Stroke(line, emit)

			for y := range 10 {
				for x := range 10 {
					want := float32(0)
					if (y == 4 || y == 5) && x >= tc.from && x < tc.to {
						want = 1
					}
					if got := grid[y][x]; math.Abs(float64(got-want)) > 1e-5 {
						t.Errorf("pixel (%d,%d): got %.3f, want %.0f", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestStrokeRoundCap(t *testing.T) {
	line := (&path.Data{}).MoveTo(vec.Vec2{X: 5, Y: 5}).LineTo(vec.Vec2{X: 15, Y: 5})
	r := NewRasterizer(rect.Rect{URx: 20, URy: 10})
	r.Width = 4
	r.Cap = graphics.LineCapRound
	grid, emit := coverageGrid(20, 10)
	r.Stroke(line, emit)

	if grid[4][4] != 1 || grid[4][15] != 1 {
		t.Errorf("cap interior not covered: %.3f %.3f", grid[4][4], grid[4][15])
	}
	// the corners of the square around the cap lie outside the disc
	if c := grid[3][3]; c >= 1 || c <= 0 {
		t.Errorf("cap corner pixel coverage %.3f", c)
	}
	if grid[5][0] != 0 {
		t.Errorf("pixel beyond the cap covered: %.3f", grid[5][0])
	}
}

func TestStrokeJoins(t *testing.T) {
	square := polygon(vec.Vec2{X: 3, Y: 3}, vec.Vec2{X: 7, Y: 3}, vec.Vec2{X: 7, Y: 7}, vec.Vec2{X: 3, Y: 7})

	cases := []struct {
		join     graphics.LineJoinStyle
		min, max float32 // coverage of the outer corner pixel
	}{
		{graphics.LineJoinMiter, 1, 1},
		{graphics.LineJoinBevel, 0.499, 0.501},
		{graphics.LineJoinRound, 0.65, 0.8},
	}
	for _, tc := range cases {
		t.Run(tc.join.String(), func(t *testing.T) {
			r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
			r.Width = 2
			r.Join = tc.join
			grid, emit := coverageGrid(10, 10)
			r.Stroke(square, emit)

			for _, pix := range [][2]int{{2, 2}, {7, 2}, {7, 7}, {2, 7}} {
				c := grid[pix[1]][pix[0]]
				if c < tc.min || c > tc.max {
					t.Errorf("corner %v: coverage %.3f not in [%.3f, %.3f]", pix, c, tc.min, tc.max)
				}
			}
			if grid[5][5] != 0 {
				t.Errorf("interior covered: %.3f", grid[5][5])
			}
			if grid[3][5] != 1 {
				t.Errorf("edge not covered: %.3f", grid[3][5])
			}
		})
	}
}

func TestStrokeMiterLimit(t *testing.T) {
	// a sharp spike: the miter would be far longer than the limit
	spike := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 18}).
		LineTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 2, Y: 11})

	r := NewRasterizer(rect.Rect{URx: 30, URy: 30})
	r.Width = 2
	r.MiterLimit = 2
	grid, emit := coverageGrid(30, 30)
	r.Stroke(spike, emit)

	for x := 13; x < 30; x++ {
		for y := range 30 {
			if grid[y][x] != 0 {
				t.Fatalf("pixel (%d,%d) covered beyond the bevel: %.3f", x, y, grid[y][x])
			}
		}
	}
}

func TestStrokeSkipsLoneMoveTo(t *testing.T) {
	p := (&path.Data{}).MoveTo(vec.Vec2{X: 5, Y: 5})
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.Width = 4
	r.Cap = graphics.LineCapRound
	r.Stroke(p, func(y, xMin int, coverage []float32) {
		t.Errorf("row %d painted", y)
	})
}

func TestStrokeLeadingLineTo(t *testing.T) {
	// without a MoveTo, the path starts at the origin
	p := &path.Data{
		Cmds:   []path.Command{path.CmdLineTo, path.CmdLineTo},
		Coords: []vec.Vec2{{X: 0, Y: 10}, {X: 10, Y: 10}},
	}
	r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	r.Width = 2

	stroked, emit := coverageGrid(20, 20)
	r.Stroke(p, emit)

	want, emit := coverageGrid(20, 20)
	r.Stroke((&path.Data{}).
		MoveTo(vec.Vec2{}).
		LineTo(vec.Vec2{X: 0, Y: 10}).
		LineTo(vec.Vec2{X: 10, Y: 10}), emit)

	for y := range stroked {
		for x := range stroked[y] {
			if stroked[y][x] != want[y][x] {
				t.Fatalf("pixel (%d,%d): got %.3f, want %.3f", x, y, stroked[y][x], want[y][x])
			}
		}
	}
	if want[5][0] == 0 || want[10][5] == 0 {
		t.Error("stroke not painted")
	}
}

func TestStrokeLeadingCurve(t *testing.T) {
	p := &path.Data{
		Cmds:   []path.Command{path.CmdQuadTo, path.CmdCubeTo},
		Coords: []vec.Vec2{{X: 10, Y: 0}, {X: 10, Y: 10}, {X: 5, Y: 15}, {X: 0, Y: 15}, {X: 0, Y: 10}},
	}
	r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	r.Width = 2
	painted := false
	r.Stroke(p, func(y, xMin int, coverage []float32) {
		painted = true
	})
	if !painted {
		t.Error("nothing painted")
	}
}

func TestReset(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 1, URy: 1})
	r.Width = 7
	r.CTM = matrix.Matrix{2, 0, 0, 2, 0, 0}
	r.Reset(rect.Rect{URx: 5, URy: 5})
	if r.Width != 1 || r.CTM != matrix.Identity || r.MiterLimit != defaultMiterLimit {
		t.Errorf("parameters not restored: %+v", r)
	}
	if r.Clip.URx != 5 {
		t.Errorf("clip not set")
	}
}
