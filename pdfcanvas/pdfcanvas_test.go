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

package pdfcanvas

import (
	"bytes"
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/colornames"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/lattice"
	"seehuhn.de/go/lattice/basis"
	"seehuhn.de/go/lattice/scene"
)

var _ scene.LineStyler = (*Canvas)(nil)

func TestBoardPDF(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "board.pdf")
	c, err := Create(fname, 620, 480)
	if err != nil {
		t.Fatal(err)
	}
	c.Clear(color.White)
	err = lattice.DrawBoard(c, 20, 620, 480, colornames.Lightgray, colornames.White, basis.Isometric)
	if err != nil {
		t.Fatal(err)
	}
	cols := []lattice.Column{
		{At: vec.Vec2{X: 5, Y: 5}, Height: 40, Top: colornames.Red, Left: colornames.Darkred, Right: colornames.Firebrick},
		{At: vec.Vec2{X: 6, Y: 5}, Height: 20, Top: colornames.Blue, Left: colornames.Darkblue, Right: colornames.Navy},
	}
	if err := lattice.DrawColumns(c, cols, 20, basis.Isometric); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("not a PDF file: %q", data[:min(len(data), 8)])
	}
}

func TestRouteStyles(t *testing.T) {
	c, err := Create(filepath.Join(t.TempDir(), "route.pdf"), 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	s := &scene.Scene{
		Width: 100, Height: 100, Size: 10, Basis: basis.Standard,
		Routes: []scene.Route{{
			Tiles: [][2]int{{1, 1}, {5, 1}, {5, 5}},
			Color: scene.Color(colornames.Black),
			Width: 4,
			Cap:   scene.LineCap(graphics.LineCapRound),
			Join:  scene.LineJoin(graphics.LineJoinBevel),
		}},
	}
	if err := s.Render(c, 0); err != nil {
		t.Fatal(err)
	}
	if c.cap != graphics.LineCapRound || c.join != graphics.LineJoinBevel || c.lw != 4 {
		t.Errorf("got cap %v, join %v, width %g", c.cap, c.join, c.lw)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNoCurrentPoint(t *testing.T) {
	c, err := Create(filepath.Join(t.TempDir(), "empty.pdf"), 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	c.BeginPath()
	c.ClosePath()
	if err := c.Fill(); !errors.Is(err, ErrNoCurrentPoint) {
		t.Errorf("got %v, want %v", err, ErrNoCurrentPoint)
	}
	c.BeginPath()
	if err := c.Stroke(); err != nil {
		t.Errorf("empty path: %v", err)
	}
}

func TestLuminance(t *testing.T) {
	cases := []struct {
		col  color.Color
		want float64
	}{
		{color.Black, 0},
		{color.White, 1},
		{color.Transparent, 1},
		{color.RGBA{R: 255, A: 255}, 0.299},
		{color.NRGBA{G: 255, A: 128}, 0.587},
		{color.Gray{Y: 128}, 128.0 / 255},
	}
	for _, tc := range cases {
		if got := luminance(tc.col); math.Abs(got-tc.want) > 1e-3 {
			t.Errorf("luminance(%v) = %.4f, want %.4f", tc.col, got, tc.want)
		}
	}
}
