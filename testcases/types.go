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

package testcases

import (
	"time"

	"seehuhn.de/go/lattice/basis"
	"seehuhn.de/go/lattice/scene"
)

// TestCase is a named reference scene.
type TestCase struct {
	Name  string        // lowercase a-z, 0-9 and _ only
	Scene *scene.Scene  // the drawing
	Time  time.Duration // animation time at which the scene is rendered
}

// canvas returns a scene of the given size without a board.
func canvas(width, height, size float64, b basis.Basis) *scene.Scene {
	return &scene.Scene{
		Width:  width,
		Height: height,
		Size:   size,
		Basis:  b,
	}
}

// checkerboard returns a scene with the default board colors.
func checkerboard(width, height, size float64, b basis.Basis) *scene.Scene {
	s := canvas(width, height, size, b)
	s.Board = &scene.Board{Odd: col("nord-lightgray"), Even: col("nord-white")}
	return s
}

// col looks up a color which is known to exist.
func col(name string) scene.Color {
	c, err := scene.ParseColor(name)
	if err != nil {
		panic(err)
	}
	return c
}

func colp(name string) *scene.Color {
	c := col(name)
	return &c
}
