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

var columnCases = []TestCase{
	{
		Name: "single",
		Scene: func() *scene.Scene {
			s := checkerboard(310, 240, 20, basis.Isometric)
			s.Columns = []scene.Column{
				{X: 8, Y: 2, Height: 60, Top: col("nord-red")},
			}
			return s
		}(),
	},
	{
		Name: "explicit_faces",
		Scene: func() *scene.Scene {
			s := checkerboard(310, 240, 20, basis.Isometric)
			s.Columns = []scene.Column{{
				X: 8, Y: 2, Height: 40,
				Top:   col("nord-yellow"),
				Left:  colp("nord-darkgray"),
				Right: colp("nord-black"),
			}}
			return s
		}(),
	},
	{
		Name:  "pyramid",
		Scene: pyramid(basis.Isometric),
	},
	{
		Name:  "pyramid_fortyfive",
		Scene: pyramid(basis.FortyFive),
	},
	{
		Name: "flat",
		Scene: func() *scene.Scene {
			s := checkerboard(310, 240, 20, basis.Isometric)
			s.Columns = []scene.Column{
				{X: 6, Y: 0, Height: 0, Top: col("nord-blue")},
			}
			return s
		}(),
	},
}

var waveCases = []TestCase{
	{
		Name:  "start",
		Scene: ocean(),
	},
	{
		Name:  "quarter_second",
		Scene: ocean(),
		Time:  250 * time.Millisecond,
	},
	{
		Name:  "one_second",
		Scene: ocean(),
		Time:  time.Second,
	},
}

// pyramid returns a stepped pyramid of columns, 7×7 tiles at the base.
func pyramid(b basis.Basis) *scene.Scene {
	s := checkerboard(620, 480, 20, b)
	s.Grid = colp("nord-lightgray")
	const n = 7
	for y := range n {
		for x := range n {
			level := min(x, y, n-1-x, n-1-y)
			s.Columns = append(s.Columns, scene.Column{
				X:      x + 10,
				Y:      y,
				Height: float64(level+1) * 12,
				Top:    col("nord-yellow"),
			})
		}
	}
	return s
}

// ocean returns a field of columns driven by a wave.
func ocean() *scene.Scene {
	s := canvas(620, 480, 16, basis.Isometric)
	s.Background = colp("nord-black")
	for y := range 12 {
		for x := range 12 {
			s.Columns = append(s.Columns, scene.Column{
				X:      x + 14,
				Y:      y,
				Height: 20,
				Top:    col("ocean1"),
				Left:   colp("ocean2"),
				Right:  colp("ocean3"),
			})
		}
	}
	s.Wave = &scene.Wave{Amplitude: 12, Wavelength: 8, Speed: 4}
	return s
}
