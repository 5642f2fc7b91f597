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
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/lattice/basis"
	"seehuhn.de/go/lattice/scene"
)

var boardCases = []TestCase{
	{
		Name:  "standard",
		Scene: checkerboard(620, 480, 20, basis.Standard),
	},
	{
		Name:  "isometric",
		Scene: checkerboard(620, 480, 20, basis.Isometric),
	},
	{
		Name:  "fortyfive",
		Scene: checkerboard(620, 480, 20, basis.FortyFive),
	},
	{
		Name:  "isometric_large_tiles",
		Scene: checkerboard(620, 480, 70, basis.Isometric),
	},
	{
		Name:  "isometric_small_canvas",
		Scene: checkerboard(64, 48, 8, basis.Isometric),
	},
	{
		Name:  "standard_partial_tiles",
		Scene: checkerboard(105, 67, 20, basis.Standard),
	},
}

var gridCases = []TestCase{
	{
		Name: "standard",
		Scene: func() *scene.Scene {
			s := canvas(310, 240, 20, basis.Standard)
			s.Background = colp("nord-white")
			s.Grid = colp("nord-darkgray")
			return s
		}(),
	},
	{
		Name: "isometric_over_board",
		Scene: func() *scene.Scene {
			s := checkerboard(310, 240, 20, basis.Isometric)
			s.Grid = colp("nord-black")
			return s
		}(),
	},
	{
		Name: "fortyfive",
		Scene: func() *scene.Scene {
			s := canvas(310, 240, 30, basis.FortyFive)
			s.Background = colp("white")
			s.Grid = colp("nord-blue")
			return s
		}(),
	},
}

var tileCases = []TestCase{
	{
		// a single highlighted tile on an otherwise empty grid
		Name: "single_isometric",
		Scene: func() *scene.Scene {
			s := canvas(310, 240, 20, basis.Isometric)
			s.Background = colp("nord-white")
			s.Grid = colp("nord-lightgray")
			s.Tiles = []scene.Tile{{X: 10, Y: 0, Color: col("red")}}
			return s
		}(),
	},
	{
		Name: "diagonal_standard",
		Scene: func() *scene.Scene {
			s := checkerboard(200, 200, 20, basis.Standard)
			for i := range 10 {
				s.Tiles = append(s.Tiles, scene.Tile{X: i, Y: i, Color: col("nord-yellow")})
			}
			return s
		}(),
	},
	{
		Name: "negative_coordinates",
		Scene: func() *scene.Scene {
			s := checkerboard(200, 200, 20, basis.Isometric)
			s.Tiles = []scene.Tile{
				{X: 5, Y: -2, Color: col("ocean1")},
				{X: 6, Y: -2, Color: col("ocean2")},
				{X: 7, Y: -2, Color: col("ocean3")},
			}
			return s
		}(),
	},
}

var routeCases = []TestCase{
	{
		Name: "round_caps_standard",
		Scene: func() *scene.Scene {
			s := canvas(200, 200, 20, basis.Standard)
			s.Background = colp("nord-white")
			s.Grid = colp("nord-lightgray")
			s.Routes = []scene.Route{{
				Tiles: [][2]int{{1, 1}, {6, 1}, {6, 5}, {2, 8}},
				Color: col("nord-red"),
				Width: 6,
				Cap:   scene.LineCap(graphics.LineCapRound),
				Join:  scene.LineJoin(graphics.LineJoinRound),
			}}
			return s
		}(),
	},
	{
		Name: "caps_isometric",
		Scene: func() *scene.Scene {
			s := checkerboard(310, 240, 20, basis.Isometric)
			s.Routes = []scene.Route{
				{
					Tiles: [][2]int{{6, -1}, {10, -1}},
					Color: col("ocean1"),
					Width: 8,
					Cap:   scene.LineCap(graphics.LineCapButt),
				},
				{
					Tiles: [][2]int{{6, 1}, {10, 1}},
					Color: col("ocean2"),
					Width: 8,
					Cap:   scene.LineCap(graphics.LineCapSquare),
				},
				{
					Tiles: [][2]int{{6, 3}, {10, 3}},
					Color: col("ocean3"),
					Width: 8,
					Cap:   scene.LineCap(graphics.LineCapRound),
				},
			}
			return s
		}(),
	},
	{
		Name: "joins_fortyfive",
		Scene: func() *scene.Scene {
			s := canvas(310, 240, 30, basis.FortyFive)
			s.Background = colp("white")
			s.Grid = colp("nord-lightgray")
			for i, j := range []graphics.LineJoinStyle{graphics.LineJoinMiter, graphics.LineJoinBevel, graphics.LineJoinRound} {
				s.Routes = append(s.Routes, scene.Route{
					Tiles: [][2]int{{1 + 2*i, 0}, {1 + 2*i, 2}, {3 + 2*i, 2}},
					Color: col("nord-darkgray"),
					Width: 7,
					Join:  scene.LineJoin(j),
				})
			}
			return s
		}(),
	},
}
