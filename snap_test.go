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
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lattice/basis"
	"seehuhn.de/go/lattice/la"
)

func TestClampNegativeX(t *testing.T) {
	for _, b := range basis.All {
		v := basis.ChangeBasis(b, vec.Vec2{X: -0.3, Y: 2.0})
		got, err := ClampToTile(b, v, 1)
		if err != nil {
			t.Fatal(err)
		}
		l, err := basis.Invert(b, got)
		if err != nil {
			t.Fatal(err)
		}
		if !closeTo(l, vec.Vec2{X: -1, Y: 2}, 1e-9) {
			t.Errorf("%s: snapped to lattice %v, want (-1, 2)", b, l)
		}
	}
}

func TestClampLattice(t *testing.T) {
	cases := []struct {
		lattice vec.Vec2
		size    float64
		want    vec.Vec2
	}{
		{vec.Vec2{X: 0.3, Y: 0.7}, 1, vec.Vec2{X: 0, Y: 0}},
		{vec.Vec2{X: 45, Y: 61}, 20, vec.Vec2{X: 40, Y: 60}},
		{vec.Vec2{X: -45, Y: 61}, 20, vec.Vec2{X: -60, Y: 60}},
		{vec.Vec2{X: -40, Y: 20}, 20, vec.Vec2{X: -40, Y: 20}}, // on the boundary
		{vec.Vec2{X: 5, Y: -0.5}, 1, vec.Vec2{X: 5, Y: 0}},     // y truncates towards zero
		{vec.Vec2{X: 5, Y: -1.5}, 1, vec.Vec2{X: 5, Y: -1}},
	}
	for _, c := range cases {
		v := basis.ChangeBasis(basis.Isometric, c.lattice)
		got, err := ClampToTile(basis.Isometric, v, c.size)
		if err != nil {
			t.Fatal(err)
		}
		want := basis.ChangeBasis(basis.Isometric, c.want)
		if !closeTo(got, want, 1e-9) {
			t.Errorf("lattice %v, size %g: got %v, want %v", c.lattice, c.size, got, want)
		}
	}
}

func TestClampIdempotent(t *testing.T) {
	points := []vec.Vec2{
		{X: 0, Y: 0},
		{X: 13.7, Y: 99.2},
		{X: -250.1, Y: 37},
		{X: 310, Y: 240},
		{X: -0.001, Y: -0.001},
		{X: 619.9, Y: 479.9},
	}
	for _, b := range basis.All {
		for _, size := range []float64{1, 7, 20} {
			for _, v := range points {
				once, err := ClampToTile(b, v, size)
				if err != nil {
					t.Fatal(err)
				}
				twice, err := ClampToTile(b, once, size)
				if err != nil {
					t.Fatal(err)
				}
				if !closeTo(once, twice, 1e-9) {
					t.Errorf("%s/%g: %v -> %v -> %v", b, size, v, once, twice)
				}
			}
		}
	}
}

func TestClampErrors(t *testing.T) {
	if _, err := ClampToTile(basis.Basis(5), vec.Vec2{X: 1}, 1); !errors.Is(err, la.ErrNotInvertible) {
		t.Errorf("invalid basis: got %v", err)
	}
	if _, err := ClampToTile(basis.Standard, vec.Vec2{X: 1}, -1); !errors.Is(err, ErrTileSize) {
		t.Errorf("negative size: got %v", err)
	}
}
