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

package la

import (
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func near(a, b vec.Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestVectorOps(t *testing.T) {
	v1 := vec.Vec2{X: 1, Y: 2}
	v2 := vec.Vec2{X: -3, Y: 0.5}

	if got := Add(v1, v2); got != (vec.Vec2{X: -2, Y: 2.5}) {
		t.Errorf("Add: got %v", got)
	}
	if got := Scale(-2, v1); got != (vec.Vec2{X: -2, Y: -4}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := Dot(v1, v2); got != -2 {
		t.Errorf("Dot: got %g", got)
	}
	if v1 != (vec.Vec2{X: 1, Y: 2}) {
		t.Error("arguments were modified")
	}
}

func TestApplyColumnMajor(t *testing.T) {
	m := Matrix{1, 2, 3, 4}
	got := Apply(m)(vec.Vec2{X: 1, Y: 0})
	if got != (vec.Vec2{X: 1, Y: 2}) {
		t.Errorf("first column: got %v", got)
	}
	got = m.Apply(vec.Vec2{X: 0, Y: 1})
	if got != (vec.Vec2{X: 3, Y: 4}) {
		t.Errorf("second column: got %v", got)
	}
	if m.Col(0) != (vec.Vec2{X: 1, Y: 2}) || m.Col(1) != (vec.Vec2{X: 3, Y: 4}) {
		t.Errorf("Col: got %v %v", m.Col(0), m.Col(1))
	}
	if Columns(m.Col(0), m.Col(1)) != m {
		t.Error("Columns does not invert Col")
	}
}

func TestDet(t *testing.T) {
	if d := Identity.Det(); d != 1 {
		t.Errorf("det(I) = %g", d)
	}
	if d := (Matrix{1, 2, 3, 4}).Det(); d != -2 {
		t.Errorf("det = %g, want -2", d)
	}
}

func TestInverseSingular(t *testing.T) {
	for _, m := range []Matrix{
		{1, 2, 2, 4},
		{0, 0, 0, 0},
		{1, 1, 1, 1},
	} {
		_, err := m.Inverse()
		if !errors.Is(err, ErrNotInvertible) {
			t.Errorf("%v: got err=%v, want ErrNotInvertible", m, err)
		}
	}
}

func TestInverseRoundTrip(t *testing.T) {
	matrices := []Matrix{
		Identity,
		{2, 0, 0, 0.5},
		{0.8660254037844386, 0.5, -0.8660254037844386, 0.5},
		{1, 2, 3, 4},
		{-7, 0.25, 1e3, 3},
		{1e-6, 0, 0, 1e-6},
	}
	vectors := []vec.Vec2{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: -3.5, Y: 12},
		{X: 620, Y: 480},
		{X: -1e4, Y: 7e3},
	}
	for _, m := range matrices {
		inv, err := m.Inverse()
		if err != nil {
			t.Fatalf("%v: %v", m, err)
		}
		for _, v := range vectors {
			got := inv.Apply(m.Apply(v))
			eps := 1e-9 * max(1, math.Abs(v.X), math.Abs(v.Y))
			if !near(got, v, eps) {
				t.Errorf("%v: round trip of %v gave %v", m, v, got)
			}
		}
		if p := m.Mul(inv); !near(p.Col(0), Identity.Col(0), 1e-12) || !near(p.Col(1), Identity.Col(1), 1e-12) {
			t.Errorf("%v: m·m⁻¹ = %v", m, p)
		}
	}
}

func TestMulOrder(t *testing.T) {
	scale := Matrix{2, 0, 0, 3}
	shear := Matrix{1, 0, 1, 1}
	v := vec.Vec2{X: 1, Y: 1}

	got := scale.Mul(shear).Apply(v)
	want := scale.Apply(shear.Apply(v))
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAffine(t *testing.T) {
	m := Matrix{1, 2, 3, 4}
	a := m.Affine(vec.Vec2{X: 10, Y: 20})
	x := a[0]*1 + a[2]*1 + a[4]
	y := a[1]*1 + a[3]*1 + a[5]
	if x != 14 || y != 26 {
		t.Errorf("got (%g, %g), want (14, 26)", x, y)
	}
}
