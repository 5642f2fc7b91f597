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

// Package la implements the small amount of linear algebra needed to map
// lattice coordinates to the screen: vector arithmetic on [vec.Vec2] and
// 2×2 matrices with an adjugate-based inverse.
//
// All operations are pure and use plain float64 arithmetic. Overflow and
// NaN values propagate as produced by the underlying operations.
package la

import (
	"errors"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// ErrNotInvertible is returned when a matrix has a zero determinant.
var ErrNotInvertible = errors.New("matrix is not invertible")

// Add returns v1 + v2.
func Add(v1, v2 vec.Vec2) vec.Vec2 {
	return v1.Add(v2)
}

// Scale returns a·v.
func Scale(a float64, v vec.Vec2) vec.Vec2 {
	return v.Mul(a)
}

// Dot returns the scalar product of v1 and v2.
func Dot(v1, v2 vec.Vec2) float64 {
	return v1.X*v2.X + v1.Y*v2.Y
}

// Matrix is a linear map of the plane, stored as two column vectors.
// Elements 0 and 1 form the first column, elements 2 and 3 the second, so
// that the matrix maps v to c0·v.X + c1·v.Y.
type Matrix [4]float64

// Identity is the identity map.
var Identity = Matrix{1, 0, 0, 1}

// Columns returns the matrix with columns c0 and c1.
func Columns(c0, c1 vec.Vec2) Matrix {
	return Matrix{c0.X, c0.Y, c1.X, c1.Y}
}

// Col returns column i (0 or 1) of the matrix.
func (m Matrix) Col(i int) vec.Vec2 {
	return vec.Vec2{X: m[2*i], Y: m[2*i+1]}
}

// Det returns the determinant of m.
func (m Matrix) Det() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Apply returns the matrix-vector product m·v.
func (m Matrix) Apply(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// Apply returns the map v ↦ m·v.
func Apply(m Matrix) func(vec.Vec2) vec.Vec2 {
	return m.Apply
}

// Mul returns the product m·n, i.e. the map which applies n first.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
	}
}

// Inverse returns the inverse of m, computed from the adjugate.
//
// The test for invertibility is an exact comparison of the determinant
// with zero.  Nearly singular matrices are inverted, with whatever loss of
// precision this implies.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Det()
	if det == 0 {
		return Matrix{}, ErrNotInvertible
	}
	return Matrix{
		m[3] / det,
		-m[1] / det,
		-m[2] / det,
		m[0] / det,
	}, nil
}

// Affine returns the affine transformation which applies m and then
// translates by offset, in the layout used by [matrix.Matrix].
func (m Matrix) Affine(offset vec.Vec2) matrix.Matrix {
	return matrix.Matrix{m[0], m[1], m[2], m[3], offset.X, offset.Y}
}
