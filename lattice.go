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

// Package lattice draws tiled lattices under a linear change of basis.
//
// Lattice coordinates are mapped to the screen by one of the bases in
// package [basis], scaled by the tile size.  The package enumerates the
// tiles visible in a screen rectangle, traces tile outlines edge by edge,
// extrudes tiles into pseudo-3D columns, and snaps screen points back to
// the lattice.  All drawing goes through the [Surface] interface.
package lattice

import (
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Surface is an immediate-mode 2D drawing target.  It holds a current
// path and the paint state used by Fill and Stroke.
//
// Coordinates are screen coordinates: the origin is the top-left corner
// and y grows downwards.
type Surface interface {
	// BeginPath discards the current path.
	BeginPath()

	// MoveTo starts a new subpath at p.
	MoveTo(p vec.Vec2)

	// LineTo adds a straight segment from the current point to p.
	LineTo(p vec.Vec2)

	// ClosePath closes the current subpath.
	ClosePath()

	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)

	// Fill paints the interior of the current path using the nonzero
	// winding rule.
	Fill() error

	// Stroke paints the outline of the current path.
	Stroke() error
}

// Quad is a quadrilateral in screen coordinates, listed in drawing order.
type Quad [4]vec.Vec2

// trace replaces the current path of s by the closed outline of q.
func (q Quad) trace(s Surface) {
	s.BeginPath()
	s.MoveTo(q[0])
	for _, p := range q[1:] {
		s.LineTo(p)
	}
	s.ClosePath()
}
