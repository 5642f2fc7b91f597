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
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// paintOp is one Fill or Stroke call seen by a recorder.
type paintOp struct {
	stroke bool
	path   []vec.Vec2
	closed bool
	color  color.Color
	width  float64
}

// recorder is a Surface which remembers what was painted.
type recorder struct {
	ops []paintOp

	cur    []vec.Vec2
	closed bool
	fill   color.Color
	stroke color.Color
	width  float64

	failAfter int // if > 0, the failAfter-th paint operation fails
}

var errPaint = errors.New("paint failed")

func (r *recorder) BeginPath()                 { r.cur = nil; r.closed = false }
func (r *recorder) MoveTo(p vec.Vec2)          { r.cur = append(r.cur, p) }
func (r *recorder) LineTo(p vec.Vec2)          { r.cur = append(r.cur, p) }
func (r *recorder) ClosePath()                 { r.closed = true }
func (r *recorder) SetFillColor(c color.Color) { r.fill = c }
func (r *recorder) SetStrokeColor(c color.Color) {
	r.stroke = c
}
func (r *recorder) SetLineWidth(w float64) { r.width = w }

func (r *recorder) Fill() error {
	return r.paint(paintOp{path: r.cur, closed: r.closed, color: r.fill})
}

func (r *recorder) Stroke() error {
	return r.paint(paintOp{stroke: true, path: r.cur, closed: r.closed, color: r.stroke, width: r.width})
}

func (r *recorder) paint(op paintOp) error {
	if r.failAfter > 0 && len(r.ops)+1 == r.failAfter {
		return errPaint
	}
	r.ops = append(r.ops, op)
	return nil
}
