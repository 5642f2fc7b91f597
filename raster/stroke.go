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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke paints the outline of p using Width, Cap, Join and MiterLimit.
// The outline is assembled from one polygon per segment, cap and join,
// all oriented the same way, and filled with the nonzero rule so that
// overlaps are painted once.
func (r *Rasterizer) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.polys = r.polys[:0]
	r.offsets = r.offsets[:0]

	r.eachSubpath(p, r.strokeSubpath)

	r.edges = r.edges[:0]
	for i, start := range r.offsets {
		end := len(r.polys)
		if i+1 < len(r.offsets) {
			end = r.offsets[i+1]
		}
		poly := r.polys[start:end]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.scan(emit)
}

// eachSubpath flattens p and calls visit once per subpath with its
// vertices.  Subpaths consisting of a single MoveTo are skipped.
// Consecutive duplicate vertices are removed, and for closed
// subpaths the closing vertex is not repeated.  As in [Rasterizer.FillNonZero],
// a path which does not start with MoveTo starts at the origin.
func (r *Rasterizer) eachSubpath(p *path.Data, visit func(pts []vec.Vec2, closed bool)) {
	var pts []vec.Vec2
	drawn := false
	current := func() vec.Vec2 {
		if len(pts) == 0 {
			pts = append(pts, vec.Vec2{})
		}
		return pts[len(pts)-1]
	}
	add := func(_, b vec.Vec2) {
		drawn = true
		if b.Sub(current()).Length() >= zeroLengthThreshold {
			pts = append(pts, b)
		}
	}
	flush := func(closed bool) {
		if len(pts) == 0 || !drawn {
			pts = pts[:0]
			return
		}
		if closed && len(pts) > 1 && pts[len(pts)-1].Sub(pts[0]).Length() < zeroLengthThreshold {
			pts = pts[:len(pts)-1]
		}
		visit(pts, closed)
		pts = pts[:0]
		drawn = false
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			pts = append(pts, p.Coords[k])
			k++
		case path.CmdLineTo:
			add(vec.Vec2{}, p.Coords[k])
			k++
		case path.CmdQuadTo:
			r.flatten(current(), p.Coords[k:k+2], add)
			k += 2
		case path.CmdCubeTo:
			r.flatten(current(), p.Coords[k:k+3], add)
			k += 3
		case path.CmdClose:
			if len(pts) == 0 {
				continue
			}
			start := pts[0]
			flush(true)
			pts = append(pts, start)
		}
	}
	flush(false)
}

// strokeSubpath adds the outline polygons of one subpath.
func (r *Rasterizer) strokeSubpath(pts []vec.Vec2, closed bool) {
	d := r.Width / 2
	if len(pts) == 1 {
		if r.Cap == graphics.LineCapRound && !closed {
			r.addDisc(pts[0], d)
		}
		return
	}

	n := len(pts) - 1
	if closed && len(pts) > 2 {
		n = len(pts)
	}
	for i := range n {
		a, b := pts[i], pts[(i+1)%len(pts)]
		t := b.Sub(a)
		t = t.Mul(1 / t.Length())
		if !closed && r.Cap == graphics.LineCapSquare {
			if i == 0 {
				a = a.Sub(t.Mul(d))
			}
			if i == n-1 {
				b = b.Add(t.Mul(d))
			}
		}
		nrm := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		r.addPolygon(a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm))
	}

	if closed && len(pts) > 2 {
		for i := range pts {
			prev := pts[(i+len(pts)-1)%len(pts)]
			r.addJoin(prev, pts[i], pts[(i+1)%len(pts)], d)
		}
		return
	}
	for i := 1; i < len(pts)-1; i++ {
		r.addJoin(pts[i-1], pts[i], pts[i+1], d)
	}
	if r.Cap == graphics.LineCapRound {
		r.addDisc(pts[0], d)
		r.addDisc(pts[len(pts)-1], d)
	}
}

// addJoin adds the join between the segments a→p and p→b, on the outer
// side of the corner.
func (r *Rasterizer) addJoin(a, p, b vec.Vec2, d float64) {
	t1 := p.Sub(a)
	t1 = t1.Mul(1 / t1.Length())
	t2 := b.Sub(p)
	t2 = t2.Mul(1 / t2.Length())

	cross := t1.X*t2.Y - t1.Y*t2.X
	if math.Abs(cross) < collinearityThreshold && t1.Dot(t2) > 0 {
		return
	}
	if r.Join == graphics.LineJoinRound {
		r.addDisc(p, d)
		return
	}

	side := 1.0
	if cross > 0 {
		side = -1
	}
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}.Mul(side * d)
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}.Mul(side * d)

	if r.Join == graphics.LineJoinMiter {
		// the miter length relative to the line width is 1/cos(θ/2),
		// where θ is the turning angle
		cosHalf := math.Sqrt((1 + t1.Dot(t2)) / 2)
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit {
			bisector := n1.Add(n2)
			tip := p.Add(bisector.Mul(d / (cosHalf * bisector.Length())))
			r.addPolygon(p, p.Add(n1), tip, p.Add(n2))
			return
		}
	}
	r.addPolygon(p, p.Add(n1), p.Add(n2))
}

// addDisc adds a polygonal approximation of the disc of radius d around c.
func (r *Rasterizer) addDisc(c vec.Vec2, d float64) {
	rDev := max(r.linear(vec.Vec2{X: d}).Length(), r.linear(vec.Vec2{Y: d}).Length())
	n := 8
	if rDev > r.Flatness {
		n = max(n, int(math.Ceil(math.Pi/math.Acos(1-r.Flatness/rDev))))
	}
	start := len(r.polys)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.polys = append(r.polys, vec.Vec2{X: c.X + d*math.Cos(phi), Y: c.Y + d*math.Sin(phi)})
	}
	r.finishPolygon(start)
}

// addPolygon adds a convex polygon to the stroke outline.
func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	start := len(r.polys)
	r.polys = append(r.polys, pts...)
	r.finishPolygon(start)
}

// finishPolygon orients the polygon starting at r.polys[start] with
// positive signed area and records it.
func (r *Rasterizer) finishPolygon(start int) {
	poly := r.polys[start:]
	var area float64
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		area += a.X*b.Y - b.X*a.Y
	}
	if area == 0 {
		r.polys = r.polys[:start]
		return
	}
	if area < 0 {
		slices.Reverse(poly)
	}
	r.offsets = append(r.offsets, start)
}
