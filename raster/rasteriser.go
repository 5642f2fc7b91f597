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

// Package raster implements a software [lattice.Surface] which paints
// into an [image.RGBA].
//
// Paths are converted to anti-aliased pixel coverage by a scanline
// rasteriser and composited onto the image with the Porter-Duff "over"
// operator.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a line segment in device coordinates, oriented as it was added.
type edge struct {
	x0, y0 float64
	x1, y1 float64
}

// Rasterizer converts paths to per-pixel coverage, the fraction of each
// pixel's area covered by the shape.  Internal buffers are reused between
// calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  It must be non-singular.
	CTM matrix.Matrix

	// Clip limits the output to this device space rectangle.  The
	// coordinates must be integers.
	Clip rect.Rect

	// Flatness is the tolerance, in device pixels, used to approximate
	// curves by line segments.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	// stroke outlines, all polygons back to back
	polys   []vec.Vec2
	offsets []int
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, using
// the PDF defaults for all stroke parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.polys = r.polys[:0]
	r.offsets = r.offsets[:0]
}

// FillNonZero fills p using the nonzero winding rule.  Open subpaths are
// closed implicitly.  The emit callback receives the coverage of each
// scanline, starting at pixel xMin; the slice is only valid during the
// call.
func (r *Rasterizer) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	r.walk(p, r.addEdge)
	r.scan(emit)
}

// walk calls line for every straight segment of p, in user space.
// Curves are flattened and every subpath is closed.
func (r *Rasterizer) walk(p *path.Data, line func(a, b vec.Vec2)) {
	var cur, start vec.Vec2
	open := false
	closeSubpath := func() {
		if open && cur != start {
			line(cur, start)
		}
		cur = start
		open = false
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			cur, start = p.Coords[k], p.Coords[k]
			k++
		case path.CmdLineTo:
			line(cur, p.Coords[k])
			cur = p.Coords[k]
			open = true
			k++
		case path.CmdQuadTo:
			r.flatten(cur, p.Coords[k:k+2], line)
			cur = p.Coords[k+1]
			open = true
			k += 2
		case path.CmdCubeTo:
			r.flatten(cur, p.Coords[k:k+3], line)
			cur = p.Coords[k+2]
			open = true
			k += 3
		case path.CmdClose:
			closeSubpath()
		}
	}
	closeSubpath()
}

// flatten approximates the Bézier curve starting at p0 with control
// points ctrl by line segments.
func (r *Rasterizer) flatten(p0 vec.Vec2, ctrl []vec.Vec2, line func(a, b vec.Vec2)) {
	// bound the second differences of the control polygon in device space
	pts := append([]vec.Vec2{p0}, ctrl...)
	var dev float64
	for i := 2; i < len(pts); i++ {
		d := pts[i-2].Sub(pts[i-1].Mul(2)).Add(pts[i])
		dev = max(dev, r.linear(d).Length())
	}
	n := 1
	if dev > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*dev/(4*r.Flatness)))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		pt := bezier(pts, float64(i)/float64(n))
		line(prev, pt)
		prev = pt
	}
}

// bezier evaluates the Bézier curve with control points pts at t, using
// de Casteljau's algorithm.
func bezier(pts []vec.Vec2, t float64) vec.Vec2 {
	var buf [4]vec.Vec2
	q := buf[:copy(buf[:], pts)]
	for len(q) > 1 {
		for i := range len(q) - 1 {
			q[i] = q[i].Mul(1 - t).Add(q[i+1].Mul(t))
		}
		q = q[:len(q)-1]
	}
	return q[0]
}

// linear applies the linear part of the CTM to v.
func (r *Rasterizer) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// addEdge transforms a user space segment to device space and stores it.
// Horizontal segments do not contribute to coverage and are dropped.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	m := r.CTM
	e := edge{
		x0: m[0]*a.X + m[2]*a.Y + m[4],
		y0: m[1]*a.X + m[3]*a.Y + m[5],
		x1: m[0]*b.X + m[2]*b.Y + m[4],
		y1: m[1]*b.X + m[3]*b.Y + m[5],
	}
	if math.Abs(e.y1-e.y0) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, e)
}

// Coverage model.  For every pixel of a scanline two values are
// accumulated: cover, the signed height of all edge pieces crossing the
// pixel, and area, the part of that height lying to the right of the
// crossing.  Scanning from left to right, the coverage of a pixel is the
// sum of the cover of all pixels to its left plus its own area.

// scan rasterises the stored edges, row by row, using an active edge
// list.
func (r *Rasterizer) scan(emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}

	top, bottom := math.Inf(1), math.Inf(-1)
	left, right := math.Inf(1), math.Inf(-1)
	for _, e := range r.edges {
		top = min(top, e.y0, e.y1)
		bottom = max(bottom, e.y0, e.y1)
		left = min(left, e.x0, e.x1)
		right = max(right, e.x0, e.x1)
	}
	xMin := max(int(math.Floor(left)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(right))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(top)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(bottom))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		yTop, yBot := float64(y), float64(y+1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yBot {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if max(e.y0, e.y1) <= yTop {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.accumulate(e, yTop, yBot, xMin, xMax)
			i++
		}

		integrateNonZero(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the part of e inside the scanline [yTop, yBot) to the
// cover and area buffers, which start at pixel xMin.
func (r *Rasterizer) accumulate(e *edge, yTop, yBot float64, xMin, xMax int) {
	sign := float32(1)
	lo, hi := e.y0, e.y1
	if e.y1 < e.y0 {
		sign = -1
		lo, hi = hi, lo
	}
	ya, yb := max(yTop, lo), min(yBot, hi)
	if yb <= ya {
		return
	}
	dxdy := (e.x1 - e.x0) / (e.y1 - e.y0)
	xa := e.x0 + dxdy*(ya-e.y0)
	xb := e.x0 + dxdy*(yb-e.y0)

	// walk along the piece from (xa, ya) to (xb, yb), one pixel column
	// at a time
	px := int(math.Floor(xa))
	x0, y0 := xa, ya
	switch {
	case xb > xa:
		for {
			bound := float64(px + 1)
			if bound >= xb {
				break
			}
			yc := ya + (bound-xa)*(yb-ya)/(xb-xa)
			r.deposit(px, x0, y0, bound, yc, sign, xMin, xMax)
			x0, y0 = bound, yc
			px++
		}
	case xb < xa:
		for {
			bound := float64(px)
			if bound <= xb {
				break
			}
			yc := ya + (bound-xa)*(yb-ya)/(xb-xa)
			r.deposit(px, x0, y0, bound, yc, sign, xMin, xMax)
			x0, y0 = bound, yc
			px--
		}
	}
	r.deposit(px, x0, y0, xb, yb, sign, xMin, xMax)
}

// deposit records an edge piece from (x0, y0) to (x1, y1) which lies in
// pixel column pix.
func (r *Rasterizer) deposit(pix int, x0, y0, x1, y1 float64, sign float32, xMin, xMax int) {
	if pix >= xMax {
		return
	}
	h := sign * float32(y1-y0)
	if pix < xMin {
		r.cover[0] += h
		r.area[0] += h
		return
	}
	frac := (x0+x1)/2 - float64(pix)
	i := pix - xMin
	r.cover[i] += h
	r.area[i] += h * float32(1-frac)
}

// integrateNonZero turns the accumulated cover and area values into
// coverage, in place, using the nonzero winding rule.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros strips zero coverage from both ends of a scanline.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.
	defaultMiterLimit = 10.0

	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
	collinearityThreshold   = 1e-6
)
