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
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/lattice"
)

// ErrNoCurrentPoint is returned by Fill and Stroke if a path segment was
// added before the first MoveTo.
var ErrNoCurrentPoint = errors.New("no current point")

// Canvas is a software implementation of [lattice.Surface] which paints
// into an RGBA image.
type Canvas struct {
	img *image.RGBA
	r   *Rasterizer

	path    path.Data
	hasCur  bool
	pathErr error

	fill   color.Color
	stroke color.Color
	width  float64
	cap    graphics.LineCapStyle
	join   graphics.LineJoinStyle
}

var _ lattice.Surface = (*Canvas)(nil)

// New allocates a transparent canvas of the given size in pixels.
func New(width, height int) *Canvas {
	return NewForImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewForImage returns a canvas which paints into img.  Screen coordinate
// (0, 0) is the top-left corner of img.Bounds().
func NewForImage(img *image.RGBA) *Canvas {
	b := img.Bounds()
	return &Canvas{
		img: img,
		r: NewRasterizer(rect.Rect{
			URx: float64(b.Dx()),
			URy: float64(b.Dy()),
		}),
		fill:   color.Black,
		stroke: color.Black,
		width:  1,
		cap:    graphics.LineCapButt,
		join:   graphics.LineJoinMiter,
	}
}

// SetTransform sets the map from screen coordinates to image pixels.
// The default is the identity.
func (c *Canvas) SetTransform(m matrix.Matrix) {
	c.r.CTM = m
}

// SetScale makes one screen unit cover s pixels.
func (c *Canvas) SetScale(s float64) {
	c.r.CTM = matrix.Matrix{s, 0, 0, s, 0, 0}
}

// BeginPath implements [lattice.Surface].
func (c *Canvas) BeginPath() {
	c.path.Cmds = c.path.Cmds[:0]
	c.path.Coords = c.path.Coords[:0]
	c.hasCur = false
	c.pathErr = nil
}

// MoveTo implements [lattice.Surface].
func (c *Canvas) MoveTo(p vec.Vec2) {
	c.path.MoveTo(p)
	c.hasCur = true
}

// LineTo implements [lattice.Surface].
func (c *Canvas) LineTo(p vec.Vec2) {
	if !c.hasCur {
		c.pathErr = ErrNoCurrentPoint
		return
	}
	c.path.LineTo(p)
}

// ClosePath implements [lattice.Surface].
func (c *Canvas) ClosePath() {
	if !c.hasCur {
		c.pathErr = ErrNoCurrentPoint
		return
	}
	c.path.Close()
}

// SetFillColor implements [lattice.Surface].
func (c *Canvas) SetFillColor(col color.Color) { c.fill = col }

// SetStrokeColor implements [lattice.Surface].
func (c *Canvas) SetStrokeColor(col color.Color) { c.stroke = col }

// SetLineWidth implements [lattice.Surface].
func (c *Canvas) SetLineWidth(w float64) { c.width = w }

// SetLineCap sets the cap style used by subsequent strokes.
func (c *Canvas) SetLineCap(s graphics.LineCapStyle) {
	c.cap = s
}

// SetLineJoin sets the join style used by subsequent strokes.
func (c *Canvas) SetLineJoin(s graphics.LineJoinStyle) {
	c.join = s
}

// Fill implements [lattice.Surface].
func (c *Canvas) Fill() error {
	if c.pathErr != nil {
		return c.pathErr
	}
	c.r.FillNonZero(&c.path, c.painter(c.fill))
	return nil
}

// Stroke implements [lattice.Surface].  Non-positive line widths paint
// nothing.
func (c *Canvas) Stroke() error {
	if c.pathErr != nil {
		return c.pathErr
	}
	if c.width <= 0 {
		return nil
	}
	c.r.Width = c.width
	c.r.Cap = c.cap
	c.r.Join = c.join
	c.r.Stroke(&c.path, c.painter(c.stroke))
	return nil
}

// painter returns an emit callback which composites col over the image,
// weighted by the coverage.
func (c *Canvas) painter(col color.Color) func(y, xMin int, coverage []float32) {
	sr, sg, sb, sa := col.RGBA()
	origin := c.img.Rect.Min
	return func(y, xMin int, coverage []float32) {
		off := c.img.PixOffset(origin.X+xMin, origin.Y+y)
		pix := c.img.Pix[off : off+4*len(coverage)]
		for i, cov := range coverage {
			m := uint32(cov*0xffff + 0.5)
			if m == 0 {
				continue
			}
			a := sa * m / 0xffff
			ia := 0xffff - a
			p := pix[4*i : 4*i+4 : 4*i+4]
			p[0] = uint8((sr*m/0xffff + uint32(p[0])*0x101*ia/0xffff) >> 8)
			p[1] = uint8((sg*m/0xffff + uint32(p[1])*0x101*ia/0xffff) >> 8)
			p[2] = uint8((sb*m/0xffff + uint32(p[2])*0x101*ia/0xffff) >> 8)
			p[3] = uint8((a + uint32(p[3])*0x101*ia/0xffff) >> 8)
		}
	}
}

// Clear sets every pixel to col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Image returns the image the canvas paints into.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// EncodePNG writes the canvas contents to w in PNG format.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// Resample returns a copy of the canvas contents scaled to the given
// size, using Catmull-Rom interpolation.
func (c *Canvas) Resample(width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), c.img, c.img.Bounds(), draw.Src, nil)
	return dst
}
