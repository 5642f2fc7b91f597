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

// Package pdfcanvas implements [lattice.Surface] on top of a single-page
// PDF file.
//
// Screen coordinates have their origin in the top-left corner of the
// page, one unit is one PDF point.  Colors are written as DeviceGray, so
// the output is a grayscale proof of the drawing.
package pdfcanvas

import (
	"errors"
	imgcolor "image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/lattice"
	"seehuhn.de/go/lattice/la"
)

// ErrNoCurrentPoint is returned by Fill and Stroke if a path segment was
// added before the first MoveTo.
var ErrNoCurrentPoint = errors.New("no current point")

// Canvas writes drawing commands into a PDF page.  The current path is
// kept in memory and only written out by Fill and Stroke, so that a path
// can be painted more than once.
type Canvas struct {
	page   *document.Page
	width  float64
	height float64

	path    path.Data
	hasCur  bool
	pathErr error

	fill   imgcolor.Color
	stroke imgcolor.Color
	lw     float64
	cap    graphics.LineCapStyle
	join   graphics.LineJoinStyle
}

var _ lattice.Surface = (*Canvas)(nil)

// Create starts a new PDF file with a single page of the given size.
// The file is written when Close is called.
func Create(fileName string, width, height float64) (*Canvas, error) {
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	// PDF user space has y pointing up
	flip := la.Matrix{1, 0, 0, -1}.Affine(vec.Vec2{Y: height})
	page.Transform(flip)

	return &Canvas{
		page:   page,
		width:  width,
		height: height,
		fill:   imgcolor.Black,
		stroke: imgcolor.Black,
		lw:     1,
		cap:    graphics.LineCapButt,
		join:   graphics.LineJoinMiter,
	}, nil
}

// Clear paints the whole page in col.
func (c *Canvas) Clear(col imgcolor.Color) {
	c.page.SetFillColor(color.DeviceGray(luminance(col)))
	c.page.Rectangle(0, 0, c.width, c.height)
	c.page.Fill()
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
func (c *Canvas) SetFillColor(col imgcolor.Color) { c.fill = col }

// SetStrokeColor implements [lattice.Surface].
func (c *Canvas) SetStrokeColor(col imgcolor.Color) { c.stroke = col }

// SetLineWidth implements [lattice.Surface].
func (c *Canvas) SetLineWidth(w float64) { c.lw = w }

// SetLineCap sets the cap style used by subsequent strokes.
func (c *Canvas) SetLineCap(s graphics.LineCapStyle) { c.cap = s }

// SetLineJoin sets the join style used by subsequent strokes.
func (c *Canvas) SetLineJoin(s graphics.LineJoinStyle) { c.join = s }

// Fill implements [lattice.Surface].
func (c *Canvas) Fill() error {
	if c.pathErr != nil {
		return c.pathErr
	}
	if len(c.path.Cmds) == 0 {
		return nil
	}
	c.page.SetFillColor(color.DeviceGray(luminance(c.fill)))
	c.emitPath()
	c.page.Fill()
	return nil
}

// Stroke implements [lattice.Surface].
func (c *Canvas) Stroke() error {
	if c.pathErr != nil {
		return c.pathErr
	}
	if len(c.path.Cmds) == 0 || c.lw <= 0 {
		return nil
	}
	c.page.SetStrokeColor(color.DeviceGray(luminance(c.stroke)))
	c.page.SetLineWidth(c.lw)
	c.page.SetLineCap(c.cap)
	c.page.SetLineJoin(c.join)
	c.emitPath()
	c.page.Stroke()
	return nil
}

// emitPath writes the current path to the content stream.
func (c *Canvas) emitPath() {
	k := 0
	for _, cmd := range c.path.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			c.page.MoveTo(c.path.Coords[k].X, c.path.Coords[k].Y)
			k++
		case path.CmdLineTo:
			c.page.LineTo(c.path.Coords[k].X, c.path.Coords[k].Y)
			k++
		case path.CmdClose:
			c.page.ClosePath()
		}
	}
}

// Close finishes the page and writes the PDF file.
func (c *Canvas) Close() error {
	return c.page.Close()
}

// luminance returns the gray level of col in the range [0, 1], using the
// same weights as [imgcolor.GrayModel].  Transparency is ignored, and
// fully transparent colors map to white.
func luminance(col imgcolor.Color) float64 {
	r, g, b, a := col.RGBA()
	if a == 0 {
		return 1
	}
	y := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / float64(a)
	return min(y, 1)
}
