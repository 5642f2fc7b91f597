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


package scene

import (
	"fmt"
	"strings"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/lattice"
	"seehuhn.de/go/lattice/basis"
)

// LineStyler is implemented by surfaces which support line cap and line
// join styles.  Surfaces without it draw routes with their own defaults.
type LineStyler interface {
	SetLineCap(graphics.LineCapStyle)
	SetLineJoin(graphics.LineJoinStyle)
}

// Route is an open polyline through the centres of a sequence of tiles.
//
//	routes:
//	  - {tiles: [[0, 0], [4, 0], [4, 3]], color: nord-red, width: 3, cap: round}
type Route struct {
	Tiles [][2]int `yaml:"tiles"`
	Color Color    `yaml:"color"`
	Width float64  `yaml:"width"`
	Cap   LineCap  `yaml:"cap,omitempty"`
	Join  LineJoin `yaml:"join,omitempty"`
}

// LineCap is a line cap style, written as "butt", "round" or "square".
type LineCap graphics.LineCapStyle

var capNames = map[graphics.LineCapStyle]string{
	graphics.LineCapButt:   "butt",
	graphics.LineCapRound:  "round",
	graphics.LineCapSquare: "square",
}

// LineJoin is a line join style, written as "miter", "round" or "bevel".
type LineJoin graphics.LineJoinStyle

var joinNames = map[graphics.LineJoinStyle]string{
	graphics.LineJoinMiter: "miter",
	graphics.LineJoinRound: "round",
	graphics.LineJoinBevel: "bevel",
}

func (c LineCap) MarshalText() ([]byte, error) {
	name, ok := capNames[graphics.LineCapStyle(c)]
	if !ok {
		return nil, fmt.Errorf("%w: line cap %d", ErrInvalid, c)
	}
	return []byte(name), nil
}

func (c *LineCap) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for style, name := range capNames {
		if name == s {
			*c = LineCap(style)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown line cap %q", ErrInvalid, text)
}

func (j LineJoin) MarshalText() ([]byte, error) {
	name, ok := joinNames[graphics.LineJoinStyle(j)]
	if !ok {
		return nil, fmt.Errorf("%w: line join %d", ErrInvalid, j)
	}
	return []byte(name), nil
}

func (j *LineJoin) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for style, name := range joinNames {
		if name == s {
			*j = LineJoin(style)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown line join %q", ErrInvalid, text)
}

// TileCentre returns the screen position of the centre of tile t.
func TileCentre(t lattice.Tile, size float64, b basis.Basis) vec.Vec2 {
	q := lattice.TileQuad(b, t.Origin(b, size), size)
	return q[0].Add(q[2]).Mul(0.5)
}

// drawRoute strokes r onto dst.  Routes with fewer than two tiles are
// not drawn.
func drawRoute(dst lattice.Surface, r *Route, size float64, b basis.Basis) error {
	if len(r.Tiles) < 2 {
		return nil
	}
	if ls, ok := dst.(LineStyler); ok {
		ls.SetLineCap(graphics.LineCapStyle(r.Cap))
		ls.SetLineJoin(graphics.LineJoinStyle(r.Join))
	}
	dst.SetStrokeColor(r.Color)
	dst.SetLineWidth(r.Width)

	dst.BeginPath()
	for i, xy := range r.Tiles {
		p := TileCentre(lattice.Tile{X: xy[0], Y: xy[1]}, size, b)
		if i == 0 {
			dst.MoveTo(p)
		} else {
			dst.LineTo(p)
		}
	}
	return dst.Stroke()
}
