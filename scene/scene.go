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

// Package scene describes drawings of a tiled lattice in YAML.
//
// A scene file sets the canvas size, the tile size and the basis, and
// lists what to paint: a checkerboard, a grid, single highlighted tiles,
// routes through tile centres and columns.  Column heights can be
// animated with a travelling wave.
//
//	width: 620
//	height: 480
//	size: 20
//	basis: isometric
//	board: {odd: nord-lightgray, even: nord-white}
//	columns:
//	  - {x: 5, y: 5, height: 40, top: nord-red}
//	wave: {amplitude: 10, wavelength: 8, speed: 3}
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lattice"
	"seehuhn.de/go/lattice/basis"
)

// ErrInvalid is returned for scenes which cannot be drawn.
var ErrInvalid = errors.New("invalid scene")

// Scene is a complete drawing.
type Scene struct {
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`
	Size   float64     `yaml:"size"`
	Basis  basis.Basis `yaml:"basis"`

	Background *Color   `yaml:"background,omitempty"`
	Board      *Board   `yaml:"board,omitempty"`
	Grid       *Color   `yaml:"grid,omitempty"`
	Tiles      []Tile   `yaml:"tiles,omitempty"`
	Routes     []Route  `yaml:"routes,omitempty"`
	Columns    []Column `yaml:"columns,omitempty"`
	Wave       *Wave    `yaml:"wave,omitempty"`
}

// Board is a checkerboard covering the whole canvas.
type Board struct {
	Odd  Color `yaml:"odd"`
	Even Color `yaml:"even"`
}

// Tile is a single highlighted tile.
type Tile struct {
	X     int   `yaml:"x"`
	Y     int   `yaml:"y"`
	Color Color `yaml:"color"`
}

// Column is a prism standing on the tile (X, Y).  If the side colors are
// omitted, they are derived from the top color.
type Column struct {
	X      int     `yaml:"x"`
	Y      int     `yaml:"y"`
	Height float64 `yaml:"height"`
	Top    Color   `yaml:"top"`
	Left   *Color  `yaml:"left,omitempty"`
	Right  *Color  `yaml:"right,omitempty"`
}

// Wave animates column heights.  At time t, a column at (x, y) is raised
// by Amplitude·sin(2π(x+y)/Wavelength − Speed·t), with t in seconds.
// Heights never drop below zero.
type Wave struct {
	Amplitude  float64 `yaml:"amplitude"`
	Wavelength float64 `yaml:"wavelength"`
	Speed      float64 `yaml:"speed"`
}

// Default returns the scene used when no file is given: an isometric
// checkerboard on a 620×480 canvas.
func Default() *Scene {
	return &Scene{
		Width:  620,
		Height: 480,
		Size:   20,
		Basis:  basis.Isometric,
		Board: &Board{
			Odd:  Color(palette["nord-lightgray"]),
			Even: Color(palette["nord-white"]),
		},
	}
}

// Load reads a scene in YAML format.  Fields missing from the input keep
// the values from [Default]; use "board: null" to omit the checkerboard.
func Load(r io.Reader) (*Scene, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadFile reads a scene from the named file.
func LoadFile(fileName string) (*Scene, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return s, nil
}

// Encode writes the scene to w in YAML format.
func (s *Scene) Encode(w io.Writer) (err error) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer func() {
		if cerr := enc.Close(); err == nil {
			err = cerr
		}
	}()
	return enc.Encode(s)
}

// Validate checks that the scene can be drawn.
func (s *Scene) Validate() error {
	if !(s.Width > 0 && s.Height > 0) {
		return fmt.Errorf("%w: canvas size %gx%g", ErrInvalid, s.Width, s.Height)
	}
	if !(s.Size > 0) {
		return fmt.Errorf("%w: tile size %g", ErrInvalid, s.Size)
	}
	if !s.Basis.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalid, s.Basis)
	}
	for i, c := range s.Columns {
		if c.Height < 0 || math.IsNaN(c.Height) {
			return fmt.Errorf("%w: column %d has height %g", ErrInvalid, i, c.Height)
		}
	}
	for i, r := range s.Routes {
		if !(r.Width > 0) {
			return fmt.Errorf("%w: route %d has width %g", ErrInvalid, i, r.Width)
		}
	}
	if s.Wave != nil && !(s.Wave.Wavelength > 0) {
		return fmt.Errorf("%w: wavelength %g", ErrInvalid, s.Wave.Wavelength)
	}
	return nil
}

// Animated reports whether the scene changes over time.
func (s *Scene) Animated() bool {
	return s.Wave != nil && s.Wave.Amplitude != 0
}

// ColumnsAt returns the columns of the scene as they appear at time t.
func (s *Scene) ColumnsAt(t time.Duration) []lattice.Column {
	res := make([]lattice.Column, len(s.Columns))
	for i, c := range s.Columns {
		h := c.Height
		if s.Wave != nil {
			phase := 2*math.Pi*float64(c.X+c.Y)/s.Wave.Wavelength - s.Wave.Speed*t.Seconds()
			h = max(h+s.Wave.Amplitude*math.Sin(phase), 0)
		}

		left, right := shade(c.Top, 0.8), shade(c.Top, 0.6)
		if c.Left != nil {
			left = *c.Left
		}
		if c.Right != nil {
			right = *c.Right
		}

		res[i] = lattice.Column{
			At:     vec.Vec2{X: float64(c.X), Y: float64(c.Y)},
			Height: h,
			Top:    c.Top,
			Left:   left,
			Right:  right,
		}
	}
	return res
}

// Render draws the scene at time t.  The background comes first, then
// the board, the grid, the highlighted tiles, the routes and finally the
// columns.
func (s *Scene) Render(dst lattice.Surface, t time.Duration) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if s.Background != nil {
		if err := fillCanvas(dst, *s.Background, s.Width, s.Height); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	if s.Board != nil {
		err := lattice.DrawBoard(dst, s.Size, s.Width, s.Height, s.Board.Odd, s.Board.Even, s.Basis)
		if err != nil {
			return fmt.Errorf("board: %w", err)
		}
	}
	if s.Grid != nil {
		err := lattice.DrawGrid(dst, s.Size, s.Width, s.Height, *s.Grid, s.Basis)
		if err != nil {
			return fmt.Errorf("grid: %w", err)
		}
	}
	for _, tile := range s.Tiles {
		err := lattice.FillTile(dst, lattice.Tile{X: tile.X, Y: tile.Y}, tile.Color, s.Size, s.Basis)
		if err != nil {
			return err
		}
	}
	for i := range s.Routes {
		if err := drawRoute(dst, &s.Routes[i], s.Size, s.Basis); err != nil {
			return fmt.Errorf("route %d: %w", i, err)
		}
	}
	if len(s.Columns) > 0 {
		if err := lattice.DrawColumns(dst, s.ColumnsAt(t), s.Size, s.Basis); err != nil {
			return err
		}
	}

	lattice.Logger().Debug("scene rendered",
		"basis", s.Basis, "t", t, "columns", len(s.Columns))
	return nil
}

func fillCanvas(dst lattice.Surface, col color.Color, w, h float64) error {
	dst.SetFillColor(col)
	dst.BeginPath()
	dst.MoveTo(vec.Vec2{})
	dst.LineTo(vec.Vec2{X: w})
	dst.LineTo(vec.Vec2{X: w, Y: h})
	dst.LineTo(vec.Vec2{Y: h})
	dst.ClosePath()
	return dst.Fill()
}
