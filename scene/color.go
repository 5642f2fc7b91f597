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
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an opaque or translucent color which can be written in scene
// files either by name or as "#rrggbb" / "#rrggbbaa".
type Color color.RGBA

// palette holds the colors of the Nord theme, plus a few blues.
var palette = map[string]color.RGBA{
	"nord-black":     {0x2e, 0x34, 0x40, 0xff},
	"nord-red":       {0xbf, 0x61, 0x6a, 0xff},
	"nord-blue":      {0x81, 0xa1, 0xc1, 0xff},
	"nord-lightgray": {0xd8, 0xde, 0xe9, 0xff},
	"nord-darkgray":  {0x4c, 0x56, 0x6a, 0xff},
	"nord-white":     {0xe5, 0xe9, 0xf0, 0xff},
	"nord-yellow":    {0xeb, 0xcb, 0x8b, 0xff},
	"ocean1":         {0x00, 0x96, 0xff, 0xff},
	"ocean2":         {0x00, 0x47, 0xab, 0xff},
	"ocean3":         {0x00, 0x00, 0xff, 0xff},
}

// ParseColor looks up a color by name.  Names from the palette above are
// tried first, then the SVG color keywords.  Hex notation is accepted
// with six or eight digits.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := strings.CutPrefix(name, "#"); ok {
		return parseHex(hex)
	}
	if c, ok := palette[name]; ok {
		return Color(c), nil
	}
	if c, ok := colornames.Map[name]; ok {
		return Color(c), nil
	}
	return Color{}, fmt.Errorf("%w: unknown color %q", ErrInvalid, s)
}

func parseHex(hex string) (Color, error) {
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("%w: malformed color #%s", ErrInvalid, hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: malformed color #%s", ErrInvalid, hex)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	nc := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return Color(color.RGBAModel.Convert(nc).(color.RGBA)), nil
}

// RGBA implements [color.Color].
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA(c).RGBA()
}

// MarshalText implements [encoding.TextMarshaler].  Colors are written
// in hex notation.
func (c Color) MarshalText() ([]byte, error) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	if nc.A == 0xff {
		return fmt.Appendf(nil, "#%02x%02x%02x", nc.R, nc.G, nc.B), nil
	}
	return fmt.Appendf(nil, "#%02x%02x%02x%02x", nc.R, nc.G, nc.B, nc.A), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Color) UnmarshalText(text []byte) error {
	col, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = col
	return nil
}

// shade darkens c by the factor f in [0, 1], keeping its alpha.
func shade(c Color, f float64) Color {
	return Color{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
