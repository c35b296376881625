// seehuhn.de/go/funcgraph - plot the graphs of real functions
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

package funcgraph

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// DefaultColors is the palette used for curves without an explicit colour.
// Expressions are assigned colours in order, and the palette repeats when
// there are more expressions than colours.
var DefaultColors = []color.RGBA{
	{0x1C, 0x61, 0xED, 0xFF}, // blue
	{0xF8, 0x10, 0x10, 0xFF}, // red
	{0x2C, 0xD7, 0x48, 0xFF}, // green
	{0xEB, 0x5D, 0xDE, 0xFF}, // pink
	{0x00, 0x00, 0x00, 0xFF}, // black
	{0xF1, 0xB4, 0x05, 0xFF}, // light brown
	{0x97, 0x71, 0x03, 0xFF}, // dark brown
	{0x0D, 0x4A, 0xC6, 0xFF}, // dark blue
	{0x26, 0x90, 0xE4, 0xFF}, // light blue
	{0xF1, 0xF9, 0x00, 0xFF}, // yellow
}

var (
	background = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	axisColor  = color.RGBA{0x00, 0x00, 0x00, 0xFF}
)

// ColorFor returns the default colour of the i-th expression.
func ColorFor(i int) color.RGBA {
	return DefaultColors[i%len(DefaultColors)]
}

// ParseColor parses a colour in the form #rgb or #rrggbb.
func ParseColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	if len(hex) == 3 {
		r := uint8(v>>8) & 0xF
		g := uint8(v>>4) & 0xF
		b := uint8(v) & 0xF
		return color.RGBA{r * 0x11, g * 0x11, b * 0x11, 0xFF}, nil
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xFF}, nil
}

// FormatColor returns the #rrggbb form of c.
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// buildPalette returns the canvas palette: the background, the axis colour
// and then every distinct curve colour.
func buildPalette(curves []color.RGBA) (color.Palette, error) {
	pal := color.Palette{background, axisColor}
	seen := map[color.RGBA]bool{background: true, axisColor: true}
	for _, c := range curves {
		if seen[c] {
			continue
		}
		if len(pal) == 256 {
			return nil, fmt.Errorf("more than %d distinct colours", 254)
		}
		seen[c] = true
		pal = append(pal, c)
	}
	return pal, nil
}
