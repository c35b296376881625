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
	"image"
	"image/color"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/funcgraph/raster"
)

// paintThreshold is the minimum pixel coverage for a pixel to be painted.
// Plots are not antialiased.
const paintThreshold = 0.5

// Role says which part of a plot a stroke belongs to.
type Role uint8

const (
	RoleAxis Role = iota
	RoleTick
	RoleCurve
)

func (r Role) String() string {
	switch r {
	case RoleAxis:
		return "axis"
	case RoleTick:
		return "tick"
	case RoleCurve:
		return "curve"
	default:
		return "unknown"
	}
}

// Style describes how a line is stroked.
type Style struct {
	Color color.RGBA
	Width float64 // in pixels
	Cap   graphics.LineCapStyle
}

// Stroke is one entry in the display list of a plot.  A and B are device
// coordinates with y growing downwards.
type Stroke struct {
	A, B  vec.Vec2
	Style Style
	Role  Role
}

// Canvas is the pixel buffer a plot is drawn on.  Every stroke painted on
// the canvas is also recorded in a display list.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img     *image.Paletted
	r       *raster.Rasteriser
	strokes []Stroke
	dirty   image.Rectangle // area changed since the last takeDirty
}

// NewCanvas allocates a canvas.  All pixels are set to the first colour of
// the palette.
func NewCanvas(width, height int, palette color.Palette) *Canvas {
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Canvas{
		img: image.NewPaletted(image.Rect(0, 0, width, height), palette),
		r:   raster.NewRasteriser(clip),
	}
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Image returns the underlying image.  The image is shared with the
// canvas, later drawing operations modify it.
func (c *Canvas) Image() *image.Paletted { return c.img }

// Strokes returns the display list.
func (c *Canvas) Strokes() []Stroke { return c.strokes }

// Snapshot returns an independent copy of the current canvas image.
func (c *Canvas) Snapshot() *image.Paletted {
	return clonePaletted(c.img)
}

// Segment strokes a line between the pixels a and b.
//
// For odd line widths, the line runs through the pixel centres; for even
// widths it runs along the top left pixel corners.  This way horizontal
// and vertical lines cover exactly Width rows or columns of pixels.
func (c *Canvas) Segment(a, b image.Point, st Style, role Role) error {
	o := lineOffset(st.Width)
	pa := vec.Vec2{X: float64(a.X) + o, Y: float64(a.Y) + o}
	pb := vec.Vec2{X: float64(b.X) + o, Y: float64(b.Y) + o}
	return c.Line(pa, pb, st, role)
}

// Line strokes the line from a to b, given in device coordinates.
// If the coordinates are too large, [raster.ErrCoordinateRange] is
// returned and the canvas is not changed.
func (c *Canvas) Line(a, b vec.Vec2, st Style, role Role) error {
	c.r.Width = st.Width
	c.r.Cap = st.Cap
	if err := c.r.StrokeLine(a, b, c.paint(st.Color)); err != nil {
		return err
	}
	c.strokes = append(c.strokes, Stroke{A: a, B: b, Style: st, Role: role})
	return nil
}

// Fill paints the inside of p, using the nonzero winding rule.  Fills are
// decoration and are not recorded in the display list.
func (c *Canvas) Fill(p *path.Data, col color.RGBA) error {
	c.r.Reset(c.r.Clip)
	return c.r.Fill(p, c.paint(col))
}

// outline strokes p without recording it in the display list.
func (c *Canvas) outline(p *path.Data, st Style) error {
	c.r.Width = st.Width
	c.r.Cap = st.Cap
	return c.r.Stroke(p, c.paint(st.Color))
}

// paint returns a rasteriser callback which sets all pixels with enough
// coverage to col.
func (c *Canvas) paint(col color.RGBA) func(y, xMin int, coverage []float32) {
	idx := uint8(c.colorIndex(col))
	return func(y, xMin int, coverage []float32) {
		row := c.img.Pix[c.img.PixOffset(xMin, y):]
		lo, hi := -1, -1
		for i, v := range coverage {
			if v < paintThreshold {
				continue
			}
			row[i] = idx
			if lo < 0 {
				lo = i
			}
			hi = i
		}
		if lo >= 0 {
			c.dirty = c.dirty.Union(image.Rect(xMin+lo, y, xMin+hi+1, y+1))
		}
	}
}

// colorIndex returns the palette index of col, or of the closest palette
// entry if col is not in the palette.
func (c *Canvas) colorIndex(col color.RGBA) int {
	for i, p := range c.img.Palette {
		if p == color.Color(col) {
			return i
		}
	}
	return c.img.Palette.Index(col)
}

// takeDirty returns the area changed since the last call and resets it.
func (c *Canvas) takeDirty() image.Rectangle {
	r := c.dirty
	c.dirty = image.Rectangle{}
	return r
}

// markDirty records that r was changed outside of the rasteriser.
func (c *Canvas) markDirty(r image.Rectangle) {
	c.dirty = c.dirty.Union(r.Intersect(c.img.Rect))
}

func clonePaletted(img *image.Paletted) *image.Paletted {
	return &image.Paletted{
		Pix:     slices.Clone(img.Pix),
		Stride:  img.Stride,
		Rect:    img.Rect,
		Palette: img.Palette,
	}
}
