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

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// legendEntry is one line of the legend.
type legendEntry struct {
	Label string
	Color color.RGBA
}

const (
	legendMargin = 4  // distance of the frame from the canvas edge
	legendPad    = 3  // distance of the contents from the frame
	legendRadius = 4  // corner radius of the frame
	legendSwatch = 12 // width of the colour sample
	legendGap    = 4
)

// drawLegend lists the expressions in a framed box in the top left corner
// of the canvas, each next to a sample of its curve colour.  Entries which
// do not fit on the canvas are left out.
func drawLegend(c *Canvas, entries []legendEntry) error {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()

	n := min(len(entries), (c.Height()-2*(legendMargin+legendPad))/lineHeight)
	if n <= 0 {
		return nil
	}
	entries = entries[:n]

	textX := legendMargin + legendPad + legendSwatch + legendGap
	textWidth := 0
	for _, e := range entries {
		textWidth = max(textWidth, font.MeasureString(face, e.Label).Ceil())
	}
	box := image.Rect(legendMargin, legendMargin,
		textX+textWidth+legendPad, legendMargin+2*legendPad+n*lineHeight)

	// The frame runs through the centres of the outermost box pixels.
	frame := roundedRect(float64(box.Min.X)+0.5, float64(box.Min.Y)+0.5,
		float64(box.Max.X)-0.5, float64(box.Max.Y)-0.5, legendRadius)
	if err := c.Fill(frame, background); err != nil {
		return err
	}
	border := Style{Color: axisColor, Width: 1, Cap: graphics.LineCapRound}
	if err := c.outline(frame, border); err != nil {
		return err
	}

	img := c.Image()
	y := box.Min.Y + legendPad
	for _, e := range entries {
		mid := float64(y + lineHeight/2)
		swatch := pill(float64(box.Min.X+legendPad), mid, legendSwatch, 4)
		if err := c.Fill(swatch, e.Color); err != nil {
			return err
		}

		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(e.Color),
			Face: face,
			Dot:  fixed.P(textX, y+ascent),
		}
		tw := d.MeasureString(e.Label).Ceil()
		d.DrawString(e.Label)
		c.markDirty(image.Rect(textX, y, textX+tw, y+lineHeight))

		y += lineHeight
	}
	return nil
}

// roundedRect returns the outline of the rectangle [x0,x1]×[y0,y1] with
// corners rounded to radius r.
func roundedRect(x0, y0, x1, y1, r float64) *path.Data {
	r = min(r, (x1-x0)/2, (y1-y0)/2)
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0 + r, Y: y0}).
		LineTo(vec.Vec2{X: x1 - r, Y: y0}).
		QuadTo(vec.Vec2{X: x1, Y: y0}, vec.Vec2{X: x1, Y: y0 + r}).
		LineTo(vec.Vec2{X: x1, Y: y1 - r}).
		QuadTo(vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x1 - r, Y: y1}).
		LineTo(vec.Vec2{X: x0 + r, Y: y1}).
		QuadTo(vec.Vec2{X: x0, Y: y1}, vec.Vec2{X: x0, Y: y1 - r}).
		LineTo(vec.Vec2{X: x0, Y: y0 + r}).
		QuadTo(vec.Vec2{X: x0, Y: y0}, vec.Vec2{X: x0 + r, Y: y0}).
		Close()
}

// pill returns a bar of the given length and thickness with round ends,
// starting at x and centred vertically on y.
func pill(x, y, length, thickness float64) *path.Data {
	// control point distance for a quarter circle
	const k = 0.5522847498
	r := thickness / 2
	kr := k * r
	left, right := x+r, x+length-r
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: left, Y: y - r}).
		LineTo(vec.Vec2{X: right, Y: y - r}).
		CubeTo(vec.Vec2{X: right + kr, Y: y - r}, vec.Vec2{X: right + r, Y: y - kr}, vec.Vec2{X: right + r, Y: y}).
		CubeTo(vec.Vec2{X: right + r, Y: y + kr}, vec.Vec2{X: right + kr, Y: y + r}, vec.Vec2{X: right, Y: y + r}).
		LineTo(vec.Vec2{X: left, Y: y + r}).
		CubeTo(vec.Vec2{X: left - kr, Y: y + r}, vec.Vec2{X: left - r, Y: y + kr}, vec.Vec2{X: left - r, Y: y}).
		CubeTo(vec.Vec2{X: left - r, Y: y - kr}, vec.Vec2{X: left - kr, Y: y - r}, vec.Vec2{X: left, Y: y - r}).
		Close()
}
