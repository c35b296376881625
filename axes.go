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
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// DrawAxes paints the two coordinate axes through the centre of the
// canvas.  If graduation is positive, tick marks are added along both
// axes, one per domain unit.  Ticks are omitted when they would be closer
// together than a tenth of both the canvas width and height.
func DrawAxes(c *Canvas, m Mapper, graduation int) error {
	w, h := c.Width(), c.Height()

	hAxis := Style{Color: axisColor, Width: float64(max(h/100, 1)), Cap: graphics.LineCapButt}
	o := lineOffset(hAxis.Width)
	y := float64(m.Center.Y) + o
	if err := c.Line(vec.Vec2{X: 0, Y: y}, vec.Vec2{X: float64(w), Y: y}, hAxis, RoleAxis); err != nil {
		return err
	}

	vAxis := Style{Color: axisColor, Width: float64(max(w/100, 1)), Cap: graphics.LineCapButt}
	o = lineOffset(vAxis.Width)
	x := float64(m.Center.X) + o
	if err := c.Line(vec.Vec2{X: x, Y: 0}, vec.Vec2{X: x, Y: float64(h)}, vAxis, RoleAxis); err != nil {
		return err
	}

	if graduation <= 0 {
		return nil
	}
	if float64(graduation) > float64(h)/10 && float64(graduation) > float64(w)/10 {
		return nil
	}

	// ticks on the horizontal axis
	step := int(math.RoundToEven(float64(m.Center.X) / float64(graduation)))
	if step > 0 {
		half := w / 50
		st := Style{Color: axisColor, Width: float64(max(w/250, 1)), Cap: graphics.LineCapButt}
		for px := firstTick(m.Center.X, step); px < w; px += step {
			a, b := tickEnds(px, m.Center.Y, half, st.Width, true)
			if err := c.Line(a, b, st, RoleTick); err != nil {
				return err
			}
		}
	}

	// ticks on the vertical axis
	step = int(math.RoundToEven(float64(m.Center.Y) / float64(graduation)))
	if step > 0 {
		half := h / 50
		st := Style{Color: axisColor, Width: float64(max(h/250, 1)), Cap: graphics.LineCapButt}
		for py := firstTick(m.Center.Y, step); py < h; py += step {
			a, b := tickEnds(py, m.Center.X, half, st.Width, false)
			if err := c.Line(a, b, st, RoleTick); err != nil {
				return err
			}
		}
	}
	return nil
}

// firstTick returns the smallest non-negative position which differs from
// the origin by a multiple of step.
func firstTick(origin, step int) int {
	return origin % step
}

// tickEnds returns the end points of the tick at position pos along an
// axis located at axisPos.  The tick extends half pixels to both sides of
// the axis.
func tickEnds(pos, axisPos, half int, width float64, vertical bool) (vec.Vec2, vec.Vec2) {
	o := lineOffset(width)
	p := float64(pos) + o
	lo := float64(axisPos-half) + 0.5
	hi := float64(axisPos+half) + 0.5
	if vertical {
		return vec.Vec2{X: p, Y: lo}, vec.Vec2{X: p, Y: hi}
	}
	return vec.Vec2{X: lo, Y: p}, vec.Vec2{X: hi, Y: p}
}

// lineOffset gives the offset from a pixel's top left corner to the line
// position, for a line of the given width.
func lineOffset(width float64) float64 {
	if math.Mod(math.Round(width), 2) == 1 {
		return 0.5
	}
	return 0
}
