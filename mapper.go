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
	"math"
)

// Mapper converts between the mathematical coordinate system of a plot and
// canvas pixels.  The origin is at Center and the y axis points up.  One
// unit of the domain corresponds to Scale pixels on both axes.
type Mapper struct {
	Center image.Point
	Scale  int
}

// NewMapper returns the mapper for a canvas of the given size.
// A graduation of 0 means one unit per pixel.
func NewMapper(width, height, graduation int) Mapper {
	center := image.Point{
		X: int(math.RoundToEven(float64(width) / 2)),
		Y: int(math.RoundToEven(float64(height) / 2)),
	}
	return Mapper{Center: center, Scale: ScaleFor(center, graduation)}
}

// ScaleFor returns the number of pixels per domain unit: the horizontal
// distance from the centre to the edge, divided by the graduation and
// rounded.  The result is at least 1.
func ScaleFor(center image.Point, graduation int) int {
	if graduation <= 0 {
		return 1
	}
	a := int(math.RoundToEven(float64(center.X) / float64(graduation)))
	return max(a, 1)
}

// ToPixel maps the point (x, y), given in pixel units relative to the
// origin, to canvas pixel coordinates.  Halves are rounded to even.
// The results are only meaningful when both coordinates are within
// the range of int.
func (m Mapper) ToPixel(x, y float64) (px, py int) {
	fx, fy := m.toDevice(x, y)
	return int(fx), int(fy)
}

func (m Mapper) toDevice(x, y float64) (fx, fy float64) {
	fx = math.RoundToEven(float64(m.Center.X) + x)
	fy = math.RoundToEven(float64(m.Center.Y) - y)
	return fx, fy
}

// Domain returns the domain value for the pixel column col, where column
// 0 is the vertical axis.
func (m Mapper) Domain(col int) float64 {
	return float64(col) / float64(m.scale())
}

// scale returns Scale, treating the zero value as 1.
func (m Mapper) scale() int {
	return max(m.Scale, 1)
}
