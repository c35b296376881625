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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func rectPath(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

func TestCanvasFill(t *testing.T) {
	c := newTestCanvas(20, 20)
	if err := c.Fill(rectPath(2, 3, 7, 9), DefaultColors[0]); err != nil {
		t.Fatal(err)
	}
	img := c.Image()
	if n := countColor(img, img.Rect, DefaultColors[0]); n != 30 {
		t.Errorf("%d pixels filled, want 30", n)
	}
	if n := countColor(img, image.Rect(2, 3, 7, 9), DefaultColors[0]); n != 30 {
		t.Errorf("%d pixels filled inside the rectangle, want 30", n)
	}
	if got, want := c.takeDirty(), image.Rect(2, 3, 7, 9); got != want {
		t.Errorf("dirty area %v, want %v", got, want)
	}
	if len(c.Strokes()) != 0 {
		t.Errorf("fill recorded %d strokes", len(c.Strokes()))
	}
}

func TestDrawLegend(t *testing.T) {
	curve, other := DefaultColors[0], DefaultColors[1]
	c := newTestCanvas(200, 100)
	if err := c.Fill(rectPath(0, 0, 200, 100), other); err != nil {
		t.Fatal(err)
	}
	c.takeDirty()

	err := drawLegend(c, []legendEntry{{Label: "x", Color: curve}})
	if err != nil {
		t.Fatal(err)
	}
	img := c.Image()

	// The box spans (4,4)-(33,23): swatch, gap and one 7 pixel wide glyph,
	// each line 13 pixels high.
	for _, p := range []image.Point{{4, 12}, {32, 12}, {16, 4}, {16, 22}} {
		if img.At(p.X, p.Y) != color.Color(axisColor) {
			t.Errorf("pixel %v is not on the frame", p)
		}
	}
	// rounded corners leave the canvas visible
	for _, p := range []image.Point{{4, 4}, {32, 22}, {34, 12}, {0, 0}} {
		if img.At(p.X, p.Y) != color.Color(other) {
			t.Errorf("pixel %v was painted over", p)
		}
	}
	if img.At(20, 18) != color.Color(background) {
		t.Error("box is not filled")
	}
	if img.At(12, 12) != color.Color(curve) {
		t.Error("swatch not drawn")
	}
	if n := countColor(img, image.Rect(23, 7, 30, 20), curve); n == 0 {
		t.Error("label not drawn")
	}
	if got, want := c.takeDirty(), image.Rect(4, 4, 33, 23); got != want {
		t.Errorf("dirty area %v, want %v", got, want)
	}
}

func TestDrawLegendTooSmall(t *testing.T) {
	c := newTestCanvas(100, 15)
	err := drawLegend(c, []legendEntry{{Label: "x", Color: DefaultColors[0]}})
	if err != nil {
		t.Fatal(err)
	}
	if r := c.takeDirty(); !r.Empty() {
		t.Errorf("legend drawn into %v", r)
	}
}
