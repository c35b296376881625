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

package output

import (
	imgcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/funcgraph"
)

// writePDF stores the display list of r as a single page PDF file.  One
// pixel of the canvas becomes scale PDF points.  Consecutive strokes of
// the same style which join up are combined into one path.
func writePDF(fileName string, r *funcgraph.Result, scale int) error {
	if r.Animation != nil {
		return ErrAnimation
	}
	if err := CheckScale(r.Canvas.Rect.Dx(), r.Canvas.Rect.Dy(), scale); err != nil {
		return err
	}
	s := float64(max(scale, 1))
	b := r.Canvas.Bounds()
	w := float64(b.Dx()) * s
	h := float64(b.Dy()) * s

	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(deviceColor(r.Canvas.Palette[0]))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left; the canvas has its origin top-left.
	page.Transform(matrix.Matrix{s, 0, 0, -s, 0, h})
	page.SetLineJoin(graphics.LineJoinRound)

	var prev *funcgraph.Stroke
	for i := range r.Strokes {
		st := &r.Strokes[i]
		if prev != nil && prev.Style == st.Style && prev.B == st.A {
			page.LineTo(st.B.X, st.B.Y)
			prev = st
			continue
		}
		if prev != nil {
			page.Stroke()
		}
		if prev == nil || prev.Style != st.Style {
			page.SetStrokeColor(deviceColor(st.Style.Color))
			page.SetLineWidth(st.Style.Width)
			page.SetLineCap(st.Style.Cap)
		}
		page.MoveTo(st.A.X, st.A.Y)
		page.LineTo(st.B.X, st.B.Y)
		prev = st
	}
	if prev != nil {
		page.Stroke()
	}

	return page.Close()
}

func deviceColor(c imgcolor.Color) color.Color {
	rgba := imgcolor.RGBAModel.Convert(c).(imgcolor.RGBA)
	return color.DeviceRGB(float64(rgba.R)/255, float64(rgba.G)/255, float64(rgba.B)/255)
}
