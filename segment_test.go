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

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/funcgraph/raster"
)

func pt(kind Kind, x, y int) Sample {
	return Sample{Kind: kind, P: image.Pt(x, y)}
}

func TestClassify(t *testing.T) {
	const height = 500
	cases := []struct {
		name string
		a, b Sample
		want Decision
	}{
		{"continuous", pt(Point, 10, 100), pt(Point, 11, 103), Draw},
		{"steep", pt(Point, 10, 0), pt(Point, 11, 499), Draw},
		{"jump", pt(Point, 10, 10), pt(Point, 11, 600), SkipJump},
		{"jump down", pt(Point, 10, 600), pt(Point, 11, -10), SkipJump},
		{"failed left", pt(Failed, 10, 0), pt(Point, 11, 100), SkipGap},
		{"failed right", pt(Point, 10, 100), pt(Failed, 11, 0), SkipGap},
		{"overflow", pt(Point, 10, 100), pt(Overflow, 11, 0), SkipGap},
		{"exit top", pt(Point, 10, 5), pt(OutOfRange, 11, -20), Clip},
		{"enter bottom", pt(OutOfRange, 10, 510), pt(Point, 11, 490), Clip},
		{"exit across pole", pt(Point, 10, 5), pt(OutOfRange, 11, 900), SkipJump},
		{"both outside", pt(OutOfRange, 10, -5), pt(OutOfRange, 11, -20), SkipGap},
		{"unchecked outside", pt(Point, 10, 400), pt(Point, 11, 520), Clip},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.a, tc.b, height)
			if got != tc.want {
				t.Errorf("Classify = %s, want %s", got, tc.want)
			}
			wantDrawn := tc.want == Draw || tc.want == Clip
			if got.Drawn() != wantDrawn {
				t.Errorf("%s.Drawn() = %t", got, got.Drawn())
			}
		})
	}
}

func newTestCanvas(w, h int) *Canvas {
	pal := color.Palette{background, axisColor, DefaultColors[0], DefaultColors[1]}
	return NewCanvas(w, h, pal)
}

func TestRenderHorizontalLine(t *testing.T) {
	res, err := Plot(Single("0"), &Options{Width: 200, Height: 200})
	if err != nil {
		t.Fatal(err)
	}

	blue := ColorFor(0)
	for x := range 200 {
		if res.Canvas.At(x, 100) != color.Color(blue) {
			t.Fatalf("pixel (%d, 100) is %v, want %v", x, res.Canvas.At(x, 100), blue)
		}
	}
	if n := countColor(res.Canvas, image.Rect(0, 0, 200, 100), blue); n != 0 {
		t.Errorf("%d curve pixels above the line", n)
	}
	if n := countColor(res.Canvas, image.Rect(0, 101, 200, 200), blue); n != 0 {
		t.Errorf("%d curve pixels below the line", n)
	}

	cs := res.Curves[0]
	if cs.Drawn != 199 || cs.Gaps != 0 || cs.Jumps != 0 || cs.Failed != 0 {
		t.Errorf("unexpected stats %+v", cs)
	}
}

// TestReciprocalNotConnected checks that the two branches of 1/x are not
// joined across the pole.
func TestReciprocalNotConnected(t *testing.T) {
	for _, unbounded := range []bool{false, true} {
		res, err := Plot(Single("1/x"), &Options{
			Width: 500, Height: 500, Graduation: 10, Unbounded: unbounded,
		})
		if err != nil {
			t.Fatal(err)
		}
		if res.Curves[0].Failed != 1 {
			t.Errorf("unbounded=%t: %d failed samples, want 1", unbounded, res.Curves[0].Failed)
		}
		for _, s := range res.Strokes {
			if s.Role != RoleCurve {
				continue
			}
			lo, hi := min(s.A.X, s.B.X), max(s.A.X, s.B.X)
			if lo <= 250 && hi >= 250 {
				t.Errorf("unbounded=%t: segment %v-%v touches the pole column", unbounded, s.A, s.B)
			}
		}
	}
}

// TestTanJumpsSkipped uses unbounded samples, so that the branches of tan
// next to a pole are both points and only the jump rule separates them.
func TestTanJumpsSkipped(t *testing.T) {
	res, err := Plot(Single("tan(x)"), &Options{
		Width: 500, Height: 500, Graduation: 10, Unbounded: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	cs := res.Curves[0]
	if cs.Jumps == 0 {
		t.Error("no jumps detected")
	}
	for _, s := range res.Strokes {
		if s.Role == RoleCurve && abs(s.A.Y-s.B.Y) > 500 {
			t.Errorf("segment %v-%v crosses an asymptote", s.A, s.B)
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestRenderSkipsUnrasterisable(t *testing.T) {
	c := newTestCanvas(50, 50)
	huge := raster.MaxCoordinate + 10
	samples := []Sample{
		pt(Point, 0, 20),
		pt(Point, 1, 21),
		pt(Point, 2, huge),
		pt(Point, 3, huge),
		pt(Point, 4, 22),
		pt(Point, 5, 23),
	}
	rec := NewFrameRecorder(c)
	r := &Renderer{Frames: rec}
	st := r.Render(c, samples, Style{Color: ColorFor(0), Width: 1, Cap: graphics.LineCapRound})

	if st.Errors != 1 {
		t.Errorf("%d errors, want 1", st.Errors)
	}
	if st.Jumps != 2 {
		t.Errorf("%d jumps, want 2", st.Jumps)
	}
	if st.Drawn != 2 || rec.Len() != 2 {
		t.Errorf("drawn %d, frames %d, want 2", st.Drawn, rec.Len())
	}
	if len(c.Strokes()) != 2 {
		t.Errorf("%d strokes recorded, want 2", len(c.Strokes()))
	}
}

func TestSegmentWidth(t *testing.T) {
	for _, w := range []int{1, 2, 3, 4, 5} {
		c := newTestCanvas(40, 40)
		st := Style{Color: ColorFor(1), Width: float64(w), Cap: graphics.LineCapButt}
		if err := c.Segment(image.Pt(5, 20), image.Pt(30, 20), st, RoleCurve); err != nil {
			t.Fatal(err)
		}
		if n := countColor(c.Image(), image.Rect(10, 0, 11, 40), ColorFor(1)); n != w {
			t.Errorf("width %d: line covers %d rows", w, n)
		}
		if c.Image().At(10, 20) != color.Color(ColorFor(1)) {
			t.Errorf("width %d: line misses its centre row", w)
		}
	}
}
