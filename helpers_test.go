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
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/funcgraph/testcases"
)

// optionsFor converts a test case into plot arguments.
func optionsFor(t *testing.T, tc testcases.TestCase) (Expressions, *Options) {
	t.Helper()
	curves := make(Colored, len(tc.Curves))
	for i, cv := range tc.Curves {
		curves[i].Expr = cv.Expr
		if cv.Color != "" {
			col, err := ParseColor(cv.Color)
			if err != nil {
				t.Fatal(err)
			}
			curves[i].Color = col
		}
	}
	opt := &Options{
		Width:      tc.Width,
		Height:     tc.Height,
		Graduation: tc.Graduation,
		Animated:   tc.Animated,
		Unbounded:  tc.Unbounded,
		Legend:     tc.Legend,
	}
	return curves, opt
}

// comparePaletted checks that two images have the same size and the same
// colour at every pixel.  On failure, a diff image is written to the
// debug directory.
func comparePaletted(name string, expected, actual *image.Paletted) error {
	if expected.Bounds() != actual.Bounds() {
		return fmt.Errorf("bounds %v, want %v", actual.Bounds(), expected.Bounds())
	}

	b := expected.Bounds()
	count := 0
	first := image.Pt(-1, -1)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if expected.At(x, y) != actual.At(x, y) {
				if count == 0 {
					first = image.Pt(x, y)
				}
				count++
			}
		}
	}
	if count > 0 {
		_ = writeDiffImage(name, expected, actual)
		return fmt.Errorf("%d pixels differ, first at %v", count, first)
	}
	return nil
}

func writeDiffImage(name string, expected, actual *image.Paletted) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	// Create 3-panel image: actual (left), diff (middle), reference (right)
	b := expected.Bounds()
	w, h := b.Dx(), b.Dy()
	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			a := actual.At(b.Min.X+x, b.Min.Y+y)
			e := expected.At(b.Min.X+x, b.Min.Y+y)
			img.Set(x, y, a)
			if a != e {
				img.Set(x+w, y, color.RGBA{R: 255, A: 255})
			} else {
				img.Set(x+w, y, color.RGBA{A: 255})
			}
			img.Set(x+w*2, y, e)
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// countColor returns the number of pixels of colour c within r.
func countColor(img *image.Paletted, r image.Rectangle, c color.RGBA) int {
	n := 0
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.At(x, y) == color.Color(c) {
				n++
			}
		}
	}
	return n
}
