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
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/funcgraph"
)

func plot(t *testing.T, animated bool) *funcgraph.Result {
	t.Helper()
	res, err := funcgraph.Plot(funcgraph.Many{"x*x/10", "sin(x)"}, &funcgraph.Options{
		Width:      60,
		Height:     40,
		Graduation: 5,
		Animated:   animated,
	})
	require.NoError(t, err)
	return res
}

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

// assertScaledCopy checks that img is the canvas, enlarged by scale.
func assertScaledCopy(t *testing.T, canvas *image.Paletted, img image.Image, scale int) {
	t.Helper()
	cb := canvas.Bounds()
	require.Equal(t, image.Rect(0, 0, cb.Dx()*scale, cb.Dy()*scale), img.Bounds())
	for y := 0; y < cb.Dy(); y++ {
		for x := 0; x < cb.Dx(); x++ {
			want := canvas.At(x, y)
			for _, d := range []image.Point{{0, 0}, {scale - 1, scale - 1}} {
				got := img.At(x*scale+d.X, y*scale+d.Y)
				if !sameColor(want, got) {
					t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got, want)
				}
			}
		}
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"png":  PNG,
		"PNG":  PNG,
		".gif": GIF,
		"bmp":  BMP,
		"tiff": TIFF,
		"tif":  TIFF,
		"pdf":  PDF,
		"":     Auto,
		"auto": Auto,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("jpeg")
	assert.Error(t, err)
}

func TestFormatFor(t *testing.T) {
	f, ok := FormatFor("out/graph.TIF")
	assert.True(t, ok)
	assert.Equal(t, TIFF, f)

	_, ok = FormatFor("graph")
	assert.False(t, ok)
	_, ok = FormatFor("graph.jpg")
	assert.False(t, ok)

	assert.Equal(t, ".pdf", PDF.Extension())
	assert.Equal(t, "", Auto.Extension())
	assert.Equal(t, "gif", GIF.String())
}

func TestRasterFormats(t *testing.T) {
	res := plot(t, false)
	decoders := map[Format]func(*bytes.Buffer) (image.Image, error){
		PNG: func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		GIF: func(b *bytes.Buffer) (image.Image, error) { return gif.Decode(b) },
		BMP: func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
		TIFF: func(b *bytes.Buffer) (image.Image, error) {
			return tiff.Decode(bytes.NewReader(b.Bytes()))
		},
	}
	for format, decode := range decoders {
		for _, scale := range []int{1, 3} {
			t.Run(fmt.Sprintf("%s_%d", format, scale), func(t *testing.T) {
				buf := &Buffer{Format: format, Scale: scale}
				require.NoError(t, res.Save(buf))
				img, err := decode(&buf.Buffer)
				require.NoError(t, err)
				assertScaledCopy(t, res.Canvas, img, scale)
			})
		}
	}
}

func TestAnimatedGIF(t *testing.T) {
	res := plot(t, true)
	require.NotEmpty(t, res.Animation.Frames)

	buf := &Buffer{}
	require.NoError(t, res.Save(buf))

	g, err := gif.DecodeAll(&buf.Buffer)
	require.NoError(t, err)
	require.Len(t, g.Image, len(res.Animation.Frames))
	assert.Equal(t, 0, g.LoopCount)
	for _, d := range g.Delay {
		assert.Equal(t, 2, d)
	}
	assertScaledCopy(t, res.Canvas, g.Image[len(g.Image)-1], 1)
}

func TestAnimationNeedsGIF(t *testing.T) {
	res := plot(t, true)
	for _, format := range []Format{PNG, BMP, TIFF, PDF} {
		err := res.Save(&Buffer{Format: format})
		assert.ErrorIs(t, err, ErrAnimation, format.String())
	}
}

func TestFileNames(t *testing.T) {
	dir := t.TempDir()
	static := plot(t, false)
	animated := plot(t, true)

	cases := []struct {
		file   File
		res    *funcgraph.Result
		name   string
		format Format
	}{
		{File{Path: filepath.Join(dir, "graph")}, static, "graph.png", PNG},
		{File{Path: filepath.Join(dir, "graph")}, animated, "graph.gif", GIF},
		{File{Path: filepath.Join(dir, "graph"), Format: BMP}, static, "graph.bmp", BMP},
		{File{Path: filepath.Join(dir, "plot.tiff")}, static, "plot.tiff", TIFF},
		{File{Path: filepath.Join(dir, "plot.out"), Format: GIF}, static, "plot.out", GIF},
		{File{Path: filepath.Join(dir, "vector.pdf")}, static, "vector.pdf", PDF},
	}
	for _, tc := range cases {
		name, format := tc.file.Name(tc.res)
		assert.Equal(t, filepath.Join(dir, tc.name), name)
		assert.Equal(t, tc.format, format)

		require.NoError(t, tc.res.Save(&tc.file))
		info, err := os.Stat(name)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestPDF(t *testing.T) {
	res := plot(t, false)

	buf := &Buffer{Format: PDF, Scale: 2}
	require.NoError(t, res.Save(buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	name := filepath.Join(t.TempDir(), "graph.pdf")
	require.NoError(t, res.Save(&File{Path: name}))
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestBufferReset(t *testing.T) {
	res := plot(t, false)
	buf := &Buffer{}
	require.NoError(t, res.Save(buf))
	n := buf.Len()
	require.NoError(t, res.Save(buf))
	assert.Equal(t, n, buf.Len())
}

func TestCheckScale(t *testing.T) {
	cases := []struct {
		w, h, scale int
		ok          bool
	}{
		{500, 500, 0, true},
		{500, 500, 1, true},
		{500, 500, 32, true},
		{500, 500, 33, false},
		{MaxScaledSize, 10, 1, true},
		{MaxScaledSize + 1, 10, 1, false},
		{5000, 5000, 200, false},
		{10, 10, -1, false},
	}
	for _, tc := range cases {
		err := CheckScale(tc.w, tc.h, tc.scale)
		if tc.ok {
			assert.NoError(t, err, "%dx%d scale %d", tc.w, tc.h, tc.scale)
		} else {
			assert.ErrorIs(t, err, ErrScale, "%dx%d scale %d", tc.w, tc.h, tc.scale)
		}
	}
}

// TestScaleTooLarge makes sure that an oversized output image is
// refused before any pixels are allocated.
func TestScaleTooLarge(t *testing.T) {
	res := plot(t, false)
	for _, format := range []Format{PNG, GIF, BMP, TIFF, PDF} {
		buf := &Buffer{Format: format, Scale: 1000}
		err := res.Save(buf)
		assert.ErrorIs(t, err, ErrScale, format.String())
		assert.Zero(t, buf.Len(), format.String())
	}

	name := filepath.Join(t.TempDir(), "big")
	err := res.Save(&File{Path: name, Format: PDF, Scale: 1000})
	assert.ErrorIs(t, err, ErrScale)
}
