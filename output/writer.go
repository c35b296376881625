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
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"io"
	"os"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/funcgraph"
)

// MaxScaledSize is the largest width or height of an output image, after
// scaling.
const MaxScaledSize = 16384

// ErrScale is returned when scaling would make the output image larger
// than MaxScaledSize.
var ErrScale = errors.New("scaled image too large")

// CheckScale verifies that a canvas of the given size can be enlarged by
// the factor scale.
func CheckScale(width, height, scale int) error {
	if scale < 0 {
		return fmt.Errorf("%w: negative scale %d", ErrScale, scale)
	}
	s := max(scale, 1)
	if width > MaxScaledSize/s || height > MaxScaledSize/s {
		return fmt.Errorf("%w: %dx%d scaled by %d exceeds %d pixels",
			ErrScale, width, height, scale, MaxScaledSize)
	}
	return nil
}

// Writer encodes plots to an io.Writer.
type Writer struct {
	W      io.Writer
	Format Format

	// Scale enlarges the image by an integer factor.  Values below 2
	// leave the image unchanged.
	Scale int
}

// Encode implements the [funcgraph.Encoder] interface.
func (w *Writer) Encode(r *funcgraph.Result) error {
	b := r.Canvas.Bounds()
	if err := CheckScale(b.Dx(), b.Dy(), w.Scale); err != nil {
		return err
	}

	animated := r.Animation != nil
	format := resolve(w.Format, animated)
	if animated && format != GIF {
		return fmt.Errorf("%s: %w", format, ErrAnimation)
	}

	bw := bufio.NewWriter(w.W)
	var err error
	switch format {
	case PNG:
		enc := &png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(bw, scaled(r.Canvas, w.Scale))
	case GIF:
		err = gif.EncodeAll(bw, toGIF(r, w.Scale))
	case BMP:
		err = bmp.Encode(bw, scaled(r.Canvas, w.Scale))
	case TIFF:
		err = tiff.Encode(bw, scaled(r.Canvas, w.Scale), &tiff.Options{Compression: tiff.Deflate})
	case PDF:
		err = copyPDF(bw, r, w.Scale)
	default:
		return fmt.Errorf("unsupported format %s", format)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

// toGIF converts a plot to a GIF image.  A static plot, or an animation
// without frames, becomes a single frame.
func toGIF(r *funcgraph.Result, scale int) *gif.GIF {
	frames := []*image.Paletted{r.Canvas}
	g := &gif.GIF{}
	delay := 0
	if a := r.Animation; a != nil {
		if len(a.Frames) > 0 {
			frames = a.Frames
		}
		g.LoopCount = a.LoopCount
		delay = max(int(a.Delay/(10*time.Millisecond)), 1)
	}

	for _, f := range frames {
		g.Image = append(g.Image, scaled(f, scale))
		g.Delay = append(g.Delay, delay)
	}
	b := g.Image[0].Bounds()
	g.Config = image.Config{
		ColorModel: g.Image[0].Palette,
		Width:      b.Dx(),
		Height:     b.Dy(),
	}
	return g
}

// scaled enlarges img by an integer factor, using nearest neighbour
// interpolation so that the image stays sharp.
func scaled(img *image.Paletted, scale int) *image.Paletted {
	if scale < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale), img.Palette)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// copyPDF writes the PDF version of r to w.  The PDF library writes to
// files, so the document goes through a temporary file.
func copyPDF(w io.Writer, r *funcgraph.Result, scale int) (err error) {
	tmp, err := os.CreateTemp("", "funcgraph-*.pdf")
	if err != nil {
		return err
	}
	name := tmp.Name()
	defer os.Remove(name)
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := writePDF(name, r, scale); err != nil {
		return err
	}

	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = io.Copy(w, f)
	return err
}
