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
	"time"
)

// Default animation parameters.
const (
	DefaultFrameStride = 2
	DefaultFrameDelay  = 20 * time.Millisecond
)

// FrameRecorder captures the state of a canvas after every drawn segment.
//
// Only the changed part of the canvas is stored for each frame, together
// with a copy of the canvas taken when the recorder was created.  Full
// frames are reconstructed on demand.
type FrameRecorder struct {
	base    *image.Paletted
	patches []patch
}

// patch holds the pixels of the area changed by one frame.
type patch struct {
	r   image.Rectangle
	pix []uint8 // r.Dx() bytes per row
}

// NewFrameRecorder starts recording frames of c.
func NewFrameRecorder(c *Canvas) *FrameRecorder {
	c.takeDirty()
	return &FrameRecorder{base: c.Snapshot()}
}

// Capture records the current state of c as a new frame.
func (f *FrameRecorder) Capture(c *Canvas) {
	r := c.takeDirty()
	p := patch{r: r}
	if !r.Empty() {
		w := r.Dx()
		p.pix = make([]uint8, w*r.Dy())
		img := c.Image()
		for y := r.Min.Y; y < r.Max.Y; y++ {
			off := img.PixOffset(r.Min.X, y)
			copy(p.pix[(y-r.Min.Y)*w:], img.Pix[off:off+w])
		}
	}
	f.patches = append(f.patches, p)
}

// Len returns the number of captured frames.
func (f *FrameRecorder) Len() int {
	return len(f.patches)
}

// Frame returns a copy of the i-th captured frame.
func (f *FrameRecorder) Frame(i int) *image.Paletted {
	img := clonePaletted(f.base)
	for _, p := range f.patches[:i+1] {
		p.apply(img)
	}
	return img
}

func (p patch) apply(img *image.Paletted) {
	w := p.r.Dx()
	for y := p.r.Min.Y; y < p.r.Max.Y; y++ {
		off := img.PixOffset(p.r.Min.X, y)
		copy(img.Pix[off:off+w], p.pix[(y-p.r.Min.Y)*w:])
	}
}

// Animation is a sequence of frames, ready to be encoded.
type Animation struct {
	Frames    []*image.Paletted
	Delay     time.Duration // display time of each frame
	LoopCount int           // 0 loops forever, -1 shows the frames once
}

// Assemble selects the frames of an animation: every stride-th frame,
// counted backwards from the last one.  This keeps ceil(n/stride) of
// the n captured frames, and the last captured frame is always included.
func Assemble(rec *FrameRecorder, stride int, delay time.Duration, loop int) *Animation {
	stride = max(stride, 1)
	anim := &Animation{Delay: delay, LoopCount: loop}
	if rec == nil || rec.Len() == 0 {
		return anim
	}

	n := rec.Len()
	anim.Frames = make([]*image.Paletted, 0, (n+stride-1)/stride)
	img := clonePaletted(rec.base)
	for i, p := range rec.patches {
		p.apply(img)
		if (n-1-i)%stride == 0 {
			anim.Frames = append(anim.Frames, clonePaletted(img))
		}
	}
	return anim
}
