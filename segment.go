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
	"errors"
	"log/slog"

	"seehuhn.de/go/funcgraph/raster"
)

// Decision is the outcome of the discontinuity check for a pair of
// neighbouring samples.
type Decision uint8

const (
	// Draw connects the two samples.
	Draw Decision = iota

	// Clip connects the two samples.  At least one of them lies outside
	// the canvas and the line is cut off at the canvas edge.
	Clip

	// SkipGap leaves the pair unconnected because one of the samples
	// has no usable coordinates.
	SkipGap

	// SkipJump leaves the pair unconnected because the vertical distance
	// between the samples exceeds the canvas height.
	SkipJump
)

func (d Decision) String() string {
	switch d {
	case Draw:
		return "draw"
	case Clip:
		return "clip"
	case SkipGap:
		return "skip gap"
	case SkipJump:
		return "skip jump"
	default:
		return "unknown"
	}
}

// Drawn reports whether a line is drawn for this decision.
func (d Decision) Drawn() bool {
	return d == Draw || d == Clip
}

// Classify decides whether the neighbouring samples a and b are connected
// on a canvas of the given height.
//
// Pairs involving a Failed or Overflow sample are never connected.  Two
// samples with coordinates are connected if their rows differ by at most
// height; larger jumps are taken to be asymptotes.  A pair where one
// sample is OutOfRange is drawn under the same condition, so that curves
// leave the canvas smoothly.  Pairs where both samples are OutOfRange are
// skipped.
func Classify(a, b Sample, height int) Decision {
	switch {
	case a.Kind == Failed || b.Kind == Failed,
		a.Kind == Overflow || b.Kind == Overflow:
		return SkipGap
	case a.Kind == OutOfRange && b.Kind == OutOfRange:
		return SkipGap
	}

	dy := a.P.Y - b.P.Y
	if dy < 0 {
		dy = -dy
	}
	if dy > height {
		return SkipJump
	}

	if a.Kind == OutOfRange || b.Kind == OutOfRange ||
		!insideRows(a, height) || !insideRows(b, height) {
		return Clip
	}
	return Draw
}

func insideRows(s Sample, height int) bool {
	return s.P.Y >= 0 && s.P.Y < height
}

// RenderStats counts what happened to the segments of one curve.
type RenderStats struct {
	Drawn   int // segments painted, including clipped ones
	Clipped int // segments with one end outside the canvas
	Gaps    int // pairs skipped because of a gap marker
	Jumps   int // pairs skipped because of a jump
	Errors  int // segments skipped because the rasteriser refused them
}

// Renderer connects the samples of a curve.
type Renderer struct {
	// Frames, if not nil, receives a frame after every drawn segment.
	Frames *FrameRecorder

	// Logger receives debug messages about skipped segments.
	Logger *slog.Logger
}

// Render walks the sample sequence and strokes a line for every pair of
// neighbours which Classify accepts.  A segment which cannot be
// rasterised is skipped.
func (r *Renderer) Render(c *Canvas, samples []Sample, style Style) RenderStats {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var st RenderStats
	height := c.Height()
	for i := 1; i < len(samples); i++ {
		a, b := samples[i-1], samples[i]
		d := Classify(a, b, height)
		if !d.Drawn() {
			if d == SkipJump {
				st.Jumps++
				logger.Debug("not connecting jump",
					"from", a.P, "to", b.P, "x", a.X)
			} else {
				st.Gaps++
			}
			continue
		}

		err := c.Segment(a.P, b.P, style, RoleCurve)
		if errors.Is(err, raster.ErrCoordinateRange) {
			st.Errors++
			logger.Debug("cannot draw segment",
				"from", a.P, "to", b.P, "err", err)
			continue
		} else if err != nil {
			st.Errors++
			logger.Warn("cannot draw segment", "err", err)
			continue
		}

		st.Drawn++
		if d == Clip {
			st.Clipped++
		}
		if r.Frames != nil {
			r.Frames.Capture(c)
		}
	}
	return st
}
