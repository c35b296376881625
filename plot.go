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
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/funcgraph/expr"
)

// DefaultSize is the width and height of the canvas when no options are
// given.
const DefaultSize = 500

// Curve is an expression together with its colour.
type Curve struct {
	Expr string

	// Color is the colour of the graph.  If this is nil, a colour from
	// DefaultColors is used.
	Color color.Color
}

// Expressions is the set of expressions drawn by [Plot].
// This is one of [Single], [Many] or [Colored].
type Expressions interface {
	curves() []Curve
}

// Single is a single expression.
type Single string

func (s Single) curves() []Curve {
	return []Curve{{Expr: string(s)}}
}

// Many is a list of expressions, coloured using DefaultColors.
type Many []string

func (m Many) curves() []Curve {
	res := make([]Curve, len(m))
	for i, s := range m {
		res[i].Expr = s
	}
	return res
}

// Colored is a list of expressions with explicit colours.
type Colored []Curve

func (c Colored) curves() []Curve {
	return c
}

// Options control the appearance of a plot.
type Options struct {
	Width, Height int // canvas size in pixels

	// Graduation is the number of domain units between the centre and the
	// right edge of the canvas.  Graduation ticks are drawn one unit
	// apart.  0 means one unit per pixel, without ticks.
	Graduation int

	// Animated enables the capture of animation frames.
	Animated bool

	// Unbounded keeps samples above or below the canvas as points.  By
	// default such samples are gap markers, and a curve is only continued
	// across the canvas edge where it leaves or enters the canvas.
	Unbounded bool

	// Legend lists the expressions in the top left corner.
	Legend bool

	FrameStride int           // keep every n-th frame; 0 means DefaultFrameStride
	FrameDelay  time.Duration // per frame; 0 means DefaultFrameDelay
	Loop        int           // GIF loop count, 0 loops forever

	// Logger receives progress messages.  If this is nil, messages are
	// discarded.
	Logger *slog.Logger
}

// SetupError is returned by [Plot] when a plot cannot be started, because
// of invalid options or an expression with a syntax error.
type SetupError struct {
	Msg string
	Err error
}

func (e *SetupError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// Stats gives the time spent in the phases of a plot.
type Stats struct {
	Calculation time.Duration
	Draw        time.Duration
	Save        time.Duration
}

// CurveStats summarises the drawing of one expression.
type CurveStats struct {
	Expr       string
	Color      color.RGBA
	Samples    int // number of sampled columns
	Failed     int // columns where evaluation failed
	Overflow   int // columns with coordinates too large to draw
	OutOfRange int // columns above or below the canvas
	RenderStats
}

// Result is the outcome of [Plot].
type Result struct {
	// Canvas is the final image.
	Canvas *image.Paletted

	// Animation holds the frames of an animated plot, and is nil for
	// static plots.
	Animation *Animation

	// Strokes lists the lines painted on the canvas, in order.
	Strokes []Stroke

	// Curves has one entry per expression.
	Curves []CurveStats

	Stats Stats
}

// Encoder stores the result of a plot.
type Encoder interface {
	Encode(r *Result) error
}

// Save passes the result to enc and records the time taken.
func (r *Result) Save(enc Encoder) error {
	start := time.Now()
	err := enc.Encode(r)
	r.Stats.Save += time.Since(start)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// Plot draws the graphs of the given expressions.  If opt is nil, a
// DefaultSize by DefaultSize canvas is used with all other options at
// their zero values.
//
// All expressions are compiled before drawing starts.  Errors which
// prevent the plot from being drawn are of type [*SetupError].
// Evaluation errors for single samples are not errors, the graph just
// has a gap there.
func Plot(exprs Expressions, opt *Options) (*Result, error) {
	if opt == nil {
		opt = &Options{Width: DefaultSize, Height: DefaultSize}
	}
	if err := opt.check(); err != nil {
		return nil, err
	}
	logger := opt.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if exprs == nil {
		return nil, &SetupError{Msg: "no expressions"}
	}
	curves := exprs.curves()
	if len(curves) == 0 {
		return nil, &SetupError{Msg: "no expressions"}
	}
	compiled := make([]*expr.Expr, len(curves))
	colors := make([]color.RGBA, len(curves))
	for i, cv := range curves {
		e, err := expr.Compile(cv.Expr)
		if err != nil {
			return nil, &SetupError{Msg: fmt.Sprintf("expression %d", i+1), Err: err}
		}
		compiled[i] = e
		if cv.Color != nil {
			colors[i] = color.RGBAModel.Convert(cv.Color).(color.RGBA)
		} else {
			colors[i] = ColorFor(i)
		}
	}
	palette, err := buildPalette(colors)
	if err != nil {
		return nil, &SetupError{Msg: "palette", Err: err}
	}

	res := &Result{}
	size := image.Point{X: opt.Width, Y: opt.Height}
	logger.Info("plotting",
		"expressions", len(compiled),
		"width", size.X, "height", size.Y,
		"graduation", opt.Graduation,
		"animated", opt.Animated)

	start := time.Now()
	c := NewCanvas(size.X, size.Y, palette)
	m := NewMapper(size.X, size.Y, opt.Graduation)
	if err := DrawAxes(c, m, opt.Graduation); err != nil {
		return nil, fmt.Errorf("axes: %w", err)
	}
	if opt.Legend {
		entries := make([]legendEntry, len(compiled))
		for i, e := range compiled {
			entries[i] = legendEntry{Label: e.String(), Color: colors[i]}
		}
		if err := drawLegend(c, entries); err != nil {
			return nil, fmt.Errorf("legend: %w", err)
		}
	}
	res.Stats.Draw += time.Since(start)

	var rec *FrameRecorder
	if opt.Animated {
		rec = NewFrameRecorder(c)
	}
	renderer := &Renderer{Frames: rec, Logger: logger}
	style := Style{
		Width: float64(max(size.X/125, 1)),
		Cap:   graphics.LineCapRound,
	}
	for i, e := range compiled {
		start := time.Now()
		samples := SampleExpr(e, m, size, !opt.Unbounded, logger)
		res.Stats.Calculation += time.Since(start)

		start = time.Now()
		style.Color = colors[i]
		rs := renderer.Render(c, samples, style)
		res.Stats.Draw += time.Since(start)

		cs := CurveStats{
			Expr:        e.String(),
			Color:       colors[i],
			Samples:     len(samples),
			RenderStats: rs,
		}
		for _, s := range samples {
			switch s.Kind {
			case Failed:
				cs.Failed++
			case Overflow:
				cs.Overflow++
			case OutOfRange:
				cs.OutOfRange++
			}
		}
		res.Curves = append(res.Curves, cs)
		logger.Info("curve done",
			"expr", cs.Expr,
			"segments", rs.Drawn,
			"failed", cs.Failed,
			"out_of_range", cs.OutOfRange,
			"jumps", rs.Jumps)
	}

	res.Canvas = c.Image()
	res.Strokes = c.Strokes()
	if opt.Animated {
		start := time.Now()
		stride := opt.FrameStride
		if stride <= 0 {
			stride = DefaultFrameStride
		}
		delay := opt.FrameDelay
		if delay <= 0 {
			delay = DefaultFrameDelay
		}
		res.Animation = Assemble(rec, stride, delay, opt.Loop)
		res.Stats.Draw += time.Since(start)
		logger.Info("animation assembled",
			"captured", rec.Len(), "frames", len(res.Animation.Frames))
	}
	return res, nil
}

func (opt *Options) check() error {
	switch {
	case opt.Width <= 0 || opt.Height <= 0:
		return &SetupError{Msg: fmt.Sprintf("invalid canvas size %dx%d", opt.Width, opt.Height)}
	case opt.Width > maxCanvasSize || opt.Height > maxCanvasSize:
		return &SetupError{Msg: fmt.Sprintf("canvas size %dx%d exceeds %d", opt.Width, opt.Height, maxCanvasSize)}
	case opt.Graduation < 0:
		return &SetupError{Msg: fmt.Sprintf("invalid graduation %d", opt.Graduation)}
	case opt.FrameStride < 0:
		return &SetupError{Msg: fmt.Sprintf("invalid frame stride %d", opt.FrameStride)}
	}
	return nil
}

// maxCanvasSize limits the canvas width and height, to keep animation
// frames within the limits of the GIF format.
const maxCanvasSize = 1<<16 - 1

// IsSetupError reports whether err is, or wraps, a [*SetupError].
func IsSetupError(err error) bool {
	var se *SetupError
	return errors.As(err, &se)
}
