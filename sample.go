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
	"context"
	"image"
	"log/slog"
	"math"

	"seehuhn.de/go/funcgraph/expr"
	"seehuhn.de/go/funcgraph/raster"
)

// Kind classifies a sample.
type Kind uint8

const (
	// Point is a sample with usable pixel coordinates.
	Point Kind = iota

	// Failed marks a column where the expression could not be evaluated.
	Failed

	// Overflow marks a column where the mapped coordinate is too large
	// to be drawn.
	Overflow

	// OutOfRange marks a column where the value lies above or below the
	// canvas.  This is only used when bounds checking is enabled.  The
	// pixel coordinates of the sample are still valid.
	OutOfRange
)

func (k Kind) String() string {
	switch k {
	case Point:
		return "point"
	case Failed:
		return "failed"
	case Overflow:
		return "overflow"
	case OutOfRange:
		return "out of range"
	default:
		return "unknown"
	}
}

// IsGap reports whether samples of this kind are gap markers.
func (k Kind) IsGap() bool {
	return k != Point
}

// Sample is the result of evaluating an expression at one pixel column.
type Sample struct {
	Column int         // pixel column relative to the vertical axis
	X      float64     // domain value
	Y      float64     // function value; NaN if evaluation failed
	P      image.Point // canvas coordinates; valid for Point and OutOfRange
	Kind   Kind
	Err    error // evaluation error, for Failed samples
}

// SampleExpr evaluates e once for every pixel column of a canvas of the
// given size, from the left edge to the right edge.  The result has
// exactly size.X elements.
//
// Evaluation errors turn into Failed samples and are logged at debug
// level.  If boundsChecked is set, samples above or below the canvas are
// marked as OutOfRange.
func SampleExpr(e *expr.Expr, m Mapper, size image.Point, boundsChecked bool, logger *slog.Logger) []Sample {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	debug := logger.Enabled(context.Background(), slog.LevelDebug)
	scale := float64(m.scale())

	samples := make([]Sample, size.X)
	for i := range samples {
		col := i - m.Center.X
		s := &samples[i]
		s.Column = col
		s.X = m.Domain(col)

		y, err := e.Eval(s.X)
		if err == nil && (math.IsNaN(y) || math.IsInf(y, 0)) {
			err = &expr.EvalError{Kind: expr.Value, Op: e.String(), Msg: "result is not finite"}
		}
		if err != nil {
			s.Y = math.NaN()
			s.Kind = Failed
			s.Err = err
			if debug {
				logger.Debug("cannot evaluate", "expr", e.String(), "x", s.X, "err", err)
			}
			continue
		}
		s.Y = y

		fx, fy := m.toDevice(float64(col), y*scale)
		if math.Abs(fx) > raster.MaxCoordinate || !(math.Abs(fy) <= raster.MaxCoordinate) {
			s.Kind = Overflow
			if debug {
				logger.Debug("coordinate overflow", "expr", e.String(), "x", s.X, "y", y)
			}
			continue
		}
		s.P = image.Point{X: int(fx), Y: int(fy)}
		if boundsChecked && (s.P.Y < 0 || s.P.Y >= size.Y) {
			s.Kind = OutOfRange
		}
	}
	return samples
}
