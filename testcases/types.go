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

// Package testcases defines named plot scenarios.  They are used by the
// tests of the plotting pipeline and by the gallery exporter.
package testcases

// TestCase defines a single plot.
type TestCase struct {
	Name   string  // lowercase a-z, 0-9 and _ only
	Curves []Curve // the expressions to draw
	Width  int     // canvas width in pixels
	Height int     // canvas height in pixels

	Graduation int  // 0 for one unit per pixel
	Animated   bool
	Unbounded  bool // draw samples above and below the canvas
	Legend     bool
}

// Curve is an expression with an optional colour in #rrggbb form.
type Curve struct {
	Expr  string
	Color string // empty for the default palette
}

// exprs builds a list of curves without explicit colours.
func exprs(src ...string) []Curve {
	res := make([]Curve, len(src))
	for i, s := range src {
		res[i].Expr = s
	}
	return res
}
