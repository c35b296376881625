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

// Package funcgraph draws the graphs of real functions y = f(x).
//
// Each expression is evaluated once per pixel column of the canvas.  The
// values are mapped to pixel coordinates, with the origin of the
// mathematical coordinate system at the centre of the canvas, and
// neighbouring samples are connected by straight line segments.  A pair of
// samples is not connected if one of them could not be computed, or if the
// jump between them is larger than the canvas height, so that asymptotes
// such as those of 1/x or tan(x) are not bridged.
//
// Axes and graduation ticks are painted before the curves.  In animated
// mode, a frame is captured after every segment and the frames are
// assembled into an [Animation].
//
// The [Plot] function runs the whole pipeline:
//
//	res, err := funcgraph.Plot(funcgraph.Single("x*x"), &funcgraph.Options{
//		Width:  500,
//		Height: 500,
//	})
//	if err != nil {
//		...
//	}
//	err = res.Save(&output.File{Path: "graph.png"})
package funcgraph

//go:generate go run ./testcases/export
