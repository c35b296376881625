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

package testcases

var animatedCases = []TestCase{
	{
		Name:       "parabola",
		Curves:     exprs("x*x"),
		Width:      200,
		Height:     200,
		Graduation: 10,
		Animated:   true,
	},
	{
		Name:       "two_curves",
		Curves:     exprs("sin(x)", "x/3"),
		Width:      200,
		Height:     150,
		Graduation: 6,
		Animated:   true,
	},
	{
		Name:       "with_gaps",
		Curves:     exprs("1/x"),
		Width:      120,
		Height:     120,
		Graduation: 5,
		Animated:   true,
		Legend:     true,
	},
}
