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

var multiCases = []TestCase{
	{
		Name:       "trig",
		Curves:     exprs("sin(x)", "cos(x)", "tan(x)"),
		Width:      500,
		Height:     500,
		Graduation: 10,
		Legend:     true,
	},
	{
		Name:   "colored",
		Curves: []Curve{
			{Expr: "x", Color: "#000"},
			{Expr: "-x", Color: "#2690e4"},
			{Expr: "x^2/50"},
		},
		Width:  300,
		Height: 300,
		Legend: true,
	},
	{
		Name:   "palette_cycle",
		Curves: exprs(
			"1*x", "2*x", "3*x", "4*x", "5*x", "6*x",
			"-1*x", "-2*x", "-3*x", "-4*x", "-5*x", "-6*x",
		),
		Width:  300,
		Height: 300,
	},
}
