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

var basicCases = []TestCase{
	{
		Name:   "zero",
		Curves: exprs("0"),
		Width:  200,
		Height: 200,
	},
	{
		Name:   "parabola",
		Curves: []Curve{{Expr: "x*x", Color: "#f81010"}},
		Width:  500,
		Height: 500,
	},
	{
		Name:   "line",
		Curves: exprs("2*x - 30"),
		Width:  300,
		Height: 200,
	},
	{
		Name:      "sine_unchecked",
		Curves:    exprs("80*sin(x/20)"),
		Width:     400,
		Height:    300,
		Unbounded: true,
	},
	{
		Name:   "sqrt_domain",
		Curves: exprs("10*sqrt(x)"),
		Width:  300,
		Height: 300,
	},
	{
		Name:   "tiny",
		Curves: exprs("x"),
		Width:  20,
		Height: 20,
	},
	{
		Name:   "odd_size",
		Curves: exprs("x/2"),
		Width:  101,
		Height: 77,
	},
}
