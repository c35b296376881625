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

var asymptoteCases = []TestCase{
	{
		Name:       "reciprocal",
		Curves:     exprs("1/x"),
		Width:      500,
		Height:     500,
		Graduation: 10,
	},
	{
		Name:       "tan_checked",
		Curves:     exprs("tan(x)"),
		Width:      500,
		Height:     500,
		Graduation: 10,
	},
	{
		Name:       "tan_unchecked",
		Curves:     exprs("tan(x)"),
		Width:      500,
		Height:     500,
		Graduation: 10,
		Unbounded:  true,
	},
	{
		Name:       "log",
		Curves:     exprs("log(abs(x))"),
		Width:      400,
		Height:     400,
		Graduation: 8,
	},
	{
		Name:   "exp_overflow",
		Curves: exprs("exp(x)"),
		Width:  500,
		Height: 500,
	},
	{
		Name:       "floor_steps",
		Curves:     exprs("floor(x)"),
		Width:      400,
		Height:     400,
		Graduation: 5,
	},
}
