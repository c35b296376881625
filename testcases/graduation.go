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

var graduationCases = []TestCase{
	{
		Name:       "sine_10",
		Curves:     exprs("sin(x)"),
		Width:      500,
		Height:     500,
		Graduation: 10,
	},
	{
		Name:       "coarse_4",
		Curves:     exprs("x^3/8"),
		Width:      400,
		Height:     400,
		Graduation: 4,
	},
	{
		// ticks would be too dense and are left out
		Name:       "dense_100",
		Curves:     exprs("x^2"),
		Width:      500,
		Height:     500,
		Graduation: 100,
	},
	{
		Name:       "wide",
		Curves:     exprs("cos(x)"),
		Width:      600,
		Height:     200,
		Graduation: 12,
	},
}
