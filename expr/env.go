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

package expr

import (
	"maps"
	"math"
	"slices"
)

// Variable is the name of the free variable.
const Variable = "x"

// poleThreshold is the largest |cos x| for which tan x is treated as a pole.
// At the float64 closest to π/2, cos x ≈ 6.1e-17.
const poleThreshold = 1e-12

var constants = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"tau": 2 * math.Pi,
}

// function is an entry of the fixed evaluation environment.
type function struct {
	name    string
	minArgs int
	maxArgs int
	call    func(args []float64) (float64, error)
}

var functions map[string]*function

func init() {
	list := []*function{
		unary("sin", math.Sin),
		unary("cos", math.Cos),
		unaryChecked("tan", func(x float64) (float64, error) {
			if math.Abs(math.Cos(x)) < poleThreshold {
				return 0, arithmeticError("tan", "pole at odd multiple of pi/2")
			}
			return math.Tan(x), nil
		}),

		unaryChecked("asin", inUnitInterval("asin", math.Asin)),
		unaryChecked("acos", inUnitInterval("acos", math.Acos)),
		unary("atan", math.Atan),

		unary("sinh", math.Sinh),
		unary("cosh", math.Cosh),
		unary("tanh", math.Tanh),

		unary("deg", func(x float64) float64 { return x * 180 / math.Pi }),
		unary("rad", func(x float64) float64 { return x * math.Pi / 180 }),

		{name: "log", minArgs: 1, maxArgs: 2, call: logBase},
		unaryChecked("log10", positive("log10", math.Log10)),
		unaryChecked("log2", positive("log2", math.Log2)),
		unaryChecked("sqrt", func(x float64) (float64, error) {
			if x < 0 {
				return 0, valueError("sqrt", "negative argument")
			}
			return math.Sqrt(x), nil
		}),
		unaryChecked("factorial", factorial),

		unary("ceil", math.Ceil),
		unary("floor", math.Floor),
		unary("trunc", math.Trunc),
		unary("round", math.RoundToEven),
		unary("abs", math.Abs),

		unary("exp", math.Exp),
		unary("expm1", math.Expm1),

		unaryChecked("gamma", func(x float64) (float64, error) {
			if x <= 0 && x == math.Trunc(x) {
				return 0, valueError("gamma", "non-positive integer argument")
			}
			return math.Gamma(x), nil
		}),
		unaryChecked("lgamma", func(x float64) (float64, error) {
			if x <= 0 && x == math.Trunc(x) {
				return 0, valueError("lgamma", "non-positive integer argument")
			}
			y, _ := math.Lgamma(x)
			return y, nil
		}),

		{name: "pow", minArgs: 2, maxArgs: 2, call: func(a []float64) (float64, error) {
			return power("pow", a[0], a[1])
		}},
		{name: "min", minArgs: 2, maxArgs: -1, call: func(a []float64) (float64, error) {
			return slices.Min(a), nil
		}},
		{name: "max", minArgs: 2, maxArgs: -1, call: func(a []float64) (float64, error) {
			return slices.Max(a), nil
		}},
	}

	functions = make(map[string]*function, len(list))
	for _, f := range list {
		functions[f.name] = f
	}
}

// Names returns the sorted list of all names which can be used in
// expressions: the variable, the constants and the functions.
func Names() []string {
	names := []string{Variable}
	names = slices.AppendSeq(names, maps.Keys(constants))
	names = slices.AppendSeq(names, maps.Keys(functions))
	slices.Sort(names)
	return names
}

func unary(name string, f func(float64) float64) *function {
	return &function{
		name:    name,
		minArgs: 1,
		maxArgs: 1,
		call: func(a []float64) (float64, error) {
			return f(a[0]), nil
		},
	}
}

func unaryChecked(name string, f func(float64) (float64, error)) *function {
	return &function{
		name:    name,
		minArgs: 1,
		maxArgs: 1,
		call: func(a []float64) (float64, error) {
			return f(a[0])
		},
	}
}

func positive(name string, f func(float64) float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) {
		if x <= 0 {
			return 0, valueError(name, "argument must be positive")
		}
		return f(x), nil
	}
}

func inUnitInterval(name string, f func(float64) float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) {
		if x < -1 || x > 1 {
			return 0, valueError(name, "argument outside [-1, 1]")
		}
		return f(x), nil
	}
}

func logBase(a []float64) (float64, error) {
	if a[0] <= 0 {
		return 0, valueError("log", "argument must be positive")
	}
	if len(a) == 1 {
		return math.Log(a[0]), nil
	}
	base := a[1]
	if base <= 0 {
		return 0, valueError("log", "base must be positive")
	}
	if base == 1 {
		return 0, arithmeticError("log", "division by zero (base 1)")
	}
	return math.Log(a[0]) / math.Log(base), nil
}

func factorial(x float64) (float64, error) {
	if x < 0 {
		return 0, valueError("factorial", "negative argument")
	}
	if x != math.Trunc(x) {
		return 0, valueError("factorial", "non-integer argument")
	}
	return math.Gamma(x + 1), nil
}

// power implements both the ^ operator and the pow function.
func power(op string, base, exp float64) (float64, error) {
	if base == 0 && exp < 0 {
		return 0, arithmeticError(op, "zero raised to a negative power")
	}
	if base < 0 && exp != math.Trunc(exp) {
		return 0, valueError(op, "negative base with fractional exponent")
	}
	return math.Pow(base, exp), nil
}
