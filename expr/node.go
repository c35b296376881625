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

import "math"

// node is an element of the evaluation tree. Nodes are immutable after
// parsing, so one tree can be evaluated concurrently.
type node interface {
	eval(x float64) (float64, error)
}

type number float64

func (n number) eval(float64) (float64, error) {
	return float64(n), nil
}

type variable struct{}

func (variable) eval(x float64) (float64, error) {
	return x, nil
}

type negate struct {
	arg node
}

func (n *negate) eval(x float64) (float64, error) {
	v, err := n.arg.eval(x)
	if err != nil {
		return 0, err
	}
	return -v, nil
}

// binOp identifies a binary operator.
type binOp byte

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opFloorDiv
	opMod
	opPow
)

var opNames = [...]string{
	opAdd:      "+",
	opSub:      "-",
	opMul:      "*",
	opDiv:      "/",
	opFloorDiv: "//",
	opMod:      "%",
	opPow:      "^",
}

func (op binOp) String() string {
	return opNames[op]
}

type binary struct {
	op   binOp
	l, r node
}

func (b *binary) eval(x float64) (float64, error) {
	l, err := b.l.eval(x)
	if err != nil {
		return 0, err
	}
	r, err := b.r.eval(x)
	if err != nil {
		return 0, err
	}

	var v float64
	switch b.op {
	case opAdd:
		v = l + r
	case opSub:
		v = l - r
	case opMul:
		v = l * r
	case opDiv:
		if r == 0 {
			return 0, arithmeticError("/", "division by zero")
		}
		v = l / r
	case opFloorDiv:
		if r == 0 {
			return 0, arithmeticError("//", "division by zero")
		}
		v = math.Floor(l / r)
	case opMod:
		if r == 0 {
			return 0, arithmeticError("%", "modulo by zero")
		}
		// the result takes the sign of the divisor
		v = math.Mod(l, r)
		if v != 0 && (v < 0) != (r < 0) {
			v += r
		}
	case opPow:
		v, err = power("^", l, r)
		if err != nil {
			return 0, err
		}
	}
	return checkResult(b.op.String(), v, l, r)
}

type call struct {
	fn   *function
	args []node
}

func (c *call) eval(x float64) (float64, error) {
	var buf [4]float64
	vals := buf[:0]
	for _, arg := range c.args {
		v, err := arg.eval(x)
		if err != nil {
			return 0, err
		}
		vals = append(vals, v)
	}
	v, err := c.fn.call(vals)
	if err != nil {
		return 0, err
	}
	return checkResult(c.fn.name, v, vals...)
}

// checkResult turns non-finite results of finite arguments into errors.
func checkResult(op string, v float64, args ...float64) (float64, error) {
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		return v, nil
	}
	for _, a := range args {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return v, nil
		}
	}
	if math.IsNaN(v) {
		return 0, valueError(op, "math domain error")
	}
	return 0, arithmeticError(op, "result too large")
}
