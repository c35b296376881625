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

import "fmt"

// SyntaxError reports a malformed expression. It is returned by [Compile]
// and is fatal for the expression: no sample can be evaluated.
type SyntaxError struct {
	Src string // the complete expression text
	Pos int    // byte offset of the offending token
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d in %q: %s", e.Pos, e.Src, e.Msg)
}

// Kind classifies evaluation failures.
type Kind int

const (
	// Arithmetic covers division by zero, overflow and poles.
	Arithmetic Kind = iota + 1

	// Value means that an argument lies outside a function's domain.
	Value
)

func (k Kind) String() string {
	switch k {
	case Arithmetic:
		return "arithmetic"
	case Value:
		return "value"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// EvalError reports that an expression has no value at a given x.
// Evaluation errors only affect a single sample.
type EvalError struct {
	Kind Kind
	Op   string // the operator or function which failed
	Msg  string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s error in %s: %s", e.Kind, e.Op, e.Msg)
}

func arithmeticError(op, msg string) error {
	return &EvalError{Kind: Arithmetic, Op: op, Msg: msg}
}

func valueError(op, msg string) error {
	return &EvalError{Kind: Value, Op: op, Msg: msg}
}
