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

// Package expr compiles and evaluates real-valued expressions in one
// variable x.
//
// The grammar covers numeric literals, the constants pi, e and tau, calls
// of a fixed set of math functions, the binary operators + - * / // %,
// power written as ^ or **, unary minus and parentheses.  Power is right
// associative and binds tighter than unary minus, so -x^2 is -(x^2).
//
// Expressions are compiled once by [Compile].  Malformed input is
// reported as a [*SyntaxError] at this point.  Evaluation at a single x
// either yields a finite value or an [*EvalError].
package expr

import (
	"errors"
	"strings"
)

// Expr is a compiled expression. An Expr is immutable and safe for
// concurrent use.
type Expr struct {
	src  string
	root node
}

// Compile parses src.
func Compile(src string) (*Expr, error) {
	ps := &parser{src: src}
	if err := ps.next(); err != nil {
		return nil, err
	}
	if ps.tok.kind == tokEOF {
		return nil, &SyntaxError{Src: src, Pos: 0, Msg: "empty expression"}
	}
	root, err := ps.parseSum()
	if err != nil {
		return nil, err
	}
	if ps.tok.kind != tokEOF {
		return nil, ps.errorf(ps.tok.pos, "unexpected %s", ps.tok)
	}
	return &Expr{src: strings.TrimSpace(src), root: root}, nil
}

// MustCompile is like [Compile] but panics on errors.
// It is intended for expressions known at compile time.
func MustCompile(src string) *Expr {
	e, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return e
}

// Eval evaluates the expression at x.
// All errors returned are of type [*EvalError].
func (e *Expr) Eval(x float64) (float64, error) {
	return e.root.eval(x)
}

// String returns the source text of the expression.
func (e *Expr) String() string {
	return e.src
}

// IsSyntaxError reports whether err is, or wraps, a [*SyntaxError].
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}
