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
	"fmt"
	"strconv"
	"strings"
)

// tokenKind identifies the lexical class of a token.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp // one of + - * / // % ^ **
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return strconv.Quote(t.text)
}

// parser keeps the mutable state of a single Compile call.
type parser struct {
	src string
	pos int   // offset of the next unread byte
	tok token // current token
}

func (ps *parser) errorf(pos int, format string, args ...any) error {
	return &SyntaxError{Src: ps.src, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// next advances to the next token.
func (ps *parser) next() error {
	for ps.pos < len(ps.src) && isSpace(ps.src[ps.pos]) {
		ps.pos++
	}
	start := ps.pos
	if start == len(ps.src) {
		ps.tok = token{kind: tokEOF, pos: start}
		return nil
	}

	c := ps.src[start]
	switch {
	case isDigit(c) || c == '.':
		ps.scanNumber()
		ps.tok = token{kind: tokNumber, text: ps.src[start:ps.pos], pos: start}
	case isIdentStart(c):
		for ps.pos < len(ps.src) && isIdentPart(ps.src[ps.pos]) {
			ps.pos++
		}
		ps.tok = token{kind: tokIdent, text: ps.src[start:ps.pos], pos: start}
	case c == '(':
		ps.pos++
		ps.tok = token{kind: tokLParen, text: "(", pos: start}
	case c == ')':
		ps.pos++
		ps.tok = token{kind: tokRParen, text: ")", pos: start}
	case c == ',':
		ps.pos++
		ps.tok = token{kind: tokComma, text: ",", pos: start}
	case strings.HasPrefix(ps.src[start:], "**"), strings.HasPrefix(ps.src[start:], "//"):
		ps.pos += 2
		ps.tok = token{kind: tokOp, text: ps.src[start:ps.pos], pos: start}
	case strings.IndexByte("+-*/%^", c) >= 0:
		ps.pos++
		ps.tok = token{kind: tokOp, text: ps.src[start:ps.pos], pos: start}
	default:
		return ps.errorf(start, "unexpected character %q", c)
	}
	return nil
}

func (ps *parser) scanNumber() {
	for ps.pos < len(ps.src) && isDigit(ps.src[ps.pos]) {
		ps.pos++
	}
	if ps.pos < len(ps.src) && ps.src[ps.pos] == '.' {
		ps.pos++
		for ps.pos < len(ps.src) && isDigit(ps.src[ps.pos]) {
			ps.pos++
		}
	}
	if ps.pos < len(ps.src) && (ps.src[ps.pos] == 'e' || ps.src[ps.pos] == 'E') {
		// only consume the exponent if digits follow, so that "2e" is
		// reported as an error by the caller
		i := ps.pos + 1
		if i < len(ps.src) && (ps.src[i] == '+' || ps.src[i] == '-') {
			i++
		}
		if i < len(ps.src) && isDigit(ps.src[i]) {
			for i < len(ps.src) && isDigit(ps.src[i]) {
				i++
			}
			ps.pos = i
		}
	}
}

func (ps *parser) isOp(ops ...string) bool {
	if ps.tok.kind != tokOp {
		return false
	}
	for _, op := range ops {
		if ps.tok.text == op {
			return true
		}
	}
	return false
}

// parseSum parses: term (('+' | '-') term)*
func (ps *parser) parseSum() (node, error) {
	l, err := ps.parseProduct()
	if err != nil {
		return nil, err
	}
	for ps.isOp("+", "-") {
		op := opAdd
		if ps.tok.text == "-" {
			op = opSub
		}
		if err := ps.next(); err != nil {
			return nil, err
		}
		r, err := ps.parseProduct()
		if err != nil {
			return nil, err
		}
		l = &binary{op: op, l: l, r: r}
	}
	return l, nil
}

// parseProduct parses: unary (('*' | '/' | '//' | '%') unary)*
func (ps *parser) parseProduct() (node, error) {
	l, err := ps.parseUnary()
	if err != nil {
		return nil, err
	}
	for ps.isOp("*", "/", "//", "%") {
		var op binOp
		switch ps.tok.text {
		case "*":
			op = opMul
		case "/":
			op = opDiv
		case "//":
			op = opFloorDiv
		case "%":
			op = opMod
		}
		if err := ps.next(); err != nil {
			return nil, err
		}
		r, err := ps.parseUnary()
		if err != nil {
			return nil, err
		}
		l = &binary{op: op, l: l, r: r}
	}
	return l, nil
}

// parseUnary parses: ('+' | '-') unary | power
func (ps *parser) parseUnary() (node, error) {
	if ps.isOp("+", "-") {
		neg := ps.tok.text == "-"
		if err := ps.next(); err != nil {
			return nil, err
		}
		arg, err := ps.parseUnary()
		if err != nil {
			return nil, err
		}
		if neg {
			return &negate{arg: arg}, nil
		}
		return arg, nil
	}
	return ps.parsePower()
}

// parsePower parses: primary (('^' | '**') unary)?
// The exponent is parsed as a unary expression, which makes the operator
// right-associative and lets -x^2 mean -(x^2).
func (ps *parser) parsePower() (node, error) {
	base, err := ps.parsePrimary()
	if err != nil {
		return nil, err
	}
	if !ps.isOp("^", "**") {
		return base, nil
	}
	if err := ps.next(); err != nil {
		return nil, err
	}
	exp, err := ps.parseUnary()
	if err != nil {
		return nil, err
	}
	return &binary{op: opPow, l: base, r: exp}, nil
}

func (ps *parser) parsePrimary() (node, error) {
	tok := ps.tok
	switch tok.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, ps.errorf(tok.pos, "invalid number %s", tok)
		}
		if err := ps.next(); err != nil {
			return nil, err
		}
		return number(v), nil

	case tokLParen:
		if err := ps.next(); err != nil {
			return nil, err
		}
		n, err := ps.parseSum()
		if err != nil {
			return nil, err
		}
		if ps.tok.kind != tokRParen {
			return nil, ps.errorf(ps.tok.pos, "expected \")\", found %s", ps.tok)
		}
		if err := ps.next(); err != nil {
			return nil, err
		}
		return n, nil

	case tokIdent:
		if err := ps.next(); err != nil {
			return nil, err
		}
		if ps.tok.kind == tokLParen {
			return ps.parseCall(tok)
		}
		if tok.text == Variable {
			return variable{}, nil
		}
		if v, ok := constants[tok.text]; ok {
			return number(v), nil
		}
		if _, ok := functions[tok.text]; ok {
			return nil, ps.errorf(tok.pos, "function %s used without arguments", tok.text)
		}
		return nil, ps.errorf(tok.pos, "unknown name %s", tok)

	default:
		return nil, ps.errorf(tok.pos, "unexpected %s", tok)
	}
}

// parseCall parses the argument list of a function call. The current
// token is the opening parenthesis.
func (ps *parser) parseCall(name token) (node, error) {
	fn, ok := functions[name.text]
	if !ok {
		return nil, ps.errorf(name.pos, "unknown function %s", name)
	}
	if err := ps.next(); err != nil {
		return nil, err
	}

	var args []node
	if ps.tok.kind != tokRParen {
		for {
			arg, err := ps.parseSum()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if ps.tok.kind != tokComma {
				break
			}
			if err := ps.next(); err != nil {
				return nil, err
			}
		}
	}
	if ps.tok.kind != tokRParen {
		return nil, ps.errorf(ps.tok.pos, "expected \")\" or \",\", found %s", ps.tok)
	}
	if err := ps.next(); err != nil {
		return nil, err
	}

	if len(args) < fn.minArgs || fn.maxArgs >= 0 && len(args) > fn.maxArgs {
		return nil, ps.errorf(name.pos, "%s takes %s, got %d",
			fn.name, arity(fn), len(args))
	}
	return &call{fn: fn, args: args}, nil
}

func arity(fn *function) string {
	switch {
	case fn.maxArgs < 0:
		return fmt.Sprintf("at least %d arguments", fn.minArgs)
	case fn.minArgs == fn.maxArgs && fn.minArgs == 1:
		return "1 argument"
	case fn.minArgs == fn.maxArgs:
		return fmt.Sprintf("%d arguments", fn.minArgs)
	default:
		return fmt.Sprintf("%d to %d arguments", fn.minArgs, fn.maxArgs)
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
