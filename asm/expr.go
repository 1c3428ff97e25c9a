// This file is part of redcode - https://github.com/db47h/redcode
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package asm

import (
	"fmt"
	"strconv"
)

// Expr is an arithmetic/relational/logical expression tree (spec §4.5).
// A freshly parsed Expr may still contain IdentExpr leaves (label or
// constant references); the expansion phase's offset-substitution sweep
// resolves all of those to NumberExpr before the evaluation phase ever
// walks an Expr for a field value. The FOR/ROF count expression has its
// label references resolved the same way (resolveLabelIdents) and is then
// evaluated during the expansion phase itself, when its ROF is found.
type Expr interface {
	exprNode()
}

// NumberExpr is an integer literal leaf.
type NumberExpr struct{ Value int }

// IdentExpr is a label or constant reference leaf.
type IdentExpr struct{ Name string }

// UnaryExpr applies a unary operator ('+', '-', '!') to X.
type UnaryExpr struct {
	Op byte
	X  Expr
}

// BinaryExpr applies a binary operator to X and Y. Op is one of
// "||" "&&" "<" "<=" ">" ">=" "==" "!=" "+" "-" "*" "/" "%".
type BinaryExpr struct {
	Op   string
	X, Y Expr
}

func (NumberExpr) exprNode() {}
func (IdentExpr) exprNode()  {}
func (UnaryExpr) exprNode()  {}
func (BinaryExpr) exprNode() {}

// exprParser is a recursive-descent parser over a flat Token slice,
// implementing the precedence table of spec §4.5 from lowest to highest:
// (1) || && ; (2) relational ; (3) + - ; (4) * / % ; (5) unary + - ! ;
// (6) literal / identifier / parenthesized expression.
type exprParser struct {
	toks []Token
	pos  int
}

func parseExprTokens(toks []Token) (Expr, error) {
	p := &exprParser{toks: toks}
	e, err := p.parseOrAnd()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("unexpected token %q", p.toks[p.pos].Text)
	}
	return e, nil
}

// ParseExpression parses an isolated expression from source text (spec
// §4.2 parse_expression entry point).
func ParseExpression(text string) (Expr, error) {
	return parseExprTokens(Tokenize(text))
}

func (p *exprParser) peek() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *exprParser) next() (Token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

func isOpText(t Token, texts ...string) bool {
	if t.Rule != RuleOp && t.Rule != RuleMode {
		return false
	}
	for _, s := range texts {
		if t.Text == s {
			return true
		}
	}
	return false
}

func (p *exprParser) parseOrAnd() (Expr, error) {
	x, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || !isOpText(t, "||", "&&") {
			return x, nil
		}
		p.pos++
		y, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		x = BinaryExpr{Op: t.Text, X: x, Y: y}
	}
}

func (p *exprParser) parseRelational() (Expr, error) {
	x, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || !isOpText(t, "<", "<=", ">", ">=", "==", "!=") {
			return x, nil
		}
		p.pos++
		y, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		x = BinaryExpr{Op: t.Text, X: x, Y: y}
	}
}

func (p *exprParser) parseAdditive() (Expr, error) {
	x, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || !isOpText(t, "+", "-") {
			return x, nil
		}
		p.pos++
		y, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		x = BinaryExpr{Op: t.Text, X: x, Y: y}
	}
}

func (p *exprParser) parseMultiplicative() (Expr, error) {
	x, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || !isOpText(t, "*", "/", "%") {
			return x, nil
		}
		p.pos++
		y, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		x = BinaryExpr{Op: t.Text, X: x, Y: y}
	}
}

func (p *exprParser) parseUnary() (Expr, error) {
	t, ok := p.peek()
	if ok && isOpText(t, "+", "-", "!") {
		p.pos++
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return UnaryExpr{Op: t.Text[0], X: x}, nil
	}
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (Expr, error) {
	t, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	switch t.Rule {
	case RuleNumber:
		n, err := strconv.Atoi(t.Text)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", t.Text, err)
		}
		return NumberExpr{Value: n}, nil
	case RuleIdent:
		return IdentExpr{Name: t.Text}, nil
	case RuleLParen:
		x, err := p.parseOrAnd()
		if err != nil {
			return nil, err
		}
		closing, ok := p.next()
		if !ok || closing.Rule != RuleRParen {
			return nil, fmt.Errorf("expected ')'")
		}
		return x, nil
	default:
		return nil, fmt.Errorf("unexpected token %q in expression", t.Text)
	}
}

// boolToInt converts a logical/relational result to the 0/1 convention of
// spec §4.5.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// evalExpr evaluates e to a signed 32-bit integer (spec §4.5: "all
// intermediate values are signed 32-bit integers"). resolve is consulted
// for every IdentExpr leaf; pass nil if e is known to contain no
// identifiers (true of every Expr by the time the evaluation phase
// reaches it, since the expansion phase's offset-substitution sweep has
// already replaced every label/constant reference with a literal).
func evalExpr(e Expr, resolve func(name string) (int, error)) (int32, error) {
	switch n := e.(type) {
	case NumberExpr:
		return int32(n.Value), nil
	case IdentExpr:
		if resolve == nil {
			return 0, fmt.Errorf("unresolved identifier %q", n.Name)
		}
		v, err := resolve(n.Name)
		if err != nil {
			return 0, err
		}
		return int32(v), nil
	case UnaryExpr:
		x, err := evalExpr(n.X, resolve)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case '+':
			return x, nil
		case '-':
			return -x, nil
		case '!':
			return int32(boolToInt(x == 0)), nil
		}
		return 0, fmt.Errorf("unknown unary operator %q", n.Op)
	case BinaryExpr:
		x, err := evalExpr(n.X, resolve)
		if err != nil {
			return 0, err
		}
		y, err := evalExpr(n.Y, resolve)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case "||":
			return int32(boolToInt(x != 0 || y != 0)), nil
		case "&&":
			return int32(boolToInt(x != 0 && y != 0)), nil
		case "<":
			return int32(boolToInt(x < y)), nil
		case "<=":
			return int32(boolToInt(x <= y)), nil
		case ">":
			return int32(boolToInt(x > y)), nil
		case ">=":
			return int32(boolToInt(x >= y)), nil
		case "==":
			return int32(boolToInt(x == y)), nil
		case "!=":
			return int32(boolToInt(x != y)), nil
		case "+":
			return x + y, nil
		case "-":
			return x - y, nil
		case "*":
			return x * y, nil
		case "/":
			if y == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return x / y, nil
		case "%":
			if y == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return x % y, nil
		}
		return 0, fmt.Errorf("unknown binary operator %q", n.Op)
	default:
		return 0, fmt.Errorf("unknown expression node %T", e)
	}
}
