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
	"strings"
	"text/scanner"

	"github.com/db47h/redcode/redcode"
)

// Rule classifies a single leaf token produced by Tokenize. The set mirrors
// spec §4.2: Label, Opcode, Modifier, AddressMode, Number, Expression,
// Substitution, For, Rof, Instruction, Field are all downstream groupings
// built on top of these leaves by parseLine; Tokenize itself only emits the
// lexical leaves (Ident, Number, Mode, punctuation, operators).
type Rule int

// Token rules.
const (
	RuleEOF Rule = iota
	RuleIdent
	RuleNumber
	RuleMode
	RuleComma
	RuleDot
	RuleColon
	RuleOp
	RuleLParen
	RuleRParen
)

// Token is one leaf emitted by Tokenize: its rule, source column (0-based,
// rune offset in the line) and literal text.
type Token struct {
	Rule   Rule
	Column int
	Text   string
}

// identRune restricts identifiers to [A-Za-z_][A-Za-z0-9_]* (spec §4.2),
// unlike the teacher's Forth scanner which also accepts symbols and
// punctuation in identifiers (Forth words can be "2dup" or "!"). Redcode
// separates labels from operators/glyphs syntactically, so the rune set is
// narrower here.
func identRune(ch rune, i int) bool {
	if ch == '_' || isASCIILetter(ch) {
		return true
	}
	return i > 0 && ch >= '0' && ch <= '9'
}

// isASCIILetter avoids importing unicode solely for ASCII letters, since
// Redcode identifiers are plain ASCII per spec §4.2.
func isASCIILetter(ch rune) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

// Tokenize splits a single Redcode source line (comments and directive
// handling already stripped by the comment/directive phase) into its flat
// leaf token list, grounded on the teacher's asm/parser.go use of
// text/scanner.Scanner with a custom IsIdentRune: one Scanner is built per
// line here (rather than once for the whole source, as the teacher does for
// its single continuous Forth token stream) because EQU/FOR expansion
// repeatedly re-tokenizes individual lines in place (spec §4.4).
//
// It never returns an error: any byte it cannot classify is reported as a
// RuleOp token carrying that single character, and it is up to parseLine /
// parseExpression to reject nonsensical sequences.
func Tokenize(line string) []Token {
	var s scanner.Scanner
	s.Init(strings.NewReader(line))
	s.Mode = scanner.ScanIdents | scanner.ScanInts
	s.IsIdentRune = identRune
	s.Error = func(*scanner.Scanner, string) {} // surfaced as RuleOp tokens instead

	var toks []Token
	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		col := s.Position.Column - 1
		if col < 0 {
			col = 0
		}
		text := s.TokenText()
		switch tok {
		case scanner.Ident:
			toks = append(toks, Token{RuleIdent, col, text})
		case scanner.Int:
			toks = append(toks, Token{RuleNumber, col, text})
		default:
			toks = append(toks, classifyRune(tok, col, toks))
		}
	}
	return mergeTwoCharOps(toks)
}

func classifyRune(r rune, col int, prev []Token) Token {
	switch r {
	case ',':
		return Token{RuleComma, col, ","}
	case '.':
		return Token{RuleDot, col, "."}
	case ':':
		return Token{RuleColon, col, ":"}
	case '(':
		return Token{RuleLParen, col, "("}
	case ')':
		return Token{RuleRParen, col, ")"}
	}
	if _, ok := redcode.LookupAddressMode(byte(r)); ok {
		// '<' and '>' are both mode glyphs and relational operators; in
		// Redcode grammar a mode glyph only ever appears immediately before
		// a field (i.e. at the very start of an operand), everywhere else
		// it is an operator. parseLine/parseExpression disambiguate by
		// position, so the lexer simply emits both possibilities tagged as
		// RuleMode; parseExpression reinterprets a lone leading RuleMode
		// token as its operator meaning when used mid-expression.
		return Token{RuleMode, col, string(r)}
	}
	return Token{RuleOp, col, string(r)}
}

// mergeTwoCharOps folds adjacent single-rune operator tokens into the
// two-character relational/logical operators (&&, ||, <=, >=, ==, !=).
func mergeTwoCharOps(in []Token) []Token {
	out := make([]Token, 0, len(in))
	for i := 0; i < len(in); i++ {
		if i+1 < len(in) && in[i].Column+len(in[i].Text) == in[i+1].Column &&
			(in[i].Rule == RuleOp || in[i].Rule == RuleMode) &&
			(in[i+1].Rule == RuleOp || in[i+1].Rule == RuleMode) {
			two := in[i].Text + in[i+1].Text
			switch two {
			case "&&", "||", "<=", ">=", "==", "!=":
				out = append(out, Token{RuleOp, in[i].Column, two})
				i++
				continue
			}
		}
		out = append(out, in[i])
	}
	return out
}
