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
	"strings"

	"github.com/db47h/redcode/redcode"
)

// pseudoOps are the pseudo-opcodes recognised by the comment/directive and
// expansion phases (spec §4.2).
var pseudoOps = map[string]bool{
	"EQU": true,
	"ORG": true,
	"END": true,
	"FOR": true,
	"ROF": true,
}

func isReservedWord(s string) bool {
	u := strings.ToUpper(s)
	if pseudoOps[u] {
		return true
	}
	_, ok := redcode.LookupOpcode(u)
	return ok
}

// FieldSyntax is one operand as written in source: an optional address
// mode glyph plus the (not yet evaluated) expression tokens.
type FieldSyntax struct {
	HasMode bool
	Mode    redcode.AddressMode
	Expr    []Token
}

// InstrLine is the structured form of a plain instruction line (opcode,
// optional modifier, one or two fields).
type InstrLine struct {
	Opcode      string
	HasModifier bool
	Modifier    string
	Fields      []FieldSyntax
}

// LineKind classifies a source line as recognised by parseLine (spec §4.2,
// §4.3, §4.4). The directive and expansion phases dispatch on Kind rather
// than re-deriving it from raw tokens.
type LineKind int

// Line kinds.
const (
	LineEmpty LineKind = iota
	LineOrg
	LineEnd
	LineEquStart
	LineEquCont
	LineFor
	LineRof
	LineLabelOnly
	LineInstr
)

// ParsedLine is the structured tree parse_line (spec §4.2) produces for a
// single line.
type ParsedLine struct {
	Kind       LineKind
	HasLabel   bool
	Label      string
	EquName    string
	IndexLabel string
	Expr       []Token
	Instr      *InstrLine
}

// parseLine implements parse_line(line) (spec §4.2): it recognises a
// label prefix, then classifies the remainder as one of the pseudo-op
// forms or a plain instruction.
func parseLine(line string) (*ParsedLine, error) {
	return parseLineTokens(Tokenize(line))
}

// parseLineTokens is parseLine operating on an already-tokenized line. The
// expansion phase (spec §4.4) keeps its working lines as token slices
// rather than text, so that EQU/FOR/label substitution can splice tokens
// directly; re-tokenizing is only ever needed once, when a line first
// enters the expansion phase.
func parseLineTokens(toks []Token) (*ParsedLine, error) {
	if len(toks) == 0 {
		return &ParsedLine{Kind: LineEmpty}, nil
	}

	label, hasLabel, rest := splitLabel(toks)

	if len(rest) == 0 {
		if hasLabel {
			return &ParsedLine{Kind: LineLabelOnly, HasLabel: true, Label: label}, nil
		}
		return &ParsedLine{Kind: LineEmpty}, nil
	}

	if rest[0].Rule == RuleIdent {
		switch strings.ToUpper(rest[0].Text) {
		case "ORG":
			return &ParsedLine{Kind: LineOrg, HasLabel: hasLabel, Label: label, Expr: rest[1:]}, nil
		case "END":
			return &ParsedLine{Kind: LineEnd, HasLabel: hasLabel, Label: label, Expr: rest[1:]}, nil
		case "EQU":
			if hasLabel {
				return &ParsedLine{Kind: LineEquStart, EquName: label, Expr: rest[1:]}, nil
			}
			return &ParsedLine{Kind: LineEquCont, Expr: rest[1:]}, nil
		case "FOR":
			return &ParsedLine{Kind: LineFor, IndexLabel: label, Expr: rest[1:]}, nil
		case "ROF":
			return &ParsedLine{Kind: LineRof}, nil
		}
	}

	instr, err := parseInstrTokens(rest)
	if err != nil {
		return nil, err
	}
	return &ParsedLine{Kind: LineInstr, HasLabel: hasLabel, Label: label, Instr: instr}, nil
}

// splitLabel consumes a leading label token, if any. A label is an
// identifier optionally followed by ':' (spec §4.2); if not followed by
// ':', it is only a label when it is not itself a reserved opcode or
// pseudo-op name (so that "ADD 1,2" is not misparsed as label "ADD" with
// no instruction).
func splitLabel(toks []Token) (label string, hasLabel bool, rest []Token) {
	if len(toks) == 0 || toks[0].Rule != RuleIdent {
		return "", false, toks
	}
	if len(toks) > 1 && toks[1].Rule == RuleColon {
		return toks[0].Text, true, toks[2:]
	}
	if isReservedWord(toks[0].Text) {
		return "", false, toks
	}
	return toks[0].Text, true, toks[1:]
}

// parseInstrTokens parses "OPCODE[.MODIFIER] FIELD [, FIELD]" (spec §6).
func parseInstrTokens(toks []Token) (*InstrLine, error) {
	if len(toks) == 0 || toks[0].Rule != RuleIdent {
		return nil, fmt.Errorf("expected opcode")
	}
	in := &InstrLine{Opcode: strings.ToUpper(toks[0].Text)}
	pos := 1
	if pos < len(toks) && toks[pos].Rule == RuleDot {
		pos++
		if pos >= len(toks) || toks[pos].Rule != RuleIdent {
			return nil, fmt.Errorf("expected modifier after '.'")
		}
		in.HasModifier = true
		in.Modifier = strings.ToUpper(toks[pos].Text)
		pos++
	}

	rest := toks[pos:]
	if len(rest) == 0 {
		return nil, fmt.Errorf("%s: missing operand", in.Opcode)
	}

	fieldToks := splitOnComma(rest)
	if len(fieldToks) > 2 {
		return nil, fmt.Errorf("%s: too many operands", in.Opcode)
	}
	for _, ft := range fieldToks {
		f, err := parseField(ft)
		if err != nil {
			return nil, err
		}
		in.Fields = append(in.Fields, f)
	}
	return in, nil
}

// splitOnComma splits toks at top-level commas (commas are never legal
// inside a field's expression, so no paren-depth tracking is needed).
func splitOnComma(toks []Token) [][]Token {
	var groups [][]Token
	start := 0
	for i, t := range toks {
		if t.Rule == RuleComma {
			groups = append(groups, toks[start:i])
			start = i + 1
		}
	}
	groups = append(groups, toks[start:])
	return groups
}

func parseField(toks []Token) (FieldSyntax, error) {
	if len(toks) == 0 {
		return FieldSyntax{}, fmt.Errorf("empty operand")
	}
	f := FieldSyntax{}
	if toks[0].Rule == RuleMode {
		mode, ok := redcode.LookupAddressMode(toks[0].Text[0])
		if !ok {
			return FieldSyntax{}, fmt.Errorf("unknown address mode %q", toks[0].Text)
		}
		f.HasMode = true
		f.Mode = mode
		toks = toks[1:]
	}
	if len(toks) == 0 {
		return FieldSyntax{}, fmt.Errorf("operand missing expression")
	}
	f.Expr = toks
	return f, nil
}
