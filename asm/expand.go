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

	"github.com/db47h/redcode/redcode"
)

// ExpandedField is one operand after the expansion phase: the address
// mode is final, but the expression may still contain arithmetic/logical
// operators (only label and constant references have been resolved to
// numeric literals; evaluating the arithmetic itself is the evaluation
// phase's job, spec §4.5).
type ExpandedField struct {
	HasMode bool
	Mode    redcode.AddressMode
	Expr    Expr
}

// ExpandedInstr is one fully label-resolved instruction, still carrying
// unevaluated arithmetic in its fields.
type ExpandedInstr struct {
	Offset      int
	Opcode      string
	HasModifier bool
	Modifier    string
	Fields      []ExpandedField
}

// Expanded is the output of the expansion phase (spec §4.4):
// CommentsStripped -> Expanded.
type Expanded struct {
	Instructions []ExpandedInstr
	Origin       Expr
	HasOrigin    bool
	Metadata     redcode.Metadata
}

// openEqu tracks an EQU definition while its body lines are still being
// collected (spec §4.4a).
type openEqu struct {
	name      string
	bodyLines [][]Token
}

// expandState is the mutable state threaded through the single left-to-right
// expansion pass (spec §9: "a single splice(range, lines) primitive and a
// hand-maintained cursor"). The pass always looks at the front of lines;
// every line is either fully consumed (removed, possibly after splicing in
// its replacement at the same position so it gets looked at again) or
// turned into an emitted instruction. A FOR block is never "entered" one
// line at a time: its whole body, up to the matching ROF (nesting tracked
// by a simple depth count), is located and unrolled in one step, so the
// cursor never needs to skip over unintepreted lines.
type expandState struct {
	lines         [][]Token
	labels        map[string]*Label
	pendingLabels []string
	pendingEqu    *openEqu
	offset        int
	out           []ExpandedInstr
	errs          Errors
}

// expand implements the expansion phase: CommentsStripped -> Expanded.
func expand(cs *CommentsStripped) (*Expanded, Errors) {
	st := &expandState{
		lines:  append([][]Token(nil), cs.Lines...),
		labels: defaultLabels(),
	}

	for len(st.lines) > 0 {
		st.step()
	}

	if st.pendingEqu != nil {
		st.finalizeEqu()
	}
	if len(st.pendingLabels) > 0 {
		st.errs = append(st.errs, Diagnostic{Msg: "trailing label(s) with no instruction", Warning: true})
	}

	out := &Expanded{Instructions: st.out, Metadata: cs.Metadata}
	if cs.HasOrigin {
		expr, err := st.resolveStandaloneExpr(cs.Origin)
		if err != nil {
			st.errs = append(st.errs, Diagnostic{Msg: "origin: " + err.Error()})
		} else {
			out.Origin = expr
			out.HasOrigin = true
		}
	}
	return out, st.errs
}

// step processes exactly the line at the head of st.lines, mutating
// st.lines (and st.labels, st.out, ...) in place.
func (st *expandState) step() {
	line := st.lines[0]

	parsed, err := parseLineTokens(line)
	if err == nil && (parsed.Kind == LineEquStart || parsed.Kind == LineEquCont) {
		st.collectEqu(parsed)
		st.removeFront()
		return
	}

	// Any non-EQU line closes a pending EQU definition.
	st.finalizeEqu()

	if newLines, substituted := st.trySubstituteEqu(line); substituted {
		st.spliceFront(newLines)
		return
	}

	// No EQU name occurs in line, so it is classified as it stands. A line
	// produced by an EQU substitution comes back here as a new front line
	// and is parsed in its substituted shape.
	parsed, err = parseLineTokens(line)
	if err != nil {
		st.errs = append(st.errs, Diagnostic{Msg: err.Error()})
		st.removeFront()
		return
	}

	switch parsed.Kind {
	case LineFor:
		st.unrollFor(parsed)
	case LineRof:
		st.errs = append(st.errs, Diagnostic{Msg: "ROF without matching FOR"})
		st.removeFront()
	case LineLabelOnly:
		st.pendingLabels = append(st.pendingLabels, parsed.Label)
		st.removeFront()
	case LineInstr:
		st.emitInstr(parsed)
		st.removeFront()
	default:
		// LineEmpty cannot occur here: the directive phase drops empty lines.
		st.removeFront()
	}
}

func (st *expandState) removeFront() {
	st.lines = st.lines[1:]
}

func (st *expandState) spliceFront(replacement [][]Token) {
	st.lines = append(append([][]Token(nil), replacement...), st.lines[1:]...)
}

func (st *expandState) collectEqu(parsed *ParsedLine) {
	if parsed.Kind == LineEquStart {
		if st.pendingEqu != nil {
			st.finalizeEqu()
		}
		st.pendingEqu = &openEqu{name: parsed.EquName}
	} else if st.pendingEqu == nil {
		st.errs = append(st.errs, Diagnostic{Msg: "bare EQU with no preceding label", Warning: true})
		return
	}
	if len(parsed.Expr) == 0 {
		st.errs = append(st.errs, Diagnostic{Msg: "EQU with empty substitution", Warning: true})
	}
	st.pendingEqu.bodyLines = append(st.pendingEqu.bodyLines, parsed.Expr)
}

func (st *expandState) finalizeEqu() {
	if st.pendingEqu == nil {
		return
	}
	eq := st.pendingEqu
	st.pendingEqu = nil
	if _, exists := st.labels[eq.name]; exists {
		st.errs = append(st.errs, Diagnostic{Msg: fmt.Sprintf("label %q already exists", eq.name), Warning: true})
	}
	st.labels[eq.name] = &Label{Kind: SubstitutionKind, Lines: eq.bodyLines}
}

// trySubstituteEqu scans line for the first use of a defined EQU name and
// replaces it with its substitution body, splicing multiple lines in if
// the body spans more than one (spec §4.4a).
func (st *expandState) trySubstituteEqu(line []Token) ([][]Token, bool) {
	for p, t := range line {
		if t.Rule != RuleIdent {
			continue
		}
		lbl, ok := st.labels[t.Text]
		if !ok || lbl.Kind != SubstitutionKind {
			continue
		}
		prefix := append([]Token(nil), line[:p]...)
		suffix := append([]Token(nil), line[p+1:]...)
		body := lbl.Lines
		if len(body) == 0 {
			return [][]Token{append(prefix, suffix...)}, true
		}
		if len(body) == 1 {
			merged := append(append(prefix, body[0]...), suffix...)
			return [][]Token{merged}, true
		}
		first := append(prefix, body[0]...)
		last := append(append([]Token(nil), body[len(body)-1]...), suffix...)
		replacement := make([][]Token, 0, len(body))
		replacement = append(replacement, first)
		replacement = append(replacement, body[1:len(body)-1]...)
		replacement = append(replacement, last)
		return replacement, true
	}
	return nil, false
}

// unrollFor handles a FOR line at the front of st.lines: it locates the
// matching ROF (honoring nesting depth, spec §5 "nested FOR loops"),
// evaluates the count expression, and splices the unrolled body back in
// place of the whole FOR...ROF block. Nested FOR/ROF pairs inside the body
// are left untouched in their raw, un-substituted form: each unrolled copy
// re-enters this same pass and unrolls its own nested blocks independently,
// which is what makes an inner INDEX label distinct per outer iteration.
func (st *expandState) unrollFor(forLine *ParsedLine) {
	depth := 0
	end := -1
	for j := 1; j < len(st.lines); j++ {
		p, err := parseLineTokens(st.lines[j])
		if err != nil {
			continue
		}
		switch p.Kind {
		case LineFor:
			depth++
		case LineRof:
			if depth == 0 {
				end = j
			} else {
				depth--
			}
		}
		if end != -1 {
			break
		}
	}
	if end == -1 {
		st.errs = append(st.errs, Diagnostic{Msg: "unterminated FOR block"})
		st.lines = nil
		return
	}

	body := append([][]Token(nil), st.lines[1:end]...)

	countE, err := parseExprTokens(forLine.Expr)
	if err != nil {
		st.errs = append(st.errs, Diagnostic{Msg: "FOR count: " + err.Error()})
		st.lines = st.lines[end+1:]
		return
	}
	resolved, err := resolveLabelIdents(countE, valueResolver(st.labels, false, st.offset))
	if err != nil {
		st.errs = append(st.errs, Diagnostic{Msg: "FOR count: " + err.Error()})
		st.lines = st.lines[end+1:]
		return
	}
	k32, err := evalExpr(resolved, nil)
	if err != nil {
		st.errs = append(st.errs, Diagnostic{Msg: "FOR count: " + err.Error()})
		st.lines = st.lines[end+1:]
		return
	}
	k := int(k32)
	if k < 0 {
		st.errs = append(st.errs, Diagnostic{Msg: "FOR count must not be negative"})
		k = 0
	}

	unrolled := make([][]Token, 0, k*len(body))
	for i := 1; i <= k; i++ {
		for _, bl := range body {
			unrolled = append(unrolled, substituteIndex(bl, forLine.IndexLabel, i))
		}
	}

	tail := append([][]Token(nil), st.lines[end+1:]...)
	st.lines = append(unrolled, tail...)
}

// substituteIndex returns a copy of line with every Ident token matching
// indexLabel replaced by the literal integer i. If indexLabel is empty
// (no INDEX was given), line is returned unchanged.
func substituteIndex(line []Token, indexLabel string, i int) []Token {
	if indexLabel == "" {
		return append([]Token(nil), line...)
	}
	out := make([]Token, len(line))
	for j, t := range line {
		if t.Rule == RuleIdent && t.Text == indexLabel {
			out[j] = Token{Rule: RuleNumber, Column: t.Column, Text: strconv.Itoa(i)}
		} else {
			out[j] = t
		}
	}
	return out
}

// emitInstr resolves pending labels to the current offset, then appends
// the instruction to st.out with label-resolved (but not yet evaluated)
// field expressions.
func (st *expandState) emitInstr(parsed *ParsedLine) {
	if parsed.HasLabel {
		st.pendingLabels = append(st.pendingLabels, parsed.Label)
	}
	for _, name := range st.pendingLabels {
		if _, exists := st.labels[name]; exists {
			st.errs = append(st.errs, Diagnostic{Msg: fmt.Sprintf("label %q already exists", name), Warning: true})
		}
		st.labels[name] = &Label{Kind: AbsoluteOffset, Offset: st.offset}
	}
	st.pendingLabels = nil

	in := ExpandedInstr{
		Offset:      st.offset,
		Opcode:      parsed.Instr.Opcode,
		HasModifier: parsed.Instr.HasModifier,
		Modifier:    parsed.Instr.Modifier,
	}
	resolver := valueResolver(st.labels, true, st.offset)
	for _, f := range parsed.Instr.Fields {
		e, err := parseExprTokens(f.Expr)
		if err != nil {
			st.errs = append(st.errs, Diagnostic{Line: st.offset, Msg: err.Error()})
			continue
		}
		resolved, err := resolveLabelIdents(e, resolver)
		if err != nil {
			st.errs = append(st.errs, Diagnostic{Line: st.offset, Msg: err.Error()})
			continue
		}
		in.Fields = append(in.Fields, ExpandedField{HasMode: f.HasMode, Mode: f.Mode, Expr: resolved})
	}
	st.out = append(st.out, in)
	st.offset++
}

// resolveStandaloneExpr resolves an ORG/END expression the same way a
// field expression is resolved, "as though emitted at offset 0" (spec
// §4.4). EQU substitution is applied repeatedly until no EQU name is left
// in the expression; an origin expression spanning a multi-line EQU body is
// rejected, since an expression cannot itself
// contain multiple statements.
func (st *expandState) resolveStandaloneExpr(toks []Token) (Expr, error) {
	for {
		repl, ok := st.trySubstituteEqu(toks)
		if !ok {
			break
		}
		if len(repl) != 1 {
			return nil, fmt.Errorf("multi-line EQU substitution not valid in an expression")
		}
		toks = repl[0]
	}
	e, err := parseExprTokens(toks)
	if err != nil {
		return nil, err
	}
	return resolveLabelIdents(e, valueResolver(st.labels, true, 0))
}

// valueResolver returns an identifier resolver for evalExpr/resolveLabelIdents.
// When relative is true, an AbsoluteOffset label resolves to a−c (spec
// §4.4's offset-substitution rule); when false (used for FOR count
// expressions) it resolves to its plain absolute value. CURLINE always
// resolves to c.
func valueResolver(labels map[string]*Label, relative bool, c int) func(string) (int, error) {
	return func(name string) (int, error) {
		if name == curline {
			return c, nil
		}
		lbl, ok := labels[name]
		if !ok {
			return 0, fmt.Errorf("undefined label %q", name)
		}
		switch lbl.Kind {
		case AbsoluteOffset:
			if relative {
				return lbl.Offset - c, nil
			}
			return lbl.Offset, nil
		case RelativeOffsetKind:
			return lbl.Offset, nil
		default:
			return 0, fmt.Errorf("label %q is a substitution, not a value", name)
		}
	}
}

// resolveLabelIdents returns a copy of e with every IdentExpr leaf replaced
// by the NumberExpr resolve produces for it.
func resolveLabelIdents(e Expr, resolve func(string) (int, error)) (Expr, error) {
	switch n := e.(type) {
	case NumberExpr:
		return n, nil
	case IdentExpr:
		v, err := resolve(n.Name)
		if err != nil {
			return nil, err
		}
		return NumberExpr{Value: v}, nil
	case UnaryExpr:
		x, err := resolveLabelIdents(n.X, resolve)
		if err != nil {
			return nil, err
		}
		return UnaryExpr{Op: n.Op, X: x}, nil
	case BinaryExpr:
		x, err := resolveLabelIdents(n.X, resolve)
		if err != nil {
			return nil, err
		}
		y, err := resolveLabelIdents(n.Y, resolve)
		if err != nil {
			return nil, err
		}
		return BinaryExpr{Op: n.Op, X: x, Y: y}, nil
	default:
		return nil, fmt.Errorf("unknown expression node %T", e)
	}
}
