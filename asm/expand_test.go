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

import "testing"

func TestValueResolverRelative(t *testing.T) {
	labels := defaultLabels()
	labels["foo"] = &Label{Kind: AbsoluteOffset, Offset: 5}
	labels["idx"] = &Label{Kind: RelativeOffsetKind, Offset: 2}

	r := valueResolver(labels, true, 3)
	if v, err := r("foo"); err != nil || v != 2 {
		t.Errorf("foo: got %d, %v; want 2, nil", v, err)
	}
	if v, err := r("idx"); err != nil || v != 2 {
		t.Errorf("idx: got %d, %v; want 2, nil", v, err)
	}
	if v, err := r(curline); err != nil || v != 3 {
		t.Errorf("CURLINE: got %d, %v; want 3, nil", v, err)
	}
	if _, err := r("nope"); err == nil {
		t.Errorf("expected error for undefined label")
	}
}

func TestValueResolverAbsolute(t *testing.T) {
	labels := defaultLabels()
	labels["foo"] = &Label{Kind: AbsoluteOffset, Offset: 5}
	r := valueResolver(labels, false, 3)
	if v, err := r("foo"); err != nil || v != 5 {
		t.Errorf("foo: got %d, %v; want 5, nil", v, err)
	}
}

func TestResolveLabelIdents(t *testing.T) {
	labels := defaultLabels()
	labels["x"] = &Label{Kind: AbsoluteOffset, Offset: 10}
	e := BinaryExpr{Op: "+", X: IdentExpr{Name: "x"}, Y: NumberExpr{Value: 1}}
	resolved, err := resolveLabelIdents(e, valueResolver(labels, true, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := evalExpr(resolved, nil)
	if err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}
	if v != 11 {
		t.Errorf("got %d, want 11", v)
	}
}

func TestTrySubstituteEquSingleLine(t *testing.T) {
	st := &expandState{labels: defaultLabels()}
	st.labels["N"] = &Label{Kind: SubstitutionKind, Lines: [][]Token{{{Rule: RuleNumber, Text: "5"}}}}
	line := []Token{{Rule: RuleIdent, Text: "MOV"}, {Rule: RuleIdent, Text: "N"}}
	out, ok := st.trySubstituteEqu(line)
	if !ok || len(out) != 1 || len(out[0]) != 2 || out[0][1].Text != "5" {
		t.Fatalf("got %+v, %v", out, ok)
	}
}

func TestFinalizeEquWarnsOnRedefinition(t *testing.T) {
	st := &expandState{labels: defaultLabels()}
	st.labels["N"] = &Label{Kind: SubstitutionKind, Lines: [][]Token{{{Rule: RuleNumber, Text: "1"}}}}
	st.pendingEqu = &openEqu{name: "N", bodyLines: [][]Token{{{Rule: RuleNumber, Text: "2"}}}}
	st.finalizeEqu()
	if len(st.errs.Warnings()) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(st.errs), st.errs)
	}
}
