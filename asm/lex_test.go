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

package asm_test

import (
	"testing"

	"github.com/db47h/redcode/asm"
)

func tokTexts(toks []asm.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

func TestTokenizeInstruction(t *testing.T) {
	toks := asm.Tokenize("MOV.I #0, $1")
	want := []string{"MOV", ".", "I", "#", "0", ",", "$", "1"}
	got := tokTexts(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokenizeLabelColon(t *testing.T) {
	toks := asm.Tokenize("loop: ADD #1, 2")
	if len(toks) < 2 || toks[0].Rule != asm.RuleIdent || toks[1].Rule != asm.RuleColon {
		t.Fatalf("expected ident, colon prefix, got %+v", toks[:2])
	}
}

func TestTokenizeTwoCharOperators(t *testing.T) {
	for _, c := range []struct{ src, want string }{
		{"a && b", "&&"},
		{"a || b", "||"},
		{"a <= b", "<="},
		{"a >= b", ">="},
		{"a == b", "=="},
		{"a != b", "!="},
	} {
		toks := asm.Tokenize(c.src)
		found := false
		for _, tk := range toks {
			if tk.Text == c.want {
				found = true
			}
		}
		if !found {
			t.Errorf("%q: expected merged operator %q, got %v", c.src, c.want, tokTexts(toks))
		}
	}
}

func TestTokenizeNegativeNumberIsOpThenNumber(t *testing.T) {
	toks := asm.Tokenize("-1")
	if len(toks) != 2 || toks[0].Text != "-" || toks[1].Text != "1" {
		t.Fatalf("got %v", tokTexts(toks))
	}
}
