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
	"strings"
	"testing"

	"github.com/db47h/redcode/asm"
	"github.com/db47h/redcode/redcode"
)

func mustAssemble(t *testing.T, src string) redcode.Warrior {
	t.Helper()
	w, errs := asm.Assemble("test", strings.NewReader(src))
	if errs.Fatal() {
		t.Fatalf("unexpected fatal errors: %v", errs)
	}
	return w
}

func TestAssembleEmptyInput(t *testing.T) {
	w := mustAssemble(t, "")
	if len(w.Program.Instructions) != 0 {
		t.Fatalf("expected no instructions, got %d", len(w.Program.Instructions))
	}
}

func TestAssembleDuplicateLabelWarns(t *testing.T) {
	src := "a DAT #0, #0\na DAT #1, #1\n"
	w, errs := asm.Assemble("test", strings.NewReader(src))
	if errs.Fatal() {
		t.Fatalf("unexpected fatal errors: %v", errs)
	}
	if len(errs.Warnings()) == 0 {
		t.Fatalf("expected a duplicate-label warning")
	}
	if len(w.Program.Instructions) != 2 {
		t.Fatalf("expected 2 instructions, got %d", len(w.Program.Instructions))
	}
}

func TestAssembleDefaultModifierInference(t *testing.T) {
	w := mustAssemble(t, "MOV 0, 1\n")
	if len(w.Program.Instructions) != 1 {
		t.Fatalf("expected 1 instruction, got %d", len(w.Program.Instructions))
	}
	in := w.Program.Instructions[0]
	if in.Modifier != redcode.ModI {
		t.Errorf("expected inferred modifier I, got %s", in.Modifier)
	}
	if in.A.Mode != redcode.Direct || in.A.Value != 0 {
		t.Errorf("unexpected A field: %+v", in.A)
	}
	if in.B.Mode != redcode.Direct || in.B.Value != 1 {
		t.Errorf("unexpected B field: %+v", in.B)
	}
}

func TestAssembleForUnrollWithIndex(t *testing.T) {
	// base is a bare label (no instruction of its own): it aliases the
	// offset of the first unrolled MOV, i.e. offset 0.
	src := "base\nN FOR 3\nMOV base, N\nROF\n"
	w := mustAssemble(t, src)
	if len(w.Program.Instructions) != 3 {
		t.Fatalf("expected 3 unrolled instructions, got %d", len(w.Program.Instructions))
	}
	wantA := []int{0, -1, -2}
	for i, want := range wantA {
		in := w.Program.Instructions[i]
		if in.A.Value != want {
			t.Errorf("line %d: A = %d, want %d", i, in.A.Value, want)
		}
		if in.B.Value != i+1 {
			t.Errorf("line %d: B = %d, want %d", i, in.B.Value, i+1)
		}
	}
}

func TestAssembleEquMultiLine(t *testing.T) {
	src := "step EQU MOV 1, 1\nEQU JMN 0, -1\nstep\nstep\n"
	w := mustAssemble(t, src)
	if len(w.Program.Instructions) != 4 {
		t.Fatalf("expected 4 instructions from 2 expansions of a 2-line EQU, got %d", len(w.Program.Instructions))
	}
	if w.Program.Instructions[0].Opcode != redcode.MOV || w.Program.Instructions[1].Opcode != redcode.JMN {
		t.Fatalf("unexpected opcodes: %s, %s", w.Program.Instructions[0].Opcode, w.Program.Instructions[1].Opcode)
	}
	if w.Program.Instructions[2].Opcode != redcode.MOV || w.Program.Instructions[3].Opcode != redcode.JMN {
		t.Fatalf("second expansion mismatch: %s, %s", w.Program.Instructions[2].Opcode, w.Program.Instructions[3].Opcode)
	}
}

func TestAssembleOriginExpression(t *testing.T) {
	src := "ORG start\nDAT #0, #0\nstart DAT #0, #0\nDAT #0, #0\n"
	w := mustAssemble(t, src)
	if w.Program.Origin != 1 {
		t.Fatalf("expected origin 1, got %d", w.Program.Origin)
	}
}

func TestAssembleMetadataDirectives(t *testing.T) {
	src := ";name Imp\n;author A. K. Dewdney\nMOV 0, 1\n"
	w := mustAssemble(t, src)
	if w.Metadata.Name != "Imp" || w.Metadata.Author != "A. K. Dewdney" {
		t.Fatalf("unexpected metadata: %+v", w.Metadata)
	}
}

func TestAssembleUndefinedLabelIsFatal(t *testing.T) {
	_, errs := asm.Assemble("test", strings.NewReader("MOV nosuchlabel, 0\n"))
	if !errs.Fatal() {
		t.Fatalf("expected a fatal error for an undefined label")
	}
}
