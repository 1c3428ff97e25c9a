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

package redcode

// Field is one operand of an Instruction: an address mode plus a value.
// During assembly, before the Evaluated phase, Label may hold a symbolic
// name instead of a resolved Value; Resolved reports which is current.
type Field struct {
	Mode     AddressMode
	Value    int
	Label    string
	Resolved bool
}

// ImmediateField returns a resolved Field with the Immediate address mode.
func ImmediateField(v int) Field { return Field{Mode: Immediate, Value: v, Resolved: true} }

// DirectField returns a resolved Field with the Direct address mode.
func DirectField(v int) Field { return Field{Mode: Direct, Value: v, Resolved: true} }

// Instruction is a single Redcode instruction: an opcode, a modifier and
// two fields.
type Instruction struct {
	Opcode   Opcode
	Modifier Modifier
	A        Field
	B        Field
}

// DefaultInstruction is the value every core cell holds before a warrior is
// loaded: "DAT.F #0, #0".
var DefaultInstruction = Instruction{
	Opcode:   DAT,
	Modifier: ModF,
	A:        ImmediateField(0),
	B:        ImmediateField(0),
}

// InferModifier applies the 88-to-94 default modifier table (spec §3) to an
// instruction whose modifier was omitted in source. It is idempotent: if
// in.Modifier was already set explicitly, pass it through unchanged by
// calling InferModifier only when the source omitted a modifier.
func InferModifier(op Opcode, a, b Field) Modifier {
	switch op {
	case DAT:
		return ModF
	case JMP, JMZ, JMN, DJN, SPL, NOP:
		return ModB
	}
	if a.Mode == Immediate {
		return ModAB
	}
	if b.Mode == Immediate {
		return ModB
	}
	switch op {
	case MOV, CMP, SNE:
		return ModI
	case SLT:
		return ModB
	default: // ADD, SUB, MUL, DIV, MOD
		return ModF
	}
}

// OneOperandDefaults expands a single-field instruction to its two-field
// pMARS-compatible form (spec §4.5). ok is false if op does not accept a
// single operand.
func OneOperandDefaults(op Opcode, a Field) (b Field, ok bool) {
	switch op {
	case DAT:
		// DAT x -> DAT.F #0, x : the given field becomes B, A is #0.
		return a, true
	case JMP, SPL, NOP:
		// <op> x -> <op>.B x, $0
		return DirectField(0), true
	default:
		return Field{}, false
	}
}

// Metadata holds the informational fields extracted from ;redcode-style
// comment directives. All fields are optional and purely descriptive.
type Metadata struct {
	Redcode   string
	Name      string
	Author    string
	Date      string
	Version   string
	Strategy  string
	Assertion string
}

// Program is a fully assembled, ordered sequence of instructions plus the
// offset the warrior's first task starts executing at.
type Program struct {
	Instructions []Instruction
	Origin       int
}

// Warrior pairs an assembled Program with its Metadata.
type Warrior struct {
	Program  Program
	Metadata Metadata
}
