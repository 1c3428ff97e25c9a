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

// Package redcode defines the Redcode '94 instruction set: opcodes,
// modifiers, address modes, fields, instructions and whole warriors, plus
// rendering of instructions in load-file form.
package redcode

// Opcode identifies a Redcode operation.
type Opcode int

// Redcode '94 opcodes. SEQ is an alias of CMP.
const (
	DAT Opcode = iota
	MOV
	ADD
	SUB
	MUL
	DIV
	MOD
	JMP
	JMZ
	JMN
	DJN
	CMP
	SNE
	SLT
	SPL
	NOP
)

// SEQ is an alias for CMP.
const SEQ = CMP

var opcodeNames = [...]string{
	DAT: "DAT",
	MOV: "MOV",
	ADD: "ADD",
	SUB: "SUB",
	MUL: "MUL",
	DIV: "DIV",
	MOD: "MOD",
	JMP: "JMP",
	JMZ: "JMZ",
	JMN: "JMN",
	DJN: "DJN",
	CMP: "CMP",
	SNE: "SNE",
	SLT: "SLT",
	SPL: "SPL",
	NOP: "NOP",
}

func (o Opcode) String() string {
	if o < 0 || int(o) >= len(opcodeNames) {
		return "???"
	}
	return opcodeNames[o]
}

// opcodeIndex maps source mnemonics (including the SEQ alias) to Opcode
// values. Built once from opcodeNames rather than maintained as a second
// literal table, so the alias is the only place the two can diverge.
var opcodeIndex = func() map[string]Opcode {
	m := make(map[string]Opcode, len(opcodeNames)+1)
	for op, name := range opcodeNames {
		m[name] = Opcode(op)
	}
	m["SEQ"] = CMP
	return m
}()

// LookupOpcode returns the Opcode named by s and true, or false if s is not
// a known mnemonic.
func LookupOpcode(s string) (Opcode, bool) {
	op, ok := opcodeIndex[s]
	return op, ok
}

// Modifier selects which field(s) of the A and B operands an opcode acts
// upon.
type Modifier int

// Redcode '94 modifiers.
const (
	ModA Modifier = iota
	ModB
	ModAB
	ModBA
	ModF
	ModX
	ModI
)

var modifierNames = [...]string{
	ModA:  "A",
	ModB:  "B",
	ModAB: "AB",
	ModBA: "BA",
	ModF:  "F",
	ModX:  "X",
	ModI:  "I",
}

func (m Modifier) String() string {
	if m < 0 || int(m) >= len(modifierNames) {
		return "?"
	}
	return modifierNames[m]
}

var modifierIndex = func() map[string]Modifier {
	m := make(map[string]Modifier, len(modifierNames))
	for mod, name := range modifierNames {
		m[name] = Modifier(mod)
	}
	return m
}()

// LookupModifier returns the Modifier named by s and true, or false if s is
// not a known modifier suffix.
func LookupModifier(s string) (Modifier, bool) {
	mod, ok := modifierIndex[s]
	return mod, ok
}

// AddressMode identifies how a Field's value is used to compute an
// effective address.
type AddressMode int

// Redcode '94 address modes.
const (
	Immediate AddressMode = iota
	Direct
	IndirectA
	IndirectB
	PreDecIndirectA
	PreDecIndirectB
	PostIncIndirectA
	PostIncIndirectB
)

var modeGlyphs = [...]byte{
	Immediate:        '#',
	Direct:           '$',
	IndirectA:        '*',
	IndirectB:        '@',
	PreDecIndirectA:  '{',
	PreDecIndirectB:  '<',
	PostIncIndirectA: '}',
	PostIncIndirectB: '>',
}

// Glyph returns the single-character mode prefix used in source and
// load-file text.
func (m AddressMode) Glyph() byte {
	if m < 0 || int(m) >= len(modeGlyphs) {
		return '?'
	}
	return modeGlyphs[m]
}

func (m AddressMode) String() string {
	return string(m.Glyph())
}

var modeByGlyph = func() map[byte]AddressMode {
	g := make(map[byte]AddressMode, len(modeGlyphs))
	for m, b := range modeGlyphs {
		g[b] = AddressMode(m)
	}
	return g
}()

// LookupAddressMode returns the AddressMode for glyph b and true, or false
// if b is not one of the eight recognised mode glyphs.
func LookupAddressMode(b byte) (AddressMode, bool) {
	m, ok := modeByGlyph[b]
	return m, ok
}
