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

// Package asm assembles Redcode '94 source into a redcode.Warrior.
//
// Opcodes:
//
//	DAT MOV ADD SUB MUL DIV MOD JMP JMZ JMN DJN CMP SNE SLT SPL NOP
//
// SEQ is accepted everywhere as an alias for CMP.
//
// Modifiers (".A" ".B" ".AB" ".BA" ".F" ".X" ".I") select which field(s) of
// the operands an instruction acts on. A modifier may always be omitted; the
// assembler infers one from the opcode and operand address modes following
// the standard 88-to-94 table.
//
// Address modes, one optional glyph prefixing an operand:
//
//	#  immediate
//	$  direct (default when no glyph is given)
//	*  indirect via A-field
//	@  indirect via B-field
//	{  predecrement indirect via A-field
//	<  predecrement indirect via B-field
//	}  postincrement indirect via A-field
//	>  postincrement indirect via B-field
//
// Comments run from ';' to end of line. A comment of the form
// ";redcode value", ";name value", ";author value", ";date value",
// ";version value", ";strategy value" or ";assert value" is recorded into
// the assembled Warrior's Metadata instead of being discarded. The directive
// word must stand alone: ";redcode-94" is not recognised.
//
// Pseudo-opcodes:
//
//	label EQU rhs    textual substitution: every later use of label is
//	                 replaced by rhs. A bare "EQU rhs" line continues the
//	                 most recent EQU with another body line.
//	ORG expr         sets the program's starting offset (first ORG/END wins).
//	END [expr]       optional trailing ORG, then ends assembly: anything
//	                 after it is ignored.
//	label FOR count  unrolls the lines up to the matching ROF count times;
//	                 if label is given it is substituted with the 1-based
//	                 iteration number on each copy.
//	ROF
//
// A label is an identifier, optionally followed by ':', appearing before an
// instruction or alone on its own line; it resolves to the offset, relative
// to the line referencing it, of the next instruction that follows it.
// CURLINE resolves to a field's own offset. CORESIZE, MAXPROCESSES,
// MAXCYCLES, MAXLENGTH, MINDISTANCE and ROUNDS are predefined to their usual
// pMARS contest defaults and may be referenced like any other label.
package asm
