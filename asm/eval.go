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

// evaluate implements the evaluation phase (spec §4.5): Expanded ->
// redcode.Warrior. By this point every field expression is free of
// identifiers (the expansion phase replaced every label/constant reference
// with a literal), so evalExpr is called with a nil resolver throughout;
// an identifier surviving to here is a bug in the expansion phase, not a
// user error, and is reported as such.
func evaluate(ex *Expanded) (redcode.Warrior, Errors) {
	var errs Errors
	prog := redcode.Program{Instructions: make([]redcode.Instruction, 0, len(ex.Instructions))}

	for _, in := range ex.Instructions {
		instr, err := evalInstr(in)
		if err != nil {
			errs = append(errs, Diagnostic{Line: in.Offset, Msg: err.Error()})
			continue
		}
		prog.Instructions = append(prog.Instructions, instr)
	}

	if ex.HasOrigin {
		v, err := evalExpr(ex.Origin, nil)
		if err != nil {
			errs = append(errs, Diagnostic{Msg: "origin: " + err.Error()})
		} else if v < 0 {
			errs = append(errs, Diagnostic{Msg: "origin must not be negative"})
		} else {
			prog.Origin = int(v)
		}
	}

	return redcode.Warrior{Program: prog, Metadata: ex.Metadata}, errs
}

func evalInstr(in ExpandedInstr) (redcode.Instruction, error) {
	op, ok := redcode.LookupOpcode(in.Opcode)
	if !ok {
		return redcode.Instruction{}, fmt.Errorf("unknown opcode %q", in.Opcode)
	}

	var a, b redcode.Field
	switch len(in.Fields) {
	case 1:
		fa, err := evalField(in.Fields[0])
		if err != nil {
			return redcode.Instruction{}, err
		}
		bf, ok := redcode.OneOperandDefaults(op, fa)
		if !ok {
			return redcode.Instruction{}, fmt.Errorf("%s requires two operands", in.Opcode)
		}
		// DAT x means the lone field is the B operand with A defaulting
		// to #0; every other one-operand opcode keeps the field as A.
		if op == redcode.DAT {
			a = redcode.ImmediateField(0)
		} else {
			a = fa
		}
		b = bf
	case 2:
		fa, err := evalField(in.Fields[0])
		if err != nil {
			return redcode.Instruction{}, err
		}
		fb, err := evalField(in.Fields[1])
		if err != nil {
			return redcode.Instruction{}, err
		}
		a, b = fa, fb
	default:
		return redcode.Instruction{}, fmt.Errorf("%s: wrong number of operands", in.Opcode)
	}

	mod := redcode.ModF
	if in.HasModifier {
		m, ok := redcode.LookupModifier(strings.ToUpper(in.Modifier))
		if !ok {
			return redcode.Instruction{}, fmt.Errorf("unknown modifier %q", in.Modifier)
		}
		mod = m
	} else {
		mod = redcode.InferModifier(op, a, b)
	}

	return redcode.Instruction{Opcode: op, Modifier: mod, A: a, B: b}, nil
}

func evalField(f ExpandedField) (redcode.Field, error) {
	v, err := evalExpr(f.Expr, nil)
	if err != nil {
		return redcode.Field{}, err
	}
	mode := redcode.Direct
	if f.HasMode {
		mode = f.Mode
	}
	return redcode.Field{Mode: mode, Value: int(v), Resolved: true}, nil
}
