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

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// fieldText renders a Field as it appears in load-file form: the mode
// glyph (always printed, even for Direct) followed by the signed value.
// Unresolved fields (still holding a label) render the label verbatim;
// this only happens if a caller deliberately renders a pre-Evaluated
// Field, which load-file output never does.
func fieldText(f Field) string {
	if !f.Resolved {
		return string(f.Mode.Glyph()) + f.Label
	}
	return string(f.Mode.Glyph()) + strconv.Itoa(f.Value)
}

// String renders the instruction in load-file form, e.g. "MOV.I   $0,     $1".
// Columns: opcode+modifier left-padded to 8 characters, A-field with its
// trailing comma padded to 8 characters, then the B-field.
func (ins Instruction) String() string {
	op := ins.Opcode.String() + "." + ins.Modifier.String()
	a := fieldText(ins.A) + ","
	b := fieldText(ins.B)
	return fmt.Sprintf("%-8s%-8s%s", op, a, b)
}

// WriteLoadFile writes p in canonical load-file form to w: an ORG line
// followed by one instruction per line. The lines are assembled into one
// string before the single write to w, rather than one write per line.
func WriteLoadFile(w io.Writer, p Program) error {
	lines := make([]string, 0, len(p.Instructions)+1)
	lines = append(lines, fmt.Sprintf("ORG     %d", p.Origin))
	for _, ins := range p.Instructions {
		lines = append(lines, ins.String())
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
