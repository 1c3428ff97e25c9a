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
	"fmt"
	"strings"

	"github.com/db47h/redcode/asm"
)

func ExampleAssemble() {
	src := ";name Imp\n;author A. K. Dewdney\nMOV 0, 1\n"
	w, errs := asm.Assemble("imp.red", strings.NewReader(src))
	if errs.Fatal() {
		panic(errs)
	}
	in := w.Program.Instructions[0]
	fmt.Printf("%s: %s.%s %c%d, %c%d\n", w.Metadata.Name, in.Opcode, in.Modifier,
		in.A.Mode.Glyph(), in.A.Value, in.B.Mode.Glyph(), in.B.Value)
	// Output:
	// Imp: MOV.I $0, $1
}
