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
	"io"
	"strings"

	"github.com/db47h/redcode/redcode"
)

// Assemble compiles Redcode source read from r and returns the assembled
// Warrior plus any diagnostics produced. Fatal errors are reported through
// the returned Errors (err.Fatal() is true); a non-fatal Errors value may
// still be returned alongside a usable Warrior to report warnings such as
// label redefinition.
//
// The name parameter prefixes only the diagnostic reported when reading r
// fails; the diagnostics of the assembly phases do not carry it.
func Assemble(name string, r io.Reader) (redcode.Warrior, Errors) {
	src, err := io.ReadAll(r)
	if err != nil {
		return redcode.Warrior{}, Errors{{Msg: name + ": " + err.Error()}}
	}

	cs, errs := stripComments(string(src))
	if errs.Fatal() {
		return redcode.Warrior{}, errs
	}

	ex, exErrs := expand(cs)
	errs = append(errs, exErrs...)
	if errs.Fatal() {
		return redcode.Warrior{}, errs
	}

	w, evErrs := evaluate(ex)
	errs = append(errs, evErrs...)
	return w, errs
}

// Preprocess runs only the comment/directive phase (spec §4.3): comments
// and metadata directives stripped, ORG/END consumed, but no EQU
// substitution or FOR/ROF unrolling performed. It backs the CLI's
// "dump --no-expand" flag, which shows source as the assembler sees it
// before the expansion phase rewrites labels and loops.
func Preprocess(name string, r io.Reader) (string, redcode.Metadata, Errors) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", redcode.Metadata{}, Errors{{Msg: name + ": " + err.Error()}}
	}
	cs, errs := stripComments(string(src))
	var b strings.Builder
	for _, line := range cs.Lines {
		for i, tok := range line {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(tok.Text)
		}
		b.WriteByte('\n')
	}
	return b.String(), cs.Metadata, errs
}
