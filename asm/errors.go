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
)

// Diagnostic is one assembler message: either a fatal error or a warning
// (spec §7). Line is the 1-based source line for comment/directive-phase
// diagnostics; for a diagnostic about an emitted instruction it holds that
// instruction's 0-based offset, and it is 0 where neither is tracked.
// Column is 1-based, and 0 when not tracked at the point the diagnostic was
// raised.
type Diagnostic struct {
	Line    int
	Column  int
	Msg     string
	Warning bool
}

func (d Diagnostic) String() string {
	prefix := ""
	if d.Warning {
		prefix = "Warning: "
	}
	if d.Column > 0 {
		return fmt.Sprintf("%sline %d, col %d: %s", prefix, d.Line, d.Column, d.Msg)
	}
	return fmt.Sprintf("%sline %d: %s", prefix, d.Line, d.Msg)
}

// Errors collects every Diagnostic produced while assembling a source,
// grounded on the teacher's ErrAsm (asm/parser.go): a flat slice with a
// combined Error() string, rather than stopping at the first problem.
type Errors []Diagnostic

func (e Errors) Error() string {
	l := make([]string, 0, len(e))
	for _, d := range e {
		l = append(l, d.String())
	}
	return strings.Join(l, "\n")
}

// Fatal reports whether e contains at least one non-warning diagnostic.
func (e Errors) Fatal() bool {
	for _, d := range e {
		if !d.Warning {
			return true
		}
	}
	return false
}

// Warnings returns the warning-only subset of e.
func (e Errors) Warnings() Errors {
	var w Errors
	for _, d := range e {
		if d.Warning {
			w = append(w, d)
		}
	}
	return w
}
