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

// LabelKind distinguishes the three things a label can resolve to during
// assembly (spec §3, §9 design note "Labels as tagged unions").
type LabelKind int

// Label kinds.
const (
	AbsoluteOffset LabelKind = iota
	RelativeOffsetKind
	SubstitutionKind
)

// Label is the tagged union a label name maps to while assembling.
// Only one field group is meaningful, selected by Kind:
//   - AbsoluteOffset: Offset is the instruction index the label resolved to.
//   - RelativeOffsetKind: Offset is a signed value already computed (the
//     default constants). FOR index labels and CURLINE are not stored as
//     labels: substituteIndex and valueResolver handle them directly.
//   - SubstitutionKind: Lines holds the EQU body, one token slice per body
//     line, kept as tokens (not text) so the expansion phase can splice
//     them directly into another line without a text round-trip.
type Label struct {
	Kind   LabelKind
	Offset int
	Lines  [][]Token
}

// curline is the pseudo-symbol that resolves to the current instruction
// offset at substitution time (spec §3, §4.4).
const curline = "CURLINE"

// defaultLabels returns a fresh copy of the conventional default-constant
// table (spec §3), preloaded into a label environment. A fresh map is
// handed out per assembly so that one Assemble call's EQU/label
// definitions can never leak into another's.
func defaultLabels() map[string]*Label {
	defaults := map[string]int{
		"CORESIZE":     8000,
		"MAXPROCESSES": 8000,
		"MAXCYCLES":    80000,
		"MAXLENGTH":    100,
		"MINDISTANCE":  100,
		"ROUNDS":       1,
	}
	m := make(map[string]*Label, len(defaults))
	for name, v := range defaults {
		m[name] = &Label{Kind: RelativeOffsetKind, Offset: v}
	}
	return m
}
