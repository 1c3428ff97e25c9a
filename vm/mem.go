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

package vm

import (
	"github.com/db47h/redcode/offset"
	"github.com/db47h/redcode/redcode"
)

// Memory is a MARS core: a fixed-size, wraparound-addressed array of
// instructions. Every cell starts out holding redcode.DefaultInstruction.
type Memory []redcode.Instruction

// NewMemory returns a Memory of the given size, every cell initialised to
// redcode.DefaultInstruction.
func NewMemory(size int) Memory {
	m := make(Memory, size)
	for i := range m {
		m[i] = redcode.DefaultInstruction
	}
	return m
}

func (m Memory) wrap(v int) int {
	return offset.New(v, len(m)).Int()
}

// At returns the instruction stored at address addr, wrapping addr into
// [0, len(m)).
func (m Memory) At(addr int) redcode.Instruction {
	return m[m.wrap(addr)]
}

// Set stores in at address addr, wrapping addr into [0, len(m)).
func (m Memory) Set(addr int, in redcode.Instruction) {
	m[m.wrap(addr)] = in
}

// Disassemble renders the instruction at addr in load-file form, in the
// style of pMARS's core dumps.
func (m Memory) Disassemble(addr int) string {
	return m.At(addr).String()
}

// LoadProgram copies the instructions of p into m starting at address at,
// wrapping as necessary, and returns the absolute address of p's first
// executing task.
func (m Memory) LoadProgram(p redcode.Program, at int) int {
	for i, in := range p.Instructions {
		m.Set(at+i, in)
	}
	return m.wrap(at + p.Origin)
}
