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
	"github.com/pkg/errors"

	"github.com/db47h/redcode/redcode"
)

// fieldSel names one field of an Instruction, used to express a modifier's
// field-selection table without repeating a four-way if/else at every call
// site.
type fieldSel int

const (
	selA fieldSel = iota
	selB
)

func getSel(in redcode.Instruction, s fieldSel) int {
	if s == selA {
		return in.A.Value
	}
	return in.B.Value
}

func setSel(in *redcode.Instruction, s fieldSel, v int) {
	if s == selA {
		in.A.Value = v
	} else {
		in.B.Value = v
	}
}

// fieldPairs returns the (source, destination) field selectors a modifier
// combines, per the §3 modifier table. ModI is handled by its callers
// (whole-instruction semantics for MOV/CMP/SNE); everywhere else it falls
// through to the same pairing as ModF.
func fieldPairs(mod redcode.Modifier) [][2]fieldSel {
	switch mod {
	case redcode.ModA:
		return [][2]fieldSel{{selA, selA}}
	case redcode.ModB:
		return [][2]fieldSel{{selB, selB}}
	case redcode.ModAB:
		return [][2]fieldSel{{selA, selB}}
	case redcode.ModBA:
		return [][2]fieldSel{{selB, selA}}
	case redcode.ModX:
		return [][2]fieldSel{{selA, selB}, {selB, selA}}
	default: // ModF, ModI
		return [][2]fieldSel{{selA, selA}, {selB, selB}}
	}
}

// stepOutcome is what execute found out about the single task it ran.
type stepOutcome struct {
	nextPC  int
	alive   bool
	spawned bool
	spawnPC int
}

// execute runs the instruction at pc for one task and reports how its
// caller (Core.Step) should update that task's queue entry. The ordering
// of side effects here — A-pointer resolve, A register capture, B-pointer
// resolve (with its own side effects), B register capture, then dispatch —
// is load-bearing: programs that rely on pre/post increment timing depend
// on it.
func (c *Core) execute(pc int) (out stepOutcome, err error) {
	defer func() {
		if e := recover(); e != nil {
			err = errors.Errorf("vm: internal error executing offset %d: %v", pc, e)
		}
	}()

	in := c.Memory.At(pc)
	effA := c.resolveField(pc, in.A)
	aReg := c.Memory.At(effA)
	effB := c.resolveField(pc, in.B)
	bReg := c.Memory.At(effB)

	out = stepOutcome{nextPC: c.wrap(pc + 1), alive: true}

	switch in.Opcode {
	case redcode.DAT:
		out.alive = false
	case redcode.MOV:
		c.move(in.Modifier, aReg, effB)
	case redcode.ADD:
		c.arith(in.Modifier, effB, aReg, bReg, func(src, dst int) int { return dst + src })
	case redcode.SUB:
		c.arith(in.Modifier, effB, aReg, bReg, func(src, dst int) int { return dst - src })
	case redcode.MUL:
		c.arith(in.Modifier, effB, aReg, bReg, func(src, dst int) int { return dst * src })
	case redcode.DIV:
		if c.arithDiv(in.Modifier, effB, aReg, bReg, func(src, dst int) (int, bool) {
			if src == 0 {
				return 0, false
			}
			return dst / src, true
		}) {
			out.alive = false
		}
	case redcode.MOD:
		if c.arithDiv(in.Modifier, effB, aReg, bReg, func(src, dst int) (int, bool) {
			if src == 0 {
				return 0, false
			}
			return dst % src, true
		}) {
			out.alive = false
		}
	case redcode.JMP:
		out.nextPC = effA
	case redcode.JMZ:
		if c.selectedZero(in.Modifier, bReg) {
			out.nextPC = effA
		}
	case redcode.JMN:
		if !c.selectedZero(in.Modifier, bReg) {
			out.nextPC = effA
		}
	case redcode.DJN:
		if c.decrementSelected(in.Modifier, effB) {
			out.nextPC = effA
		}
	case redcode.CMP: // alias SEQ
		if c.equalSelected(in.Modifier, aReg, bReg) {
			out.nextPC = c.wrap(pc + 2)
		}
	case redcode.SNE:
		if !c.equalSelected(in.Modifier, aReg, bReg) {
			out.nextPC = c.wrap(pc + 2)
		}
	case redcode.SLT:
		if c.lessSelected(in.Modifier, aReg, bReg) {
			out.nextPC = c.wrap(pc + 2)
		}
	case redcode.SPL:
		out.spawned = true
		out.spawnPC = effA
	case redcode.NOP:
	default:
		return out, errors.Errorf("vm: unhandled opcode %s at offset %d", in.Opcode, pc)
	}

	return out, nil
}

// move implements MOV: ModI copies the whole instruction (opcode, modifier
// and both fields verbatim); every other modifier copies the selected A
// field(s) into the selected B field(s) of the destination.
func (c *Core) move(mod redcode.Modifier, aReg redcode.Instruction, effB int) {
	if mod == redcode.ModI {
		c.Memory.Set(effB, aReg)
		return
	}
	dst := c.Memory.At(effB)
	for _, p := range fieldPairs(mod) {
		setSel(&dst, p[1], getSel(aReg, p[0]))
	}
	c.Memory.Set(effB, dst)
}

// arith applies fn(srcVal, dstVal) over the modifier-selected field pairs
// and writes the wrapped result back into the B-pointed cell.
func (c *Core) arith(mod redcode.Modifier, effB int, aReg, bReg redcode.Instruction, fn func(src, dst int) int) {
	dst := c.Memory.At(effB)
	for _, p := range fieldPairs(mod) {
		src := getSel(aReg, p[0])
		d := getSel(bReg, p[1])
		setSel(&dst, p[1], c.wrap(fn(src, d)))
	}
	c.Memory.Set(effB, dst)
}

// arithDiv is arith for DIV/MOD: fn reports ok=false on division by zero,
// in which case that field slot is left unwritten but other slots in the
// same modifier (e.g. under .F) still commit. Returns true if any slot hit
// a zero divisor, which terminates the calling task.
func (c *Core) arithDiv(mod redcode.Modifier, effB int, aReg, bReg redcode.Instruction, fn func(src, dst int) (int, bool)) bool {
	dst := c.Memory.At(effB)
	divZero := false
	wrote := false
	for _, p := range fieldPairs(mod) {
		src := getSel(aReg, p[0])
		d := getSel(bReg, p[1])
		v, ok := fn(src, d)
		if !ok {
			divZero = true
			continue
		}
		setSel(&dst, p[1], c.wrap(v))
		wrote = true
	}
	if wrote {
		c.Memory.Set(effB, dst)
	}
	return divZero
}

// selectedZero reports whether every modifier-selected field of bReg is
// zero, for JMZ/JMN.
func (c *Core) selectedZero(mod redcode.Modifier, bReg redcode.Instruction) bool {
	for _, p := range fieldPairs(mod) {
		if getSel(bReg, p[1]) != 0 {
			return false
		}
	}
	return true
}

// decrementSelected decrements the modifier-selected field(s) of the cell
// at effB in place and reports whether any of them is nonzero afterwards,
// for DJN.
func (c *Core) decrementSelected(mod redcode.Modifier, effB int) bool {
	dst := c.Memory.At(effB)
	nonzero := false
	for _, p := range fieldPairs(mod) {
		v := c.wrap(getSel(dst, p[1]) - 1)
		setSel(&dst, p[1], v)
		if v != 0 {
			nonzero = true
		}
	}
	c.Memory.Set(effB, dst)
	return nonzero
}

// equalSelected implements the comparison behind CMP/SNE. ModI compares
// the whole instruction (opcode, modifier, both fields including address
// mode), matching pMARS; every other modifier compares only the
// modifier-selected field values.
func (c *Core) equalSelected(mod redcode.Modifier, aReg, bReg redcode.Instruction) bool {
	if mod == redcode.ModI {
		return aReg == bReg
	}
	for _, p := range fieldPairs(mod) {
		if getSel(aReg, p[0]) != getSel(bReg, p[1]) {
			return false
		}
	}
	return true
}

// lessSelected implements SLT: every modifier-selected pair must satisfy
// A < B. ModI has no whole-instruction ordering, so it falls back to F.
func (c *Core) lessSelected(mod redcode.Modifier, aReg, bReg redcode.Instruction) bool {
	if mod == redcode.ModI {
		mod = redcode.ModF
	}
	for _, p := range fieldPairs(mod) {
		if getSel(aReg, p[0]) >= getSel(bReg, p[1]) {
			return false
		}
	}
	return true
}
