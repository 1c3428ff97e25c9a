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

package vm_test

import (
	"testing"

	"github.com/db47h/redcode/redcode"
	"github.com/db47h/redcode/vm"
)

// imp is "MOV 0, 1" assembled by hand: MOV.I $0, $1.
func impProgram() redcode.Program {
	return redcode.Program{Instructions: []redcode.Instruction{
		{Opcode: redcode.MOV, Modifier: redcode.ModI, A: redcode.DirectField(0), B: redcode.DirectField(1)},
	}}
}

func TestImpCrawlsForward(t *testing.T) {
	c, err := vm.New(vm.CoreSize(4), vm.MaxCycles(100))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.LoadWarrior("imp", impProgram(), 0); err != nil {
		t.Fatal(err)
	}
	imp := impProgram().Instructions[0]
	for step, want := range []int{1, 2, 3, 0} {
		res, err := c.Step()
		if err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
		if res.Outcome != vm.OutcomeRunning {
			t.Fatalf("step %d: outcome = %s, want running", step, res.Outcome)
		}
		cell := c.Memory.At(want)
		if cell != imp {
			t.Errorf("step %d: cell %d = %+v, want a copy of imp", step, want, cell)
		}
	}
}

func TestSPLIncreasesQueueDATDecreases(t *testing.T) {
	// 0: SPL.B $1, $0   (spawn a task at offset 1, fall through to 1)
	// 1: DAT.F #0, #0   (the spawned task immediately dies)
	prog := redcode.Program{Instructions: []redcode.Instruction{
		{Opcode: redcode.SPL, Modifier: redcode.ModB, A: redcode.DirectField(1), B: redcode.DirectField(0)},
		redcode.DefaultInstruction,
	}}
	c, err := vm.New(vm.CoreSize(8), vm.MaxCycles(10))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.LoadWarrior("w", prog, 0); err != nil {
		t.Fatal(err)
	}
	// step 1: executes SPL, queue goes from 1 task to 2 (original @1, spawned @1)
	res, err := c.Step()
	if err != nil || res.Outcome != vm.OutcomeRunning {
		t.Fatalf("step 1: %+v, %v", res, err)
	}
	// step 2: one of the two queued tasks (both pointing at the DAT) runs and dies
	res, err = c.Step()
	if err != nil || res.Outcome != vm.OutcomeTerminated {
		t.Fatalf("step 2: %+v, %v", res, err)
	}
	if !c.Alive("w") {
		t.Fatalf("warrior should still have one task left after only one DAT")
	}
	// step 3: the last task also dies
	res, err = c.Step()
	if err != nil || res.Outcome != vm.OutcomeTerminated {
		t.Fatalf("step 3: %+v, %v", res, err)
	}
	if c.Alive("w") {
		t.Fatalf("warrior should be dead once both tasks executed DAT")
	}
}

func TestDivideByZeroTerminatesTask(t *testing.T) {
	// 0: DIV.F $0, $1  -- A points at itself (A-field 0), whose own A-field
	//    is 0: dividing by it is a division by zero.
	prog := redcode.Program{Instructions: []redcode.Instruction{
		{Opcode: redcode.DIV, Modifier: redcode.ModF, A: redcode.DirectField(0), B: redcode.DirectField(1)},
		redcode.DefaultInstruction,
	}}
	c, err := vm.New(vm.CoreSize(8), vm.MaxCycles(10))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.LoadWarrior("w", prog, 0); err != nil {
		t.Fatal(err)
	}
	res, err := c.Step()
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != vm.OutcomeTerminated {
		t.Fatalf("outcome = %s, want terminated", res.Outcome)
	}
	if c.Alive("w") {
		t.Fatalf("sole task should be dead after a division by zero")
	}
}

func TestCMPSkipsWhenEqual(t *testing.T) {
	// 0: CMP.AB #5, $2  -- compares 5 (A immediate) to cell 2's B field (5):
	//    equal, so the next instruction (a DAT) is skipped.
	// 1: DAT.F #0, #0   -- would terminate the task if reached.
	// 2: DAT #5, #5     -- data cell compared against.
	prog := redcode.Program{Instructions: []redcode.Instruction{
		{Opcode: redcode.CMP, Modifier: redcode.ModAB, A: redcode.ImmediateField(5), B: redcode.DirectField(2)},
		redcode.DefaultInstruction,
		{Opcode: redcode.DAT, Modifier: redcode.ModF, A: redcode.ImmediateField(5), B: redcode.ImmediateField(5)},
	}}
	c, err := vm.New(vm.CoreSize(8), vm.MaxCycles(10))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.LoadWarrior("w", prog, 0); err != nil {
		t.Fatal(err)
	}
	res, err := c.Step()
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != vm.OutcomeRunning {
		t.Fatalf("outcome = %s, want running (CMP must not kill the task)", res.Outcome)
	}
	if !c.Alive("w") {
		t.Fatalf("task should have survived by skipping the DAT at offset 1")
	}
}

func TestRunStopsAtStepLimit(t *testing.T) {
	prog := redcode.Program{Instructions: []redcode.Instruction{
		{Opcode: redcode.JMP, Modifier: redcode.ModB, A: redcode.DirectField(0), B: redcode.DirectField(0)},
	}}
	c, err := vm.New(vm.CoreSize(8), vm.MaxCycles(5))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.LoadWarrior("w", prog, 0); err != nil {
		t.Fatal(err)
	}
	res, err := c.Run()
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != vm.OutcomeStepLimit {
		t.Fatalf("outcome = %s, want step limit reached", res.Outcome)
	}
	if c.Cycles() != 5 {
		t.Fatalf("cycles = %d, want 5", c.Cycles())
	}
}
