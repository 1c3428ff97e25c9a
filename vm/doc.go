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

// Package vm implements the MARS (Memory Array Redcode Simulator) runtime:
// a cyclic instruction core, the eight Redcode addressing modes with their
// pre-decrement/post-increment side effects, the opcode executor, and a
// per-warrior FIFO process queue driven round-robin.
//
// Scheduling is single-threaded and cooperative: Step runs exactly one
// instruction for the next warrior with a live task, in round-robin turn
// order across warriors. There is no preemption; the queue's rotation is
// what gives concurrent warriors the appearance of simultaneous execution.
//
//	c, _ := vm.New(vm.CoreSize(8000), vm.MaxCycles(80000))
//	c.LoadWarrior("imp", warrior.Program, 0)
//	res, err := c.Run()
package vm
