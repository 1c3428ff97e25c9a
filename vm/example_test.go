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
	"fmt"

	"github.com/db47h/redcode/redcode"
	"github.com/db47h/redcode/vm"
)

// Running the Imp ("MOV 0, 1") to its step limit in a tiny 4-cell core
// never terminates it: it just keeps copying itself one cell forward.
func ExampleCore_Run() {
	prog := redcode.Program{Instructions: []redcode.Instruction{
		{Opcode: redcode.MOV, Modifier: redcode.ModI, A: redcode.DirectField(0), B: redcode.DirectField(1)},
	}}
	c, err := vm.New(vm.CoreSize(4), vm.MaxCycles(4))
	if err != nil {
		panic(err)
	}
	if err := c.LoadWarrior("imp", prog, 0); err != nil {
		panic(err)
	}
	res, err := c.Run()
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Outcome, c.Cycles())
	// Output:
	// step limit reached 4
}
