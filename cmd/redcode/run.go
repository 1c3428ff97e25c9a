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

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/db47h/redcode/asm"
	"github.com/db47h/redcode/vm"
)

// runRun implements the "run" subcommand: assemble name (read from r), load
// it alone into a fresh core, run it to completion or to -max-cycles, and
// print the outcome.
func runRun(name string, r io.Reader, args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	maxCycles := fs.Int("max-cycles", 80000, "stop after this many total steps")
	coreSize := fs.Int("core-size", 8000, "number of instruction cells in the core")
	maxProcesses := fs.Int("max-processes", 8000, "cap on live tasks for the loaded warrior")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "run")
	}

	warrior, errs := asm.Assemble(name, r)
	for _, d := range errs.Warnings() {
		fmt.Fprintf(os.Stderr, "%s: %s\n", name, d)
	}
	if errs.Fatal() {
		return errors.Errorf("%s: %s", name, errs)
	}

	c, err := vm.New(vm.CoreSize(*coreSize), vm.MaxProcesses(*maxProcesses), vm.MaxCycles(*maxCycles))
	if err != nil {
		return errors.Wrap(err, "run")
	}
	warriorName := warrior.Metadata.Name
	if warriorName == "" {
		warriorName = name
	}
	if err := c.LoadWarrior(warriorName, warrior.Program, 0); err != nil {
		return errors.Wrap(err, "run")
	}

	res, err := c.Run()
	if err != nil {
		return errors.Wrap(err, "run")
	}
	fmt.Printf("%s: %s after %d cycles\n", warriorName, res.Outcome, c.Cycles())
	return nil
}
