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
	"github.com/db47h/redcode/redcode"
)

// runDump implements the "dump" subcommand: assemble name (read from r) and
// write its load-file form, or (with -no-expand) the comment-stripped
// source, to the -o file.
func runDump(name string, r io.Reader, args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	out := fs.String("o", "-", "output `file` (\"-\" for stdout)")
	noExpand := fs.Bool("no-expand", false, "print source after comment-stripping but before EQU/FOR expansion")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "dump")
	}

	w, err := openOutput(*out)
	if err != nil {
		return err
	}
	defer w.Close()

	if *noExpand {
		text, _, errs := asm.Preprocess(name, r)
		for _, d := range errs.Warnings() {
			fmt.Fprintf(os.Stderr, "%s: %s\n", name, d)
		}
		if errs.Fatal() {
			return errors.Errorf("%s: %s", name, errs)
		}
		_, err := io.WriteString(w, text)
		return err
	}

	warrior, errs := asm.Assemble(name, r)
	for _, d := range errs.Warnings() {
		fmt.Fprintf(os.Stderr, "%s: %s\n", name, d)
	}
	if errs.Fatal() {
		return errors.Errorf("%s: %s", name, errs)
	}
	return redcode.WriteLoadFile(w, warrior.Program)
}
