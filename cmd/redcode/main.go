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
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

var debug bool

// atExit reports err (with a stack trace if -debug was given) and exits
// with a non-zero status. It is a no-op when err is nil.
func atExit(err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "redcode: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "redcode: %+v\n", err)
	os.Exit(1)
}

// openInput opens name for reading, treating "-" as stdin.
func openInput(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	return f, nil
}

// openOutput opens name for writing, treating "-" and "" as stdout.
func openOutput(name string) (io.WriteCloser, error) {
	if name == "" || name == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, errors.Wrap(err, "open output")
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func usage() {
	fmt.Fprintln(os.Stderr, "usage: redcode <input-file> dump [-o path] [-no-expand]")
	fmt.Fprintln(os.Stderr, "       redcode <input-file> run [-max-cycles N] [-core-size N] [-max-processes N]")
}

func main() {
	args := os.Args[1:]
	for i, a := range args {
		if a == "-debug" {
			debug = true
			args = append(args[:i:i], args[i+1:]...)
			break
		}
	}

	if len(args) < 2 {
		usage()
		os.Exit(2)
	}
	input, cmd, rest := args[0], args[1], args[2:]

	r, err := openInput(input)
	if err != nil {
		atExit(err)
	}
	defer r.Close()

	switch cmd {
	case "dump":
		atExit(runDump(input, r, rest))
	case "run":
		atExit(runRun(input, r, rest))
	default:
		usage()
		os.Exit(2)
	}
}
