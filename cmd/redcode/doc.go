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

// Command redcode assembles and runs Redcode '94 warriors against a MARS
// core.
//
// Usage:
//
//	redcode <input-file> dump [-o path] [-no-expand]
//	redcode <input-file> run [-max-cycles N] [-core-size N] [-max-processes N]
//
// <input-file> may be "-" to read the warrior from stdin.
//
// dump assembles the warrior and writes its load-file form (the canonical
// ORG + one-instruction-per-line rendering produced by redcode.WriteLoadFile)
// to -o (default stdout, "-" also means stdout). With -no-expand, it instead
// prints the source after comment-stripping but before EQU/FOR expansion,
// using asm.Preprocess.
//
// run assembles the warrior, loads it into a fresh core and runs it to
// completion or to -max-cycles (default 80000), then prints the stop reason
// and the number of cycles executed.
//
// -debug prints a full error stack trace (via github.com/pkg/errors) instead
// of a bare message before exiting with a non-zero status.
package main
