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

import (
	"strings"

	"github.com/db47h/redcode/redcode"
)

// metadataDirectives is the set of ";<word>" comment directive names that
// applyMetadataDirective records into Metadata (spec §4.3, §6).
var metadataDirectives = map[string]bool{
	"redcode":  true,
	"name":     true,
	"author":   true,
	"date":     true,
	"version":  true,
	"strategy": true,
	"assert":   true,
}

// CommentsStripped is the output of the comment/directive phase (spec
// §4.3): comments and metadata removed, ORG/END consumed into Origin, code
// lines kept as already-tokenized Token slices (see parseLineTokens).
type CommentsStripped struct {
	Lines     [][]Token
	Metadata  redcode.Metadata
	Origin    []Token
	HasOrigin bool
}

// stripComments implements the comment/directive phase: Raw -> CommentsStripped.
func stripComments(src string) (*CommentsStripped, Errors) {
	out := &CommentsStripped{}
	var errs Errors

	rawLines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	stop := false
	for lineNo, raw := range rawLines {
		if stop {
			break
		}
		code, comment, hasComment := splitComment(raw)
		code = strings.TrimSpace(code)
		if hasComment {
			applyMetadataDirective(&out.Metadata, comment)
		}
		if code == "" {
			continue
		}

		parsed, err := parseLine(code)
		if err != nil {
			errs = append(errs, Diagnostic{Line: lineNo + 1, Msg: err.Error()})
			continue
		}

		switch parsed.Kind {
		case LineOrg:
			if out.HasOrigin {
				errs = append(errs, Diagnostic{Line: lineNo + 1, Msg: "origin redefinition, first ORG/END wins", Warning: true})
				continue
			}
			out.Origin = parsed.Expr
			out.HasOrigin = true
		case LineEnd:
			if !out.HasOrigin && len(parsed.Expr) > 0 {
				out.Origin = parsed.Expr
				out.HasOrigin = true
			} else if out.HasOrigin && len(parsed.Expr) > 0 {
				errs = append(errs, Diagnostic{Line: lineNo + 1, Msg: "origin redefinition, first ORG/END wins", Warning: true})
			}
			stop = true
		default:
			out.Lines = append(out.Lines, Tokenize(code))
		}
	}
	return out, errs
}

// splitComment splits a raw source line at the first ';' into its code and
// comment portions (spec §4.3: "trim; split at ';'").
func splitComment(line string) (code, comment string, hasComment bool) {
	i := strings.IndexByte(line, ';')
	if i < 0 {
		return line, "", false
	}
	return line[:i], line[i+1:], true
}

// applyMetadataDirective stores the argument of a recognised metadata
// comment directive (";name foo", ";author bar", ...) into m.
func applyMetadataDirective(m *redcode.Metadata, comment string) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return
	}
	word, arg := splitFirstWord(comment)
	word = strings.ToLower(word)
	if !metadataDirectives[word] {
		return
	}
	switch word {
	case "redcode":
		m.Redcode = arg
	case "name":
		m.Name = arg
	case "author":
		m.Author = arg
	case "date":
		m.Date = arg
	case "version":
		m.Version = arg
	case "strategy":
		m.Strategy = arg
	case "assert":
		m.Assertion = arg
	}
}

func splitFirstWord(s string) (word, rest string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}
