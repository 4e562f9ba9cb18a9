// Copyright 2024-2026 The posh Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token

import (
	"fmt"
	"strings"
)

// Span is the byte range a token occupies in its source buffer. The buffer
// itself lives on the lexer's Source; spans stay valid for as long as that
// buffer does.
type Span struct {
	Offset int
	Len    int
}

func (s Span) End() int { return s.Offset + s.Len }

// Position is a resolved 1-based source location.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is one lexeme: its Id, its raw text, and where it came from. Tokens
// are immutable after lexing.
type Token struct {
	ID   Id
	Val  string
	Span Span
}

func (t Token) String() string {
	return fmt.Sprintf("<%s %s>", NameOf(t.ID), EncodeVal(t.Val))
}

// EncodeVal renders a token value for debug output: quoted only when it
// contains bytes that would be ambiguous unquoted.
func EncodeVal(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"'\\") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
