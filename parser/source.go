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

// Package parser contains the shell word reader (a mode-driven lexer that
// assembles tokens into words) and the recursive-descent parser for the
// [[ ... ]] boolean sub-language, plus the session type that wires them to a
// source buffer.
package parser

import (
	"fmt"
	"sort"

	"github.com/poshlang/posh/token"
)

// Source owns a buffer of shell text and its line-offset table. Tokens hold
// byte spans into the buffer, so the Source must outlive any AST built on
// it.
type Source struct {
	name  string
	data  []byte
	lines []int // byte offset where each line begins; lines[0] == 0
}

// NewSource wraps a buffer. The name is used in rendered positions only.
func NewSource(name string, data []byte) *Source {
	s := &Source{name: name, data: data, lines: []int{0}}
	for i, b := range data {
		if b == '\n' {
			s.lines = append(s.lines, i+1)
		}
	}
	return s
}

func (s *Source) Name() string { return s.name }

func (s *Source) Data() []byte { return s.data }

// Position resolves a byte offset to a 1-based line and column.
func (s *Source) Position(offset int) token.Position {
	line := sort.Search(len(s.lines), func(i int) bool {
		return s.lines[i] > offset
	})
	return token.Position{Line: line, Col: offset - s.lines[line-1] + 1}
}

// Describe renders a span as name:line:col for diagnostics.
func (s *Source) Describe(span token.Span) string {
	pos := s.Position(span.Offset)
	return fmt.Sprintf("%s:%s", s.name, pos)
}
