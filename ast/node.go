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

// Package ast holds the word-language AST: the parts a compound word is made
// of, the two word shapes the upper parsers consume, and the boolean
// expression tree produced for [[ ... ]].
//
// In contrast to the dumb nodes of the command and arithmetic languages,
// words carry behavior: the command, arithmetic, and boolean parsers use
// words as their tokens, so the classification queries live here.
package ast

import "github.com/poshlang/posh/token"

// Node is implemented by every node in the word language. TokenPair reports
// the leftmost and rightmost tokens for source-span diagnostics; both are nil
// when the node covers no source text (an empty word, a synthesized part).
type Node interface {
	TokenPair() (first, last *token.Token)
}

// CommandNode is an opaque handle to a command-language AST. The command
// parser supplies it when it parses a $(...) substitution; this package only
// stores it.
type CommandNode interface {
	String() string
}

// ArithNode is an opaque handle to an arithmetic-language AST, supplied by
// the arithmetic parser for $((...)).
type ArithNode interface {
	String() string
}
