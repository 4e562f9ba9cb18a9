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

package ast

import (
	"fmt"
	"strings"

	"github.com/poshlang/posh/token"
)

// Word is a compound of word parts or a standalone operator token: the atom
// the command, arithmetic, and boolean parsers consume. The three *ID
// queries interpret the same word under the three grammars.
type Word interface {
	Node
	fmt.Stringer

	// ArithID classifies the word inside $(( ... )).
	ArithID() token.Id
	// BoolID classifies the word inside [[ ... ]].
	BoolID() token.Id
	// CommandID classifies the word at command-start position.
	CommandID() token.Id
	// CommandKind is the coarse version of CommandID.
	CommandKind() token.Kind
}

// CompoundWord is a word made of a sequence of parts. Words with no static
// text occur: "" is a word whose only part is an empty double-quoted part.
type CompoundWord struct {
	Parts []WordPart
}

// NewCompoundWord builds a word from parts.
func NewCompoundWord(parts ...WordPart) *CompoundWord {
	return &CompoundWord{Parts: parts}
}

// TokenPair reports the leftmost and rightmost tokens. Parts that carry no
// token of their own (a tilde prefix, an arithmetic substitution) are skipped
// so a word is still anchored when one of them sits at an edge.
func (w *CompoundWord) TokenPair() (first, last *token.Token) {
	for _, p := range w.Parts {
		f, l := p.TokenPair()
		if first == nil {
			first = f
		}
		if l != nil {
			last = l
		}
	}
	return first, last
}

func (w *CompoundWord) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range w.Parts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.String())
	}
	if _, _, ok := w.LooksLikeAssignment(); ok {
		b.WriteString(" =")
	}
	b.WriteByte('}')
	return b.String()
}

// singleLiteralID returns the literal Id when the word is exactly one
// literal part, else UndefinedTok.
func (w *CompoundWord) singleLiteralID() token.Id {
	if len(w.Parts) != 1 {
		return token.UndefinedTok
	}
	return w.Parts[0].LiteralID()
}

// ArithID classifies the word inside (( ... )): a single literal token whose
// Id is in Kind Arith stands for itself, anything else is a compound word
// the arithmetic evaluator has to expand first.
func (w *CompoundWord) ArithID() token.Id {
	id := w.singleLiteralID()
	if id != token.UndefinedTok && token.KindOf(id) == token.KindArith {
		return id
	}
	return token.WordCompound
}

// BoolID classifies the word inside [[ ... ]]. KWBang and LitDRightBracket
// are outside the BoolUnary/BoolBinary namespaces but classify the same way.
func (w *CompoundWord) BoolID() token.Id {
	id := w.singleLiteralID()
	if id == token.UndefinedTok {
		return token.WordCompound
	}
	if id == token.KWBang || id == token.LitDRightBracket {
		return id
	}
	switch token.KindOf(id) {
	case token.KindBoolUnary, token.KindBoolBinary:
		return id
	}
	return token.WordCompound
}

// CommandID classifies the word at command-start position: keywords and the
// brace tokens stand for themselves.
func (w *CompoundWord) CommandID() token.Id {
	id := w.singleLiteralID()
	if id == token.UndefinedTok {
		return token.WordCompound
	}
	if id == token.LitLBrace || id == token.LitRBrace {
		return id
	}
	if token.KindOf(id) == token.KindKW {
		return id
	}
	return token.WordCompound
}

// CommandKind always reports KindWord for a compound word; the command
// parser distinguishes further by CommandID.
func (w *CompoundWord) CommandKind() token.Kind { return token.KindWord }

// AssignmentBuiltinID reports the Id when the word is an assignment builtin
// (declare, export, local, readonly), else UndefinedTok.
func (w *CompoundWord) AssignmentBuiltinID() token.Id {
	id := w.singleLiteralID()
	if id != token.UndefinedTok && token.KindOf(id) == token.KindAssign {
		return id
	}
	return token.UndefinedTok
}

// EvalStatic evaluates the word at parse time, concatenating the static
// content of every part. It is used for here-doc delimiters, function names,
// and for-loop variable names; any substitution part makes it fail.
func (w *CompoundWord) EvalStatic() (value string, quoted bool, ok bool) {
	var b strings.Builder
	for _, p := range w.Parts {
		s, q, ok := p.EvalStatic()
		if !ok {
			return "", quoted, false
		}
		if q {
			quoted = true
		}
		b.WriteString(s)
	}
	return b.String(), quoted, true
}

// HasArrayPart reports whether any part is an array literal.
func (w *CompoundWord) HasArrayPart() bool {
	for _, p := range w.Parts {
		if _, ok := p.(*ArrayLiteralPart); ok {
			return true
		}
	}
	return false
}

// LooksLikeAssignment detects name=... words. The returned rhs always has at
// least one part: NAME= gets a single empty single-quoted part, so that
// empty-unquoted elision is never applied to it later — EMPTY= means
// EMPTY=''.
func (w *CompoundWord) LooksLikeAssignment() (name string, rhs *CompoundWord, ok bool) {
	if len(w.Parts) == 0 {
		return "", nil, false
	}
	name, ok = w.Parts[0].VarLikeName()
	if !ok {
		return "", nil, false
	}
	rhs = &CompoundWord{}
	if len(w.Parts) == 1 {
		rhs.Parts = append(rhs.Parts, &SingleQuotedPart{})
	} else {
		rhs.Parts = append(rhs.Parts, w.Parts[1:]...)
	}
	return name, rhs, true
}

// AsArithVarName returns the variable name when the word is a bare
// arithmetic variable like the foo in (( foo = bar )), else "".
func (w *CompoundWord) AsArithVarName() string {
	if len(w.Parts) != 1 {
		return ""
	}
	return w.Parts[0].ArithVarLikeName()
}

// AsFuncName statically evaluates the word as a function name. Names with
// quoted text spanning multiple parts are rejected.
func (w *CompoundWord) AsFuncName() (string, bool) {
	s, quoted, ok := w.EvalStatic()
	if !ok {
		return "", false
	}
	if quoted && len(w.Parts) != 1 {
		return "", false
	}
	return s, true
}

// TokenWord is a word that is just one token: an operator, keyword, or EOF
// the upper parser needs to observe directly.
type TokenWord struct {
	Token token.Token
}

// NewTokenWord wraps a token.
func NewTokenWord(t token.Token) *TokenWord { return &TokenWord{Token: t} }

func (w *TokenWord) TokenPair() (*token.Token, *token.Token) {
	return &w.Token, &w.Token
}

func (w *TokenWord) String() string {
	return fmt.Sprintf("{%s %s}", token.NameOf(w.Token.ID), token.EncodeVal(w.Token.Val))
}

func (w *TokenWord) ArithID() token.Id       { return w.Token.ID }
func (w *TokenWord) BoolID() token.Id        { return w.Token.ID }
func (w *TokenWord) CommandID() token.Id     { return w.Token.ID }
func (w *TokenWord) CommandKind() token.Kind { return token.KindOf(w.Token.ID) }
