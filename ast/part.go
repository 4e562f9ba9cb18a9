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

// Results of LiteralSlashPosition for parts that are not plain literals.
const (
	SlashPosNotLiteral = -2
	SlashPosNone       = -1
)

// WordPart is one atomic element of a compound word. The classification
// queries answer in constant time and never perform expansion; "does not
// apply" is an explicit result (false, empty, SlashPosNotLiteral), never a
// partial one.
type WordPart interface {
	Node
	fmt.Stringer

	// EvalStatic evaluates the part at parse time. Substitution parts fail
	// (ok false); quoted reports whether the contributed text was quoted.
	EvalStatic() (value string, quoted bool, ok bool)

	// LiteralID returns the token Id when the part is a single literal
	// token, and UndefinedTok otherwise.
	LiteralID() token.Id

	// VarLikeName returns the name before '=' when the part is a
	// LitVarLike literal ("name=").
	VarLikeName() (string, bool)

	// ArithVarLikeName returns the variable name when the part is a
	// LitArithVarLike literal, else "". Kept separate from VarLikeName: the
	// tokens differ so that array assignments foo=(1 2) and function calls
	// foo(1, 2) cannot be confused.
	ArithVarLikeName() string

	// UnquotedLiteralValue returns the literal text, or "" for any other
	// part. Used only for tilde detection.
	UnquotedLiteralValue() string

	// LiteralSlashPosition reports where tilde expansion would split the
	// part: SlashPosNotLiteral, SlashPosNone, or the index of the first /.
	LiteralSlashPosition() int

	// IsSubstitution reports whether the part is a command, variable, or
	// arithmetic substitution. Substitution results are subject to word
	// splitting, empty elision, and globbing during evaluation.
	IsSubstitution() bool
}

// partDefaults supplies the "does not apply" answers; every part embeds it
// and overrides what it knows.
type partDefaults struct{}

func (partDefaults) EvalStatic() (string, bool, bool) { return "", false, false }
func (partDefaults) LiteralID() token.Id              { return token.UndefinedTok }
func (partDefaults) VarLikeName() (string, bool)      { return "", false }
func (partDefaults) ArithVarLikeName() string         { return "" }
func (partDefaults) UnquotedLiteralValue() string     { return "" }
func (partDefaults) LiteralSlashPosition() int        { return SlashPosNotLiteral }
func (partDefaults) IsSubstitution() bool             { return false }

// LiteralPart is a run of characters written literally in the program text.
// It can still end up quoted by appearing inside a DoubleQuotedPart.
type LiteralPart struct {
	partDefaults
	Token token.Token
}

func (p *LiteralPart) TokenPair() (*token.Token, *token.Token) {
	return &p.Token, &p.Token
}

func (p *LiteralPart) String() string {
	return fmt.Sprintf("[%s %s]", token.NameOf(p.Token.ID), token.EncodeVal(p.Token.Val))
}

func (p *LiteralPart) EvalStatic() (string, bool, bool) {
	return p.Token.Val, false, true
}

func (p *LiteralPart) LiteralID() token.Id { return p.Token.ID }

func (p *LiteralPart) VarLikeName() (string, bool) {
	if p.Token.ID != token.LitVarLike {
		return "", false
	}
	return strings.TrimSuffix(p.Token.Val, "="), true
}

func (p *LiteralPart) ArithVarLikeName() string {
	if p.Token.ID != token.LitArithVarLike {
		return ""
	}
	return p.Token.Val
}

func (p *LiteralPart) UnquotedLiteralValue() string { return p.Token.Val }

func (p *LiteralPart) LiteralSlashPosition() int {
	return strings.IndexByte(p.Token.Val, '/')
}

// SplitAtIndex splits the literal text at i; tilde expansion uses it to
// separate the prefix from the rest of the path.
func (p *LiteralPart) SplitAtIndex(i int) (string, string) {
	return p.Token.Val[:i], p.Token.Val[i:]
}

// EscapedLiteralPart is a backslash escape such as \* or \$. The token value
// includes the backslash.
type EscapedLiteralPart struct {
	partDefaults
	Token token.Token
}

func (p *EscapedLiteralPart) TokenPair() (*token.Token, *token.Token) {
	return &p.Token, &p.Token
}

func (p *EscapedLiteralPart) String() string {
	return fmt.Sprintf("[\\ %s]", token.EncodeVal(p.Token.Val))
}

func (p *EscapedLiteralPart) EvalStatic() (string, bool, bool) {
	return p.Token.Val[1:], true, true
}

// SingleQuotedPart holds the tokens between single quotes. '' is a valid,
// empty instance.
type SingleQuotedPart struct {
	partDefaults
	Tokens []token.Token
}

func (p *SingleQuotedPart) TokenPair() (*token.Token, *token.Token) {
	if len(p.Tokens) == 0 {
		return nil, nil
	}
	return &p.Tokens[0], &p.Tokens[len(p.Tokens)-1]
}

func (p *SingleQuotedPart) String() string {
	var b strings.Builder
	b.WriteString("[SQ")
	for i := range p.Tokens {
		b.WriteByte(' ')
		b.WriteString(token.EncodeVal(p.Tokens[i].Val))
	}
	b.WriteByte(']')
	return b.String()
}

func (p *SingleQuotedPart) EvalStatic() (string, bool, bool) {
	var b strings.Builder
	for i := range p.Tokens {
		b.WriteString(p.Tokens[i].Val)
	}
	// A single quoted literal can be a here-doc delimiter, like 'EOF'.
	return b.String(), true, true
}

// DoubleQuotedPart contains other word parts, evaluated without word
// splitting.
type DoubleQuotedPart struct {
	partDefaults
	Parts []WordPart
}

func (p *DoubleQuotedPart) TokenPair() (*token.Token, *token.Token) {
	if len(p.Parts) == 0 {
		return nil, nil
	}
	first, _ := p.Parts[0].TokenPair()
	_, last := p.Parts[len(p.Parts)-1].TokenPair()
	return first, last
}

func (p *DoubleQuotedPart) String() string {
	var b strings.Builder
	b.WriteString("[DQ")
	for _, sub := range p.Parts {
		b.WriteByte(' ')
		b.WriteString(sub.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (p *DoubleQuotedPart) EvalStatic() (string, bool, bool) {
	var b strings.Builder
	for _, sub := range p.Parts {
		s, _, ok := sub.EvalStatic()
		if !ok {
			return "", true, false
		}
		b.WriteString(s)
	}
	return b.String(), true, true
}

// CommandSubPart is $(...) or `...`. The command AST is an opaque handle
// owned by this part.
type CommandSubPart struct {
	partDefaults
	Token   token.Token // the opening $( or `
	Command CommandNode
}

func (p *CommandSubPart) TokenPair() (*token.Token, *token.Token) {
	return &p.Token, &p.Token
}

func (p *CommandSubPart) String() string {
	return fmt.Sprintf("[ComSub %s]", p.Command.String())
}

func (p *CommandSubPart) IsSubstitution() bool { return true }

// VarOp is one operator slot of a variable substitution: the operator Id
// plus its argument words. Arg2 is only used by pattern replacement
// (${x/pat/rep}).
type VarOp struct {
	Op   token.Id
	Arg  *CompoundWord
	Arg2 *CompoundWord
}

func (o *VarOp) String() string {
	var b strings.Builder
	b.WriteString(token.NameOf(o.Op))
	if o.Arg != nil {
		b.WriteByte(' ')
		b.WriteString(o.Arg.String())
	}
	if o.Arg2 != nil {
		b.WriteByte(' ')
		b.WriteString(o.Arg2.String())
	}
	return b.String()
}

// VarSubPart is $name or ${name ...}. The three operator slots are mutually
// independent: any subset may be present.
type VarSubPart struct {
	partDefaults
	Name  string       // includes the special names @ * # ? $ ! - and digits
	Token *token.Token // the name token, when the lexer kept one

	Prefix  *VarOp // e.g. # for length
	Bracket *VarOp // e.g. [@] or [expr]
	Suffix  *VarOp // e.g. :-default, /pat/rep, :off:len
}

func (p *VarSubPart) TokenPair() (*token.Token, *token.Token) {
	if p.Token == nil {
		return nil, nil
	}
	return p.Token, p.Token
}

func (p *VarSubPart) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[VarSub %s", p.Name)
	if p.Prefix != nil {
		fmt.Fprintf(&b, " prefix_op=(%s)", p.Prefix)
	}
	if p.Bracket != nil {
		fmt.Fprintf(&b, " bracket_op=(%s)", p.Bracket)
	}
	if p.Suffix != nil {
		fmt.Fprintf(&b, " suffix_op=(%s)", p.Suffix)
	}
	b.WriteByte(']')
	return b.String()
}

func (p *VarSubPart) IsSubstitution() bool { return true }

// TildeSubPart is a tilde prefix: "" for bare ~, otherwise the user name.
// Tilde expansion is not a substitution; its result is never split.
type TildeSubPart struct {
	partDefaults
	Prefix string
}

func (p *TildeSubPart) TokenPair() (*token.Token, *token.Token) {
	return nil, nil
}

func (p *TildeSubPart) String() string {
	return fmt.Sprintf("[TildeSub %q]", p.Prefix)
}

// ArithSubPart is $((...)); the arithmetic AST is an opaque handle.
type ArithSubPart struct {
	partDefaults
	Arith ArithNode
}

func (p *ArithSubPart) TokenPair() (*token.Token, *token.Token) {
	return nil, nil
}

func (p *ArithSubPart) String() string {
	return fmt.Sprintf("[ArithSub %s]", p.Arith.String())
}

func (p *ArithSubPart) IsSubstitution() bool { return true }

// ArrayLiteralPart contains whole words, not parts: foo=(a b c) is a word
// with two parts, and the second is this one. foo=( $(ls /) ) is also valid.
type ArrayLiteralPart struct {
	partDefaults
	Words []*CompoundWord
}

func (p *ArrayLiteralPart) TokenPair() (*token.Token, *token.Token) {
	if len(p.Words) == 0 {
		return nil, nil
	}
	first, _ := p.Words[0].TokenPair()
	_, last := p.Words[len(p.Words)-1].TokenPair()
	return first, last
}

func (p *ArrayLiteralPart) String() string {
	var b strings.Builder
	b.WriteString("[Array")
	for _, w := range p.Words {
		b.WriteByte(' ')
		b.WriteString(w.String())
	}
	b.WriteByte(']')
	return b.String()
}
