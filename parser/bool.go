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

package parser

import (
	"regexp"

	"github.com/poshlang/posh/ast"
	"github.com/poshlang/posh/reporter"
	"github.com/poshlang/posh/token"
)

// BoolParser parses the body of [[ ... ]] ahead of evaluation, consuming a
// word stream rather than evaluated strings. It starts after the [[ token
// has been consumed and returns with ]] as the current word.
//
// Grammar, right-recursive in the code:
//
//	Expr    : Term ('||' Term)*
//	Term    : Negated ('&&' Negated)*
//	Negated : '!'? Factor
//	Factor  : WORD
//	        | UNARY_OP WORD
//	        | WORD BINARY_OP WORD
//	        | '(' Expr ')'
type BoolParser struct {
	reader WordReader

	// Between zero and two buffered words: the current one, plus at most one
	// of lookahead to tell UNARY_OP WORD from WORD BINARY_OP WORD.
	words []ast.Word

	cur   ast.Word
	opID  token.Id
	bKind token.Kind

	primed bool
	errs   reporter.Stack
}

// NewBoolParser builds a parser over a word reader. The same grammar serves
// the runtime [ builtin by supplying a reader over evaluated arguments.
func NewBoolParser(reader WordReader) *BoolParser {
	return &BoolParser{reader: reader}
}

// Error is a non-destructive read of the error stack, innermost first.
func (p *BoolParser) Error() []*reporter.ErrorContext { return p.errs.Errors() }

func (p *BoolParser) addError(e *reporter.ErrorContext) { p.errs.Add(e) }

// nextOne advances to the next word. A buffered lookahead word, when
// present, becomes current; otherwise one word is read under mode.
func (p *BoolParser) nextOne(mode token.LexMode) bool {
	switch n := len(p.words); n {
	case 2:
		if mode != token.LexModeDBracket {
			panic("parser: lookahead buffered across a mode switch")
		}
		p.words[0] = p.words[1]
		p.words = p.words[:1]
		p.cur = p.words[0]
	case 0, 1:
		w := p.reader.ReadWord(mode)
		if w == nil {
			p.errs.Extend(p.reader.Errors())
			return false
		}
		if n == 0 {
			p.words = append(p.words, w)
		} else {
			p.words[0] = w
		}
		p.cur = w
	}

	p.opID = p.cur.BoolID()
	p.bKind = token.KindOf(p.opID)
	return true
}

// next advances to the next word, skipping newlines. Newlines are not
// swallowed by the lexer so that the one after ]] stays visible to the
// command parser; in here they separate factors and mean nothing.
func (p *BoolParser) next(mode token.LexMode) bool {
	for {
		if !p.nextOne(mode) {
			return false
		}
		if p.opID != token.OpNewline {
			return true
		}
	}
}

// AtEnd reports whether the current word is the closing ]].
func (p *BoolParser) AtEnd() bool { return p.opID == token.LitDRightBracket }

// lookAhead reads one extra word without consuming the current one. Calling
// it with the buffer already full is a programmer error.
func (p *BoolParser) lookAhead() ast.Word {
	if len(p.words) != 1 {
		panic("parser: lookahead buffer misuse")
	}
	w := p.reader.ReadWord(token.LexModeDBracket)
	if w == nil {
		p.errs.Extend(p.reader.Errors())
		return nil
	}
	p.words = append(p.words, w)
	return w
}

// start primes the parser on the first word. Priming twice is a no-op, so
// callers driving the sub-productions directly can prime up front and still
// hand the parser to Parse.
func (p *BoolParser) start() bool {
	if p.primed {
		return true
	}
	p.primed = true
	return p.next(token.LexModeDBracket)
}

// Parse parses a full expression and checks that ]] terminates it. It
// returns nil on failure; Error holds the causes.
func (p *BoolParser) Parse() ast.BoolExpr {
	if !p.start() {
		return nil
	}
	node := p.ParseExpr()
	if node == nil {
		return nil
	}
	if !p.AtEnd() {
		if p.bKind == token.KindEof {
			p.addError(reporter.Errorf("unexpected EOF, expected ]]").WithWord(p.cur))
		} else {
			p.addError(reporter.Errorf("unexpected extra word %s", p.cur).WithWord(p.cur))
		}
		return nil
	}
	return node
}

// ParseExpr parses Term ('||' Expr)?.
func (p *BoolParser) ParseExpr() ast.BoolExpr {
	left := p.ParseTerm()
	if left == nil {
		return nil
	}
	if p.opID != token.OpDPipe {
		return left
	}
	if !p.next(token.LexModeDBracket) {
		return nil
	}
	right := p.ParseExpr()
	if right == nil {
		return nil
	}
	return &ast.LogicalOr{Left: left, Right: right}
}

// ParseTerm parses Negated ('&&' Term)?.
func (p *BoolParser) ParseTerm() ast.BoolExpr {
	left := p.ParseNegatedFactor()
	if left == nil {
		return nil
	}
	if p.opID != token.OpDAmp {
		return left
	}
	if !p.next(token.LexModeDBracket) {
		return nil
	}
	right := p.ParseTerm()
	if right == nil {
		return nil
	}
	return &ast.LogicalAnd{Left: left, Right: right}
}

// ParseNegatedFactor parses '!'? Factor.
func (p *BoolParser) ParseNegatedFactor() ast.BoolExpr {
	if p.opID != token.KWBang {
		return p.ParseFactor()
	}
	if !p.next(token.LexModeDBracket) {
		return nil
	}
	child := p.ParseFactor()
	if child == nil {
		return nil
	}
	return &ast.LogicalNot{Child: child}
}

// atOperand reports whether the current word can serve as an operand. A
// newline cannot: operands are read without skipping newlines.
func (p *BoolParser) atOperand() bool {
	switch p.opID {
	case token.OpNewline, token.LitDRightBracket, token.EofReal, token.EofRParen, token.EofBacktick,
		token.OpDAmp, token.OpDPipe, token.OpLParen, token.OpRParen:
		return false
	}
	return true
}

// isBinaryOp recognizes the binary operators, including the < and >
// redirection puns for lexicographic comparison. <> is deliberately not one
// of them.
func isBinaryOp(id token.Id) bool {
	if token.KindOf(id) == token.KindBoolBinary {
		return true
	}
	return id == token.RedirLess || id == token.RedirGreat
}

// ParseFactor parses one of the four factor shapes.
func (p *BoolParser) ParseFactor() ast.BoolExpr {
	switch {
	case p.bKind == token.KindBoolUnary:
		op := p.opID
		if !p.nextOne(token.LexModeDBracket) {
			return nil
		}
		if !p.atOperand() {
			p.addError(reporter.Errorf("expected operand after %s", token.NameOf(op)).WithWord(p.cur))
			return nil
		}
		word := p.cur
		if !p.next(token.LexModeDBracket) {
			return nil
		}
		return &ast.BoolUnaryExpr{Op: op, Word: word}

	case p.bKind == token.KindWord:
		t2 := p.lookAhead()
		if t2 == nil {
			return nil
		}
		t2op := t2.BoolID()
		if !isBinaryOp(t2op) {
			// A lone word: [[ foo ]] is implicit [[ -n foo ]].
			word := p.cur
			if !p.next(token.LexModeDBracket) {
				return nil
			}
			return &ast.WordTest{Word: word}
		}

		left := p.cur
		if !p.next(token.LexModeDBracket) {
			return nil
		}
		op := p.opID

		// The right operand of =~ is read under regex mode so whitespace and
		// metacharacters inside the pattern survive unsplit.
		isRegex := t2op == token.BoolBinaryEqualTilde
		rightMode := token.LexModeDBracket
		if isRegex {
			rightMode = token.LexModeBashRegex
		}
		if !p.nextOne(rightMode) {
			return nil
		}
		if !p.atOperand() {
			p.addError(reporter.Errorf("expected operand after %s", token.NameOf(op)).WithWord(p.cur))
			return nil
		}
		right := p.cur

		if isRegex {
			if pat, _, ok := staticRegex(right); ok {
				if _, err := regexp.CompilePOSIX(pat); err != nil {
					p.addError(reporter.Errorf("invalid regex %q: %v", pat, err).WithWord(right))
					return nil
				}
			}
		}

		if !p.next(token.LexModeDBracket) {
			return nil
		}
		return &ast.BoolBinaryExpr{Op: op, Left: left, Right: right}

	case p.opID == token.OpLParen:
		if !p.next(token.LexModeDBracket) {
			return nil
		}
		node := p.ParseExpr()
		if node == nil {
			return nil
		}
		if p.opID != token.OpRParen {
			p.addError(reporter.Errorf("expected ), got %s", p.cur).WithWord(p.cur))
			return nil
		}
		if !p.next(token.LexModeDBracket) {
			return nil
		}
		return node
	}

	p.addError(reporter.Errorf("unexpected word %s", p.cur).WithWord(p.cur))
	return nil
}

// staticRegex statically evaluates the right operand of =~. Patterns built
// from substitutions cannot be checked until runtime.
func staticRegex(w ast.Word) (pattern string, quoted bool, ok bool) {
	cw, isCompound := w.(*ast.CompoundWord)
	if !isCompound {
		return "", false, false
	}
	return cw.EvalStatic()
}
