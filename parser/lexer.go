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
	"strings"

	"github.com/poshlang/posh/ast"
	"github.com/poshlang/posh/reporter"
	"github.com/poshlang/posh/token"
)

// WordReader is the contract between the word level and the parsers above
// it. ReadWord advances the lexer under the requested mode and returns the
// next word, or nil on a lexer error; the caller then fetches the pending
// records via Errors. The boolean parser is written against this interface
// so a runtime [ implementation can drive the same grammar with evaluated
// string arguments.
type WordReader interface {
	ReadWord(mode token.LexMode) ast.Word
	Errors() []*reporter.ErrorContext
}

// Lexer scans a source buffer under caller-chosen lexical modes and
// assembles tokens into words. It is a mutable value owned by one caller;
// distinct lexers share only the frozen registry.
type Lexer struct {
	reg  *token.Registry
	src  *Source
	pos  int
	errs reporter.Stack
}

var _ WordReader = (*Lexer)(nil)

// NewLexer positions a lexer at the start of src.
func NewLexer(reg *token.Registry, src *Source) *Lexer {
	return &Lexer{reg: reg, src: src}
}

// Source returns the buffer the lexer reads from.
func (lx *Lexer) Source() *Source { return lx.src }

// Errors is a non-destructive read of pending lexer errors.
func (lx *Lexer) Errors() []*reporter.ErrorContext { return lx.errs.Errors() }

// ReadWord returns the next word under the given mode, or nil if lexing
// failed; the new error records describe why.
func (lx *Lexer) ReadWord(mode token.LexMode) ast.Word {
	before := len(lx.errs.Errors())
	w := lx.readWord(mode)
	if len(lx.errs.Errors()) > before {
		return nil
	}
	return w
}

func (lx *Lexer) eof() bool { return lx.pos >= len(lx.src.data) }

func (lx *Lexer) peek() byte { return lx.src.data[lx.pos] }

func (lx *Lexer) rest() string { return string(lx.src.data[lx.pos:]) }

func (lx *Lexer) take(n int) token.Span {
	span := token.Span{Offset: lx.pos, Len: n}
	lx.pos += n
	return span
}

func (lx *Lexer) makeToken(id token.Id, n int) token.Token {
	val := string(lx.src.data[lx.pos : lx.pos+n])
	return token.Token{ID: id, Val: val, Span: lx.take(n)}
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }

func isNameStart(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isNameChar(b byte) bool {
	return isNameStart(b) || ('0' <= b && b <= '9')
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// isSpecialVarName recognizes the one-character parameter names $@ $* $# $?
// $$ $! $- $&.
func isSpecialVarName(b byte) bool {
	return strings.IndexByte("@*#?$!-&", b) >= 0
}

func (lx *Lexer) skipSpaces(mode token.LexMode) {
	for !lx.eof() {
		b := lx.peek()
		switch {
		case isSpace(b):
			lx.pos++
		case b == '\\' && lx.pos+1 < len(lx.src.data) && lx.src.data[lx.pos+1] == '\n':
			lx.pos += 2 // line continuation
		case b == '#' && mode == token.LexModeNormal:
			for !lx.eof() && lx.peek() != '\n' {
				lx.pos++
			}
		default:
			return
		}
	}
}

// delimiters per mode: where a word ends. In regex mode only whitespace
// terminates the operand.
func isWordEnd(mode token.LexMode, b byte) bool {
	if isSpace(b) || b == '\n' {
		return true
	}
	switch mode {
	case token.LexModeNormal:
		return strings.IndexByte(";&|<>()", b) >= 0
	case token.LexModeDBracket:
		return strings.IndexByte("&|<>()", b) >= 0
	}
	return false
}

// normalOps maps command-context operator spellings to Ids, longest first.
var normalOps = []struct {
	pat string
	id  token.Id
}{
	{"<<<", token.RedirTLess},
	{"<<-", token.RedirDLessDash},
	{"<<", token.RedirDLess},
	{"<>", token.RedirLessGreat},
	{"<&", token.RedirLessAnd},
	{"<", token.RedirLess},
	{">>", token.RedirDGreat},
	{">&", token.RedirGreatAnd},
	{">|", token.RedirClobber},
	{">", token.RedirGreat},
	{"&&", token.OpDAmp},
	{"&", token.OpAmp},
	{"||", token.OpDPipe},
	{"|&", token.OpPipeAmp},
	{"|", token.OpPipe},
	{";;", token.OpDSemi},
	{";", token.OpSemi},
	{"(", token.OpLParen},
	{")", token.OpRParen},
}

var dbracketOps = []struct {
	pat string
	id  token.Id
}{
	{"&&", token.OpDAmp},
	{"||", token.OpDPipe},
	{"<", token.RedirLess},
	{">", token.RedirGreat},
	{"(", token.OpLParen},
	{")", token.OpRParen},
}

func matchOp(table []struct {
	pat string
	id  token.Id
}, s string) (token.Id, int) {
	for _, op := range table {
		if strings.HasPrefix(s, op.pat) {
			return op.id, len(op.pat)
		}
	}
	return token.UndefinedTok, 0
}

func (lx *Lexer) readWord(mode token.LexMode) ast.Word {
	lx.skipSpaces(mode)

	if lx.eof() {
		return ast.NewTokenWord(token.Token{
			ID:   token.EofReal,
			Span: token.Span{Offset: lx.pos},
		})
	}

	b := lx.peek()
	if b == '\n' {
		return ast.NewTokenWord(lx.makeToken(token.OpNewline, 1))
	}

	switch mode {
	case token.LexModeNormal:
		// 2>&1 and friends: leading digits bind to the redirection.
		if n := lx.matchFdRedir(); n > 0 {
			id, opLen := matchOp(normalOps, lx.rest()[n:])
			return ast.NewTokenWord(lx.makeToken(id, n+opLen))
		}
		if id, n := matchOp(normalOps, lx.rest()); n > 0 {
			return ast.NewTokenWord(lx.makeToken(id, n))
		}
	case token.LexModeDBracket:
		if id, n := matchOp(dbracketOps, lx.rest()); n > 0 {
			return ast.NewTokenWord(lx.makeToken(id, n))
		}
	}

	return lx.scanWord(mode)
}

// matchFdRedir reports the number of leading digits when they are
// immediately followed by a redirection operator.
func (lx *Lexer) matchFdRedir() int {
	i := 0
	data := lx.src.data
	for lx.pos+i < len(data) && isDigit(data[lx.pos+i]) {
		i++
	}
	if i == 0 || lx.pos+i >= len(data) {
		return 0
	}
	if c := data[lx.pos+i]; c != '<' && c != '>' {
		return 0
	}
	return i
}

func (lx *Lexer) scanWord(mode token.LexMode) ast.Word {
	word := &ast.CompoundWord{}

	if mode == token.LexModeDBracket {
		if w := lx.tryDBracketOpWord(); w != nil {
			return w
		}
	}

	for !lx.eof() && !isWordEnd(mode, lx.peek()) {
		switch b := lx.peek(); b {
		case '\'':
			if p := lx.readSingleQuoted(); p != nil {
				word.Parts = append(word.Parts, p)
			} else {
				return word
			}
		case '"':
			if p := lx.readDoubleQuoted(); p != nil {
				word.Parts = append(word.Parts, p)
			} else {
				return word
			}
		case '\\':
			if mode == token.LexModeBashRegex {
				// Regex metacharacters, backslash included, pass through.
				word.Parts = append(word.Parts, lx.readLiteralRun(mode))
				continue
			}
			if lx.pos+1 >= len(lx.src.data) {
				word.Parts = append(word.Parts, &ast.LiteralPart{Token: lx.makeToken(token.LitChars, 1)})
				continue
			}
			if lx.src.data[lx.pos+1] == '\n' {
				lx.pos += 2
				continue
			}
			word.Parts = append(word.Parts, &ast.EscapedLiteralPart{Token: lx.makeToken(token.LitEscapedChar, 2)})
		case '$':
			if p := lx.readDollar(); p != nil {
				word.Parts = append(word.Parts, p)
			} else {
				return word
			}
		case '`':
			if p := lx.readBacktick(); p != nil {
				word.Parts = append(word.Parts, p)
			} else {
				return word
			}
		case '~':
			if mode == token.LexModeNormal && lx.atTildeContext(word) {
				word.Parts = append(word.Parts, lx.readTilde(mode))
				continue
			}
			word.Parts = append(word.Parts, lx.readLiteralRun(mode))
		default:
			if mode == token.LexModeNormal && len(word.Parts) == 0 {
				if p, arr := lx.tryVarLike(); p != nil {
					word.Parts = append(word.Parts, p)
					if arr != nil {
						word.Parts = append(word.Parts, arr)
					}
					continue
				}
			}
			word.Parts = append(word.Parts, lx.readLiteralRun(mode))
		}
	}

	if mode == token.LexModeNormal {
		lx.recognizeKeyword(word)
	}
	return word
}

// tryDBracketOpWord matches the operator spellings that stand alone as words
// between [[ and ]]: the unary and binary test operators, ]] itself, and !.
// The spelling must be followed by a delimiter, so -zfoo stays a word.
func (lx *Lexer) tryDBracketOpWord() ast.Word {
	id, n, ok := lx.reg.MatchDBracketOp(lx.rest())
	if !ok {
		return nil
	}
	if lx.pos+n < len(lx.src.data) && !isWordEnd(token.LexModeDBracket, lx.src.data[lx.pos+n]) {
		return nil
	}
	return ast.NewCompoundWord(&ast.LiteralPart{Token: lx.makeToken(id, n)})
}

// tryVarLike matches name= at the start of a word and, when it is directly
// followed by (, the array literal that completes it.
func (lx *Lexer) tryVarLike() (ast.WordPart, ast.WordPart) {
	data := lx.src.data
	if !isNameStart(data[lx.pos]) {
		return nil, nil
	}
	i := lx.pos + 1
	for i < len(data) && isNameChar(data[i]) {
		i++
	}
	if i < len(data) && data[i] == '+' && i+1 < len(data) && data[i+1] == '=' {
		i++ // name+= appends
	}
	if i >= len(data) || data[i] != '=' {
		return nil, nil
	}
	lit := &ast.LiteralPart{Token: lx.makeToken(token.LitVarLike, i+1-lx.pos)}
	if !lx.eof() && lx.peek() == '(' {
		return lit, lx.readArrayLiteral()
	}
	return lit, nil
}

func (lx *Lexer) readArrayLiteral() ast.WordPart {
	open := lx.makeToken(token.OpLParen, 1)
	arr := &ast.ArrayLiteralPart{}
	for {
		lx.skipSpaces(token.LexModeNormal)
		if lx.eof() {
			lx.errs.Addf("unexpected EOF in array literal").WithToken(&open)
			return arr
		}
		switch lx.peek() {
		case ')':
			lx.pos++
			return arr
		case '\n':
			lx.pos++
		default:
			w := lx.scanWord(token.LexModeNormal)
			cw, ok := w.(*ast.CompoundWord)
			if !ok || len(cw.Parts) == 0 {
				lx.errs.Addf("expected word in array literal").WithToken(&open)
				return arr
			}
			arr.Words = append(arr.Words, cw)
		}
	}
}

// atTildeContext reports whether a tilde here starts a tilde-substitution:
// at the start of the word, or right after a name= prefix.
func (lx *Lexer) atTildeContext(word *ast.CompoundWord) bool {
	if len(word.Parts) == 0 {
		return true
	}
	if len(word.Parts) == 1 {
		if _, ok := word.Parts[0].VarLikeName(); ok {
			return true
		}
	}
	return false
}

func (lx *Lexer) readTilde(mode token.LexMode) ast.WordPart {
	start := lx.pos
	lx.pos++ // ~
	for !lx.eof() {
		b := lx.peek()
		if b == '/' || isWordEnd(mode, b) {
			break
		}
		if !isNameChar(b) && b != '.' && b != '-' {
			break
		}
		lx.pos++
	}
	return &ast.TildeSubPart{Prefix: string(lx.src.data[start+1 : lx.pos])}
}

// literalSpecials lists the bytes that end a literal run inside a word.
func literalSpecials(mode token.LexMode) string {
	if mode == token.LexModeBashRegex {
		return `'"$` + "`"
	}
	return `'"$\~` + "`"
}

func (lx *Lexer) readLiteralRun(mode token.LexMode) ast.WordPart {
	specials := literalSpecials(mode)
	i := lx.pos
	data := lx.src.data
	for i < len(data) {
		b := data[i]
		if isWordEnd(mode, b) || strings.IndexByte(specials, b) >= 0 {
			if i == lx.pos {
				i++ // never loop on a special we chose not to handle
			}
			break
		}
		i++
	}
	return &ast.LiteralPart{Token: lx.makeToken(token.LitChars, i-lx.pos)}
}

// recognizeKeyword retypes a single-literal word when its text is a keyword,
// an assignment builtin, or one of the brace tokens.
func (lx *Lexer) recognizeKeyword(word *ast.CompoundWord) {
	if len(word.Parts) != 1 {
		return
	}
	lit, ok := word.Parts[0].(*ast.LiteralPart)
	if !ok || lit.Token.ID != token.LitChars {
		return
	}
	switch lit.Token.Val {
	case "{":
		lit.Token.ID = token.LitLBrace
		return
	case "}":
		lit.Token.ID = token.LitRBrace
		return
	}
	if id, ok := lx.reg.KeywordID(lit.Token.Val); ok {
		lit.Token.ID = id
	}
}

func (lx *Lexer) readSingleQuoted() ast.WordPart {
	open := lx.makeToken(token.LeftSingleQuote, 1)
	start := lx.pos
	for {
		if lx.eof() {
			lx.errs.Addf("unterminated single-quoted string").WithToken(&open)
			return nil
		}
		if lx.peek() == '\'' {
			break
		}
		lx.pos++
	}
	part := &ast.SingleQuotedPart{}
	if lx.pos > start {
		part.Tokens = append(part.Tokens, token.Token{
			ID:   token.LitChars,
			Val:  string(lx.src.data[start:lx.pos]),
			Span: token.Span{Offset: start, Len: lx.pos - start},
		})
	}
	lx.pos++ // closing quote
	return part
}

func (lx *Lexer) readDoubleQuoted() ast.WordPart {
	open := lx.makeToken(token.LeftDoubleQuote, 1)
	part := &ast.DoubleQuotedPart{}
	for {
		if lx.eof() {
			lx.errs.Addf("unterminated double-quoted string").WithToken(&open)
			return nil
		}
		switch b := lx.peek(); b {
		case '"':
			lx.pos++
			return part
		case '\\':
			if lx.pos+1 >= len(lx.src.data) {
				lx.errs.Addf("unterminated double-quoted string").WithToken(&open)
				return nil
			}
			switch lx.src.data[lx.pos+1] {
			case '\n':
				lx.pos += 2
			case '$', '`', '"', '\\':
				part.Parts = append(part.Parts, &ast.EscapedLiteralPart{Token: lx.makeToken(token.LitEscapedChar, 2)})
			default:
				// Backslash keeps its literal meaning before other bytes.
				part.Parts = append(part.Parts, &ast.LiteralPart{Token: lx.makeToken(token.LitChars, 2)})
			}
		case '$':
			p := lx.readDollar()
			if p == nil {
				return nil
			}
			part.Parts = append(part.Parts, p)
		case '`':
			p := lx.readBacktick()
			if p == nil {
				return nil
			}
			part.Parts = append(part.Parts, p)
		default:
			i := lx.pos
			data := lx.src.data
			for i < len(data) && strings.IndexByte(`"\$`+"`", data[i]) < 0 {
				i++
			}
			part.Parts = append(part.Parts, &ast.LiteralPart{Token: lx.makeToken(token.LitChars, i-lx.pos)})
		}
	}
}

func (lx *Lexer) readDollar() ast.WordPart {
	data := lx.src.data
	if lx.pos+1 >= len(data) {
		return &ast.LiteralPart{Token: lx.makeToken(token.LitOther, 1)}
	}
	switch next := data[lx.pos+1]; {
	case next == '(' && lx.pos+2 < len(data) && data[lx.pos+2] == '(':
		return lx.readArithSub()
	case next == '(':
		return lx.readCommandSub()
	case next == '{':
		return lx.readBracedVarSub()
	case isNameStart(next):
		lx.pos++ // $
		start := lx.pos
		for !lx.eof() && isNameChar(lx.peek()) {
			lx.pos++
		}
		tok := token.Token{
			ID:   token.VSubName,
			Val:  string(data[start:lx.pos]),
			Span: token.Span{Offset: start, Len: lx.pos - start},
		}
		return &ast.VarSubPart{Name: tok.Val, Token: &tok}
	case isDigit(next):
		lx.pos++
		tok := lx.makeToken(token.VSubNumber, 1)
		return &ast.VarSubPart{Name: tok.Val, Token: &tok}
	case isSpecialVarName(next):
		lx.pos++
		tok := lx.makeToken(specialVarID(next), 1)
		return &ast.VarSubPart{Name: tok.Val, Token: &tok}
	default:
		return &ast.LiteralPart{Token: lx.makeToken(token.LitOther, 1)}
	}
}

func specialVarID(b byte) token.Id {
	switch b {
	case '@':
		return token.VSubAt
	case '*':
		return token.VSubStar
	case '#':
		return token.VSubPound
	case '?':
		return token.VSubQMark
	case '$':
		return token.VSubDollar
	case '!':
		return token.VSubBang
	case '-':
		return token.VSubHyphen
	case '&':
		return token.VSubAmp
	}
	return token.UnknownTok
}

func (lx *Lexer) readCommandSub() ast.WordPart {
	open := lx.makeToken(token.LeftCommandSub, 2) // $(
	start := lx.pos
	depth := 1
	for !lx.eof() {
		switch lx.peek() {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				text := string(lx.src.data[start:lx.pos])
				lx.pos++
				return &ast.CommandSubPart{
					Token:   open,
					Command: &RawCommand{Text: text, Offset: start},
				}
			}
		}
		lx.pos++
	}
	lx.errs.Addf("unterminated command substitution").WithToken(&open)
	return nil
}

func (lx *Lexer) readArithSub() ast.WordPart {
	open := lx.makeToken(token.LeftArithSub, 3) // $((
	start := lx.pos
	depth := 0
	for !lx.eof() {
		switch lx.peek() {
		case '(':
			depth++
		case ')':
			if depth == 0 && lx.pos+1 < len(lx.src.data) && lx.src.data[lx.pos+1] == ')' {
				text := string(lx.src.data[start:lx.pos])
				lx.pos += 2
				return &ast.ArithSubPart{Arith: &RawArith{Text: text, Offset: start}}
			}
			if depth > 0 {
				depth--
			}
		}
		lx.pos++
	}
	lx.errs.Addf("unterminated arithmetic substitution").WithToken(&open)
	return nil
}

func (lx *Lexer) readBacktick() ast.WordPart {
	open := lx.makeToken(token.LeftBacktick, 1)
	start := lx.pos
	for !lx.eof() {
		switch lx.peek() {
		case '\\':
			lx.pos++ // the escaped byte is consumed below
		case '`':
			text := string(lx.src.data[start:lx.pos])
			lx.pos++
			return &ast.CommandSubPart{
				Token:   open,
				Command: &RawCommand{Text: text, Offset: start},
			}
		}
		lx.pos++
	}
	lx.errs.Addf("unterminated backquoted command substitution").WithToken(&open)
	return nil
}

func (lx *Lexer) readBracedVarSub() ast.WordPart {
	open := lx.makeToken(token.LeftVarSub, 2) // ${
	part := &ast.VarSubPart{}
	data := lx.src.data

	// Prefix operators: ${#name} for length, ${!name} for indirection. A
	// lone ${#} or ${!} is the parameter itself, not an operator.
	if !lx.eof() && lx.pos+1 < len(data) && data[lx.pos+1] != '}' {
		switch lx.peek() {
		case '#':
			if isNameStart(data[lx.pos+1]) || isSpecialVarName(data[lx.pos+1]) || isDigit(data[lx.pos+1]) {
				lx.pos++
				part.Prefix = &ast.VarOp{Op: token.VSubPound}
			}
		case '!':
			if isNameStart(data[lx.pos+1]) {
				lx.pos++
				part.Prefix = &ast.VarOp{Op: token.VSubBang}
			}
		}
	}

	switch {
	case lx.eof():
		lx.errs.Addf("unterminated variable substitution").WithToken(&open)
		return nil
	case isNameStart(lx.peek()):
		start := lx.pos
		for !lx.eof() && isNameChar(lx.peek()) {
			lx.pos++
		}
		part.Name = string(data[start:lx.pos])
		tok := token.Token{ID: token.VSubName, Val: part.Name, Span: token.Span{Offset: start, Len: lx.pos - start}}
		part.Token = &tok
	case isDigit(lx.peek()):
		n := 1
		for lx.pos+n < len(data) && isDigit(data[lx.pos+n]) {
			n++
		}
		tok := lx.makeToken(token.VSubNumber, n)
		part.Name = tok.Val
		part.Token = &tok
	case isSpecialVarName(lx.peek()):
		tok := lx.makeToken(specialVarID(lx.peek()), 1)
		part.Name = tok.Val
		part.Token = &tok
	default:
		lx.errs.Addf("bad substitution").WithToken(&open)
		return nil
	}

	if !lx.eof() && lx.peek() == '[' {
		if !lx.readBracketOp(part, &open) {
			return nil
		}
	}

	if !lx.eof() && lx.peek() != '}' {
		if !lx.readSuffixOp(part, &open) {
			return nil
		}
	}

	if lx.eof() || lx.peek() != '}' {
		lx.errs.Addf("unterminated variable substitution").WithToken(&open)
		return nil
	}
	lx.pos++ // }
	return part
}

func (lx *Lexer) readBracketOp(part *ast.VarSubPart, open *token.Token) bool {
	lx.pos++ // [
	start := lx.pos
	depth := 0
	for {
		if lx.eof() {
			lx.errs.Addf("unterminated array subscript").WithToken(open)
			return false
		}
		b := lx.peek()
		if b == '[' {
			depth++
		} else if b == ']' {
			if depth == 0 {
				break
			}
			depth--
		}
		lx.pos++
	}
	sub := token.Token{
		ID:   token.LitChars,
		Val:  string(lx.src.data[start:lx.pos]),
		Span: token.Span{Offset: start, Len: lx.pos - start},
	}
	lx.pos++ // ]
	part.Bracket = &ast.VarOp{
		Op:  token.VOp2LBracket,
		Arg: ast.NewCompoundWord(&ast.LiteralPart{Token: sub}),
	}
	return true
}

func (lx *Lexer) readSuffixOp(part *ast.VarSubPart, open *token.Token) bool {
	id, n, ok := lx.reg.MatchVarSuffixOp(lx.rest())
	if !ok {
		lx.errs.Addf("bad substitution").WithToken(open)
		return false
	}
	lx.take(n)

	op := &ast.VarOp{Op: id}
	switch id {
	case token.VOp2Slash:
		// ${x/pat/rep}: the pattern ends at the first unescaped /.
		op.Arg = lx.scanVarOpArg("/}")
		if !lx.eof() && lx.peek() == '/' {
			lx.pos++
			op.Arg2 = lx.scanVarOpArg("}")
		}
	case token.VOp2Colon:
		// ${x:off:len}
		op.Arg = lx.scanVarOpArg(":}")
		if !lx.eof() && lx.peek() == ':' {
			lx.pos++
			op.Arg2 = lx.scanVarOpArg("}")
		}
	default:
		op.Arg = lx.scanVarOpArg("}")
	}
	part.Suffix = op
	return true
}

// scanVarOpArg reads the argument of a ${...} operator up to one of the stop
// bytes. The argument is itself a word: quotes, escapes, and substitutions
// all nest here.
func (lx *Lexer) scanVarOpArg(stop string) *ast.CompoundWord {
	word := &ast.CompoundWord{}
	data := lx.src.data
	for !lx.eof() && strings.IndexByte(stop, lx.peek()) < 0 {
		switch b := lx.peek(); b {
		case '\'':
			if p := lx.readSingleQuoted(); p != nil {
				word.Parts = append(word.Parts, p)
			} else {
				return word
			}
		case '"':
			if p := lx.readDoubleQuoted(); p != nil {
				word.Parts = append(word.Parts, p)
			} else {
				return word
			}
		case '\\':
			if lx.pos+1 >= len(data) {
				word.Parts = append(word.Parts, &ast.LiteralPart{Token: lx.makeToken(token.LitChars, 1)})
				continue
			}
			word.Parts = append(word.Parts, &ast.EscapedLiteralPart{Token: lx.makeToken(token.LitEscapedChar, 2)})
		case '$':
			if p := lx.readDollar(); p != nil {
				word.Parts = append(word.Parts, p)
			} else {
				return word
			}
		case '`':
			if p := lx.readBacktick(); p != nil {
				word.Parts = append(word.Parts, p)
			} else {
				return word
			}
		default:
			i := lx.pos
			for i < len(data) && strings.IndexByte(stop+`'"$\`+"`", data[i]) < 0 {
				i++
			}
			word.Parts = append(word.Parts, &ast.LiteralPart{Token: lx.makeToken(token.LitChars, i-lx.pos)})
		}
	}
	return word
}
