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

// Package token defines the lexical vocabulary of the shell: the fine-grained
// Id of every token species, the coarse Kind that groups related Ids, and the
// frozen lookup tables (operand types, redirection defaults, operator
// spellings) that the lexer and the parsers consult.
package token

// Id is the universal token, word, and node type. It identifies one distinct
// lexical species. Id values are assigned once, in registration order, and
// are opaque to clients: only equality and Kind lookup are part of the
// contract.
type Id uint16

// Ids, declared in the same order the registration table (spec.go) lists
// them. The table is walked at package init, and init panics when the first
// Id of any Kind or the total Id count disagrees with this block. The order
// of Ids inside one Kind is not checked.
const (
	// UndefinedTok is the sentinel returned whenever a lookup does not apply.
	UndefinedTok Id = iota
	// UnknownTok means the lexer saw a byte that matched no production.
	UnknownTok

	EofReal
	EofRParen
	EofBacktick

	IgnoredLineCont
	IgnoredSpace
	IgnoredComment

	WSSpace

	LitChars
	LitVarLike
	LitOther
	LitEscapedChar
	LitLBrace
	LitRBrace
	LitComma
	LitDRightBracket // the ]] that matches [[, NOT a keyword
	LitTilde
	LitPound
	LitSlash
	LitPercent
	LitDigits
	LitAt
	LitArithVarLike // for $((var+1)), distinct from LitVarLike "var="

	OpNewline
	OpAmp
	OpPipe
	OpPipeAmp
	OpDAmp
	OpDPipe
	OpSemi
	OpDSemi
	OpLParen
	OpRParen
	OpDLeftParen
	OpDRightParen

	RedirLess
	RedirGreat
	RedirDLess
	RedirTLess
	RedirDGreat
	RedirGreatAnd
	RedirLessAnd
	RedirDLessDash
	RedirLessGreat
	RedirClobber

	LeftDoubleQuote
	LeftSingleQuote
	LeftBacktick
	LeftCommandSub
	LeftVarSub
	LeftArithSub
	LeftArithSub2
	LeftDollarDoubleQuote
	LeftDollarSingleQuote
	LeftProcSubIn
	LeftProcSubOut

	RightDoubleQuote
	RightSingleQuote
	RightBacktick
	RightCommandSub
	RightVarSub
	RightArithSub
	RightDollarDoubleQuote
	RightDollarSingleQuote
	RightSubshell
	RightFuncDef
	RightCasePat
	RightArrayLiteral

	VSubName
	VSubNumber
	VSubBang
	VSubAt
	VSubPound
	VSubDollar
	VSubAmp
	VSubStar
	VSubHyphen
	VSubQMark

	VTestColonHyphen
	VTestHyphen
	VTestColonEquals
	VTestEquals
	VTestColonQMark
	VTestQMark
	VTestColonPlus
	VTestPlus

	VOp1Percent
	VOp1DPercent
	VOp1Pound
	VOp1DPound
	VOp1Caret
	VOp1DCaret
	VOp1Comma
	VOp1DComma

	VOp2Slash
	VOp2Colon
	VOp2LBracket
	VOp2RBracket

	ArithSemi
	ArithComma
	ArithPlus
	ArithMinus
	ArithStar
	ArithSlash
	ArithPercent
	ArithDPlus
	ArithDMinus
	ArithDStar
	ArithLParen
	ArithRParen
	ArithLBracket
	ArithRBracket
	ArithRBrace
	ArithQMark
	ArithColon
	ArithLessEqual
	ArithLess
	ArithGreatEqual
	ArithGreat
	ArithDEqual
	ArithNEqual
	ArithDAmp
	ArithDPipe
	ArithBang
	ArithDGreat
	ArithDLess
	ArithAmp
	ArithPipe
	ArithCaret
	ArithTilde
	ArithEqual
	ArithPlusEqual
	ArithMinusEqual
	ArithStarEqual
	ArithSlashEqual
	ArithPercentEqual
	ArithDGreatEqual
	ArithDLessEqual
	ArithAmpEqual
	ArithPipeEqual
	ArithCaretEqual

	NodePostDPlus
	NodePostDMinus
	NodeUnaryPlus
	NodeUnaryMinus
	NodeArithVar
	NodeCommand
	NodeAssign
	NodeAndOr
	NodeBlock
	NodeSubshell
	NodeFork
	NodeFuncDef
	NodeForEach
	NodeForExpr
	NodeNoOp
	NodeUnaryExpr
	NodeBinaryExpr
	NodeTernaryExpr
	NodeFuncCall
	NodeConstInt

	WordCompound

	KWDLeftBracket
	KWBang
	KWFor
	KWWhile
	KWUntil
	KWDo
	KWDone
	KWIn
	KWCase
	KWEsac
	KWIf
	KWFi
	KWThen
	KWElse
	KWElif
	KWFunction

	AssignDeclare
	AssignExport
	AssignLocal
	AssignReadonly

	// Boolean unaries carry an underscore so that the case-sensitive
	// single-letter spellings (-s vs -S, -o vs -O, ...) keep distinct names.
	BoolUnary_z
	BoolUnary_n
	BoolUnary_o
	BoolUnary_v
	BoolUnary_R
	BoolUnary_a
	BoolUnary_b
	BoolUnary_c
	BoolUnary_d
	BoolUnary_e
	BoolUnary_f
	BoolUnary_g
	BoolUnary_h
	BoolUnary_L
	BoolUnary_p
	BoolUnary_r
	BoolUnary_s
	BoolUnary_S
	BoolUnary_t
	BoolUnary_u
	BoolUnary_w
	BoolUnary_x
	BoolUnary_O
	BoolUnary_G
	BoolUnary_N

	BoolBinaryEqual
	BoolBinaryDEqual
	BoolBinaryNEqual
	BoolBinaryEqualTilde
	BoolBinaryEf
	BoolBinaryNt
	BoolBinaryOt
	BoolBinaryEq
	BoolBinaryNe
	BoolBinaryGt
	BoolBinaryGe
	BoolBinaryLt
	BoolBinaryLe

	numIds
)

// Kind groups related Ids. It is a coarser category used to make parsing
// decisions: every Id belongs to exactly one Kind.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindUnknown
	KindEof
	KindIgnored
	KindWS
	KindLit
	KindOp
	KindRedir
	KindLeft
	KindRight
	KindVSub
	KindVTest
	KindVOp1
	KindVOp2
	KindArith
	KindNode
	KindWord
	KindKW
	KindAssign
	KindBoolUnary
	KindBoolBinary

	numKinds
)

var kindNames = [numKinds]string{
	KindUndefined:  "Undefined",
	KindUnknown:    "Unknown",
	KindEof:        "Eof",
	KindIgnored:    "Ignored",
	KindWS:         "WS",
	KindLit:        "Lit",
	KindOp:         "Op",
	KindRedir:      "Redir",
	KindLeft:       "Left",
	KindRight:      "Right",
	KindVSub:       "VSub",
	KindVTest:      "VTest",
	KindVOp1:       "VOp1",
	KindVOp2:       "VOp2",
	KindArith:      "Arith",
	KindNode:       "Node",
	KindWord:       "Word",
	KindKW:         "KW",
	KindAssign:     "Assign",
	KindBoolUnary:  "BoolUnary",
	KindBoolBinary: "BoolBinary",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// Kind returns the Kind the Id belongs to. It is total on every Id the lexer
// can emit; an out-of-range Id is a programmer error and panics.
func (i Id) Kind() Kind { return KindOf(i) }

// String returns the human-readable token label, e.g. "Op_DAmp".
func (i Id) String() string { return NameOf(i) }
