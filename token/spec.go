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

// The registration table is the single source of truth for the Id/Kind
// relation, the human-readable token labels, the operator spellings the lexer
// matches, and the operand domain of every boolean operator. The const block
// in id.go mirrors it one to one; buildTables checks the first Id of every
// Kind and the total count against it and panics at init when they disagree,
// which is the only point in the process lifetime where registration can
// fail.

type idSpec struct {
	name string
	id   Id
	pat  string      // operator spelling consulted by the lexer; "" if none
	arg  OperandType // operand domain; meaningful for boolean operators only
}

type kindSpec struct {
	kind     Kind
	ids      []idSpec
	hasPairs bool // expose (pattern, Id) pairs to the character lexer
}

func ids(names ...string) []idSpec {
	specs := make([]idSpec, len(names))
	for i, n := range names {
		specs[i] = idSpec{name: n}
	}
	return specs
}

func pair(name, pat string) idSpec { return idSpec{name: name, pat: pat} }

// dash turns single-letter and short test names into their "-x" spellings.
func dash(arg OperandType, names ...string) []idSpec {
	specs := make([]idSpec, len(names))
	for i, n := range names {
		specs[i] = idSpec{name: n, pat: "-" + n, arg: arg}
	}
	return specs
}

func withArg(arg OperandType, specs ...idSpec) []idSpec {
	for i := range specs {
		specs[i].arg = arg
	}
	return specs
}

func concat(lists ...[]idSpec) []idSpec {
	var out []idSpec
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

var registrations = []kindSpec{
	{kind: KindUndefined, ids: ids("Tok")}, // initial state
	{kind: KindUnknown, ids: ids("Tok")},   // nothing matched

	{kind: KindEof, ids: ids("Real", "RParen", "Backtick")},
	{kind: KindIgnored, ids: ids("LineCont", "Space", "Comment")},
	{kind: KindWS, ids: ids("Space")},

	{kind: KindLit, ids: ids(
		"Chars", "VarLike", "Other", "EscapedChar",
		"LBrace", "RBrace", "Comma",
		"DRightBracket",
		"Tilde",
		"Pound",
		"Slash", "Percent",
		"Digits",
		"At",
		"ArithVarLike",
	)},

	{kind: KindOp, ids: ids(
		"Newline",
		"Amp",
		"Pipe",
		"PipeAmp",
		"DAmp",
		"DPipe",
		"Semi",
		"DSemi",
		"LParen",
		"RParen",
		"DLeftParen",
		"DRightParen",
	)},

	{kind: KindRedir, ids: ids(
		"Less",      // < stdin
		"Great",     // > stdout
		"DLess",     // << here doc
		"TLess",     // <<< here string
		"DGreat",    // >> append
		"GreatAnd",  // >& descriptor
		"LessAnd",   // <& descriptor
		"DLessDash", // <<- here doc, strip tabs
		"LessGreat", // <>
		"Clobber",   // >|
	)},

	{kind: KindLeft, ids: ids(
		"DoubleQuote", "SingleQuote", "Backtick", "CommandSub", "VarSub",
		"ArithSub", "ArithSub2", "DollarDoubleQuote", "DollarSingleQuote",
		"ProcSubIn", "ProcSubOut",
	)},

	{kind: KindRight, ids: ids(
		"DoubleQuote", "SingleQuote", "Backtick", "CommandSub", "VarSub",
		"ArithSub", "DollarDoubleQuote", "DollarSingleQuote",
		"Subshell", "FuncDef", "CasePat", "ArrayLiteral",
	)},

	{kind: KindVSub, ids: ids(
		"Name", "Number", "Bang", "At", "Pound", "Dollar", "Amp", "Star",
		"Hyphen", "QMark",
	)},

	{kind: KindVTest, hasPairs: true, ids: []idSpec{
		pair("ColonHyphen", ":-"),
		pair("Hyphen", "-"),
		pair("ColonEquals", ":="),
		pair("Equals", "="),
		pair("ColonQMark", ":?"),
		pair("QMark", "?"),
		pair("ColonPlus", ":+"),
		pair("Plus", "+"),
	}},

	// String removal and case ops.
	{kind: KindVOp1, hasPairs: true, ids: []idSpec{
		pair("Percent", "%"),
		pair("DPercent", "%%"),
		pair("Pound", "#"),
		pair("DPound", "##"),
		pair("Caret", "^"),
		pair("DCaret", "^^"),
		pair("Comma", ","),
		pair("DComma", ",,"),
	}},

	{kind: KindVOp2, hasPairs: true, ids: []idSpec{
		pair("Slash", "/"),
		pair("Colon", ":"),
		pair("LBracket", "["),
		pair("RBracket", "]"),
	}},

	{kind: KindArith, hasPairs: true, ids: []idSpec{
		pair("Semi", ";"),
		pair("Comma", ","),
		pair("Plus", "+"), pair("Minus", "-"), pair("Star", "*"), pair("Slash", "/"),
		pair("Percent", "%"),
		pair("DPlus", "++"), pair("DMinus", "--"), pair("DStar", "**"),
		pair("LParen", "("), pair("RParen", ")"),
		pair("LBracket", "["), pair("RBracket", "]"),
		pair("RBrace", "}"),
		pair("QMark", "?"), pair("Colon", ":"),
		pair("LessEqual", "<="), pair("Less", "<"), pair("GreatEqual", ">="), pair("Great", ">"),
		pair("DEqual", "=="), pair("NEqual", "!="),
		pair("DAmp", "&&"), pair("DPipe", "||"), pair("Bang", "!"),
		pair("DGreat", ">>"), pair("DLess", "<<"),
		pair("Amp", "&"), pair("Pipe", "|"), pair("Caret", "^"), pair("Tilde", "~"),
		pair("Equal", "="),
		pair("PlusEqual", "+="), pair("MinusEqual", "-="), pair("StarEqual", "*="),
		pair("SlashEqual", "/="), pair("PercentEqual", "%="),
		pair("DGreatEqual", ">>="), pair("DLessEqual", "<<="),
		pair("AmpEqual", "&="), pair("PipeEqual", "|="),
		pair("CaretEqual", "^="),
	}},

	// Node types that are not tokens.
	{kind: KindNode, ids: ids(
		"PostDPlus", "PostDMinus",
		"UnaryPlus", "UnaryMinus",
		"ArithVar",
		"Command", "Assign", "AndOr", "Block", "Subshell", "Fork",
		"FuncDef", "ForEach", "ForExpr", "NoOp",
		"UnaryExpr", "BinaryExpr", "TernaryExpr", "FuncCall",
		"ConstInt",
	)},

	{kind: KindWord, ids: ids("Compound")},

	{kind: KindKW, ids: []idSpec{
		pair("DLeftBracket", "[["), pair("Bang", "!"),
		pair("For", "for"), pair("While", "while"), pair("Until", "until"),
		pair("Do", "do"), pair("Done", "done"), pair("In", "in"),
		pair("Case", "case"), pair("Esac", "esac"), pair("If", "if"),
		pair("Fi", "fi"), pair("Then", "then"), pair("Else", "else"),
		pair("Elif", "elif"), pair("Function", "function"),
	}},

	// Assignment builtins are statically parsed like keywords, but env
	// bindings can appear before them, e.g. FOO=bar local v.
	{kind: KindAssign, ids: []idSpec{
		pair("Declare", "declare"), pair("Export", "export"),
		pair("Local", "local"), pair("Readonly", "readonly"),
	}},

	{kind: KindBoolUnary, hasPairs: true, ids: concat(
		dash(OperandStr, "z", "n"),
		dash(OperandOther, "o", "v", "R"),
		dash(OperandPath,
			"a", "b", "c", "d", "e", "f", "g", "h", "L", "p", "r", "s", "S",
			"t", "u", "w", "x", "O", "G", "N"),
	)},

	{kind: KindBoolBinary, hasPairs: true, ids: concat(
		withArg(OperandStr,
			pair("Equal", "="), pair("DEqual", "=="), pair("NEqual", "!="),
			pair("EqualTilde", "=~")),
		dash(OperandPath, "ef", "nt", "ot"),
		dash(OperandInt, "eq", "ne", "gt", "ge", "lt", "le"),
	)},
}

// LexerPair is one (literal spelling, Id) entry the character lexer consults
// for the operator-driven Kinds.
type LexerPair struct {
	Pattern string
	ID      Id
}

var (
	idKinds      [numIds]Kind
	idNames      [numIds]string
	operandTypes [numIds]OperandType
	lexerPairs   map[Kind][]LexerPair
	keywordIDs   map[string]Id
)

// kindAnchors pins the first Id of every Kind to its declared constant, so a
// row added to, dropped from, or moved between Kinds in either the table or
// the const block trips the init check instead of silently shifting every
// later Id. Rows reordered within one Kind are not detected.
var kindAnchors = map[Kind]Id{
	KindUndefined:  UndefinedTok,
	KindUnknown:    UnknownTok,
	KindEof:        EofReal,
	KindIgnored:    IgnoredLineCont,
	KindWS:         WSSpace,
	KindLit:        LitChars,
	KindOp:         OpNewline,
	KindRedir:      RedirLess,
	KindLeft:       LeftDoubleQuote,
	KindRight:      RightDoubleQuote,
	KindVSub:       VSubName,
	KindVTest:      VTestColonHyphen,
	KindVOp1:       VOp1Percent,
	KindVOp2:       VOp2Slash,
	KindArith:      ArithSemi,
	KindNode:       NodePostDPlus,
	KindWord:       WordCompound,
	KindKW:         KWDLeftBracket,
	KindAssign:     AssignDeclare,
	KindBoolUnary:  BoolUnary_z,
	KindBoolBinary: BoolBinaryEqual,
}

func init() { buildTables() }

func buildTables() {
	lexerPairs = make(map[Kind][]LexerPair)
	keywordIDs = make(map[string]Id)

	var next Id
	seenKinds := make(map[Kind]bool, numKinds)
	for _, ks := range registrations {
		if seenKinds[ks.kind] {
			panic("token: kind " + ks.kind.String() + " registered twice")
		}
		seenKinds[ks.kind] = true

		for i := range ks.ids {
			spec := &ks.ids[i]
			spec.id = next
			next++
			if i == 0 && kindAnchors[ks.kind] != spec.id {
				panic("token: registration table and Id constants disagree at kind " + ks.kind.String())
			}
			idKinds[spec.id] = ks.kind
			idNames[spec.id] = ks.kind.String() + "_" + spec.name
			operandTypes[spec.id] = spec.arg
			if ks.hasPairs {
				lexerPairs[ks.kind] = append(lexerPairs[ks.kind], LexerPair{spec.pat, spec.id})
			}
			if (ks.kind == KindKW || ks.kind == KindAssign) && spec.pat != "" {
				keywordIDs[spec.pat] = spec.id
			}
		}
	}
	if next != numIds {
		panic("token: registration table and Id constants disagree")
	}

	// Connectives reused inside [[ have no operand domain; the < and >
	// redirection puns compare strings lexicographically.
	operandTypes[OpDAmp] = OperandUndefined
	operandTypes[OpDPipe] = OperandUndefined
	operandTypes[KWBang] = OperandUndefined
	operandTypes[RedirLess] = OperandStr
	operandTypes[RedirGreat] = OperandStr
}

// KindOf returns the Kind for id. It is O(1) and total on every registered
// Id; anything else is a programmer error and panics.
func KindOf(id Id) Kind {
	if id >= numIds {
		panic("token: KindOf of unregistered Id")
	}
	return idKinds[id]
}

// NameOf returns the human-readable label for id, e.g. "BoolBinary_EqualTilde".
func NameOf(id Id) string {
	if id >= numIds {
		panic("token: NameOf of unregistered Id")
	}
	return idNames[id]
}

// LexerPairs returns the ordered (spelling, Id) list for an operator-driven
// Kind (VTest, VOp1, VOp2, Arith, BoolUnary, BoolBinary), or nil for Kinds
// that are not driven by literal spellings.
func LexerPairs(k Kind) []LexerPair {
	return lexerPairs[k]
}

// KeywordID resolves a literal word to its keyword or assignment-builtin Id.
func KeywordID(s string) (Id, bool) {
	id, ok := keywordIDs[s]
	return id, ok
}

// NumIds reports the total number of registered Ids. It exists so invariant
// tests can enumerate the closed Id set without reaching into the tables.
func NumIds() int { return int(numIds) }
