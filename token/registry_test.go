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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poshlang/posh/token"
)

func TestKindIsTotal(t *testing.T) {
	t.Parallel()
	for i := 0; i < token.NumIds(); i++ {
		id := token.Id(i)
		k := token.KindOf(id)
		assert.NotEqual(t, "Kind(?)", k.String(), "Id %d has no Kind", i)
		assert.NotEmpty(t, token.NameOf(id), "Id %d has no name", i)
	}
}

func TestKindSpotChecks(t *testing.T) {
	t.Parallel()
	cases := []struct {
		id   token.Id
		kind token.Kind
	}{
		{token.UndefinedTok, token.KindUndefined},
		{token.UnknownTok, token.KindUnknown},
		{token.EofReal, token.KindEof},
		{token.LitDRightBracket, token.KindLit},
		{token.OpDAmp, token.KindOp},
		{token.RedirDGreat, token.KindRedir},
		{token.LeftCommandSub, token.KindLeft},
		{token.RightArrayLiteral, token.KindRight},
		{token.VSubName, token.KindVSub},
		{token.VTestColonHyphen, token.KindVTest},
		{token.VOp1DPound, token.KindVOp1},
		{token.VOp2Slash, token.KindVOp2},
		{token.ArithDEqual, token.KindArith},
		{token.NodeBinaryExpr, token.KindNode},
		{token.WordCompound, token.KindWord},
		{token.KWBang, token.KindKW},
		{token.AssignReadonly, token.KindAssign},
		{token.BoolUnary_z, token.KindBoolUnary},
		{token.BoolBinaryEqualTilde, token.KindBoolBinary},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, token.KindOf(tc.id), "KindOf(%s)", token.NameOf(tc.id))
		assert.Equal(t, tc.kind, tc.id.Kind())
	}
}

func TestNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Op_DAmp", token.NameOf(token.OpDAmp))
	assert.Equal(t, "BoolBinary_EqualTilde", token.NameOf(token.BoolBinaryEqualTilde))
	assert.Equal(t, "BoolBinary_ef", token.NameOf(token.BoolBinaryEf))
	assert.Equal(t, "BoolUnary_z", token.BoolUnary_z.String())
	assert.Equal(t, "Lit_DRightBracket", token.LitDRightBracket.String())
	assert.Equal(t, "Undefined_Tok", token.UndefinedTok.String())
}

func TestOperandTypes(t *testing.T) {
	t.Parallel()

	// Every boolean operator has a defined operand domain.
	for i := 0; i < token.NumIds(); i++ {
		id := token.Id(i)
		switch token.KindOf(id) {
		case token.KindBoolUnary, token.KindBoolBinary:
			assert.NotEqual(t, token.OperandUndefined, token.OperandTypeOf(id),
				"%s has no operand type", token.NameOf(id))
		}
	}

	assert.Equal(t, token.OperandStr, token.OperandTypeOf(token.BoolUnary_z))
	assert.Equal(t, token.OperandStr, token.OperandTypeOf(token.BoolUnary_n))
	assert.Equal(t, token.OperandOther, token.OperandTypeOf(token.BoolUnary_v))
	assert.Equal(t, token.OperandPath, token.OperandTypeOf(token.BoolUnary_f))
	assert.Equal(t, token.OperandStr, token.OperandTypeOf(token.BoolBinaryDEqual))
	assert.Equal(t, token.OperandPath, token.OperandTypeOf(token.BoolBinaryNt))
	assert.Equal(t, token.OperandInt, token.OperandTypeOf(token.BoolBinaryEq))

	// The logical connectives have none; the < and > puns compare strings.
	assert.Equal(t, token.OperandUndefined, token.OperandTypeOf(token.OpDAmp))
	assert.Equal(t, token.OperandUndefined, token.OperandTypeOf(token.OpDPipe))
	assert.Equal(t, token.OperandUndefined, token.OperandTypeOf(token.KWBang))
	assert.Equal(t, token.OperandStr, token.OperandTypeOf(token.RedirLess))
	assert.Equal(t, token.OperandStr, token.OperandTypeOf(token.RedirGreat))
}

func TestRedirTables(t *testing.T) {
	t.Parallel()
	for i := 0; i < token.NumIds(); i++ {
		id := token.Id(i)
		if token.KindOf(id) != token.KindRedir {
			continue
		}
		_, ok := token.RedirTypeOf(id)
		require.True(t, ok, "%s has no redir type", token.NameOf(id))
		fd, ok := token.DefaultFD(id)
		require.True(t, ok, "%s has no default fd", token.NameOf(id))
		assert.Contains(t, []int{0, 1}, fd)
	}

	typ, _ := token.RedirTypeOf(token.RedirDLess)
	assert.Equal(t, token.RedirTypeStr, typ)
	typ, _ = token.RedirTypeOf(token.RedirGreatAnd)
	assert.Equal(t, token.RedirTypeDesc, typ)
	typ, _ = token.RedirTypeOf(token.RedirGreat)
	assert.Equal(t, token.RedirTypePath, typ)

	fd, _ := token.DefaultFD(token.RedirLess)
	assert.Equal(t, 0, fd)
	fd, _ = token.DefaultFD(token.RedirDGreat)
	assert.Equal(t, 1, fd)

	_, ok := token.RedirTypeOf(token.OpPipe)
	assert.False(t, ok)
	_, ok = token.DefaultFD(token.LitChars)
	assert.False(t, ok)
}

func TestLexerPairs(t *testing.T) {
	t.Parallel()

	unary := token.LexerPairs(token.KindBoolUnary)
	require.Len(t, unary, 25)
	assert.Equal(t, token.LexerPair{Pattern: "-z", ID: token.BoolUnary_z}, unary[0])

	vtest := token.LexerPairs(token.KindVTest)
	require.Len(t, vtest, 8)
	assert.Equal(t, ":-", vtest[0].Pattern)

	binary := token.LexerPairs(token.KindBoolBinary)
	require.Len(t, binary, 13)
	assert.Contains(t, binary, token.LexerPair{Pattern: "=~", ID: token.BoolBinaryEqualTilde})

	assert.Contains(t, token.LexerPairs(token.KindArith), token.LexerPair{Pattern: "==", ID: token.ArithDEqual})

	// Kinds not driven by literal spellings expose no pairs.
	assert.Nil(t, token.LexerPairs(token.KindKW))
	assert.Nil(t, token.LexerPairs(token.KindLit))
}

func TestKeywordID(t *testing.T) {
	t.Parallel()
	id, ok := token.KeywordID("for")
	require.True(t, ok)
	assert.Equal(t, token.KWFor, id)

	id, ok = token.KeywordID("[[")
	require.True(t, ok)
	assert.Equal(t, token.KWDLeftBracket, id)

	id, ok = token.KeywordID("declare")
	require.True(t, ok)
	assert.Equal(t, token.AssignDeclare, id)

	_, ok = token.KeywordID("frobnicate")
	assert.False(t, ok)
}

func TestRegistryOperatorMatch(t *testing.T) {
	t.Parallel()
	reg := token.NewRegistry()

	cases := []struct {
		in   string
		id   token.Id
		n    int
		hits bool
	}{
		{"-z foo", token.BoolUnary_z, 2, true},
		{"-ef b", token.BoolBinaryEf, 3, true},
		{"-eq 3", token.BoolBinaryEq, 3, true},
		{"== bar", token.BoolBinaryDEqual, 2, true},
		{"= bar", token.BoolBinaryEqual, 1, true},
		{"=~ ^a", token.BoolBinaryEqualTilde, 2, true},
		{"!= x", token.BoolBinaryNEqual, 2, true},
		{"! x", token.KWBang, 1, true},
		{"]]", token.LitDRightBracket, 2, true},
		{"foo", token.UndefinedTok, 0, false},
	}
	for _, tc := range cases {
		id, n, ok := reg.MatchDBracketOp(tc.in)
		assert.Equal(t, tc.hits, ok, "input %q", tc.in)
		assert.Equal(t, tc.id, id, "input %q", tc.in)
		assert.Equal(t, tc.n, n, "input %q", tc.in)
	}

	id, n, ok := reg.MatchVarSuffixOp(":-default}")
	require.True(t, ok)
	assert.Equal(t, token.VTestColonHyphen, id)
	assert.Equal(t, 2, n)

	id, n, ok = reg.MatchVarSuffixOp("%%.c}")
	require.True(t, ok)
	assert.Equal(t, token.VOp1DPercent, id)
	assert.Equal(t, 2, n)

	id, n, ok = reg.MatchVarSuffixOp(":2}")
	require.True(t, ok)
	assert.Equal(t, token.VOp2Colon, id)
	assert.Equal(t, 1, n)

	_, _, ok = reg.MatchVarSuffixOp("}")
	assert.False(t, ok)
}
