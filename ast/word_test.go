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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poshlang/posh/ast"
	"github.com/poshlang/posh/token"
)

type stubCommand struct{}

func (stubCommand) String() string { return "<command>" }

type stubArith struct{}

func (stubArith) String() string { return "<arith>" }

func lit(id token.Id, val string) *ast.LiteralPart {
	return &ast.LiteralPart{Token: token.Token{ID: id, Val: val}}
}

func word(parts ...ast.WordPart) *ast.CompoundWord {
	return ast.NewCompoundWord(parts...)
}

func idsOfKind(k token.Kind) []token.Id {
	var out []token.Id
	for i := 0; i < token.NumIds(); i++ {
		if token.KindOf(token.Id(i)) == k {
			out = append(out, token.Id(i))
		}
	}
	return out
}

func TestCommandIDKeywords(t *testing.T) {
	t.Parallel()
	for _, id := range idsOfKind(token.KindKW) {
		w := word(lit(id, "kw"))
		assert.Equal(t, id, w.CommandID(), "CommandID for %s", token.NameOf(id))
		assert.Equal(t, token.KindWord, w.CommandKind())

		// Inside [[, keywords are plain words, except ! which negates.
		if id == token.KWBang {
			assert.Equal(t, id, w.BoolID())
		} else {
			assert.Equal(t, token.WordCompound, w.BoolID(), "BoolID for %s", token.NameOf(id))
		}
	}

	assert.Equal(t, token.LitLBrace, word(lit(token.LitLBrace, "{")).CommandID())
	assert.Equal(t, token.LitRBrace, word(lit(token.LitRBrace, "}")).CommandID())
	assert.Equal(t, token.WordCompound, word(lit(token.LitChars, "echo")).CommandID())
}

func TestBoolIDOperators(t *testing.T) {
	t.Parallel()
	for _, k := range []token.Kind{token.KindBoolUnary, token.KindBoolBinary} {
		for _, id := range idsOfKind(k) {
			w := word(lit(id, "op"))
			assert.Equal(t, id, w.BoolID(), "BoolID for %s", token.NameOf(id))
			assert.Equal(t, token.WordCompound, w.CommandID(), "CommandID for %s", token.NameOf(id))
		}
	}

	assert.Equal(t, token.LitDRightBracket, word(lit(token.LitDRightBracket, "]]")).BoolID())

	// Multi-part words never classify as operators.
	two := word(lit(token.BoolUnary_z, "-z"), lit(token.LitChars, "x"))
	assert.Equal(t, token.WordCompound, two.BoolID())
	assert.Equal(t, token.WordCompound, word().BoolID())
}

func TestAssignmentBuiltinID(t *testing.T) {
	t.Parallel()
	for _, id := range idsOfKind(token.KindAssign) {
		w := word(lit(id, "builtin"))
		assert.Equal(t, id, w.AssignmentBuiltinID(), "for %s", token.NameOf(id))
		assert.Equal(t, token.WordCompound, w.CommandID())
		assert.Equal(t, token.WordCompound, w.BoolID())
	}
	assert.Equal(t, token.UndefinedTok, word(lit(token.LitChars, "declare")).AssignmentBuiltinID())
	assert.Equal(t, token.UndefinedTok, word().AssignmentBuiltinID())
}

func TestArithID(t *testing.T) {
	t.Parallel()
	assert.Equal(t, token.ArithPlus, word(lit(token.ArithPlus, "+")).ArithID())
	assert.Equal(t, token.WordCompound, word(lit(token.LitChars, "x")).ArithID())
	assert.Equal(t, token.WordCompound, word(lit(token.ArithPlus, "+"), lit(token.LitChars, "x")).ArithID())
}

func TestTokenWordClassification(t *testing.T) {
	t.Parallel()
	w := ast.NewTokenWord(token.Token{ID: token.OpDAmp, Val: "&&"})
	assert.Equal(t, token.OpDAmp, w.BoolID())
	assert.Equal(t, token.OpDAmp, w.CommandID())
	assert.Equal(t, token.OpDAmp, w.ArithID())
	assert.Equal(t, token.KindOp, w.CommandKind())

	first, last := w.TokenPair()
	require.NotNil(t, first)
	assert.Same(t, first, last)
}

func TestEvalStatic(t *testing.T) {
	t.Parallel()

	t.Run("literals and quotes", func(t *testing.T) {
		t.Parallel()
		w := word(
			lit(token.LitChars, "a"),
			&ast.SingleQuotedPart{Tokens: []token.Token{{ID: token.LitChars, Val: "b"}}},
			&ast.DoubleQuotedPart{Parts: []ast.WordPart{lit(token.LitChars, "c")}},
			&ast.EscapedLiteralPart{Token: token.Token{ID: token.LitEscapedChar, Val: `\d`}},
		)
		val, quoted, ok := w.EvalStatic()
		require.True(t, ok)
		assert.Equal(t, "abcd", val)
		assert.True(t, quoted)

		// Idempotent: nothing is consumed or cached.
		again, _, _ := w.EvalStatic()
		assert.Equal(t, val, again)
	})

	t.Run("here-doc delimiter", func(t *testing.T) {
		t.Parallel()
		w := word(&ast.SingleQuotedPart{Tokens: []token.Token{{ID: token.LitChars, Val: "EOF"}}})
		val, quoted, ok := w.EvalStatic()
		require.True(t, ok)
		assert.Equal(t, "EOF", val)
		assert.True(t, quoted)
	})

	t.Run("unquoted literal", func(t *testing.T) {
		t.Parallel()
		val, quoted, ok := word(lit(token.LitChars, "name")).EvalStatic()
		require.True(t, ok)
		assert.Equal(t, "name", val)
		assert.False(t, quoted)
	})

	t.Run("substitutions fail", func(t *testing.T) {
		t.Parallel()
		subs := []ast.WordPart{
			&ast.CommandSubPart{Command: stubCommand{}},
			&ast.VarSubPart{Name: "x"},
			&ast.ArithSubPart{Arith: stubArith{}},
			&ast.TildeSubPart{Prefix: ""},
		}
		for _, sub := range subs {
			_, _, ok := word(lit(token.LitChars, "pre"), sub).EvalStatic()
			assert.False(t, ok, "EvalStatic should fail over %T", sub)
		}
	})

	t.Run("substitution inside double quotes fails", func(t *testing.T) {
		t.Parallel()
		w := word(&ast.DoubleQuotedPart{Parts: []ast.WordPart{
			&ast.VarSubPart{Name: "x"},
		}})
		_, _, ok := w.EvalStatic()
		assert.False(t, ok)
	})
}

func TestLooksLikeAssignment(t *testing.T) {
	t.Parallel()

	t.Run("with rhs", func(t *testing.T) {
		t.Parallel()
		w := word(lit(token.LitVarLike, "foo="), lit(token.LitChars, "bar"))
		name, rhs, ok := w.LooksLikeAssignment()
		require.True(t, ok)
		assert.Equal(t, "foo", name)
		require.Len(t, rhs.Parts, 1)
		val, _, _ := rhs.EvalStatic()
		assert.Equal(t, "bar", val)
	})

	t.Run("bare NAME= keeps an empty quoted rhs", func(t *testing.T) {
		t.Parallel()
		w := word(lit(token.LitVarLike, "EMPTY="))
		name, rhs, ok := w.LooksLikeAssignment()
		require.True(t, ok)
		assert.Equal(t, "EMPTY", name)
		require.Len(t, rhs.Parts, 1)
		val, quoted, ok := rhs.EvalStatic()
		require.True(t, ok)
		assert.Equal(t, "", val)
		assert.True(t, quoted)
	})

	t.Run("name never keeps the equals sign", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"a=", "long_name=", "x+="} {
			name, _, ok := word(lit(token.LitVarLike, raw)).LooksLikeAssignment()
			require.True(t, ok, "input %q", raw)
			assert.NotRegexp(t, "=$", name)
		}
	})

	t.Run("not an assignment", func(t *testing.T) {
		t.Parallel()
		_, _, ok := word(lit(token.LitChars, "foo")).LooksLikeAssignment()
		assert.False(t, ok)
		_, _, ok = word().LooksLikeAssignment()
		assert.False(t, ok)
	})
}

func TestArithVarNamesAndAssignmentsAreDisjoint(t *testing.T) {
	t.Parallel()
	w := word(lit(token.LitArithVarLike, "counter"))
	require.False(t, w.HasArrayPart())
	require.NotEmpty(t, w.AsArithVarName())
	_, _, ok := w.LooksLikeAssignment()
	assert.False(t, ok)

	// And the other way around.
	aw := word(lit(token.LitVarLike, "counter="))
	_, _, ok = aw.LooksLikeAssignment()
	require.True(t, ok)
	assert.Empty(t, aw.AsArithVarName())
}

func TestAsFuncName(t *testing.T) {
	t.Parallel()

	name, ok := word(lit(token.LitChars, "my_func")).AsFuncName()
	require.True(t, ok)
	assert.Equal(t, "my_func", name)

	// A fully quoted single part is accepted.
	name, ok = word(&ast.SingleQuotedPart{Tokens: []token.Token{{ID: token.LitChars, Val: "f"}}}).AsFuncName()
	require.True(t, ok)
	assert.Equal(t, "f", name)

	// Quoted text across multiple parts is not.
	_, ok = word(
		lit(token.LitChars, "f"),
		&ast.SingleQuotedPart{Tokens: []token.Token{{ID: token.LitChars, Val: "g"}}},
	).AsFuncName()
	assert.False(t, ok)

	_, ok = word(&ast.VarSubPart{Name: "x"}).AsFuncName()
	assert.False(t, ok)
}

func TestHasArrayPart(t *testing.T) {
	t.Parallel()
	w := word(
		lit(token.LitVarLike, "a="),
		&ast.ArrayLiteralPart{Words: []*ast.CompoundWord{word(lit(token.LitChars, "x"))}},
	)
	assert.True(t, w.HasArrayPart())
	assert.False(t, word(lit(token.LitChars, "a")).HasArrayPart())
}

func TestTokenPair(t *testing.T) {
	t.Parallel()

	first, last := word().TokenPair()
	assert.Nil(t, first)
	assert.Nil(t, last)

	a := lit(token.LitChars, "a")
	b := lit(token.LitChars, "b")
	first, last = word(a, b).TokenPair()
	assert.Equal(t, &a.Token, first)
	assert.Equal(t, &b.Token, last)
}
