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

func TestLiteralPartQueries(t *testing.T) {
	t.Parallel()

	p := lit(token.LitChars, "dir/file")
	assert.Equal(t, token.LitChars, p.LiteralID())
	assert.Equal(t, "dir/file", p.UnquotedLiteralValue())
	assert.Equal(t, 3, p.LiteralSlashPosition())
	assert.False(t, p.IsSubstitution())

	head, tail := p.SplitAtIndex(3)
	assert.Equal(t, "dir", head)
	assert.Equal(t, "/file", tail)

	assert.Equal(t, ast.SlashPosNone, lit(token.LitChars, "file").LiteralSlashPosition())
}

func TestVarLikeName(t *testing.T) {
	t.Parallel()

	name, ok := lit(token.LitVarLike, "foo=").VarLikeName()
	require.True(t, ok)
	assert.Equal(t, "foo", name)

	// The Id carries the decision, not the text.
	_, ok = lit(token.LitChars, "foo=").VarLikeName()
	assert.False(t, ok)

	assert.Equal(t, "n", lit(token.LitArithVarLike, "n").ArithVarLikeName())
	assert.Empty(t, lit(token.LitChars, "n").ArithVarLikeName())
}

func TestPartDefaults(t *testing.T) {
	t.Parallel()

	parts := []ast.WordPart{
		&ast.VarSubPart{Name: "x"},
		&ast.CommandSubPart{Command: stubCommand{}},
		&ast.ArithSubPart{Arith: stubArith{}},
		&ast.TildeSubPart{Prefix: "u"},
		&ast.SingleQuotedPart{},
		&ast.DoubleQuotedPart{},
		&ast.ArrayLiteralPart{},
	}
	for _, p := range parts {
		assert.Equal(t, token.UndefinedTok, p.LiteralID(), "%T", p)
		assert.Equal(t, ast.SlashPosNotLiteral, p.LiteralSlashPosition(), "%T", p)
		assert.Empty(t, p.UnquotedLiteralValue(), "%T", p)
		_, ok := p.VarLikeName()
		assert.False(t, ok, "%T", p)
	}
}

func TestIsSubstitution(t *testing.T) {
	t.Parallel()

	assert.True(t, (&ast.VarSubPart{Name: "x"}).IsSubstitution())
	assert.True(t, (&ast.CommandSubPart{Command: stubCommand{}}).IsSubstitution())
	assert.True(t, (&ast.ArithSubPart{Arith: stubArith{}}).IsSubstitution())

	// Tilde expansion results are never split, so tilde is not one.
	assert.False(t, (&ast.TildeSubPart{}).IsSubstitution())
	assert.False(t, lit(token.LitChars, "x").IsSubstitution())
	assert.False(t, (&ast.SingleQuotedPart{}).IsSubstitution())
}

func TestVarSubSlotsAreIndependent(t *testing.T) {
	t.Parallel()

	p := &ast.VarSubPart{Name: "arr"}
	require.Nil(t, p.Prefix)
	require.Nil(t, p.Bracket)
	require.Nil(t, p.Suffix)

	p.Bracket = &ast.VarOp{Op: token.VOp2LBracket, Arg: word(lit(token.LitChars, "@"))}
	assert.Nil(t, p.Prefix)
	assert.Nil(t, p.Suffix)

	p.Suffix = &ast.VarOp{Op: token.VTestColonHyphen, Arg: word(lit(token.LitChars, "d"))}
	assert.Nil(t, p.Prefix)
	assert.NotNil(t, p.Bracket)

	p.Prefix = &ast.VarOp{Op: token.VSubPound}
	assert.NotNil(t, p.Bracket)
	assert.NotNil(t, p.Suffix)
}

func TestSingleQuotedTokenPair(t *testing.T) {
	t.Parallel()

	empty := &ast.SingleQuotedPart{}
	first, last := empty.TokenPair()
	assert.Nil(t, first)
	assert.Nil(t, last)

	val, quoted, ok := empty.EvalStatic()
	require.True(t, ok)
	assert.Equal(t, "", val)
	assert.True(t, quoted)
}
