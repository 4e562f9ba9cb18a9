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

	"github.com/poshlang/posh/token"
)

// BoolExpr is a node of the [[ ... ]] expression tree. Words appear as
// leaves; the evaluator resolves them later.
type BoolExpr interface {
	fmt.Stringer
	boolExpr()
}

// WordTest is a lone word: [[ w ]] behaves as [[ -n w ]], and the evaluator
// applies the implicit -n.
type WordTest struct {
	Word Word
}

func (*WordTest) boolExpr() {}

func (n *WordTest) String() string { return fmt.Sprintf("(W %s)", n.Word) }

// BoolUnaryExpr applies a unary test operator to one word.
type BoolUnaryExpr struct {
	Op   token.Id
	Word Word
}

func (*BoolUnaryExpr) boolExpr() {}

func (n *BoolUnaryExpr) String() string {
	return fmt.Sprintf("(%s %s)", token.NameOf(n.Op), n.Word)
}

// BoolBinaryExpr applies a binary operator to two words. When Op is
// BoolBinaryEqualTilde, the right word was lexed under regex mode.
type BoolBinaryExpr struct {
	Op    token.Id
	Left  Word
	Right Word
}

func (*BoolBinaryExpr) boolExpr() {}

func (n *BoolBinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", token.NameOf(n.Op), n.Left, n.Right)
}

// LogicalNot negates a sub-expression.
type LogicalNot struct {
	Child BoolExpr
}

func (*LogicalNot) boolExpr() {}

func (n *LogicalNot) String() string { return fmt.Sprintf("(! %s)", n.Child) }

// LogicalAnd is &&. Chained connectives lean right but associate identically
// for evaluation.
type LogicalAnd struct {
	Left  BoolExpr
	Right BoolExpr
}

func (*LogicalAnd) boolExpr() {}

// Op reports the connective's token Id, for callers that walk the tree by
// operator rather than by node type.
func (n *LogicalAnd) Op() token.Id { return token.OpDAmp }

func (n *LogicalAnd) String() string {
	return fmt.Sprintf("(&& %s %s)", n.Left, n.Right)
}

// LogicalOr is ||.
type LogicalOr struct {
	Left  BoolExpr
	Right BoolExpr
}

func (*LogicalOr) boolExpr() {}

func (n *LogicalOr) Op() token.Id { return token.OpDPipe }

func (n *LogicalOr) String() string {
	return fmt.Sprintf("(|| %s %s)", n.Left, n.Right)
}
