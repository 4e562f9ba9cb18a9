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
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/poshlang/posh/ast"
	"github.com/poshlang/posh/reporter"
	"github.com/poshlang/posh/token"
)

// Session consolidates parser instantiations. It owns the frozen registry
// and hands it to every lexer and parser it builds; parsers built from the
// same session share nothing else, so they are free to run concurrently.
type Session struct {
	reg *token.Registry
}

// NewSession builds a session with its own registry.
func NewSession() *Session {
	return &Session{reg: token.NewRegistry()}
}

// Registry exposes the session's catalogue.
func (s *Session) Registry() *token.Registry { return s.reg }

// NewLexer wraps a source buffer in a fresh lexer.
func (s *Session) NewLexer(name string, src []byte) *Lexer {
	return NewLexer(s.reg, NewSource(name, src))
}

// CondParser builds a boolean parser over src, which holds everything after
// [[, closing ]] included.
func (s *Session) CondParser(name string, src []byte) *BoolParser {
	return NewBoolParser(s.NewLexer(name, src))
}

// ParseCond parses one [[ body. On failure the expression is nil and the
// error records explain why, innermost first.
func (s *Session) ParseCond(name string, src []byte) (ast.BoolExpr, []*reporter.ErrorContext) {
	p := s.CondParser(name, src)
	node := p.Parse()
	if node == nil {
		return nil, p.Error()
	}
	return node, nil
}

// CondSource names one independent [[ body for ParseConds.
type CondSource struct {
	Name string
	Src  []byte
}

// CondResult pairs a parsed expression with the errors that prevented it.
type CondResult struct {
	Name   string
	Expr   ast.BoolExpr
	Errors []*reporter.ErrorContext
}

// ParseConds parses independent sources concurrently, one parser instance
// per source. Results arrive in input order. The returned error is non-nil
// only when the context was canceled; per-source failures land in the
// results.
func (s *Session) ParseConds(ctx context.Context, sources []CondSource) ([]CondResult, error) {
	results := make([]CondResult, len(sources))
	grp, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			expr, errs := s.ParseCond(src.Name, src.Src)
			results[i] = CondResult{Name: src.Name, Expr: expr, Errors: errs}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
