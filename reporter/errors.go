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

// Package reporter carries structured error records from the lexer and the
// parsers to the caller. Records are appended in causal order, innermost
// first; rendering them to text is the caller's responsibility.
package reporter

import (
	"errors"
	"fmt"

	"github.com/poshlang/posh/ast"
	"github.com/poshlang/posh/token"
)

// ErrInvalidSource is the sentinel returned by convenience entry points when
// parsing failed and the details live on an error stack.
var ErrInvalidSource = errors.New("parse failed: invalid shell source")

// ErrorContext describes one problem found while lexing or parsing. Token
// and Word are optional; whichever is present anchors the message to a
// source span.
type ErrorContext struct {
	Message string
	Token   *token.Token
	Word    ast.Word
}

// Errorf builds an ErrorContext from a format string.
func Errorf(format string, args ...any) *ErrorContext {
	return &ErrorContext{Message: fmt.Sprintf(format, args...)}
}

// WithToken anchors the error to a token and returns it.
func (e *ErrorContext) WithToken(t *token.Token) *ErrorContext {
	e.Token = t
	return e
}

// WithWord anchors the error to a word and returns it.
func (e *ErrorContext) WithWord(w ast.Word) *ErrorContext {
	e.Word = w
	return e
}

func (e *ErrorContext) Error() string { return e.Message }

// Span reports the source range the error is anchored to, if any.
func (e *ErrorContext) Span() (token.Span, bool) {
	if e.Token != nil {
		return e.Token.Span, true
	}
	if e.Word != nil {
		first, last := e.Word.TokenPair()
		if first != nil {
			if last == nil {
				last = first
			}
			return token.Span{
				Offset: first.Span.Offset,
				Len:    last.Span.End() - first.Span.Offset,
			}, true
		}
	}
	return token.Span{}, false
}

// Stack is an append-only list of error records, innermost first.
type Stack struct {
	errs []*ErrorContext
}

// Add appends one record.
func (s *Stack) Add(e *ErrorContext) { s.errs = append(s.errs, e) }

// Addf appends a record built from a format string and returns it, so the
// caller can anchor it.
func (s *Stack) Addf(format string, args ...any) *ErrorContext {
	e := Errorf(format, args...)
	s.Add(e)
	return e
}

// Extend appends every record in list, preserving order.
func (s *Stack) Extend(list []*ErrorContext) { s.errs = append(s.errs, list...) }

// Errors is a non-destructive read of the accumulated records.
func (s *Stack) Errors() []*ErrorContext { return s.errs }

// Empty reports whether nothing has been recorded.
func (s *Stack) Empty() bool { return len(s.errs) == 0 }

// First returns the innermost record, or nil.
func (s *Stack) First() *ErrorContext {
	if len(s.errs) == 0 {
		return nil
	}
	return s.errs[0]
}
