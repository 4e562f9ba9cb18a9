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

import (
	art "github.com/plar/go-adaptive-radix-tree"
)

// Registry is the process-wide catalogue of lexical categories, packaged as
// a value so a parsing session can own it and hand it (read-only) to every
// component. The Id/Kind relation itself is frozen at package init; the
// Registry adds the operator-spelling indexes the lexer matches against.
//
// A Registry is immutable after NewRegistry returns and is safe to share
// between parser instances and goroutines.
type Registry struct {
	dbracketOps  art.Tree
	dbracketMax  int
	varSuffixOps art.Tree
	varSuffixMax int
}

// NewRegistry builds the operator indexes. Construction is the only place a
// registry can fail, and only through programmer error (a duplicate
// spelling), which panics.
func NewRegistry() *Registry {
	r := &Registry{
		dbracketOps:  art.New(),
		varSuffixOps: art.New(),
	}

	// Operator words recognized between [[ and ]]. The boolean unary and
	// binary spellings come from the registration table; ]] and ! sit outside
	// those Kinds but classify the same way.
	for _, k := range []Kind{KindBoolUnary, KindBoolBinary} {
		for _, p := range LexerPairs(k) {
			r.insert(r.dbracketOps, &r.dbracketMax, p.Pattern, p.ID)
		}
	}
	r.insert(r.dbracketOps, &r.dbracketMax, "]]", LitDRightBracket)
	r.insert(r.dbracketOps, &r.dbracketMax, "!", KWBang)

	// Suffix operators of ${...}: VTest, then the string-removal and case
	// ops, then the slice/replace ops. Longest match wins, so :- beats :.
	for _, k := range []Kind{KindVTest, KindVOp1, KindVOp2} {
		for _, p := range LexerPairs(k) {
			// [ and ] delimit the bracket slot, not a suffix.
			if p.ID == VOp2LBracket || p.ID == VOp2RBracket {
				continue
			}
			r.insert(r.varSuffixOps, &r.varSuffixMax, p.Pattern, p.ID)
		}
	}

	return r
}

func (r *Registry) insert(t art.Tree, maxLen *int, pat string, id Id) {
	if pat == "" {
		panic("token: empty operator spelling for " + NameOf(id))
	}
	if _, dup := t.Insert(art.Key(pat), id); dup {
		panic("token: duplicate operator spelling " + pat)
	}
	if len(pat) > *maxLen {
		*maxLen = len(pat)
	}
}

func (r *Registry) match(t art.Tree, maxLen int, s string) (Id, int, bool) {
	n := maxLen
	if len(s) < n {
		n = len(s)
	}
	for ; n > 0; n-- {
		if v, ok := t.Search(art.Key(s[:n])); ok {
			return v.(Id), n, true
		}
	}
	return UndefinedTok, 0, false
}

// MatchDBracketOp finds the longest [[-context operator spelling at the start
// of s. It reports the Id, the number of bytes matched, and whether anything
// matched at all.
func (r *Registry) MatchDBracketOp(s string) (Id, int, bool) {
	return r.match(r.dbracketOps, r.dbracketMax, s)
}

// MatchVarSuffixOp finds the longest ${...} suffix operator spelling at the
// start of s.
func (r *Registry) MatchVarSuffixOp(s string) (Id, int, bool) {
	return r.match(r.varSuffixOps, r.varSuffixMax, s)
}

// KindOf, NameOf, OperandTypeOf, RedirTypeOf, DefaultFD, LexerPairs and
// KeywordID are also exposed as methods so components holding a *Registry do
// not need to reach back into the package.

func (r *Registry) KindOf(id Id) Kind               { return KindOf(id) }
func (r *Registry) NameOf(id Id) string             { return NameOf(id) }
func (r *Registry) OperandTypeOf(id Id) OperandType { return OperandTypeOf(id) }
func (r *Registry) RedirTypeOf(id Id) (RedirType, bool) {
	return RedirTypeOf(id)
}
func (r *Registry) DefaultFD(id Id) (int, bool)   { return DefaultFD(id) }
func (r *Registry) LexerPairs(k Kind) []LexerPair { return LexerPairs(k) }
func (r *Registry) KeywordID(s string) (Id, bool) { return KeywordID(s) }
