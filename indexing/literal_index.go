// Copyright 2024 The Saturn Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package indexing

import (
	"github.com/satforge/saturn/kernel"
	"github.com/satforge/saturn/kernel/subst"
)

type litShapeKey struct {
	predicate int32
	arity     int
}

// LiteralSubstitutionTree indexes literals (as opposed to subterms), used by
// binary resolution and factoring to retrieve candidate partner literals.
// Polarity is deliberately not part of the shape key: callers decide
// whether they want same or opposite polarity.
type LiteralSubstitutionTree struct {
	store   *kernel.Store
	buckets map[litShapeKey][]*literalRecord
}

type literalRecord struct {
	literal kernel.Literal
	clause  kernel.ClauseID
	extra   interface{}
	removed bool
}

// NewLiteralSubstitutionTree creates an empty literal index over store.
func NewLiteralSubstitutionTree(store *kernel.Store) *LiteralSubstitutionTree {
	return &LiteralSubstitutionTree{store: store, buckets: make(map[litShapeKey][]*literalRecord)}
}

func litShapeOf(l kernel.Literal) litShapeKey {
	return litShapeKey{predicate: l.Predicate(), arity: l.Arity()}
}

// Insert adds a literal entry.
func (ix *LiteralSubstitutionTree) Insert(l kernel.Literal, clause kernel.ClauseID, extra interface{}) {
	key := litShapeOf(l)
	ix.buckets[key] = append(ix.buckets[key], &literalRecord{literal: l, clause: clause, extra: extra})
}

// Remove deletes a previously-inserted literal entry; a no-op if it was
// never present (spec §4.4 failure semantics: debug-only assertion, silent
// here).
func (ix *LiteralSubstitutionTree) Remove(l kernel.Literal, clause kernel.ClauseID) {
	key := litShapeOf(l)
	for _, r := range ix.buckets[key] {
		if r.removed {
			continue
		}
		if r.literal.Equals(l) && r.clause == clause {
			r.removed = true
			return
		}
	}
}

// LiteralCursorResult is one yielded literal match.
type LiteralCursorResult struct {
	Literal kernel.Literal
	Clause  kernel.ClauseID
	Extra   interface{}
	Subst   *subst.Substitution
}

// LiteralCursor is the pull-based lazy iterator over literal matches.
type LiteralCursor struct {
	store      *kernel.Store
	candidates []*literalRecord
	pos        int
	kind       queryKind
	query      kernel.Literal
}

// Next advances the cursor.
func (c *LiteralCursor) Next() (LiteralCursorResult, bool) {
	for c.pos < len(c.candidates) {
		rec := c.candidates[c.pos]
		c.pos++
		if rec.removed {
			continue
		}
		s := subst.New(c.store)
		var ok bool
		switch c.kind {
		case kindGeneralization:
			ok = s.MatchLiteral(rec.literal, subst.ResultBank, c.query, subst.QueryBank)
		case kindInstance:
			ok = s.MatchLiteral(c.query, subst.QueryBank, rec.literal, subst.ResultBank)
		case kindUnification:
			ok = s.UnifyLiteral(c.query, subst.QueryBank, rec.literal, subst.ResultBank)
		}
		if ok {
			return LiteralCursorResult{Literal: rec.literal, Clause: rec.clause, Extra: rec.extra, Subst: s}, true
		}
	}
	return LiteralCursorResult{}, false
}

func (ix *LiteralSubstitutionTree) candidates(query kernel.Literal) []*literalRecord {
	var out []*literalRecord
	for _, r := range ix.buckets[litShapeOf(query)] {
		if !r.removed {
			out = append(out, r)
		}
	}
	return out
}

// GetUnifications returns literal entries unifiable with query.
func (ix *LiteralSubstitutionTree) GetUnifications(query kernel.Literal) *LiteralCursor {
	return &LiteralCursor{store: ix.store, candidates: ix.candidates(query), kind: kindUnification, query: query}
}

// GetGeneralizations returns entries that generalise query.
func (ix *LiteralSubstitutionTree) GetGeneralizations(query kernel.Literal) *LiteralCursor {
	return &LiteralCursor{store: ix.store, candidates: ix.candidates(query), kind: kindGeneralization, query: query}
}

// GetInstances returns entries that are instances of query.
func (ix *LiteralSubstitutionTree) GetInstances(query kernel.Literal) *LiteralCursor {
	return &LiteralCursor{store: ix.store, candidates: ix.candidates(query), kind: kindInstance, query: query}
}
