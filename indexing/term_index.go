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

// shapeKey groups non-variable-rooted terms by top functor and arity, the
// substitution tree's "first-argument discrimination" (spec §4.4):
// retrieval never even visits a bucket whose shape cannot possibly unify
// with, generalise, or instantiate the query's top symbol.
type shapeKey struct {
	functor int32
	arity   int
}

// TermSubstitutionTree is the primary indexing structure (spec §4.4): terms
// are inserted keyed by their top-level shape, and retrieval descends into
// only the buckets a query could possibly match. Within a bucket, matching
// is delegated to the backtrackable unifier (kernel/subst) instead of a
// hand-compiled tree walk — functionally a substitution tree, specialised
// for clarity over micro-optimised node splitting.
type TermSubstitutionTree struct {
	store     *kernel.Store
	buckets   map[shapeKey][]*termRecord
	varRooted []*termRecord // a variable generalises everything, so these are always candidates
}

type termRecord struct {
	term    kernel.Term
	literal kernel.Literal
	clause  kernel.ClauseID
	extra   interface{}
	removed bool
}

// NewTermSubstitutionTree creates an empty index over store.
func NewTermSubstitutionTree(store *kernel.Store) *TermSubstitutionTree {
	return &TermSubstitutionTree{store: store, buckets: make(map[shapeKey][]*termRecord)}
}

func shapeOf(t kernel.Term) (shapeKey, bool) {
	if t.IsVar() {
		return shapeKey{}, true
	}
	return shapeKey{functor: t.Functor(), arity: t.Arity()}, false
}

// Insert adds an entry. Insertion order is preserved within a bucket
// (spec §4.4 "skip-list of clause-tagged entries ordered by insertion for
// determinism").
func (ix *TermSubstitutionTree) Insert(term kernel.Term, literal kernel.Literal, clause kernel.ClauseID, extra interface{}) {
	rec := &termRecord{term: term, literal: literal, clause: clause, extra: extra}
	key, isVar := shapeOf(term)
	if isVar {
		ix.varRooted = append(ix.varRooted, rec)
		return
	}
	ix.buckets[key] = append(ix.buckets[key], rec)
}

// Remove deletes the (term, literal, clause) entry previously inserted.
// Removing an entry that was never inserted is a programmer error (spec
// §4.4); callers in debug builds should pre-check membership, but this
// implementation simply becomes a no-op, matching "queries never raise".
func (ix *TermSubstitutionTree) Remove(term kernel.Term, literal kernel.Literal, clause kernel.ClauseID) {
	key, isVar := shapeOf(term)
	var list []*termRecord
	if isVar {
		list = ix.varRooted
	} else {
		list = ix.buckets[key]
	}
	for _, r := range list {
		if r.removed {
			continue
		}
		if r.term.Equals(term) && r.literal.Equals(literal) && r.clause == clause {
			r.removed = true
			return
		}
	}
}

func (ix *TermSubstitutionTree) candidates(query kernel.Term) []*termRecord {
	var out []*termRecord
	for _, r := range ix.varRooted {
		if !r.removed {
			out = append(out, r)
		}
	}
	if query.IsVar() {
		// A bare variable query unifies with/instantiates every bucket;
		// generalises only var-rooted entries (handled above).
		for _, bucket := range ix.buckets {
			for _, r := range bucket {
				if !r.removed {
					out = append(out, r)
				}
			}
		}
		return out
	}
	key, _ := shapeOf(query)
	for _, r := range ix.buckets[key] {
		if !r.removed {
			out = append(out, r)
		}
	}
	return out
}

// TermCursorResult is one yielded match.
type TermCursorResult struct {
	Term    kernel.Term
	Literal kernel.Literal
	Clause  kernel.ClauseID
	Extra   interface{}
	Subst   *subst.Substitution
}

type queryKind uint8

const (
	kindGeneralization queryKind = iota
	kindInstance
	kindUnification
)

// TermCursor is the pull-based, lazy iterator spec §4.4/§9 require.
type TermCursor struct {
	store      *kernel.Store
	candidates []*termRecord
	pos        int
	kind       queryKind
	query      kernel.Term
}

// Next advances the cursor. Once it returns ok=false it is exhausted.
func (c *TermCursor) Next() (TermCursorResult, bool) {
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
			ok = s.Match(rec.term, subst.ResultBank, c.query, subst.QueryBank)
		case kindInstance:
			ok = s.Match(c.query, subst.QueryBank, rec.term, subst.ResultBank)
		case kindUnification:
			ok = s.Unify(c.query, subst.QueryBank, rec.term, subst.ResultBank)
		}
		if ok {
			return TermCursorResult{Term: rec.term, Literal: rec.literal, Clause: rec.clause, Extra: rec.extra, Subst: s}, true
		}
	}
	return TermCursorResult{}, false
}

// GetGeneralizations returns entries whose indexed term generalises query:
// stored·σ = query.
func (ix *TermSubstitutionTree) GetGeneralizations(query kernel.Term) *TermCursor {
	return &TermCursor{store: ix.store, candidates: ix.candidates(query), kind: kindGeneralization, query: query}
}

// GetInstances returns entries that are instances of query: query·σ = stored.
func (ix *TermSubstitutionTree) GetInstances(query kernel.Term) *TermCursor {
	return &TermCursor{store: ix.store, candidates: ix.candidates(query), kind: kindInstance, query: query}
}

// GetUnifications returns entries unifiable with query.
func (ix *TermSubstitutionTree) GetUnifications(query kernel.Term) *TermCursor {
	return &TermCursor{store: ix.store, candidates: ix.candidates(query), kind: kindUnification, query: query}
}
