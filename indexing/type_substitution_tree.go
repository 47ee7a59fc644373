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

// typeRecord pairs an indexed term with the sort (type) term its signature
// requires, for the fully polymorphic retrieval case (spec §4.4
// "TypeSubstitutionTree").
type typeRecord struct {
	term    kernel.Term
	sort    kernel.Term
	literal kernel.Literal
	clause  kernel.ClauseID
	extra   interface{}
	removed bool
}

// TypeSubstitutionTree additionally unifies sorts before term unification
// proceeds, required when the signature is polymorphic. Entries whose sort
// is itself a variable ("fully polymorphic") are kept in a side list as
// well as their normal shape bucket, matching spec §4.4's "side skip-list
// to handle the fully polymorphic case" — a retrieval-path affordance; sort
// correctness itself is enforced by unifying the sort term like any other
// argument, inline with the term query.
type TypeSubstitutionTree struct {
	store      *kernel.Store
	buckets    map[shapeKey][]*typeRecord
	varRooted  []*typeRecord
	varSorted  []*typeRecord
}

// NewTypeSubstitutionTree creates an empty type-aware index over store.
func NewTypeSubstitutionTree(store *kernel.Store) *TypeSubstitutionTree {
	return &TypeSubstitutionTree{store: store, buckets: make(map[shapeKey][]*typeRecord)}
}

// Insert adds an entry with its required sort.
func (ix *TypeSubstitutionTree) Insert(term, sort kernel.Term, literal kernel.Literal, clause kernel.ClauseID, extra interface{}) {
	rec := &typeRecord{term: term, sort: sort, literal: literal, clause: clause, extra: extra}
	if sort.IsVar() {
		ix.varSorted = append(ix.varSorted, rec)
	}
	key, isVar := shapeOf(term)
	if isVar {
		ix.varRooted = append(ix.varRooted, rec)
		return
	}
	ix.buckets[key] = append(ix.buckets[key], rec)
}

// Remove deletes a previously-inserted entry; a no-op if absent.
func (ix *TypeSubstitutionTree) Remove(term kernel.Term, literal kernel.Literal, clause kernel.ClauseID) {
	key, isVar := shapeOf(term)
	var list []*typeRecord
	if isVar {
		list = ix.varRooted
	} else {
		list = ix.buckets[key]
	}
	for _, r := range list {
		if !r.removed && r.term.Equals(term) && r.literal.Equals(literal) && r.clause == clause {
			r.removed = true
			return
		}
	}
}

// VariableSortedCount reports how many live entries carry a polymorphic
// (variable) sort, useful for tests asserting the side-list is populated.
func (ix *TypeSubstitutionTree) VariableSortedCount() int {
	n := 0
	for _, r := range ix.varSorted {
		if !r.removed {
			n++
		}
	}
	return n
}

func (ix *TypeSubstitutionTree) candidates(query kernel.Term) []*typeRecord {
	var out []*typeRecord
	for _, r := range ix.varRooted {
		if !r.removed {
			out = append(out, r)
		}
	}
	if query.IsVar() {
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

// TypeCursorResult is one yielded match, including the sort substitution.
type TypeCursorResult struct {
	Term    kernel.Term
	Literal kernel.Literal
	Clause  kernel.ClauseID
	Extra   interface{}
	Subst   *subst.Substitution
}

// TypeCursor is the pull-based iterator; each step unifies/matches the sort
// before the term so a signature mismatch never costs a term-level attempt.
type TypeCursor struct {
	store      *kernel.Store
	candidates []*typeRecord
	pos        int
	kind       queryKind
	query      kernel.Term
	querySort  kernel.Term
}

// Next advances the cursor.
func (c *TypeCursor) Next() (TypeCursorResult, bool) {
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
			ok = s.Match(rec.sort, subst.ResultBank, c.querySort, subst.QueryBank) &&
				s.Match(rec.term, subst.ResultBank, c.query, subst.QueryBank)
		case kindInstance:
			ok = s.Match(c.querySort, subst.QueryBank, rec.sort, subst.ResultBank) &&
				s.Match(c.query, subst.QueryBank, rec.term, subst.ResultBank)
		case kindUnification:
			ok = s.Unify(c.querySort, subst.QueryBank, rec.sort, subst.ResultBank) &&
				s.Unify(c.query, subst.QueryBank, rec.term, subst.ResultBank)
		}
		if ok {
			return TypeCursorResult{Term: rec.term, Literal: rec.literal, Clause: rec.clause, Extra: rec.extra, Subst: s}, true
		}
	}
	return TypeCursorResult{}, false
}

// GetUnifications retrieves entries whose (term, sort) pair unifies with
// (query, querySort).
func (ix *TypeSubstitutionTree) GetUnifications(query, querySort kernel.Term) *TypeCursor {
	return &TypeCursor{store: ix.store, candidates: ix.candidates(query), kind: kindUnification, query: query, querySort: querySort}
}

// GetGeneralizations retrieves entries that generalise (query, querySort).
func (ix *TypeSubstitutionTree) GetGeneralizations(query, querySort kernel.Term) *TypeCursor {
	return &TypeCursor{store: ix.store, candidates: ix.candidates(query), kind: kindGeneralization, query: query, querySort: querySort}
}

// GetInstances retrieves entries that are instances of (query, querySort).
func (ix *TypeSubstitutionTree) GetInstances(query, querySort kernel.Term) *TypeCursor {
	return &TypeCursor{store: ix.store, candidates: ix.candidates(query), kind: kindInstance, query: query, querySort: querySort}
}
