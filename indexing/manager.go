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
	"github.com/pilosa/pilosa/roaring"

	"github.com/satforge/saturn/kernel"
)

// Kind tags an index role: which rule subscribes to it and over what (LHS
// for demodulation, subterm for superposition, literal for resolution, ...).
type Kind string

const (
	KindSuperpositionSubterms Kind = "superposition.subterms"
	KindSuperpositionLHS      Kind = "superposition.lhs"
	KindDemodulationLHS       Kind = "demodulation.lhs"
	KindResolutionLiterals    Kind = "resolution.literals"
	KindFactoringLiterals     Kind = "factoring.literals"
	KindEqualityResolution    Kind = "equality_resolution.literals"
	KindSubsumptionLiterals   Kind = "subsumption.literals"
)

// Manager is the process-wide (per saturation-algorithm instance, spec §5)
// registry mapping an index kind to a (index, refcount) pair: rules acquire
// on attach and release on detach so an unused index is never built (spec
// §4.4). Clause-id membership per kind is additionally tracked in a roaring
// bitmap purely for diagnostics/statistics — never on the correctness path.
type Manager struct {
	store *kernel.Store

	refs map[Kind]int

	termIndices    map[Kind]*TermSubstitutionTree
	literalIndices map[Kind]*LiteralSubstitutionTree
	codeTrees      map[Kind]*CodeTree
	typeIndices    map[Kind]*TypeSubstitutionTree

	members map[Kind]*roaring.Bitmap
}

// NewManager creates an empty index manager over store.
func NewManager(store *kernel.Store) *Manager {
	return &Manager{
		store:          store,
		refs:           make(map[Kind]int),
		termIndices:    make(map[Kind]*TermSubstitutionTree),
		literalIndices: make(map[Kind]*LiteralSubstitutionTree),
		codeTrees:      make(map[Kind]*CodeTree),
		typeIndices:    make(map[Kind]*TypeSubstitutionTree),
		members:        make(map[Kind]*roaring.Bitmap),
	}
}

// RequestTermIndex increments kind's refcount, creating the substitution
// tree on first request.
func (m *Manager) RequestTermIndex(kind Kind) *TermSubstitutionTree {
	m.refs[kind]++
	if ix, ok := m.termIndices[kind]; ok {
		return ix
	}
	ix := NewTermSubstitutionTree(m.store)
	m.termIndices[kind] = ix
	m.members[kind] = roaring.NewBitmap()
	return ix
}

// RequestLiteralIndex increments kind's refcount, creating the literal
// index on first request.
func (m *Manager) RequestLiteralIndex(kind Kind) *LiteralSubstitutionTree {
	m.refs[kind]++
	if ix, ok := m.literalIndices[kind]; ok {
		return ix
	}
	ix := NewLiteralSubstitutionTree(m.store)
	m.literalIndices[kind] = ix
	m.members[kind] = roaring.NewBitmap()
	return ix
}

// RequestCodeTree increments kind's refcount, creating the code tree on
// first request.
func (m *Manager) RequestCodeTree(kind Kind) *CodeTree {
	m.refs[kind]++
	if ct, ok := m.codeTrees[kind]; ok {
		return ct
	}
	ct := NewCodeTree(m.store)
	m.codeTrees[kind] = ct
	m.members[kind] = roaring.NewBitmap()
	return ct
}

// RequestTypeIndex increments kind's refcount, creating the type-aware
// index on first request.
func (m *Manager) RequestTypeIndex(kind Kind) *TypeSubstitutionTree {
	m.refs[kind]++
	if ix, ok := m.typeIndices[kind]; ok {
		return ix
	}
	ix := NewTypeSubstitutionTree(m.store)
	m.typeIndices[kind] = ix
	m.members[kind] = roaring.NewBitmap()
	return ix
}

// Release decrements kind's refcount, destroying the underlying index at
// zero so a strategy that stops using a rule never keeps paying for it.
func (m *Manager) Release(kind Kind) {
	m.refs[kind]--
	if m.refs[kind] > 0 {
		return
	}
	delete(m.refs, kind)
	delete(m.termIndices, kind)
	delete(m.literalIndices, kind)
	delete(m.codeTrees, kind)
	delete(m.typeIndices, kind)
	delete(m.members, kind)
}

// RefCount reports the current refcount for kind (0 if not requested).
func (m *Manager) RefCount(kind Kind) int { return m.refs[kind] }

// NoteInserted records that clause now has an entry under kind, for
// diagnostics (e.g. "how many live clauses feed the demodulation index").
func (m *Manager) NoteInserted(kind Kind, clause kernel.ClauseID) {
	if bm, ok := m.members[kind]; ok {
		bm.Add(uint64(clause))
	}
}

// NoteRemoved is the inverse of NoteInserted.
func (m *Manager) NoteRemoved(kind Kind, clause kernel.ClauseID) {
	if bm, ok := m.members[kind]; ok {
		bm.Remove(uint64(clause))
	}
}

// MemberCount reports how many distinct clauses currently contribute
// entries to kind's index.
func (m *Manager) MemberCount(kind Kind) uint64 {
	bm, ok := m.members[kind]
	if !ok {
		return 0
	}
	return bm.Count()
}
