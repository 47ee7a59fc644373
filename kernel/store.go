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

package kernel

import "github.com/mitchellh/hashstructure"

// consKey is the structural hash-consing key: (functor, argument ids...,
// variable id) for terms; ShareLiteral hashes its own litKey, which adds
// the literal's polarity and equality-sort tag. Two builders that hash to
// the same key are
// checked for exact structural equality before being treated as duplicates,
// so hash collisions never corrupt canonicalisation.
type consKey struct {
	Functor int32
	VarID   VarID
	Args    []TermID
}

func structuralHash(v interface{}) uint64 {
	h, err := hashstructure.Hash(v, nil)
	if err != nil {
		// hashstructure only fails on unsupported kinds (channels, funcs);
		// consKey never contains one.
		panic(err)
	}
	return h
}

// Store is the process-wide, append-only arena of shared terms and
// literals. It never blocks readers and never reclaims a slot: the arena's
// lifetime is the saturation run's lifetime (spec §5 "Shared resources").
type Store struct {
	terms    []termNode
	termIdx  map[uint64][]TermID // hash -> candidate ids, resolved by structural equality
	literals []literalNode
	litIdx   map[uint64][]LiteralID
}

// NewStore allocates an empty store. Index 0 of both arenas is reserved as
// a sentinel and never returned by Share.
func NewStore() *Store {
	return &Store{
		terms:    make([]termNode, 1),
		termIdx:  make(map[uint64][]TermID),
		literals: make([]literalNode, 1),
		litIdx:   make(map[uint64][]LiteralID),
	}
}

// Share returns the canonical representative for b, interning it on first
// sight. Sharing never raises: construction of the builder cannot fail, and
// canonicalisation is a pure table lookup/insert.
func (s *Store) Share(b *Builder) Term {
	if b.IsVar() {
		return s.shareVar(b.Var)
	}
	args := make([]TermID, len(b.Args))
	for i, a := range b.Args {
		args[i] = s.Share(a).id
	}
	key := consKey{Functor: b.Functor, Args: args}
	h := structuralHash(key)
	for _, cand := range s.termIdx[h] {
		if termEqual(&s.terms[cand], b.Functor, args) {
			return Term{s, cand}
		}
	}
	weight := uint32(1)
	ground := true
	var distinct uint16
	seen := map[VarID]bool{}
	for _, a := range b.Args {
		_ = a
	}
	for _, id := range args {
		an := &s.terms[id]
		weight += an.weight
		if !an.ground {
			ground = false
		}
	}
	distinct = countDistinctVars(s, args, seen)
	node := termNode{
		functor:      b.Functor,
		args:         args,
		weight:       weight,
		ground:       ground,
		distinctVars: distinct,
	}
	id := TermID(len(s.terms))
	s.terms = append(s.terms, node)
	s.termIdx[h] = append(s.termIdx[h], id)
	return Term{s, id}
}

func (s *Store) shareVar(v VarID) Term {
	key := consKey{Functor: -1, VarID: v}
	h := structuralHash(key)
	for _, cand := range s.termIdx[h] {
		n := &s.terms[cand]
		if n.functor < 0 && n.varID == v {
			return Term{s, cand}
		}
	}
	node := termNode{functor: -1, varID: v, weight: 1, ground: false, distinctVars: 1}
	id := TermID(len(s.terms))
	s.terms = append(s.terms, node)
	s.termIdx[h] = append(s.termIdx[h], id)
	return Term{s, id}
}

func termEqual(n *termNode, functor int32, args []TermID) bool {
	if n.functor != functor || len(n.args) != len(args) {
		return false
	}
	for i := range args {
		if n.args[i] != args[i] {
			return false
		}
	}
	return true
}

// countDistinctVars walks the already-shared argument subterms, capping at
// maxDistinctVars if the true count would overflow the reserved bits.
func countDistinctVars(s *Store, args []TermID, seen map[VarID]bool) uint16 {
	var walk func(id TermID)
	count := uint16(0)
	walk = func(id TermID) {
		if count >= maxDistinctVars {
			return
		}
		n := &s.terms[id]
		if n.functor < 0 {
			if !seen[n.varID] {
				seen[n.varID] = true
				count++
			}
			return
		}
		for _, a := range n.args {
			walk(a)
		}
	}
	for _, a := range args {
		walk(a)
	}
	return count
}
