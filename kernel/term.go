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

// Package kernel implements the hash-consed term/literal store, clauses and
// their provenance. Shared terms are addressed by opaque indices into a
// single append-only arena (the Store) rather than by pointer, so that no
// index or substitution ever holds a dangling reference: the arena's
// lifetime is the run's lifetime.
package kernel

// TermID addresses a shared term inside a Store's arena. The zero value is
// never a valid id; Store reserves index 0 as a sentinel.
type TermID uint32

// VarID names an ordinary or special variable, scoped to whatever bank the
// substitution currently dereferencing it is using.
type VarID uint32

const maxDistinctVars = 0xFFFF

// Builder is a transient, non-shared term under construction. Construction
// can never fail: a Builder is just a tree of Go values until it is handed
// to a Store to be shared.
type Builder struct {
	// Functor is the functor symbol id for an applied term, or -1 if this
	// builder denotes a variable.
	Functor int32
	Var     VarID
	Args    []*Builder
}

// Var constructs a variable builder.
func Var(id VarID) *Builder { return &Builder{Functor: -1, Var: id} }

// App constructs a functor application builder.
func App(functor int32, args ...*Builder) *Builder {
	return &Builder{Functor: functor, Args: args}
}

// IsVar reports whether the builder denotes a variable.
func (b *Builder) IsVar() bool { return b.Functor < 0 }

// Wrap constructs a Term handle for an already-shared arena slot. Used by
// substitution/denormalisation code that manipulates ids directly.
func (s *Store) Wrap(id TermID) Term { return Term{s, id} }

// termNode is the arena-resident representation of a shared term. Every
// field here is immutable once installed at Share time.
type termNode struct {
	functor int32
	varID   VarID
	args    []TermID

	weight       uint32
	ground       bool
	distinctVars uint16
}

// Term is a handle to a canonical representative inside a Store. Equality of
// two Terms from the same Store is exactly pointer-free value equality of
// the pair (store, id) — termNode structural equality is enforced once, at
// Share time, by the hash-consing table.
type Term struct {
	store *Store
	id    TermID
}

// Store returns the owning store.
func (t Term) Store() *Store { return t.store }

// ID returns the opaque arena index. Stable for the lifetime of the run.
func (t Term) ID() TermID { return t.id }

// IsZero reports whether this is the zero Term (no term).
func (t Term) IsZero() bool { return t.store == nil }

func (t Term) node() *termNode { return &t.store.terms[t.id] }

// IsVar reports whether this shared term is a variable.
func (t Term) IsVar() bool { return t.node().functor < 0 }

// VarID returns the variable id; only meaningful if IsVar.
func (t Term) VarID() VarID { return t.node().varID }

// Functor returns the functor symbol id; only meaningful if !IsVar.
func (t Term) Functor() int32 { return t.node().functor }

// Arity returns the number of arguments.
func (t Term) Arity() int { return len(t.node().args) }

// Arg returns the i'th argument as a Term handle into the same store.
func (t Term) Arg(i int) Term { return Term{t.store, t.node().args[i]} }

// Weight is 1 + the sum of argument weights (spec §4.1), precomputed at
// share time.
func (t Term) Weight() uint32 { return t.node().weight }

// Ground reports whether the term contains no variables.
func (t Term) Ground() bool { return t.node().ground }

// DistinctVars is the number of distinct variables occurring in the term,
// capped at maxDistinctVars if it would overflow the reserved bits.
func (t Term) DistinctVars() uint16 { return t.node().distinctVars }

// Equals is pointer-free value equality of canonical representatives.
func (t Term) Equals(u Term) bool { return t.store == u.store && t.id == u.id }

// CompareTop reports whether the top functors/variables of t and u match
// (same kind, same symbol or variable id, same arity).
func CompareTop(t, u Term) bool {
	tn, un := t.node(), u.node()
	if (tn.functor < 0) != (un.functor < 0) {
		return false
	}
	if tn.functor < 0 {
		return tn.varID == un.varID
	}
	return tn.functor == un.functor && len(tn.args) == len(un.args)
}
