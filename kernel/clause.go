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

// ClauseStoreState is one of the four clause lifecycle states (spec §3.3).
type ClauseStoreState uint8

const (
	Unprocessed ClauseStoreState = iota
	Passive
	Active
	Removed
)

func (s ClauseStoreState) String() string {
	switch s {
	case Unprocessed:
		return "Unprocessed"
	case Passive:
		return "Passive"
	case Active:
		return "Active"
	case Removed:
		return "Removed"
	default:
		return "Unknown"
	}
}

// ClauseID identifies a clause for the lifetime of a run. Unlike terms,
// clauses are not hash-consed: two structurally identical clauses derived
// by different inferences are different clauses (provenance matters).
type ClauseID uint64

// InputSentinel is the distinguished inference rule name used for top-level
// clauses handed in by the (out-of-scope) clausifier.
const InputSentinel = "input"

// Inference records the rule name and parent clauses that produced a
// clause. Top-level inputs use InputSentinel with no parents.
type Inference struct {
	Rule    string
	Parents []ClauseID
}

// IsInput reports whether this is a top-level, non-derived clause.
func (inf Inference) IsInput() bool { return inf.Rule == InputSentinel && len(inf.Parents) == 0 }

// InductionInfo carries the induction-specific extra record for a clause
// (spec §3.1 "optional extra records").
type InductionInfo struct {
	// InductionDepth counts how many induction steps produced this clause,
	// used by Passive's induction-value heuristic.
	InductionDepth int
	// Terms lists the induction terms this clause's schema was built over.
	Terms []TermID
}

// RewritingInfo tracks demodulation/superposition bookkeeping: the bound on
// how many times this clause may still be used as a rewrite rule and
// whether it has been marked redundant by a reduction that used it.
type RewritingInfo struct {
	RewriteBound    int
	RedundancyTag   bool
}

// Extra bundles the optional per-clause records spec §3.1 allows.
type Extra struct {
	SplitSet  []uint32
	Induction *InductionInfo
	Rewriting *RewritingInfo
}

// Clause is an ordered sequence of literals (a multiset for semantics,
// an ordered array for indexing stability — spec §3.1) plus its lifecycle
// state, provenance and counters.
type Clause struct {
	ID    ClauseID
	Lits  []Literal
	Inf   Inference
	State ClauseStoreState

	Age             uint64
	Weight          uint32
	SelectedLiterals int // how many leading Lits are "selected" for inference

	Extra Extra
}

// NewClause builds a clause for the given literals and provenance. Weight is
// the sum of literal weights; callers that need age/split penalties apply
// them afterward (spec §4.5 "Weight is the sum of literal weights plus a
// penalty...").
func NewClause(id ClauseID, lits []Literal, inf Inference, age uint64) *Clause {
	var w uint32
	for _, l := range lits {
		w += l.Weight()
	}
	return &Clause{ID: id, Lits: lits, Inf: inf, State: Unprocessed, Age: age, Weight: w}
}

// Select marks the first n literals as selected for inference. Selection
// functions (config option `selection`) decide which literals qualify;
// kernel only stores the resulting count.
func (c *Clause) Select(n int) { c.SelectedLiterals = n }

// Selected reports whether literal i is selected.
func (c *Clause) Selected(i int) bool {
	if c.SelectedLiterals == 0 {
		return true // no selection function configured: all literals eligible
	}
	return i < c.SelectedLiterals
}

// IsEmpty reports whether this is the empty clause (a refutation).
func (c *Clause) IsEmpty() bool { return len(c.Lits) == 0 }

// Registry owns clauses by id and reference-counts them by inference chain
// (spec §5 "Memory discipline": "Clauses are reference-counted by their
// inference chains"). A clause is only released once no index holds an
// entry for it, no pending inference references it, and no child clause's
// Inference.Parents still names it as live input to the derivation DAG
// (proof reconstruction keeps those alive for the run's duration).
type Registry struct {
	next    ClauseID
	clauses map[ClauseID]*Clause
	refs    map[ClauseID]int
}

// NewRegistry creates an empty clause registry.
func NewRegistry() *Registry {
	return &Registry{next: 1, clauses: make(map[ClauseID]*Clause), refs: make(map[ClauseID]int)}
}

// Alloc reserves a fresh clause id and registers lits/inf/age under it with
// an initial reference count of 1 (held by whoever allocates it).
func (r *Registry) Alloc(lits []Literal, inf Inference, age uint64) *Clause {
	id := r.next
	r.next++
	c := NewClause(id, lits, inf, age)
	r.clauses[id] = c
	r.refs[id] = 1
	for _, p := range inf.Parents {
		r.refs[p]++
	}
	return c
}

// Get looks up a clause by id.
func (r *Registry) Get(id ClauseID) (*Clause, bool) {
	c, ok := r.clauses[id]
	return c, ok
}

// Release drops one reference; at zero the clause can be destroyed (spec
// §3.3 "A clause can be destroyed only after no index holds an entry for it
// and no pending inference references it"). Destruction also releases the
// references this clause held on its own parents.
func (r *Registry) Release(id ClauseID) {
	r.refs[id]--
	if r.refs[id] > 0 {
		return
	}
	c, ok := r.clauses[id]
	if !ok {
		return
	}
	delete(r.clauses, id)
	delete(r.refs, id)
	for _, p := range c.Inf.Parents {
		r.Release(p)
	}
}

// Retain bumps the reference count, e.g. when the derivation DAG keeps a
// clause alive past its container lifetime for proof reconstruction.
func (r *Registry) Retain(id ClauseID) { r.refs[id]++ }
