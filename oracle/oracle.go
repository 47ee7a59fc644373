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

// Package oracle implements the SAT-backed multi-literal subsumption check
// of spec §4.6.2: a clause C subsumes D iff there is a substitution σ with
// Cσ ⊆ D as multisets. For multi-literal clauses this amounts to finding an
// injective matching of C's literals onto D's literals consistent with one
// shared substitution; we decide it with a DPLL-style backtracking search
// over that assignment problem, using the kernel's own one-directional
// matcher (rather than a full first-order SAT encoding) to check and extend
// the shared substitution at each assignment choice.
package oracle

import (
	"github.com/satforge/saturn/kernel"
	"github.com/satforge/saturn/kernel/subst"
)

// Subsumption is the contract an engine delegates multi-literal subsumption
// checks to.
type Subsumption interface {
	// Subsumes reports whether subsumer subsumes subsumed, i.e. whether
	// some substitution maps every literal of subsumer onto a distinct
	// literal of subsumed (spec testable property 10).
	Subsumes(subsumer, subsumed *kernel.Clause) bool
}

// SubsumptionResolution is subsumption's weaker cousin: instead of requiring
// every literal of subsumer to match a literal of subsumed outright, exactly
// one literal of subsumer is allowed to match the *complement* of a literal
// of subsumed. When that succeeds, the matched literal of subsumed is
// redundant and can be stripped rather than the whole clause deleted.
type SubsumptionResolution interface {
	// SubsumesWithResolution reports whether subsumer subsumption-resolves
	// against subsumed, and if so the index within subsumed.Lits of the
	// literal to remove.
	SubsumesWithResolution(subsumer, subsumed *kernel.Clause) (int, bool)
}

// DPLLOracle decides subsumption by searching for an injective matching
// between subsumer's literals and subsumed's literals, backtracking over
// choices the way a DPLL search backtracks over variable assignments: each
// "variable" is "which literal of D does literal i of C map to"; each
// assignment either extends the shared substitution (kept in one
// Substitution, backtracked via its scope handles on failure) or is
// rejected; injectivity is enforced by marking claimed positions used.
type DPLLOracle struct {
	store *kernel.Store
}

// New creates a subsumption oracle over store.
func New(store *kernel.Store) *DPLLOracle {
	return &DPLLOracle{store: store}
}

// Subsumes implements Subsumption.
func (o *DPLLOracle) Subsumes(subsumer, subsumed *kernel.Clause) bool {
	if len(subsumer.Lits) > len(subsumed.Lits) {
		return false
	}
	s := subst.New(o.store)
	used := make([]bool, len(subsumed.Lits))
	return search(s, subsumer.Lits, subsumed.Lits, 0, used)
}

// search picks the next unassigned literal of C and tries every unclaimed,
// shape-compatible literal of D, extending the shared substitution s within
// a scope that is committed on success and backtracked on failure.
//
// MatchLiteral (like the unifier it mirrors) is deliberately polarity-blind
// — see kernel/subst.literalCompareTop — so callers decide whether they want
// same-polarity or opposite-polarity matches. Plain subsumption wants same
// polarity throughout; checked here rather than left to MatchLiteral.
func search(s *subst.Substitution, cLits, dLits []kernel.Literal, i int, used []bool) bool {
	if i == len(cLits) {
		return true
	}
	for j, dl := range dLits {
		if used[j] || cLits[i].Polarity() != dl.Polarity() {
			continue
		}
		scope := s.OpenScope()
		if s.MatchLiteral(cLits[i], subst.QueryBank, dl, subst.ResultBank) {
			used[j] = true
			if search(s, cLits, dLits, i+1, used) {
				scope.Commit()
				return true
			}
			used[j] = false
		}
		scope.Backtrack()
	}
	return false
}

// SubsumesWithResolution implements SubsumptionResolution.
func (o *DPLLOracle) SubsumesWithResolution(subsumer, subsumed *kernel.Clause) (int, bool) {
	if len(subsumer.Lits) > len(subsumed.Lits) {
		return 0, false
	}
	s := subst.New(o.store)
	used := make([]bool, len(subsumed.Lits))
	return searchResolution(s, subsumer.Lits, subsumed.Lits, 0, used, -1)
}

// searchResolution mirrors search, except one literal of cLits (tracked by
// the resolved index, -1 until spent) is allowed to match the complement of
// its dLits counterpart instead of matching it directly. A complete
// assignment only counts if the resolved slot was actually used: if every
// literal matches directly, that's plain subsumption, already covered by
// search, not subsumption resolution.
func searchResolution(s *subst.Substitution, cLits, dLits []kernel.Literal, i int, used []bool, resolved int) (int, bool) {
	if i == len(cLits) {
		if resolved >= 0 {
			return resolved, true
		}
		return 0, false
	}
	for j, dl := range dLits {
		if used[j] {
			continue
		}
		if cLits[i].Polarity() == dl.Polarity() {
			scope := s.OpenScope()
			if s.MatchLiteral(cLits[i], subst.QueryBank, dl, subst.ResultBank) {
				used[j] = true
				if idx, ok := searchResolution(s, cLits, dLits, i+1, used, resolved); ok {
					scope.Commit()
					return idx, true
				}
				used[j] = false
			}
			scope.Backtrack()
		}
		if resolved == -1 && cLits[i].Polarity() != dl.Polarity() {
			scope := s.OpenScope()
			complement := dl.Store().Complement(dl)
			if s.MatchLiteral(cLits[i], subst.QueryBank, complement, subst.ResultBank) {
				used[j] = true
				if idx, ok := searchResolution(s, cLits, dLits, i+1, used, j); ok {
					scope.Commit()
					return idx, true
				}
				used[j] = false
			}
			scope.Backtrack()
		}
	}
	return 0, false
}
