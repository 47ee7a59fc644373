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

package inferences

import (
	"github.com/satforge/saturn/kernel"
	"github.com/satforge/saturn/kernel/subst"
)

// applyOthers applies s (interpreted in bank) to every literal of cl except
// index skip, returning freshly shared literals.
func applyOthers(s *subst.Substitution, cl *kernel.Clause, bank subst.Bank, skip int) []kernel.Literal {
	out := make([]kernel.Literal, 0, len(cl.Lits)-1)
	for i, l := range cl.Lits {
		if i == skip {
			continue
		}
		out = append(out, s.ApplyLiteral(l, bank))
	}
	return out
}

// applyAll applies s (interpreted in bank) to every literal of cl.
func applyAll(s *subst.Substitution, cl *kernel.Clause, bank subst.Bank) []kernel.Literal {
	out := make([]kernel.Literal, 0, len(cl.Lits))
	for _, l := range cl.Lits {
		out = append(out, s.ApplyLiteral(l, bank))
	}
	return out
}

// isEqualityTautology reports whether l is a positive equality between
// syntactically identical sides (x = x), pruned as `⊥` per spec §4.6.1.
func isEqualityTautology(l kernel.Literal) bool {
	return l.IsEquality() && l.Polarity() && l.Arg(0).Equals(l.Arg(1))
}

// isComplementaryPair reports whether a and b are the same atom with
// opposite polarity (p(x) and ¬p(x)) — a clause containing such a pair is a
// propositional tautology.
func isComplementaryPair(a, b kernel.Literal) bool {
	if a.Polarity() == b.Polarity() {
		return false
	}
	if a.Predicate() != b.Predicate() || a.Arity() != b.Arity() {
		return false
	}
	for i := 0; i < a.Arity(); i++ {
		if !a.Arg(i).Equals(b.Arg(i)) {
			return false
		}
	}
	return true
}

// containsTautology reports whether lits contains x = x or a complementary
// literal pair (spec §4.6.2 "equational tautology removal").
func containsTautology(lits []kernel.Literal) bool {
	for i, l := range lits {
		if isEqualityTautology(l) {
			return true
		}
		for j := i + 1; j < len(lits); j++ {
			if isComplementaryPair(l, lits[j]) {
				return true
			}
		}
	}
	return false
}

// dedupLiterals removes duplicate literals, preserving first-occurrence
// order (spec testable property 11: idempotent under repeated application).
func dedupLiterals(lits []kernel.Literal) []kernel.Literal {
	out := make([]kernel.Literal, 0, len(lits))
	for _, l := range lits {
		dup := false
		for _, seen := range out {
			if seen.Equals(l) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, l)
		}
	}
	return out
}

// isTrivialInequality reports whether l is a negative equality between
// identical sides (x != x), always false and so removable from any clause
// without changing its meaning.
func isTrivialInequality(l kernel.Literal) bool {
	return l.IsEquality() && !l.Polarity() && l.Arg(0).Equals(l.Arg(1))
}
