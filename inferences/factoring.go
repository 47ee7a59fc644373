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

// Factoring is the generating rule that unifies two selected literals of the
// same polarity within a single clause, emitting the remaining literals
// under the unifier (spec §4.6.1).
type Factoring struct{}

// GenerateClauses tries every pair of selected same-polarity literals in
// premise.
func (f *Factoring) GenerateClauses(ctx *Context, premise *kernel.Clause) *ClauseCursor {
	var out []*kernel.Clause
	n := len(premise.Lits)
	for i := 0; i < n; i++ {
		if !premise.Selected(i) {
			continue
		}
		for j := i + 1; j < n; j++ {
			if !premise.Selected(j) {
				continue
			}
			li, lj := premise.Lits[i], premise.Lits[j]
			if li.Polarity() != lj.Polarity() || li.Predicate() != lj.Predicate() || li.Arity() != lj.Arity() {
				continue
			}
			s := subst.New(ctx.Store)
			if !s.UnifyLiteral(li, subst.QueryBank, lj, subst.QueryBank) {
				continue
			}
			lits := make([]kernel.Literal, 0, n-1)
			for k, l := range premise.Lits {
				if k == j {
					continue // keep i, drop j (the unified duplicate)
				}
				lits = append(lits, s.ApplyLiteral(l, subst.QueryBank))
			}
			lits = dedupLiterals(lits)
			if containsTautology(lits) {
				continue
			}
			concl := ctx.Registry.Alloc(lits, kernel.Inference{Rule: "factoring", Parents: []kernel.ClauseID{premise.ID}}, nextAge(premise))
			out = append(out, concl)
		}
	}
	return NewClauseCursor(out)
}
