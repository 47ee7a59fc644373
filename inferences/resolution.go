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
	"github.com/satforge/saturn/indexing"
	"github.com/satforge/saturn/kernel"
	"github.com/satforge/saturn/kernel/subst"
)

// Resolution is the binary resolution generating rule (spec §4.6.1): for a
// selected literal L in premise and an index-matched literal ¬L' in a
// candidate Active clause, unify L and L' and emit the union of the two
// remaining literal sets under the unifier.
type Resolution struct {
	Index *indexing.LiteralSubstitutionTree
}

// GenerateClauses resolves every selected literal of premise against the
// index's opposite-polarity unifiable literals.
func (r *Resolution) GenerateClauses(ctx *Context, premise *kernel.Clause) *ClauseCursor {
	var out []*kernel.Clause
	for i, lit := range premise.Lits {
		if !premise.Selected(i) {
			continue
		}
		cur := r.Index.GetUnifications(lit)
		for {
			res, ok := cur.Next()
			if !ok {
				break
			}
			if res.Literal.Polarity() == lit.Polarity() {
				continue
			}
			if res.Clause == premise.ID {
				continue
			}
			other, found := ctx.Registry.Get(res.Clause)
			if !found {
				continue
			}
			otherIdx := literalIndexIn(other, res.Literal)
			if otherIdx < 0 {
				continue
			}
			lits := mergeResolvent(res.Subst, premise, i, other, otherIdx)
			if containsTautology(lits) {
				continue
			}
			concl := ctx.Registry.Alloc(lits, kernel.Inference{Rule: "resolution", Parents: []kernel.ClauseID{premise.ID, other.ID}}, nextAge(premise, other))
			out = append(out, concl)
		}
	}
	return NewClauseCursor(out)
}

// literalIndexIn finds the position of lit within cl's literal list.
func literalIndexIn(cl *kernel.Clause, lit kernel.Literal) int {
	for i, l := range cl.Lits {
		if l.Equals(lit) {
			return i
		}
	}
	return -1
}

// mergeResolvent applies s to the non-matched literals of both premise and
// other and concatenates them, producing the resolvent's literal list.
func mergeResolvent(s *subst.Substitution, premise *kernel.Clause, premiseIdx int, other *kernel.Clause, otherIdx int) []kernel.Literal {
	lits := applyOthers(s, premise, subst.QueryBank, premiseIdx)
	lits = append(lits, applyOthers(s, other, subst.ResultBank, otherIdx)...)
	return dedupLiterals(lits)
}
