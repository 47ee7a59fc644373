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
	"github.com/satforge/saturn/kernel/order"
	"github.com/satforge/saturn/kernel/subst"
)

// Superposition is the principal equational generating rule (spec §4.6.1).
// EqIndex retrieves Active positive equality literals keyed by their
// ordering-maximal side; SubtermIndex retrieves non-variable subterms of
// every Active literal, keyed by the subterm itself. Forward superposition
// rewrites an Active subterm using premise's equation; backward
// superposition rewrites a subterm of premise using an Active equation.
type Superposition struct {
	EqIndex      *indexing.TermSubstitutionTree
	SubtermIndex *indexing.TermSubstitutionTree
}

// orientedEquation returns the ordering-maximal/minimal sides of a positive
// equality literal, and whether the ordering could actually orient it.
func orientedEquation(ord order.Ordering, l kernel.Literal) (s, t kernel.Term, ok bool) {
	a, b := l.Arg(0), l.Arg(1)
	if ord == nil {
		return kernel.Term{}, kernel.Term{}, false
	}
	switch ord.Compare(a, b) {
	case order.Greater, order.GreaterEq:
		return a, b, true
	case order.Less, order.LessEq:
		return b, a, true
	default:
		return kernel.Term{}, kernel.Term{}, false
	}
}

// literalIsMaximal reports whether no other literal of cl is strictly
// greater than cl.Lits[idx] under ord — the spec §4.6.1 side condition that
// superposition may only use or rewrite a literal maximal in its own
// clause. A nil ordering (tests that don't care about it) never disqualifies
// a literal.
func literalIsMaximal(ord order.Ordering, cl *kernel.Clause, idx int) bool {
	if ord == nil {
		return true
	}
	lit := cl.Lits[idx]
	for i, other := range cl.Lits {
		if i == idx {
			continue
		}
		if ord.CompareLiterals(other, lit) == order.Greater {
			return false
		}
	}
	return true
}

// GenerateClauses runs both the forward and backward superposition
// directions against premise.
func (sp *Superposition) GenerateClauses(ctx *Context, premise *kernel.Clause) *ClauseCursor {
	var out []*kernel.Clause
	out = append(out, sp.forward(ctx, premise)...)
	out = append(out, sp.backward(ctx, premise)...)
	return NewClauseCursor(out)
}

// forward rewrites an Active clause's subterm using one of premise's
// oriented equations.
func (sp *Superposition) forward(ctx *Context, premise *kernel.Clause) []*kernel.Clause {
	var out []*kernel.Clause
	for eqIdx, eqLit := range premise.Lits {
		if !eqLit.IsEquality() || !eqLit.Polarity() {
			continue
		}
		sTerm, tTerm, ok := orientedEquation(ctx.Order, eqLit)
		if !ok {
			continue
		}
		if !literalIsMaximal(ctx.Order, premise, eqIdx) {
			continue
		}
		cur := sp.SubtermIndex.GetUnifications(sTerm)
		for {
			res, found := cur.Next()
			if !found {
				break
			}
			if res.Clause == premise.ID {
				continue
			}
			other, ok := ctx.Registry.Get(res.Clause)
			if !ok {
				continue
			}
			otherLitIdx := literalIndexIn(other, res.Literal)
			if otherLitIdx < 0 {
				continue
			}
			if !literalIsMaximal(ctx.Order, other, otherLitIdx) {
				continue
			}
			pos, ok := res.Extra.(subtermPosition)
			if !ok {
				continue
			}
			tApplied := res.Subst.Apply(tTerm, subst.QueryBank)
			appliedOther := res.Subst.ApplyLiteral(other.Lits[otherLitIdx], subst.ResultBank)
			newLit := literalWithSubtermReplaced(ctx.Store, appliedOther, pos, tApplied)

			lits := applyOthers(res.Subst, premise, subst.QueryBank, eqIdx)
			lits = append(lits, applyOthers(res.Subst, other, subst.ResultBank, otherLitIdx)...)
			lits = append(lits, newLit)
			lits = dedupLiterals(lits)
			if containsTautology(lits) {
				continue
			}
			out = append(out, ctx.Registry.Alloc(lits, kernel.Inference{Rule: "superposition", Parents: []kernel.ClauseID{premise.ID, other.ID}}, nextAge(premise, other)))
		}
	}
	return out
}

// backward rewrites a subterm of premise using an Active oriented equation.
func (sp *Superposition) backward(ctx *Context, premise *kernel.Clause) []*kernel.Clause {
	var out []*kernel.Clause
	for litIdx, lit := range premise.Lits {
		if !literalIsMaximal(ctx.Order, premise, litIdx) {
			continue
		}
		for _, pos := range nonVariableSubterms(lit) {
			cur := sp.EqIndex.GetUnifications(pos.Subterm)
			for {
				res, found := cur.Next()
				if !found {
					break
				}
				if res.Clause == premise.ID {
					continue
				}
				other, ok := ctx.Registry.Get(res.Clause)
				if !ok {
					continue
				}
				otherEqIdx := literalIndexIn(other, res.Literal)
				if otherEqIdx < 0 {
					continue
				}
				if !literalIsMaximal(ctx.Order, other, otherEqIdx) {
					continue
				}
				sTerm, tTerm, ok := orientedEquation(ctx.Order, res.Literal)
				if !ok || !sTerm.Equals(res.Term) {
					continue
				}
				tApplied := res.Subst.Apply(tTerm, subst.ResultBank)
				appliedPremiseLit := res.Subst.ApplyLiteral(lit, subst.QueryBank)
				newLit := literalWithSubtermReplaced(ctx.Store, appliedPremiseLit, pos, tApplied)

				lits := applyOthers(res.Subst, premise, subst.QueryBank, litIdx)
				lits = append(lits, applyOthers(res.Subst, other, subst.ResultBank, otherEqIdx)...)
				lits = append(lits, newLit)
				lits = dedupLiterals(lits)
				if containsTautology(lits) {
					continue
				}
				out = append(out, ctx.Registry.Alloc(lits, kernel.Inference{Rule: "superposition", Parents: []kernel.ClauseID{premise.ID, other.ID}}, nextAge(premise, other)))
			}
		}
	}
	return out
}
