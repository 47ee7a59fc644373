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
	"github.com/satforge/saturn/kernel/order"
	"github.com/satforge/saturn/kernel/subst"
)

// EqualityResolution is the generating rule that removes a negative equality
// literal `s != t` once its two sides are unified (spec §4.6.1).
type EqualityResolution struct{}

// GenerateClauses tries every negative equality literal of premise.
func (e *EqualityResolution) GenerateClauses(ctx *Context, premise *kernel.Clause) *ClauseCursor {
	var out []*kernel.Clause
	for i, l := range premise.Lits {
		if !l.IsEquality() || l.Polarity() {
			continue
		}
		s := subst.New(ctx.Store)
		if !s.Unify(l.Arg(0), subst.QueryBank, l.Arg(1), subst.QueryBank) {
			continue
		}
		lits := applyOthers(s, premise, subst.QueryBank, i)
		lits = dedupLiterals(lits)
		if containsTautology(lits) {
			continue
		}
		concl := ctx.Registry.Alloc(lits, kernel.Inference{Rule: "equality_resolution", Parents: []kernel.ClauseID{premise.ID}}, nextAge(premise))
		out = append(out, concl)
	}
	return NewClauseCursor(out)
}

// EqualityFactoring is the generating rule combining two positive equalities
// `s = t` and `u = v` whose left sides unify, producing `t != v ∨ s = v`
// under the unifier, subject to the ordering side condition that `s` is not
// strictly smaller than `t` (spec §4.6.1).
type EqualityFactoring struct{}

// GenerateClauses tries every ordered pair of positive equality literals in
// premise (both orientations of each pair, since either side may play the
// role of `s`).
func (e *EqualityFactoring) GenerateClauses(ctx *Context, premise *kernel.Clause) *ClauseCursor {
	var out []*kernel.Clause
	n := len(premise.Lits)
	for i := 0; i < n; i++ {
		li := premise.Lits[i]
		if !li.IsEquality() || !li.Polarity() {
			continue
		}
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			lj := premise.Lits[j]
			if !lj.IsEquality() || !lj.Polarity() {
				continue
			}
			for _, sOrient := range [][2]int{{0, 1}, {1, 0}} {
				sTerm, tTerm := li.Arg(sOrient[0]), li.Arg(sOrient[1])
				for _, uOrient := range [][2]int{{0, 1}, {1, 0}} {
					uTerm, vTerm := lj.Arg(uOrient[0]), lj.Arg(uOrient[1])
					if c := e.tryFactor(ctx, premise, i, j, sTerm, tTerm, uTerm, vTerm); c != nil {
						out = append(out, c)
					}
				}
			}
		}
	}
	return NewClauseCursor(out)
}

func (e *EqualityFactoring) tryFactor(ctx *Context, premise *kernel.Clause, i, j int, sTerm, tTerm, uTerm, vTerm kernel.Term) *kernel.Clause {
	s := subst.New(ctx.Store)
	if !s.Unify(sTerm, subst.QueryBank, uTerm, subst.QueryBank) {
		return nil
	}
	sApplied := s.Apply(sTerm, subst.QueryBank)
	tApplied := s.Apply(tTerm, subst.QueryBank)
	if ctx.Order != nil {
		if r := ctx.Order.Compare(sApplied, tApplied); r == order.Less {
			return nil // s must not be strictly smaller than t
		}
	}
	vApplied := s.Apply(vTerm, subst.QueryBank)

	lits := make([]kernel.Literal, 0, len(premise.Lits)+1)
	for k, l := range premise.Lits {
		if k == i || k == j {
			continue
		}
		lits = append(lits, s.ApplyLiteral(l, subst.QueryBank))
	}
	lits = append(lits, ctx.Store.ShareLiteral(kernel.Eq(termToBuilderArg(tApplied), termToBuilderArg(vApplied), false)))
	lits = append(lits, ctx.Store.ShareLiteral(kernel.Eq(termToBuilderArg(sApplied), termToBuilderArg(vApplied), true)))
	lits = dedupLiterals(lits)
	if containsTautology(lits) {
		return nil
	}
	return ctx.Registry.Alloc(lits, kernel.Inference{Rule: "equality_factoring", Parents: []kernel.ClauseID{premise.ID}}, nextAge(premise))
}

// termToBuilderArg rebuilds a Builder tree for an already-shared term, for
// feeding back into a fresh LiteralBuilder.
func termToBuilderArg(t kernel.Term) *kernel.Builder {
	if t.IsVar() {
		return kernel.Var(t.VarID())
	}
	args := make([]*kernel.Builder, t.Arity())
	for i := range args {
		args[i] = termToBuilderArg(t.Arg(i))
	}
	return kernel.App(t.Functor(), args...)
}
