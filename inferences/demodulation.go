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
)

// ForwardDemodulation rewrites a subterm of the incoming premise using an
// oriented unit equation `s = t` (s ≻ t) drawn from the Active code tree,
// provided the rewrite is a genuine simplification (spec §4.6.2). It forbids
// rewriting the larger side of an equality literal by itself (redundancy
// preservation).
type ForwardDemodulation struct {
	Code  *indexing.CodeTree
	Order order.Ordering
}

// Perform tries one rewrite step at the first matching position. The
// saturation loop calls it once per given clause through CompositeForward,
// so a rewritten clause is not demodulated again before it enters Active.
func (d *ForwardDemodulation) Perform(ctx *Context, premise *kernel.Clause) ForwardResult {
	for litIdx, lit := range premise.Lits {
		for _, pos := range nonVariableSubterms(lit) {
			m, ok := d.Code.FirstMatch(pos.Subterm)
			if !ok {
				continue
			}
			if isSelfRewriteOfLargerEqualitySide(lit, pos) {
				continue
			}
			rhs := instantiateRHS(ctx.Store, m)
			newLit := literalWithSubtermReplaced(ctx.Store, lit, pos, rhs)
			if d.Order != nil && d.Order.Compare(lit.Arg(0), newLit.Arg(0)) != order.Greater &&
				!lighterLiteral(lit, newLit) {
				continue
			}
			lits := append([]kernel.Literal(nil), premise.Lits...)
			lits[litIdx] = newLit
			lits = dedupLiterals(lits)
			if containsTautology(lits) {
				return ForwardResult{Fired: true, Replacement: nil, Premises: []kernel.ClauseID{m.Clause}}
			}
			repl := ctx.Registry.Alloc(lits, kernel.Inference{Rule: "forward_demodulation", Parents: []kernel.ClauseID{premise.ID, m.Clause}}, nextAge(premise))
			return ForwardResult{Fired: true, Replacement: repl, Premises: []kernel.ClauseID{m.Clause}}
		}
	}
	return ForwardResult{}
}

// lighterLiteral is the fallback simplification check when the ordering
// cannot directly compare the literal's first argument: a strictly smaller
// weight is accepted as evidence of a simplifying rewrite.
func lighterLiteral(old, new_ kernel.Literal) bool { return new_.Weight() < old.Weight() }

// isSelfRewriteOfLargerEqualitySide blocks any rewrite of argument 0 of an
// equality literal as a whole, whichever equation would perform it. This
// covers rewriting the larger side of an equation by itself, and also
// blocks every other top-level rewrite of that argument; argument 1 and the
// proper subterms of argument 0 may still be rewritten.
func isSelfRewriteOfLargerEqualitySide(lit kernel.Literal, pos subtermPosition) bool {
	return lit.IsEquality() && len(pos.Path) == 0 && pos.Subterm.Equals(lit.Arg(pos.ArgIndex)) && pos.ArgIndex == 0
}

// instantiateRHS binds the compiled LHS's slot variables to the subject
// bindings captured by the code tree match, producing the ground-enough
// replacement term for the rewritten position.
func instantiateRHS(store *kernel.Store, m indexing.CodeTreeMatch) kernel.Term {
	rhsTerm := demodulatorRHS(m)
	return store.Share(substituteVarBindings(rhsTerm, m.Bindings))
}

// demodulatorRHS recovers the stored rewrite target term from the match's
// extra payload, set by whoever populated the code tree (saturation.Build's
// Active hook stores the equation's other side as Extra).
func demodulatorRHS(m indexing.CodeTreeMatch) kernel.Term {
	if t, ok := m.Extra.(kernel.Term); ok {
		return t
	}
	return m.Term
}

func substituteVarBindings(t kernel.Term, bindings map[kernel.VarID]kernel.Term) *kernel.Builder {
	if t.IsVar() {
		if bound, ok := bindings[t.VarID()]; ok {
			return termToBuilderArg(bound)
		}
		return kernel.Var(t.VarID())
	}
	args := make([]*kernel.Builder, t.Arity())
	for i := range args {
		args[i] = substituteVarBindings(t.Arg(i), bindings)
	}
	return kernel.App(t.Functor(), args...)
}

// BackwardDemodulation looks over Active for clauses whose own subterms can
// now be simplified by premise's fresh oriented unit equation.
//
// Restriction takes the same three values as config.Options'
// ForwardDemodulation/BackwardDemodulation (spec §4.6.2): "off" (never
// constructed — callers simply don't wire this rule in), "preordered" (only
// an equation the active ordering can already orient is used), or "all"
// (additionally try both directions of an equation the ordering leaves
// incomparable, each gated by a per-direction weight check in place of the
// ordering's verdict). Because this rule matches ground occurrences by exact
// term identity rather than through a substitution-aware index, there is no
// per-match instantiation to re-check order on — the weight fallback is the
// whole of the "all" mode's extra power here.
type BackwardDemodulation struct {
	Order       order.Ordering
	Restriction string
}

// Perform scans active for a rewrite opportunity using premise as the
// (single unit equation) rewrite rule.
func (d *BackwardDemodulation) Perform(ctx *Context, premise *kernel.Clause, active []*kernel.Clause) []BackwardResult {
	if len(premise.Lits) != 1 || !premise.Lits[0].IsEquality() || !premise.Lits[0].Polarity() {
		return nil
	}
	lit := premise.Lits[0]
	if sTerm, tTerm, ok := orientedEquation(d.Order, lit); ok {
		return d.rewriteWith(ctx, premise, active, sTerm, tTerm)
	}
	if d.Restriction != "all" {
		return nil
	}
	a, b := lit.Arg(0), lit.Arg(1)
	var out []BackwardResult
	if b.Weight() < a.Weight() {
		out = append(out, d.rewriteWith(ctx, premise, active, a, b)...)
	}
	if a.Weight() < b.Weight() {
		out = append(out, d.rewriteWith(ctx, premise, active, b, a)...)
	}
	return out
}

// rewriteWith replaces every occurrence of sTerm in active's clauses with
// tTerm, treating premise's equation as the rewrite rule s -> t.
func (d *BackwardDemodulation) rewriteWith(ctx *Context, premise *kernel.Clause, active []*kernel.Clause, sTerm, tTerm kernel.Term) []BackwardResult {
	var out []BackwardResult
	for _, cand := range active {
		if cand.ID == premise.ID {
			continue
		}
		for litIdx, lit := range cand.Lits {
			for _, pos := range nonVariableSubterms(lit) {
				if !pos.Subterm.Equals(sTerm) {
					continue
				}
				newLit := literalWithSubtermReplaced(ctx.Store, lit, pos, tTerm)
				lits := append([]kernel.Literal(nil), cand.Lits...)
				lits[litIdx] = newLit
				lits = dedupLiterals(lits)
				if containsTautology(lits) {
					out = append(out, BackwardResult{Removed: cand.ID, Replacement: nil})
					continue
				}
				repl := ctx.Registry.Alloc(lits, kernel.Inference{Rule: "backward_demodulation", Parents: []kernel.ClauseID{cand.ID, premise.ID}}, nextAge(cand, premise))
				out = append(out, BackwardResult{Removed: cand.ID, Replacement: repl})
			}
		}
	}
	return out
}
