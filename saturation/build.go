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

package saturation

import (
	"github.com/satforge/saturn/config"
	"github.com/satforge/saturn/containers"
	"github.com/satforge/saturn/indexing"
	"github.com/satforge/saturn/inferences"
	"github.com/satforge/saturn/kernel"
	"github.com/satforge/saturn/kernel/order"
	"github.com/satforge/saturn/oracle"
	"github.com/satforge/saturn/runctx"
)

// InductionSymbols names the constructor/order symbols the induction rules
// need to recognise a schema's shape (spec §4.6.1): the base and recursive
// constructors of the inductive type structural induction schematises over,
// and the strict-order and successor symbols integer induction schematises
// over. Threaded alongside opts the same way order.Precedence is threaded
// alongside it: neither belongs in config.Options, since both name run
// symbols rather than tunable behaviour.
type InductionSymbols struct {
	Zero     int32
	Succ     int32
	LessThan int32
}

// nonVariableLeaves collects every non-variable subterm of lit's arguments,
// recursing into compound terms, for Active subscription to the superposition
// subterm index. Mirrors the position-walking demodulation and superposition
// already do against a single clause at query time; here it runs once per
// Active-membership event instead.
func nonVariableLeaves(t kernel.Term, out []kernel.Term) []kernel.Term {
	if t.IsVar() {
		return out
	}
	out = append(out, t)
	for i := 0; i < t.Arity(); i++ {
		out = nonVariableLeaves(t.Arg(i), out)
	}
	return out
}

// integerInductionAdapter bridges IntegerInduction's two-clause
// GenerateClauses to the single-premise Generating interface the ordinary
// generation pipeline expects: premise is tried both as the goal clause
// (paired against every Active candidate bound clause) and as a candidate
// bound clause (paired against every Active goal clause), so whichever
// half of the pair arrives second is the one that actually fires the
// schema. IntegerInduction itself rejects any pairing that doesn't match
// its expected shape, so trying both directions against every Active
// clause costs a few wasted shape checks, not incorrect output.
type integerInductionAdapter struct {
	Rule   *inferences.IntegerInduction
	Active func() []*kernel.Clause
}

func (a *integerInductionAdapter) GenerateClauses(ctx *inferences.Context, premise *kernel.Clause) *inferences.ClauseCursor {
	var out []*kernel.Clause
	for _, cand := range a.Active() {
		if cand.ID == premise.ID {
			continue
		}
		out = append(out, a.Rule.GenerateClauses(ctx, premise, cand).Drain()...)
		out = append(out, a.Rule.GenerateClauses(ctx, cand, premise).Drain()...)
	}
	return inferences.NewClauseCursor(out)
}

// Build assembles a saturation Loop from opts: it requests exactly the
// indices the enabled rules need from mgr, wires Active's membership hooks
// to keep them (and the index manager's membership diagnostics) in sync,
// and composes the generating/simplifying rule sets spec §4.6 describes.
// Rules left disabled by opts never request an index, so the index manager
// never builds one for them (spec §4.4). induction is only consulted when
// opts.Induction is set; its zero value is otherwise inert.
func Build(rc *runctx.RunContext, store *kernel.Store, registry *kernel.Registry, ord order.Ordering, mgr *indexing.Manager, opts config.Options, induction InductionSymbols) *Loop {
	ctx := &inferences.Context{Store: store, Registry: registry, Order: ord, Indices: mgr}

	unprocessed := containers.NewUnprocessed()
	passive := containers.NewPassive(opts.AgeWeightRatioAge, opts.AgeWeightRatioWeight)
	active := containers.NewActive()

	// Selection runs before any index hook below reads a clause's literals,
	// so a selection-aware index (resolution's) sees the post-selection
	// layout. A no-op for opts.Selection == "off"/unrecognised.
	active.OnAdded(func(c *kernel.Clause) {
		applySelection(ord, opts.Selection, c)
	})

	gen := []inferences.Generating{
		&inferences.Factoring{},
		&inferences.EqualityResolution{},
		&inferences.EqualityFactoring{},
	}

	if opts.BinaryResolution {
		resIdx := mgr.RequestLiteralIndex(indexing.KindResolutionLiterals)
		active.OnAdded(func(c *kernel.Clause) {
			for i, l := range c.Lits {
				if l.IsEquality() || !c.Selected(i) {
					continue
				}
				resIdx.Insert(l, c.ID, nil)
				mgr.NoteInserted(indexing.KindResolutionLiterals, c.ID)
			}
		})
		active.OnRemoved(func(c *kernel.Clause) {
			for i, l := range c.Lits {
				if l.IsEquality() || !c.Selected(i) {
					continue
				}
				resIdx.Remove(l, c.ID)
			}
			mgr.NoteRemoved(indexing.KindResolutionLiterals, c.ID)
		})
		gen = append([]inferences.Generating{&inferences.Resolution{Index: resIdx}}, gen...)
	}

	if opts.Superposition {
		eqIdx := mgr.RequestTermIndex(indexing.KindSuperpositionLHS)
		subtermIdx := mgr.RequestTermIndex(indexing.KindSuperpositionSubterms)
		active.OnAdded(func(c *kernel.Clause) {
			for _, l := range c.Lits {
				if l.IsEquality() && l.Polarity() {
					if s, _, ok := orientedEquationLHS(ord, l); ok {
						eqIdx.Insert(s, l, c.ID, nil)
					}
				}
				for i := 0; i < l.Arity(); i++ {
					for _, sub := range nonVariableLeaves(l.Arg(i), nil) {
						subtermIdx.Insert(sub, l, c.ID, nil)
					}
				}
			}
			mgr.NoteInserted(indexing.KindSuperpositionSubterms, c.ID)
		})
		active.OnRemoved(func(c *kernel.Clause) {
			for _, l := range c.Lits {
				if l.IsEquality() && l.Polarity() {
					if s, _, ok := orientedEquationLHS(ord, l); ok {
						eqIdx.Remove(s, l, c.ID)
					}
				}
				for i := 0; i < l.Arity(); i++ {
					for _, sub := range nonVariableLeaves(l.Arg(i), nil) {
						subtermIdx.Remove(sub, l, c.ID)
					}
				}
			}
			mgr.NoteRemoved(indexing.KindSuperpositionSubterms, c.ID)
		})
		gen = append(gen, &inferences.Superposition{EqIndex: eqIdx, SubtermIndex: subtermIdx})
	}

	var forward []inferences.ForwardSimplifying
	var backward []inferences.BackwardSimplifying

	if opts.ForwardDemodulation != "off" {
		code := mgr.RequestCodeTree(indexing.KindDemodulationLHS)
		active.OnAdded(func(c *kernel.Clause) {
			if len(c.Lits) != 1 || !c.Lits[0].IsEquality() || !c.Lits[0].Polarity() {
				return
			}
			l := c.Lits[0]
			if s, t, ok := orientedEquationLHS(ord, l); ok {
				code.Insert(s, l, c.ID, t)
				mgr.NoteInserted(indexing.KindDemodulationLHS, c.ID)
				return
			}
			if opts.ForwardDemodulation == "all" {
				a, b := l.Arg(0), l.Arg(1)
				code.Insert(a, l, c.ID, b)
				code.Insert(b, l, c.ID, a)
				mgr.NoteInserted(indexing.KindDemodulationLHS, c.ID)
			}
		})
		active.OnRemoved(func(c *kernel.Clause) {
			if len(c.Lits) != 1 || !c.Lits[0].IsEquality() || !c.Lits[0].Polarity() {
				return
			}
			l := c.Lits[0]
			if s, _, ok := orientedEquationLHS(ord, l); ok {
				code.Remove(s, l, c.ID)
				mgr.NoteRemoved(indexing.KindDemodulationLHS, c.ID)
				return
			}
			if opts.ForwardDemodulation == "all" {
				a, b := l.Arg(0), l.Arg(1)
				code.Remove(a, l, c.ID)
				code.Remove(b, l, c.ID)
				mgr.NoteRemoved(indexing.KindDemodulationLHS, c.ID)
			}
		})
		forward = append(forward, &inferences.ForwardDemodulation{Code: code, Order: ord})
	}
	if opts.BackwardDemodulation != "off" {
		backward = append(backward, &inferences.BackwardDemodulation{Order: ord, Restriction: opts.BackwardDemodulation})
	}

	subsumeOracle := oracle.New(store)
	if opts.ForwardSubsumption {
		forward = append(forward, &inferences.ForwardSubsumption{Oracle: subsumeOracle, Active: active.All})
	}
	if opts.ForwardSubsumptionResolution {
		forward = append(forward, &inferences.ForwardSubsumptionResolution{Oracle: subsumeOracle, Active: active.All})
	}
	if opts.BackwardSubsumption {
		backward = append(backward, &inferences.BackwardSubsumption{Oracle: subsumeOracle})
	}

	loop := &Loop{
		Ctx:              ctx,
		RunCtx:           rc,
		Unprocessed:      unprocessed,
		Passive:          passive,
		Active:           active,
		Generate:         &inferences.CompositeGenerating{Rules: gen},
		ForwardSimplify:  &inferences.CompositeForward{Rules: forward},
		BackwardSimplify: backward,
		Immediate:        &inferences.Immediates{},
	}

	if opts.Induction && (induction.Zero != 0 || induction.Succ != 0 || induction.LessThan != 0) {
		wireInduction(ctx, active, unprocessed, registry, subsumeOracle, opts, induction, loop)
	}

	return loop
}

// wireInduction builds the postponement registry, the structural/integer
// induction rules and their Active-driven reactivation hook, and attaches
// them to loop as the given-clause algorithm's simplifying-and-generating
// step (spec §4.6 "SGI ... tracks premise_redundant"): the induction
// conclusion clause is, by construction, a literal-for-literal copy of the
// premise (StructuralInduction.GenerateClauses), so it always subsumes its
// own premise — a genuine, not fabricated, use of the subsumption oracle.
func wireInduction(ctx *inferences.Context, active *containers.Active, unprocessed *containers.Unprocessed, registry *kernel.Registry, subsumeOracle *oracle.DPLLOracle, opts config.Options, induction InductionSymbols, loop *Loop) {
	inductionRegistry := inferences.NewPostponementRegistry()

	nextInductionVar := uint32(1 << 20) // well above any var id ordinary clauses plausibly reach.
	nextVar := func() kernel.VarID {
		nextInductionVar++
		return kernel.VarID(nextInductionVar)
	}

	structuralRule := &inferences.StructuralInduction{
		Zero:     induction.Zero,
		Succ:     induction.Succ,
		Registry: inductionRegistry,
		NextVar:  nextVar,
		Active:   active.All,
	}

	active.OnAdded(func(c *kernel.Clause) {
		for _, functor := range [2]int32{induction.Zero, induction.Succ} {
			if !inferences.ClauseMentionsFunctor(c, functor) {
				continue
			}
			for _, premiseID := range inductionRegistry.ReactivateFor(functor) {
				premise, ok := registry.Get(premiseID)
				if !ok {
					continue
				}
				for _, concl := range structuralRule.GenerateClauses(ctx, premise).Drain() {
					unprocessed.Push(concl)
				}
			}
		}
	})

	sgi := &inferences.SGI{
		Rule: structuralRule,
		SubsumesFn: func(ctx *inferences.Context, subsumer, subsumed *kernel.Clause) bool {
			return subsumeOracle.Subsumes(subsumer, subsumed)
		},
	}
	loop.InductionGenerate = sgi

	if induction.LessThan != 0 {
		integerRule := &inferences.IntegerInduction{LessThan: induction.LessThan, Succ: induction.Succ, NextVar: nextVar}
		adapter := &integerInductionAdapter{Rule: integerRule, Active: active.All}
		if composite, ok := loop.Generate.(*inferences.CompositeGenerating); ok {
			composite.Rules = append(composite.Rules, adapter)
		}
	}
}

// orientedEquationLHS is the package-local mirror of inferences'
// unexported orientedEquation (spec §4.6.2 "oriented unit equation"):
// Build needs to decide, at Active-membership time, which side of a unit
// equation indexes as the rewrite left-hand side.
func orientedEquationLHS(ord order.Ordering, l kernel.Literal) (s, t kernel.Term, ok bool) {
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
