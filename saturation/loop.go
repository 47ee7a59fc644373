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

// Package saturation implements the given-clause algorithm of spec.md §4.7:
// drain Unprocessed through immediate simplification into Passive, pick a
// given clause, forward-simplify it against Active, generate its
// consequences, backward-simplify the rest of Active against it, and
// repeat until the empty clause appears or both queues run dry.
package saturation

import (
	"github.com/opentracing/opentracing-go"

	"github.com/satforge/saturn/containers"
	"github.com/satforge/saturn/inferences"
	"github.com/satforge/saturn/kernel"
	"github.com/satforge/saturn/runctx"
)

// Reason names why the loop stopped (spec §4.7 "termination reasons").
type Reason uint8

const (
	Unknown Reason = iota
	Refutation
	Saturated
	LimitReached
)

func (r Reason) String() string {
	switch r {
	case Refutation:
		return "Refutation"
	case Saturated:
		return "Saturated"
	case LimitReached:
		return "LimitReached"
	default:
		return "Unknown"
	}
}

// Result is the outcome of a saturation run.
type Result struct {
	Reason    Reason
	Refutation *kernel.Clause // set only when Reason == Refutation
}

// Loop bundles every component the given-clause algorithm drives: the
// shared inference Context, the three clause containers, the generating and
// simplifying rule composites, and the run's context (logging/limits/stats).
type Loop struct {
	Ctx    *inferences.Context
	RunCtx *runctx.RunContext

	Unprocessed *containers.Unprocessed
	Passive     *containers.Passive
	Active      *containers.Active

	Generate         inferences.Generating
	ForwardSimplify  inferences.ForwardSimplifying
	BackwardSimplify []inferences.BackwardSimplifying
	Immediate        inferences.Immediate

	// InductionGenerate runs after Generate against the same given clause,
	// when induction is wired in (spec §4.6's SGI composite): its
	// conclusions feed Unprocessed exactly like Generate's, and a
	// PremiseRedundant verdict removes the given clause from Active, since
	// one of its own conclusions has just subsumed it. Nil when induction
	// is off.
	InductionGenerate inferences.SimplifyingGenerating
}

// Run drives the given-clause algorithm to completion: a refutation, full
// saturation (no more clauses to process, hence satisfiable), or a
// cooperative limit checkpoint tripping.
func (l *Loop) Run() Result {
	span := opentracing.StartSpan("saturation.loop")
	defer span.Finish()

	for {
		if r, done := l.drainUnprocessed(); done {
			return r
		}
		if l.Passive.Empty() {
			l.RunCtx.Log.Info("saturation complete: Passive exhausted with no refutation")
			return Result{Reason: Saturated}
		}
		if err := l.RunCtx.CheckLimits(); err != nil {
			l.RunCtx.Stats.IncLimitChecks()
			l.RunCtx.Log.WithError(err).Info("saturation aborted: limit reached")
			return Result{Reason: LimitReached}
		}

		given, ok := l.Passive.PopSelected()
		if !ok {
			return Result{Reason: Saturated}
		}
		l.RunCtx.Stats.IncGivenClauseLoop()

		fwdSpan := opentracing.StartSpan("saturation.forwardSimplify", opentracing.ChildOf(span.Context()))
		fwd := l.ForwardSimplify.Perform(l.Ctx, given)
		fwdSpan.Finish()
		if fwd.Fired {
			l.RunCtx.Stats.IncSimplified()
			if fwd.Replacement == nil {
				l.RunCtx.Stats.IncDeleted()
				continue // given clause subsumed/reduced to nothing by Active
			}
			given = fwd.Replacement
		}
		if given.IsEmpty() {
			return Result{Reason: Refutation, Refutation: given}
		}

		l.Active.Add(given)
		l.RunCtx.Stats.IncRetained()

		l.backwardSimplify(given)
		if given.IsEmpty() {
			return Result{Reason: Refutation, Refutation: given}
		}

		genSpan := opentracing.StartSpan("saturation.generate", opentracing.ChildOf(span.Context()))
		concls := l.Generate.GenerateClauses(l.Ctx, given).Drain()
		genSpan.Finish()
		for _, c := range concls {
			l.Unprocessed.Push(c)
			l.RunCtx.Stats.IncGenerated(1)
		}

		if l.InductionGenerate != nil {
			indSpan := opentracing.StartSpan("saturation.induction", opentracing.ChildOf(span.Context()))
			res := l.InductionGenerate.Generate(l.Ctx, given)
			indSpan.Finish()
			for _, c := range res.Clauses {
				l.Unprocessed.Push(c)
				l.RunCtx.Stats.IncGenerated(1)
			}
			if res.PremiseRedundant && l.Active.Contains(given.ID) {
				l.Active.Remove(given)
				l.RunCtx.Stats.IncDeleted()
			}
		}
	}
}

// drainUnprocessed runs every queued clause through immediate
// simplification, admitting survivors to Passive; it reports a refutation
// result early if immediate simplification ever produces the empty clause.
func (l *Loop) drainUnprocessed() (Result, bool) {
	span := opentracing.StartSpan("saturation.drainUnprocessed")
	defer span.Finish()
	for {
		c, ok := l.Unprocessed.Pop()
		if !ok {
			return Result{}, false
		}
		simplified := l.Immediate.Simplify(l.Ctx, c)
		if simplified == nil {
			l.RunCtx.Stats.IncDeleted()
			continue
		}
		if simplified.IsEmpty() {
			return Result{Reason: Refutation, Refutation: simplified}, true
		}
		l.Passive.Push(simplified)
	}
}

// backwardSimplify runs every backward-simplifying rule against the rest of
// Active using given as the new premise, removing or replacing whatever it
// makes redundant.
func (l *Loop) backwardSimplify(given *kernel.Clause) {
	span := opentracing.StartSpan("saturation.backwardSimplify")
	defer span.Finish()
	for _, rule := range l.BackwardSimplify {
		results := rule.Perform(l.Ctx, given, l.Active.All())
		for _, res := range results {
			cl, ok := l.Ctx.Registry.Get(res.Removed)
			if !ok {
				continue
			}
			l.Active.Remove(cl)
			l.RunCtx.Stats.IncDeleted()
			if res.Replacement != nil {
				l.Unprocessed.Push(res.Replacement)
			}
		}
	}
}
