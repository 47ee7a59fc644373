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

// Package inferences implements the generating, simplifying and immediate
// inference engines of spec §4.6: binary resolution, factoring,
// superposition, equality resolution/factoring, demodulation, subsumption,
// induction, and the duplicate/tautology/trivial-inequality immediate
// simplifiers.
package inferences

import (
	"github.com/satforge/saturn/indexing"
	"github.com/satforge/saturn/kernel"
	"github.com/satforge/saturn/kernel/order"
)

// Context bundles the shared, per-saturation-algorithm-instance resources
// every rule needs (spec §5 "Shared resources"): the process-wide term
// store, the clause registry, the active reduction ordering and the index
// manager. Rules hold no state of their own beyond which index kind they
// subscribe to.
type Context struct {
	Store    *kernel.Store
	Registry *kernel.Registry
	Order    order.Ordering
	Indices  *indexing.Manager
}

// nextAge derives a new clause's age as one past the oldest-aged of its
// parents' ages (spec §4.5 invariant: "age counter is monotonically
// non-decreasing with derivation order").
func nextAge(parents ...*kernel.Clause) uint64 {
	var max uint64
	for _, p := range parents {
		if p.Age > max {
			max = p.Age
		}
	}
	return max + 1
}

// ClauseCursor is the pull-based iterator a generating rule returns (spec
// §4.6 "generateClauses(premise) → iterator<Clause>"). Conclusions are
// materialised eagerly by the rule and walked lazily by the caller, mirroring
// the Cursor discipline used throughout indexing.
type ClauseCursor struct {
	items []*kernel.Clause
	pos   int
}

// NewClauseCursor wraps an already-materialised slice of conclusions.
func NewClauseCursor(items []*kernel.Clause) *ClauseCursor {
	return &ClauseCursor{items: items}
}

// Next advances the cursor.
func (c *ClauseCursor) Next() (*kernel.Clause, bool) {
	if c.pos >= len(c.items) {
		return nil, false
	}
	item := c.items[c.pos]
	c.pos++
	return item, true
}

// Drain collects every remaining clause; a convenience for callers (tests,
// the saturation loop) that want the whole result set rather than stepping
// the cursor by hand.
func (c *ClauseCursor) Drain() []*kernel.Clause {
	out := c.items[c.pos:]
	c.pos = len(c.items)
	return out
}

// Generating is a rule whose output is a set of new clauses derived from one
// premise and whatever Active-backed index it was constructed with (spec
// §4.6 kind 1).
type Generating interface {
	GenerateClauses(ctx *Context, premise *kernel.Clause) *ClauseCursor
}

// ForwardResult reports whether a forward-simplifying rule fired, and if so
// what replaces the premise (nil Replacement means the premise is deleted
// outright) and which side clauses were used to justify the step.
type ForwardResult struct {
	Fired       bool
	Replacement *kernel.Clause
	Premises    []kernel.ClauseID
}

// ForwardSimplifying is a rule that may rewrite or delete a clause on its
// way from Unprocessed/Passive into Active (spec §4.6 kind 2).
type ForwardSimplifying interface {
	Perform(ctx *Context, premise *kernel.Clause) ForwardResult
}

// BackwardResult names one clause the new premise made redundant, and its
// optional replacement (nil means outright deletion).
type BackwardResult struct {
	Removed     kernel.ClauseID
	Replacement *kernel.Clause
}

// BackwardSimplifying is a rule that, given a newly active premise, looks
// back over the rest of Active for clauses it now makes redundant (spec
// §4.6 kind 3).
type BackwardSimplifying interface {
	Perform(ctx *Context, premise *kernel.Clause, active []*kernel.Clause) []BackwardResult
}

// Immediate is applied to every clause before it is admitted to Passive
// (spec §4.6 kind 4): duplicate-literal removal, trivial-inequality removal,
// tautology detection.
type Immediate interface {
	Simplify(ctx *Context, cl *kernel.Clause) *kernel.Clause
}

// CompositeGenerating chains several generating rules, concatenating their
// conclusions (spec §4.6 "A composite of each kind chains its children").
type CompositeGenerating struct {
	Rules []Generating
}

// GenerateClauses runs every child rule against premise in order.
func (c *CompositeGenerating) GenerateClauses(ctx *Context, premise *kernel.Clause) *ClauseCursor {
	var all []*kernel.Clause
	for _, r := range c.Rules {
		all = append(all, r.GenerateClauses(ctx, premise).Drain()...)
	}
	return NewClauseCursor(all)
}

// CompositeForward chains forward-simplifying rules, feeding each one's
// replacement into the next, stopping early on outright deletion.
type CompositeForward struct {
	Rules []ForwardSimplifying
}

// Perform runs every child rule in order against the current form of the
// clause, accumulating side-premises used along the way.
func (c *CompositeForward) Perform(ctx *Context, premise *kernel.Clause) ForwardResult {
	cur := premise
	var sidePremises []kernel.ClauseID
	firedAny := false
	for _, r := range c.Rules {
		res := r.Perform(ctx, cur)
		if !res.Fired {
			continue
		}
		firedAny = true
		sidePremises = append(sidePremises, res.Premises...)
		if res.Replacement == nil {
			return ForwardResult{Fired: true, Replacement: nil, Premises: sidePremises}
		}
		cur = res.Replacement
	}
	if !firedAny {
		return ForwardResult{}
	}
	return ForwardResult{Fired: true, Replacement: cur, Premises: sidePremises}
}

// SGIResult is the outcome of a simplifying-and-generating composite step:
// the generated conclusions, plus whether the premise was discovered to be
// redundant (subsumed by one of its own conclusions) along the way.
type SGIResult struct {
	Clauses          []*kernel.Clause
	PremiseRedundant bool
}

// SimplifyingGenerating additionally tracks premise_redundant (spec §4.6):
// "when a simplification discovers the premise is subsumed by the derived
// conclusion, the premise may be marked for deletion".
type SimplifyingGenerating interface {
	Generate(ctx *Context, premise *kernel.Clause) SGIResult
}

// SGI wraps a Generating rule plus a subsumption check: if any conclusion
// subsumes the premise, PremiseRedundant is set.
type SGI struct {
	Rule       Generating
	SubsumesFn func(ctx *Context, subsumer, subsumed *kernel.Clause) bool
}

// Generate runs the wrapped rule and checks every conclusion against the
// premise for subsumption.
func (s *SGI) Generate(ctx *Context, premise *kernel.Clause) SGIResult {
	concls := s.Rule.GenerateClauses(ctx, premise).Drain()
	redundant := false
	if s.SubsumesFn != nil {
		for _, c := range concls {
			if s.SubsumesFn(ctx, c, premise) {
				redundant = true
				break
			}
		}
	}
	return SGIResult{Clauses: concls, PremiseRedundant: redundant}
}
