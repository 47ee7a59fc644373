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

import "github.com/satforge/saturn/kernel"

// DuplicateLiteralRemoval is an immediate simplifier removing repeated
// literals (spec §4.6.2, testable property 11: idempotent).
type DuplicateLiteralRemoval struct{}

// Simplify rebuilds cl with duplicate literals dropped, only allocating a
// new clause when something actually changed.
func (DuplicateLiteralRemoval) Simplify(ctx *Context, cl *kernel.Clause) *kernel.Clause {
	deduped := dedupLiterals(cl.Lits)
	if len(deduped) == len(cl.Lits) {
		return cl
	}
	return ctx.Registry.Alloc(deduped, kernel.Inference{Rule: "duplicate_literal_removal", Parents: []kernel.ClauseID{cl.ID}}, cl.Age)
}

// TrivialInequalityRemoval drops literals of the form `x != x`.
type TrivialInequalityRemoval struct{}

// Simplify rebuilds cl with trivial inequalities removed.
func (TrivialInequalityRemoval) Simplify(ctx *Context, cl *kernel.Clause) *kernel.Clause {
	var kept []kernel.Literal
	changed := false
	for _, l := range cl.Lits {
		if isTrivialInequality(l) {
			changed = true
			continue
		}
		kept = append(kept, l)
	}
	if !changed {
		return cl
	}
	return ctx.Registry.Alloc(kept, kernel.Inference{Rule: "trivial_inequality_removal", Parents: []kernel.ClauseID{cl.ID}}, cl.Age)
}

// TautologyRemoval deletes a clause outright (returns nil) if it contains
// `x = x` or a complementary literal pair.
type TautologyRemoval struct{}

// Simplify returns nil when cl is a tautology, cl unchanged otherwise.
func (TautologyRemoval) Simplify(ctx *Context, cl *kernel.Clause) *kernel.Clause {
	if containsTautology(cl.Lits) {
		return nil
	}
	return cl
}

// Immediates composes the three immediate simplifiers in the order the
// given-clause loop applies them before a clause reaches Passive: duplicate
// removal and trivial-inequality removal first (idempotent rewrites), then
// tautology detection (a terminal check).
type Immediates struct {
	Dup     DuplicateLiteralRemoval
	Trivial TrivialInequalityRemoval
	Taut    TautologyRemoval
}

// Simplify runs the full chain, short-circuiting to nil the moment the
// clause is recognised as a tautology.
func (i *Immediates) Simplify(ctx *Context, cl *kernel.Clause) *kernel.Clause {
	cl = i.Dup.Simplify(ctx, cl)
	cl = i.Trivial.Simplify(ctx, cl)
	return i.Taut.Simplify(ctx, cl)
}
