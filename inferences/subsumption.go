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
	"github.com/satforge/saturn/oracle"
)

// ForwardSubsumption deletes premise outright if some Active clause already
// subsumes it (spec §4.6.2). Single-literal subsumption is a degenerate case
// of the same oracle call, so every check is delegated uniformly.
type ForwardSubsumption struct {
	Oracle oracle.Subsumption
	Active func() []*kernel.Clause
}

// Perform reports a fired-with-nil-replacement result (deletion) the moment
// any Active clause subsumes premise.
func (f *ForwardSubsumption) Perform(ctx *Context, premise *kernel.Clause) ForwardResult {
	for _, cand := range f.Active() {
		if cand.ID == premise.ID {
			continue
		}
		if f.Oracle.Subsumes(cand, premise) {
			return ForwardResult{Fired: true, Replacement: nil, Premises: []kernel.ClauseID{cand.ID}}
		}
	}
	return ForwardResult{}
}

// ForwardSubsumptionResolution strips one literal from premise when some
// Active clause subsumption-resolves against it (spec §4.6.2's subsumption
// resolution variant): unlike ForwardSubsumption, premise survives, just
// smaller, so this rule's replacement is never nil.
type ForwardSubsumptionResolution struct {
	Oracle oracle.SubsumptionResolution
	Active func() []*kernel.Clause
}

// Perform tries every Active clause as a subsumption-resolution subsumer,
// stopping at the first literal it can strip.
func (f *ForwardSubsumptionResolution) Perform(ctx *Context, premise *kernel.Clause) ForwardResult {
	for _, cand := range f.Active() {
		if cand.ID == premise.ID {
			continue
		}
		idx, ok := f.Oracle.SubsumesWithResolution(cand, premise)
		if !ok {
			continue
		}
		lits := make([]kernel.Literal, 0, len(premise.Lits)-1)
		lits = append(lits, premise.Lits[:idx]...)
		lits = append(lits, premise.Lits[idx+1:]...)
		repl := ctx.Registry.Alloc(lits, kernel.Inference{
			Rule: "forward_subsumption_resolution", Parents: []kernel.ClauseID{premise.ID, cand.ID},
		}, nextAge(premise, cand))
		return ForwardResult{Fired: true, Replacement: repl, Premises: []kernel.ClauseID{cand.ID}}
	}
	return ForwardResult{}
}

// BackwardSubsumption looks over Active for clauses that premise (the newly
// active clause) now subsumes — those are deleted.
type BackwardSubsumption struct {
	Oracle oracle.Subsumption
}

// Perform checks premise against every other Active clause.
func (b *BackwardSubsumption) Perform(ctx *Context, premise *kernel.Clause, active []*kernel.Clause) []BackwardResult {
	var out []BackwardResult
	for _, cand := range active {
		if cand.ID == premise.ID {
			continue
		}
		if b.Oracle.Subsumes(premise, cand) {
			out = append(out, BackwardResult{Removed: cand.ID, Replacement: nil})
		}
	}
	return out
}
