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

// Package saturn wires the term store, index manager, clause containers,
// inference engines and saturation loop into one entrypoint: hand it a set
// of input clauses and options, get back a refutation or a "saturated, no
// refutation" verdict (spec.md §1 "Scope").
package saturn

import (
	"github.com/satforge/saturn/config"
	"github.com/satforge/saturn/indexing"
	"github.com/satforge/saturn/kernel"
	"github.com/satforge/saturn/kernel/order"
	"github.com/satforge/saturn/proof"
	"github.com/satforge/saturn/runctx"
	"github.com/satforge/saturn/saturation"
)

// Engine bundles one saturation run's resources: a fresh term store and
// clause registry, an ordering built from the run's symbol precedence, an
// index manager, and the loop built over them.
type Engine struct {
	Store    *kernel.Store
	Registry *kernel.Registry
	RunCtx   *runctx.RunContext

	loop *saturation.Loop
}

// New creates an Engine over a fresh store/registry, building the active
// ordering from precedence (spec §4.2 "the ordering is parameterised by a
// fixed symbol precedence, chosen once per run") and the given options and
// limits. induction names the constructor/order symbols the induction rules
// need to recognise a schema's shape (spec §4.6.1); its zero value leaves
// induction unable to match any real clause even when opts.Induction is set,
// the same way an unrequested index never gets built.
func New(opts config.Options, precedence order.Precedence, limits runctx.Limits, induction saturation.InductionSymbols) *Engine {
	store := kernel.NewStore()
	registry := kernel.NewRegistry()
	mgr := indexing.NewManager(store)
	rc := runctx.New(opts, limits)

	var ord order.Ordering
	switch opts.Ordering {
	case "lpo":
		ord = order.NewLPO(precedence, nil)
	default:
		ord = order.NewKBO(precedence, nil, 1, nil)
	}

	loop := saturation.Build(rc, store, registry, ord, mgr, opts, induction)
	return &Engine{Store: store, Registry: registry, RunCtx: rc, loop: loop}
}

// AddInput admits a top-level (non-derived) clause to the run, tagging its
// inference as kernel.InputSentinel.
func (e *Engine) AddInput(lits []kernel.Literal) *kernel.Clause {
	cl := e.Registry.Alloc(lits, kernel.Inference{Rule: kernel.InputSentinel}, 0)
	e.loop.Unprocessed.Push(cl)
	return cl
}

// Run drives the saturation loop to completion.
func (e *Engine) Run() saturation.Result {
	e.RunCtx.Log.WithField("options", e.RunCtx.Options).Info("saturation run starting")
	res := e.loop.Run()
	e.RunCtx.Log.WithField("reason", res.Reason.String()).Info("saturation run finished")
	return res
}

// GetRefutation builds the derivation DAG for a Refutation result. Callers
// must check res.Reason == saturation.Refutation first; this is a thin
// pass-through to proof.GetRefutation over the engine's own registry.
func (e *Engine) GetRefutation(res saturation.Result) proof.Derivation {
	return proof.GetRefutation(e.Registry, res.Refutation.ID)
}

// Stats returns a point-in-time snapshot of the run's counters.
func (e *Engine) Stats() runctx.Statistics {
	return e.RunCtx.Stats.Snapshot()
}
