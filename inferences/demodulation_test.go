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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/satforge/saturn/indexing"
	"github.com/satforge/saturn/kernel"
	"github.com/satforge/saturn/kernel/order"
)

func TestForwardDemodulationRewritesSubterm(t *testing.T) {
	store := kernel.NewStore()
	ctx := newTestContext(store)
	ord := order.NewLPO(order.Precedence{fA: 1, fB: 2, fG: 3}, nil)
	ctx.Order = ord

	// Active unit equation g(x) = a, compiled into the code tree keyed on
	// its oriented LHS g(x); the RHS `a` rides along as Extra.
	code := indexing.NewCodeTree(store)
	gx := store.Share(kernel.App(fG, kernel.Var(0)))
	aTerm := store.Share(kernel.App(fA))
	eqLit := store.ShareLiteral(kernel.Eq(kernel.App(fG, kernel.Var(0)), kernel.App(fA), true))
	code.Insert(gx, eqLit, 1, aTerm)

	// Premise: { p(g(b)) } rewrites to { p(a) }.
	pgb := store.ShareLiteral(kernel.Pred(pP, true, kernel.App(fG, kernel.App(fB))))
	premise := ctx.Registry.Alloc([]kernel.Literal{pgb}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	rule := &ForwardDemodulation{Code: code, Order: ord}
	res := rule.Perform(ctx, premise)
	require.True(t, res.Fired)
	require.NotNil(t, res.Replacement)
	pa := store.ShareLiteral(kernel.Pred(pP, true, kernel.App(fA)))
	require.True(t, res.Replacement.Lits[0].Equals(pa))
}

func TestForwardDemodulationNoMatchIsNoOp(t *testing.T) {
	store := kernel.NewStore()
	ctx := newTestContext(store)
	ord := order.NewLPO(order.Precedence{fA: 1, fB: 2, fG: 3}, nil)

	code := indexing.NewCodeTree(store)
	pb := store.ShareLiteral(kernel.Pred(pP, true, kernel.App(fB)))
	premise := ctx.Registry.Alloc([]kernel.Literal{pb}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	rule := &ForwardDemodulation{Code: code, Order: ord}
	res := rule.Perform(ctx, premise)
	require.False(t, res.Fired)
}

func TestBackwardDemodulationRewritesActiveClause(t *testing.T) {
	store := kernel.NewStore()
	ctx := newTestContext(store)
	ord := order.NewLPO(order.Precedence{fA: 1, fB: 2, fG: 3}, nil)

	// premise is the fresh unit equation g(b) = a; active clause { p(g(b)) }
	// should rewrite to { p(a) }.
	gb := kernel.App(fG, kernel.App(fB))
	eq := store.ShareLiteral(kernel.Eq(gb, kernel.App(fA), true))
	premise := ctx.Registry.Alloc([]kernel.Literal{eq}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	pgb := store.ShareLiteral(kernel.Pred(pP, true, kernel.App(fG, kernel.App(fB))))
	active := ctx.Registry.Alloc([]kernel.Literal{pgb}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	rule := &BackwardDemodulation{Order: ord}
	results := rule.Perform(ctx, premise, []*kernel.Clause{active})
	require.Len(t, results, 1)
	require.Equal(t, active.ID, results[0].Removed)
	require.NotNil(t, results[0].Replacement)
	pa := store.ShareLiteral(kernel.Pred(pP, true, kernel.App(fA)))
	require.True(t, results[0].Replacement.Lits[0].Equals(pa))
}
