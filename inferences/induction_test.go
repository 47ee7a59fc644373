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

	"github.com/satforge/saturn/kernel"
)

const (
	fZero int32 = iota + 200
	fSucc
	fSk
	pInd
	pLt
)

func TestStructuralInductionProducesBaseStepConclusion(t *testing.T) {
	store := kernel.NewStore()
	ctx := newTestContext(store)

	// Goal clause { ¬p(sk) } where sk is a Skolem constant.
	notPSk := store.ShareLiteral(kernel.Pred(pInd, false, kernel.App(fSk)))
	premise := ctx.Registry.Alloc([]kernel.Literal{notPSk}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	reg := NewPostponementRegistry()
	rule := &StructuralInduction{Zero: fZero, Succ: fSucc, Registry: reg, NextVar: func() kernel.VarID { return 7 }}
	results := rule.GenerateClauses(ctx, premise).Drain()
	require.Len(t, results, 3)

	base, step, conclusion := results[0], results[1], results[2]
	pZero := store.ShareLiteral(kernel.Pred(pInd, true, kernel.App(fZero)))
	require.Len(t, base.Lits, 1)
	require.True(t, base.Lits[0].Equals(pZero))

	require.Len(t, step.Lits, 2)
	require.False(t, step.Lits[0].Polarity())
	require.True(t, step.Lits[1].Polarity())

	require.Len(t, conclusion.Lits, 1)
	require.True(t, conclusion.Lits[0].Equals(notPSk))
	require.NotNil(t, conclusion.Extra.Induction)

	require.Equal(t, Exhausted, reg.State(pInd, store.Share(kernel.App(fSk))))
}

func TestStructuralInductionSkipsAlreadyExhausted(t *testing.T) {
	store := kernel.NewStore()
	ctx := newTestContext(store)

	notPSk := store.ShareLiteral(kernel.Pred(pInd, false, kernel.App(fSk)))
	premise := ctx.Registry.Alloc([]kernel.Literal{notPSk}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	reg := NewPostponementRegistry()
	reg.Exhaust(pInd, store.Share(kernel.App(fSk)))
	rule := &StructuralInduction{Zero: fZero, Succ: fSucc, Registry: reg}
	require.Empty(t, rule.GenerateClauses(ctx, premise).Drain())
}

func TestStructuralInductionIgnoresMultiLiteralClauses(t *testing.T) {
	store := kernel.NewStore()
	ctx := newTestContext(store)

	notPSk := store.ShareLiteral(kernel.Pred(pInd, false, kernel.App(fSk)))
	qa := store.ShareLiteral(kernel.Pred(pInd, true, kernel.App(fZero)))
	premise := ctx.Registry.Alloc([]kernel.Literal{notPSk, qa}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	rule := &StructuralInduction{Zero: fZero, Succ: fSucc}
	require.Empty(t, rule.GenerateClauses(ctx, premise).Drain())
}

func TestIntegerInductionProducesThreeClauses(t *testing.T) {
	store := kernel.NewStore()
	ctx := newTestContext(store)

	fBound := pLt + 1
	goalLit := store.ShareLiteral(kernel.Pred(pInd, true, kernel.App(fSk)))
	goal := ctx.Registry.Alloc([]kernel.Literal{goalLit}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	boundLit := store.ShareLiteral(kernel.Pred(pLt, false, kernel.App(fSk), kernel.App(fBound)))
	bound := ctx.Registry.Alloc([]kernel.Literal{boundLit}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	rule := &IntegerInduction{LessThan: pLt, Succ: fSucc, NextVar: func() kernel.VarID { return 9 }}
	results := rule.GenerateClauses(ctx, goal, bound).Drain()
	require.Len(t, results, 3)
	for _, c := range results {
		require.Len(t, c.Lits, 2)
	}
}

func TestPostponementRegistryReactivation(t *testing.T) {
	reg := NewPostponementRegistry()
	store := kernel.NewStore()
	sk := store.Share(kernel.App(fSk))

	reg.Postpone(pInd, sk, fSucc, kernel.ClauseID(42))
	require.Equal(t, Postponed, reg.State(pInd, sk))

	blocked := reg.ReactivateFor(fSucc)
	require.Equal(t, []kernel.ClauseID{42}, blocked)
	reg.Activate(pInd, sk)
	require.Equal(t, Active, reg.State(pInd, sk))

	// A second call returns nothing: the pending list was drained.
	require.Empty(t, reg.ReactivateFor(fSucc))
}
