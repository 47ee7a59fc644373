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

func TestFactoringUnifiesDuplicatePredicate(t *testing.T) {
	store := kernel.NewStore()
	ctx := newTestContext(store)

	// { p(x), p(a) } factors to { p(a) } under x := a.
	px := store.ShareLiteral(kernel.Pred(pP, true, kernel.Var(0)))
	pa := store.ShareLiteral(kernel.Pred(pP, true, kernel.App(fA)))
	cl := ctx.Registry.Alloc([]kernel.Literal{px, pa}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	rule := &Factoring{}
	results := rule.GenerateClauses(ctx, cl).Drain()
	require.Len(t, results, 1)
	require.Len(t, results[0].Lits, 1)
	require.True(t, results[0].Lits[0].Equals(pa))
}

func TestFactoringSkipsDifferentPolarity(t *testing.T) {
	store := kernel.NewStore()
	ctx := newTestContext(store)

	px := store.ShareLiteral(kernel.Pred(pP, true, kernel.Var(0)))
	notPa := store.ShareLiteral(kernel.Pred(pP, false, kernel.App(fA)))
	cl := ctx.Registry.Alloc([]kernel.Literal{px, notPa}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	rule := &Factoring{}
	require.Empty(t, rule.GenerateClauses(ctx, cl).Drain())
}

func TestFactoringSkipsNonUnifiable(t *testing.T) {
	store := kernel.NewStore()
	ctx := newTestContext(store)

	pa := store.ShareLiteral(kernel.Pred(pP, true, kernel.App(fA)))
	pb := store.ShareLiteral(kernel.Pred(pP, true, kernel.App(fB)))
	cl := ctx.Registry.Alloc([]kernel.Literal{pa, pb}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	rule := &Factoring{}
	require.Empty(t, rule.GenerateClauses(ctx, cl).Drain())
}
