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

func TestEqualityResolutionRemovesUnifiableInequality(t *testing.T) {
	store := kernel.NewStore()
	ctx := newTestContext(store)

	// { x != a, p(x) } resolves its equality literal (x unifies with a),
	// leaving { p(a) }.
	xNeqA := store.ShareLiteral(kernel.Eq(kernel.Var(0), kernel.App(fA), false))
	px := store.ShareLiteral(kernel.Pred(pP, true, kernel.Var(0)))
	cl := ctx.Registry.Alloc([]kernel.Literal{xNeqA, px}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	rule := &EqualityResolution{}
	results := rule.GenerateClauses(ctx, cl).Drain()
	require.Len(t, results, 1)
	pa := store.ShareLiteral(kernel.Pred(pP, true, kernel.App(fA)))
	require.Len(t, results[0].Lits, 1)
	require.True(t, results[0].Lits[0].Equals(pa))
}

func TestEqualityResolutionSkipsNonUnifiableSides(t *testing.T) {
	store := kernel.NewStore()
	ctx := newTestContext(store)

	aNeqB := store.ShareLiteral(kernel.Eq(kernel.App(fA), kernel.App(fB), false))
	cl := ctx.Registry.Alloc([]kernel.Literal{aNeqB}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	rule := &EqualityResolution{}
	require.Empty(t, rule.GenerateClauses(ctx, cl).Drain())
}

func TestEqualityFactoringProducesDisjunction(t *testing.T) {
	store := kernel.NewStore()
	ctx := newTestContext(store)

	// { a = b, a = c } with unordered default ordering (nil) factors the two
	// equalities on their common left side `a`, producing `b != c ∨ a = c`
	// (after unifying the two `a`s, which are already equal).
	aEqB := store.ShareLiteral(kernel.Eq(kernel.App(fA), kernel.App(fB), true))
	fC := fB + 1
	aEqC := store.ShareLiteral(kernel.Eq(kernel.App(fA), kernel.App(fC), true))
	cl := ctx.Registry.Alloc([]kernel.Literal{aEqB, aEqC}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	rule := &EqualityFactoring{}
	results := rule.GenerateClauses(ctx, cl).Drain()
	require.NotEmpty(t, results)
}
