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

const (
	fG int32 = iota + 100
	fH
)

func TestSuperpositionForwardRewrite(t *testing.T) {
	store := kernel.NewStore()
	ctx := newTestContext(store)
	ctx.Order = order.NewLPO(order.Precedence{fA: 1, fB: 2, fG: 3}, nil)

	// Active clause: { p(g(a)) }, with g(a) indexed as a subterm.
	ga := store.ShareLiteral(kernel.Pred(pP, true, kernel.App(fG, kernel.App(fA))))
	activeClause := ctx.Registry.Alloc([]kernel.Literal{ga}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	subtermIdx := indexing.NewTermSubstitutionTree(store)
	subtermIdx.Insert(ga.Arg(0), ga, activeClause.ID, subtermPosition{ArgIndex: 0, Path: nil, Subterm: ga.Arg(0)})

	// Premise: { a = b }, a positive, ordering-oriented equation a > b.
	aEqB := store.ShareLiteral(kernel.Eq(kernel.App(fA), kernel.App(fB), true))
	premise := ctx.Registry.Alloc([]kernel.Literal{aEqB}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	rule := &Superposition{SubtermIndex: subtermIdx, EqIndex: indexing.NewTermSubstitutionTree(store)}
	results := rule.GenerateClauses(ctx, premise).Drain()
	require.Len(t, results, 1)
	gb := store.ShareLiteral(kernel.Pred(pP, true, kernel.App(fG, kernel.App(fB))))
	require.True(t, results[0].Lits[0].Equals(gb))
}

func TestSuperpositionSkipsUnorientedEquation(t *testing.T) {
	store := kernel.NewStore()
	ctx := newTestContext(store)
	ctx.Order = order.NewLPO(order.Precedence{}, nil) // no precedence -> incomparable

	xEqY := store.ShareLiteral(kernel.Eq(kernel.Var(0), kernel.Var(1), true))
	premise := ctx.Registry.Alloc([]kernel.Literal{xEqY}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	rule := &Superposition{SubtermIndex: indexing.NewTermSubstitutionTree(store), EqIndex: indexing.NewTermSubstitutionTree(store)}
	require.Empty(t, rule.GenerateClauses(ctx, premise).Drain())
}
