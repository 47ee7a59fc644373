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

package saturation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/satforge/saturn/kernel"
	"github.com/satforge/saturn/kernel/order"
)

func TestApplySelectionOffLeavesEveryLiteralEligible(t *testing.T) {
	store := kernel.NewStore()
	registry := kernel.NewRegistry()

	px := store.ShareLiteral(kernel.Pred(pP, true, kernel.Var(0)))
	notQx := store.ShareLiteral(kernel.Pred(pQ, false, kernel.Var(0)))
	c := registry.Alloc([]kernel.Literal{px, notQx}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	applySelection(nil, "off", c)
	require.True(t, c.Selected(0))
	require.True(t, c.Selected(1))
}

func TestApplySelectionNegativeMovesNegativeLiteralsFirst(t *testing.T) {
	store := kernel.NewStore()
	registry := kernel.NewRegistry()

	pa := store.ShareLiteral(kernel.Pred(pP, true, kernel.App(fA)))
	notQb := store.ShareLiteral(kernel.Pred(pQ, false, kernel.App(fB)))
	c := registry.Alloc([]kernel.Literal{pa, notQb}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	applySelection(nil, "negative", c)
	require.True(t, c.Lits[0].Equals(notQb))
	require.True(t, c.Selected(0))
	require.False(t, c.Selected(1))
}

func TestApplySelectionNegativeLeavesAllEligibleWhenNoNegativeLiteral(t *testing.T) {
	store := kernel.NewStore()
	registry := kernel.NewRegistry()

	pa := store.ShareLiteral(kernel.Pred(pP, true, kernel.App(fA)))
	qb := store.ShareLiteral(kernel.Pred(pQ, true, kernel.App(fB)))
	c := registry.Alloc([]kernel.Literal{pa, qb}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	applySelection(nil, "negative", c)
	require.True(t, c.Selected(0))
	require.True(t, c.Selected(1))
}

func TestApplySelectionNegativeMaximalPicksOnlyTheOrderingMaximalNegativeLiteral(t *testing.T) {
	store := kernel.NewStore()
	registry := kernel.NewRegistry()
	ord := order.NewKBO(order.Precedence{fA: 1, fB: 2}, nil, 1, nil)

	notPa := store.ShareLiteral(kernel.Pred(pP, false, kernel.App(fA)))
	notPb := store.ShareLiteral(kernel.Pred(pP, false, kernel.App(fB)))
	c := registry.Alloc([]kernel.Literal{notPa, notPb}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	applySelection(ord, "negative_maximal", c)
	require.True(t, c.Lits[0].Equals(notPb))
	require.True(t, c.Selected(0))
	require.False(t, c.Selected(1))
}

func TestApplySelectionNegativeMaximalFallsBackToEveryNegativeLiteralWithoutOrdering(t *testing.T) {
	store := kernel.NewStore()
	registry := kernel.NewRegistry()

	notPa := store.ShareLiteral(kernel.Pred(pP, false, kernel.App(fA)))
	notPb := store.ShareLiteral(kernel.Pred(pP, false, kernel.App(fB)))
	c := registry.Alloc([]kernel.Literal{notPa, notPb}, kernel.Inference{Rule: kernel.InputSentinel}, 0)

	applySelection(nil, "negative_maximal", c)
	require.True(t, c.Selected(0))
	require.True(t, c.Selected(1))
}
