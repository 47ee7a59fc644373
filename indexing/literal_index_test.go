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

package indexing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/satforge/saturn/kernel"
)

func TestLiteralIndexRoundTrip(t *testing.T) {
	store := kernel.NewStore()
	ix := NewLiteralSubstitutionTree(store)

	px := store.ShareLiteral(kernel.Pred(pP, false, kernel.Var(0)))
	ix.Insert(px, 1, nil)

	pa := store.ShareLiteral(kernel.Pred(pP, true, kernel.App(fA)))
	c := ix.GetUnifications(pa)
	r, ok := c.Next()
	require.True(t, ok)
	require.Equal(t, kernel.ClauseID(1), r.Clause)

	_, ok = c.Next()
	require.False(t, ok)

	ix.Remove(px, 1)
	c = ix.GetUnifications(pa)
	_, ok = c.Next()
	require.False(t, ok)
}

func TestLiteralIndexShapeIsolation(t *testing.T) {
	store := kernel.NewStore()
	ix := NewLiteralSubstitutionTree(store)

	p1 := store.ShareLiteral(kernel.Pred(pP, true, kernel.Var(0)))
	ix.Insert(p1, 1, nil)

	q1 := store.ShareLiteral(kernel.Pred(pP+1, true, kernel.Var(0)))
	c := ix.GetUnifications(q1)
	_, ok := c.Next()
	require.False(t, ok, "different predicate must not be a candidate")
}
