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

func TestCodeTreeFirstMatch(t *testing.T) {
	store := kernel.NewStore()
	ct := NewCodeTree(store)

	lhs := store.Share(kernel.App(fF, kernel.Var(0), kernel.Var(0))) // f(x,x)
	lit := store.ShareLiteral(Pred1(fA))
	ct.Insert(lhs, lit, 1, nil)

	subj := store.Share(kernel.App(fF, kernel.App(fA), kernel.App(fA)))
	m, ok := ct.FirstMatch(subj)
	require.True(t, ok)
	require.True(t, m.Term.Equals(lhs))

	mismatch := store.Share(kernel.App(fF, kernel.App(fA), kernel.App(fB)))
	_, ok = ct.FirstMatch(mismatch)
	require.False(t, ok, "repeated variable must force equal subterms")
}

func TestCodeTreeRemoveStopsMatching(t *testing.T) {
	store := kernel.NewStore()
	ct := NewCodeTree(store)

	lhs := store.Share(kernel.App(fF, kernel.Var(0)))
	lit := store.ShareLiteral(Pred1(fA))
	ct.Insert(lhs, lit, 1, nil)

	subj := store.Share(kernel.App(fF, kernel.App(fA)))
	_, ok := ct.FirstMatch(subj)
	require.True(t, ok)

	ct.Remove(lhs, lit, 1)
	_, ok = ct.FirstMatch(subj)
	require.False(t, ok)
}

func TestCodeTreeAllMatchesShapeFilter(t *testing.T) {
	store := kernel.NewStore()
	ct := NewCodeTree(store)

	lhs := store.Share(kernel.App(fF, kernel.Var(0)))
	lit := store.ShareLiteral(Pred1(fA))
	ct.Insert(lhs, lit, 1, nil)

	other := store.Share(kernel.App(fB))
	require.Empty(t, ct.AllMatches(other), "non-matching top shape yields no matches")

	subj := store.Share(kernel.App(fF, kernel.App(fB)))
	matches := ct.AllMatches(subj)
	require.Len(t, matches, 1)
	require.True(t, matches[0].Bindings[0].Equals(store.Share(kernel.App(fB))))
}
