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

const (
	sortInt int32 = 90
	sortBool int32 = 91
)

func TestTypeSubstitutionTreeSortDiscrimination(t *testing.T) {
	store := kernel.NewStore()
	ix := NewTypeSubstitutionTree(store)

	x := store.Share(kernel.App(fA))
	lit := store.ShareLiteral(Pred1(fA))
	ix.Insert(x, store.Share(kernel.App(sortInt)), lit, 1, nil)

	// Same term, wrong sort: must not unify.
	c := ix.GetUnifications(x, store.Share(kernel.App(sortBool)))
	_, ok := c.Next()
	require.False(t, ok)

	// Same term, matching sort: found.
	c = ix.GetUnifications(x, store.Share(kernel.App(sortInt)))
	_, ok = c.Next()
	require.True(t, ok)
}

func TestTypeSubstitutionTreeVariableSortedSideList(t *testing.T) {
	store := kernel.NewStore()
	ix := NewTypeSubstitutionTree(store)

	poly := store.Share(kernel.App(fF, kernel.Var(0)))
	lit := store.ShareLiteral(Pred1(fA))
	ix.Insert(poly, store.Share(kernel.Var(1)), lit, 1, nil)
	require.Equal(t, 1, ix.VariableSortedCount())

	monomorphic := store.Share(kernel.App(fA))
	ix.Insert(monomorphic, store.Share(kernel.App(sortInt)), lit, 2, nil)
	require.Equal(t, 1, ix.VariableSortedCount(), "monomorphic entry must not join the polymorphic side list")
}

func TestTypeSubstitutionTreeGeneralizationAndInstance(t *testing.T) {
	store := kernel.NewStore()
	ix := NewTypeSubstitutionTree(store)

	fx := store.Share(kernel.App(fF, kernel.Var(0)))
	lit := store.ShareLiteral(Pred1(fA))
	ix.Insert(fx, store.Share(kernel.App(sortInt)), lit, 1, nil)

	fa := store.Share(kernel.App(fF, kernel.App(fA)))
	c := ix.GetGeneralizations(fa, store.Share(kernel.App(sortInt)))
	r, ok := c.Next()
	require.True(t, ok)
	require.True(t, r.Term.Equals(fx))

	ix.Insert(fa, store.Share(kernel.App(sortInt)), lit, 2, nil)
	c2 := ix.GetInstances(fx, store.Share(kernel.App(sortInt)))
	var found bool
	for {
		r, ok := c2.Next()
		if !ok {
			break
		}
		if r.Clause == 2 {
			found = true
		}
	}
	require.True(t, found, "ground entry must surface as an instance of the variable query")
}
