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

package kernel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryRefcounting(t *testing.T) {
	s := NewStore()
	p := int32(1)
	lit := s.ShareLiteral(Pred(p, true, App(fA)))

	r := NewRegistry()
	parent := r.Alloc([]Literal{lit}, Inference{Rule: InputSentinel}, 0)
	child := r.Alloc(nil, Inference{Rule: "resolution", Parents: []ClauseID{parent.ID}}, 1)

	_, ok := r.Get(parent.ID)
	require.True(t, ok)

	// Child holds a reference on parent; releasing the direct handle on
	// parent must not destroy it while child is alive.
	r.Release(parent.ID)
	_, ok = r.Get(parent.ID)
	require.True(t, ok, "parent kept alive by child's provenance reference")

	r.Release(child.ID)
	_, ok = r.Get(child.ID)
	require.False(t, ok)
	_, ok = r.Get(parent.ID)
	require.False(t, ok, "parent released once its last referencing child is destroyed")
}

func TestClauseSelection(t *testing.T) {
	s := NewStore()
	l1 := s.ShareLiteral(Pred(1, true, App(fA)))
	l2 := s.ShareLiteral(Pred(2, true, App(fB)))
	c := NewClause(1, []Literal{l1, l2}, Inference{Rule: InputSentinel}, 0)

	require.True(t, c.Selected(0))
	require.True(t, c.Selected(1))

	c.Select(1)
	require.True(t, c.Selected(0))
	require.False(t, c.Selected(1))
}

func TestEmptyClause(t *testing.T) {
	c := NewClause(1, nil, Inference{Rule: "resolution", Parents: []ClauseID{2, 3}}, 0)
	require.True(t, c.IsEmpty())
	require.False(t, c.Inf.IsInput())
}
