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

package containers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/satforge/saturn/kernel"
)

func TestActiveAddRemoveEvents(t *testing.T) {
	a := NewActive()
	var added, removed, selected []kernel.ClauseID
	a.OnAdded(func(c *kernel.Clause) { added = append(added, c.ID) })
	a.OnRemoved(func(c *kernel.Clause) { removed = append(removed, c.ID) })
	a.OnSelected(func(c *kernel.Clause) { selected = append(selected, c.ID) })

	c1 := &kernel.Clause{ID: 1}
	c2 := &kernel.Clause{ID: 2}
	a.Add(c1)
	a.Add(c2)
	require.Equal(t, kernel.Active, c1.State)
	require.Equal(t, []kernel.ClauseID{1, 2}, added)
	require.Equal(t, 2, a.Len())
	require.True(t, a.Contains(1))

	a.Select(c1)
	require.Equal(t, []kernel.ClauseID{1}, selected)
	require.True(t, a.Contains(1), "select must not remove membership")

	a.Remove(c1)
	require.Equal(t, kernel.Removed, c1.State)
	require.Equal(t, []kernel.ClauseID{1}, removed)
	require.False(t, a.Contains(1))
	require.Equal(t, 1, a.Len())

	all := a.All()
	require.Len(t, all, 1)
	require.Equal(t, kernel.ClauseID(2), all[0].ID)
}

func TestActiveRemoveNonMemberIsNoop(t *testing.T) {
	a := NewActive()
	var removed int
	a.OnRemoved(func(c *kernel.Clause) { removed++ })

	a.Remove(&kernel.Clause{ID: 99})
	require.Zero(t, removed)
}
