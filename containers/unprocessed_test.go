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

func TestUnprocessedFIFO(t *testing.T) {
	u := NewUnprocessed()
	require.True(t, u.Empty())

	a := &kernel.Clause{ID: 1}
	b := &kernel.Clause{ID: 2}
	u.Push(a)
	u.Push(b)
	require.Equal(t, kernel.Unprocessed, a.State)
	require.Equal(t, 2, u.Len())

	got, ok := u.Pop()
	require.True(t, ok)
	require.Equal(t, kernel.ClauseID(1), got.ID)

	got, ok = u.Pop()
	require.True(t, ok)
	require.Equal(t, kernel.ClauseID(2), got.ID)

	_, ok = u.Pop()
	require.False(t, ok)
	require.True(t, u.Empty())
}
