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

// Package containers implements the Unprocessed/Passive/Active clause
// lifecycle containers of spec §4.5: the FIFO buffer awaiting immediate
// simplification, the composite priority queue that feeds the given-clause
// loop, and the Active set with its membership event hooks.
package containers

import "github.com/satforge/saturn/kernel"

// Unprocessed is the FIFO buffer of newly derived clauses awaiting
// duplicate/trivial-equality removal, tautology deletion and other
// immediate simplification before a clause is admitted to Passive.
type Unprocessed struct {
	queue []*kernel.Clause
}

// NewUnprocessed creates an empty Unprocessed buffer.
func NewUnprocessed() *Unprocessed { return &Unprocessed{} }

// Push enqueues c, tagging its store state.
func (u *Unprocessed) Push(c *kernel.Clause) {
	c.State = kernel.Unprocessed
	u.queue = append(u.queue, c)
}

// Pop removes and returns the oldest clause, false if empty.
func (u *Unprocessed) Pop() (*kernel.Clause, bool) {
	if len(u.queue) == 0 {
		return nil, false
	}
	c := u.queue[0]
	u.queue = u.queue[1:]
	return c, true
}

// Empty reports whether the buffer currently holds no clauses.
func (u *Unprocessed) Empty() bool { return len(u.queue) == 0 }

// Len reports the number of clauses currently queued.
func (u *Unprocessed) Len() int { return len(u.queue) }
