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

import "github.com/satforge/saturn/kernel"

// Hook is a membership-event callback an index or statistics collector
// subscribes with (spec §4.4 "indices are kept in sync via events
// onAddedToContainer/onRemovedFromContainer").
type Hook func(c *kernel.Clause)

// Active is the set of clauses currently available to generating and
// simplifying engines, ordered for iteration stability (insertion order)
// with event hooks for added/removed/selected transitions.
type Active struct {
	order   []kernel.ClauseID
	byID    map[kernel.ClauseID]*kernel.Clause
	onAdded   []Hook
	onRemoved []Hook
	onSelected []Hook
}

// NewActive creates an empty Active set.
func NewActive() *Active {
	return &Active{byID: make(map[kernel.ClauseID]*kernel.Clause)}
}

// OnAdded subscribes h to fire whenever a clause enters Active.
func (a *Active) OnAdded(h Hook) { a.onAdded = append(a.onAdded, h) }

// OnRemoved subscribes h to fire whenever a clause leaves Active.
func (a *Active) OnRemoved(h Hook) { a.onRemoved = append(a.onRemoved, h) }

// OnSelected subscribes h to fire whenever a clause is returned by
// popSelected without leaving Active (spec §4.5 "does not remove the
// clause from Active").
func (a *Active) OnSelected(h Hook) { a.onSelected = append(a.onSelected, h) }

// Add inserts c into Active and fires the added event. c's store field is
// set to kernel.Active.
func (a *Active) Add(c *kernel.Clause) {
	c.State = kernel.Active
	a.order = append(a.order, c.ID)
	a.byID[c.ID] = c
	for _, h := range a.onAdded {
		h(c)
	}
}

// Remove deletes c from Active and fires the removed event. A no-op if c is
// not a member.
func (a *Active) Remove(c *kernel.Clause) {
	if _, ok := a.byID[c.ID]; !ok {
		return
	}
	delete(a.byID, c.ID)
	for i, id := range a.order {
		if id == c.ID {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	c.State = kernel.Removed
	for _, h := range a.onRemoved {
		h(c)
	}
}

// Select fires the selected event for c without removing it (spec §4.5's
// popSelected contract: selecting a clause for the given-clause step is
// distinct from membership).
func (a *Active) Select(c *kernel.Clause) {
	for _, h := range a.onSelected {
		h(c)
	}
}

// Contains reports whether id is currently a member of Active.
func (a *Active) Contains(id kernel.ClauseID) bool {
	_, ok := a.byID[id]
	return ok
}

// All returns every Active clause, in insertion order.
func (a *Active) All() []*kernel.Clause {
	out := make([]*kernel.Clause, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.byID[id])
	}
	return out
}

// Len reports the number of Active clauses.
func (a *Active) Len() int { return len(a.order) }
