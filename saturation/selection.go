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
	"github.com/satforge/saturn/kernel"
	"github.com/satforge/saturn/kernel/order"
)

// applySelection reorders c's literals so whichever ones opts.Selection
// picks out come first, then records the count via c.Select — the mechanism
// spec §4.5 calls for ("Literal selection function id applied when a clause
// enters Active"). Selection only narrows which literals binary resolution
// and factoring are allowed to use (kernel.Clause.Selected); it never
// discards a literal, and an unrecognised or "off" name leaves every literal
// eligible, matching kernel.Clause.Selected's own zero-value contract.
func applySelection(ord order.Ordering, name string, c *kernel.Clause) {
	switch name {
	case "negative":
		selectByPredicate(c, func(l kernel.Literal) bool { return !l.Polarity() })
	case "negative_maximal":
		selectNegativeMaximal(ord, c)
	}
}

// selectByIndex moves every literal whose (index, value) satisfies pick to
// the front of c.Lits and marks that many selected. A clause with nothing
// matching pick is left with every literal eligible (SelectedLiterals stays
// 0) rather than an empty, useless selection.
func selectByIndex(c *kernel.Clause, pick func(i int, l kernel.Literal) bool) {
	var chosen, rest []kernel.Literal
	for i, l := range c.Lits {
		if pick(i, l) {
			chosen = append(chosen, l)
		} else {
			rest = append(rest, l)
		}
	}
	if len(chosen) == 0 {
		return
	}
	c.Lits = append(chosen, rest...)
	c.Select(len(chosen))
}

func selectByPredicate(c *kernel.Clause, pick func(l kernel.Literal) bool) {
	selectByIndex(c, func(_ int, l kernel.Literal) bool { return pick(l) })
}

// selectNegativeMaximal picks the ordering-maximal negative literal(s): the
// negative literals not strictly dominated by another negative literal in
// the same clause. Tighter than selecting every negative literal (fewer
// resolution/factoring inferences get to fire), falling back to "every
// negative literal" when there is no ordering to compare them with.
func selectNegativeMaximal(ord order.Ordering, c *kernel.Clause) {
	var negIdx []int
	for i, l := range c.Lits {
		if !l.Polarity() {
			negIdx = append(negIdx, i)
		}
	}
	if len(negIdx) == 0 {
		return
	}
	if ord == nil {
		selectByPredicate(c, func(l kernel.Literal) bool { return !l.Polarity() })
		return
	}
	maximal := make(map[int]bool, len(negIdx))
	for _, i := range negIdx {
		dominated := false
		for _, j := range negIdx {
			if i != j && ord.CompareLiterals(c.Lits[j], c.Lits[i]) == order.Greater {
				dominated = true
				break
			}
		}
		if !dominated {
			maximal[i] = true
		}
	}
	selectByIndex(c, func(i int, _ kernel.Literal) bool { return maximal[i] })
}
