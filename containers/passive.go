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
	"container/heap"

	"github.com/satforge/saturn/kernel"
)

// weightItem orders the weight sub-queue by (Weight, Age) so ties break
// oldest-first, keeping the sub-queue itself fair.
type weightItem struct {
	clause *kernel.Clause
	index  int
}

type weightHeap []*weightItem

func (h weightHeap) Len() int { return len(h) }
func (h weightHeap) Less(i, j int) bool {
	if h[i].clause.Weight != h[j].clause.Weight {
		return h[i].clause.Weight < h[j].clause.Weight
	}
	return h[i].clause.Age < h[j].clause.Age
}
func (h weightHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index, h[j].index = i, j
}
func (h *weightHeap) Push(x interface{}) {
	item := x.(*weightItem)
	item.index = len(*h)
	*h = append(*h, item)
}
func (h *weightHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// InductionScorer computes the "useful inductive content" heuristic score
// for a clause (spec §4.5): induction clauses with induction literals accrue
// a bonus inverse-proportional to repeated induction-term occurrences,
// while non-induction clauses/literals are penalised by fixed coefficients.
// Lower scores are popped first, mirroring the weight queue's convention.
type InductionScorer func(c *kernel.Clause) float64

type inductionItem struct {
	clause *kernel.Clause
	score  float64
	index  int
}

type inductionHeap []*inductionItem

func (h inductionHeap) Len() int { return len(h) }
func (h inductionHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}
	return h[i].clause.Age < h[j].clause.Age
}
func (h inductionHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index, h[j].index = i, j
}
func (h *inductionHeap) Push(x interface{}) {
	item := x.(*inductionItem)
	item.index = len(*h)
	*h = append(*h, item)
}
func (h *inductionHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Passive is the composite priority queue of spec §4.5: at minimum an age
// sub-queue (FIFO) and a weight sub-queue (min-heap), returned alternating
// per a configurable ratio, plus an optional induction-value sub-queue.
type Passive struct {
	ageQueue []*kernel.Clause
	weights  weightHeap
	induction inductionHeap
	scorer    InductionScorer

	ratioAge, ratioWeight int
	tickAge, tickWeight   int
	everyN                int // one induction pick every everyN picks, when scorer != nil

	picks int
}

// NewPassive creates a Passive queue with the given age:weight rotation
// ratio (spec option `age_weight_ratio`). A ratio of (1, 1) alternates
// strictly.
func NewPassive(ratioAge, ratioWeight int) *Passive {
	if ratioAge <= 0 {
		ratioAge = 1
	}
	if ratioWeight <= 0 {
		ratioWeight = 1
	}
	p := &Passive{ratioAge: ratioAge, ratioWeight: ratioWeight}
	heap.Init(&p.weights)
	return p
}

// EnableInduction turns on the optional induction-value sub-queue, scored
// by scorer, picked once every everyN pops from the composite rotation.
func (p *Passive) EnableInduction(scorer InductionScorer, everyN int) {
	p.scorer = scorer
	if everyN <= 0 {
		everyN = 1
	}
	p.everyN = everyN
	heap.Init(&p.induction)
}

// Push admits c to every configured sub-queue and tags its store state.
func (p *Passive) Push(c *kernel.Clause) {
	c.State = kernel.Passive
	p.ageQueue = append(p.ageQueue, c)
	heap.Push(&p.weights, &weightItem{clause: c})
	if p.scorer != nil {
		heap.Push(&p.induction, &inductionItem{clause: c, score: p.scorer(c)})
	}
}

// Empty reports whether the composite queue holds no clauses. PopSelected
// removes the clause it returns from every sub-queue, so the age sub-queue
// alone tells whether any clause is still waiting.
func (p *Passive) Empty() bool { return len(p.ageQueue) == 0 }

// Len reports the number of clauses still resident in the age sub-queue,
// which every Push adds to and every PopSelected drains from exactly once.
func (p *Passive) Len() int { return len(p.ageQueue) }

// PopSelected returns the next clause per the fairness rotation (spec §4.5
// "Contract of popSelected"). Every clause is removed from all sub-queues
// it still occupies so a single clause is never returned twice.
func (p *Passive) PopSelected() (*kernel.Clause, bool) {
	if p.Empty() {
		return nil, false
	}
	p.picks++
	if p.scorer != nil && p.everyN > 0 && p.picks%p.everyN == 0 && p.induction.Len() > 0 {
		item := heap.Pop(&p.induction).(*inductionItem)
		p.discard(item.clause.ID)
		return item.clause, true
	}
	useAge := p.tickAge < p.ratioAge
	if useAge && len(p.ageQueue) > 0 {
		p.tickAge++
		if p.tickAge >= p.ratioAge && p.tickWeight >= p.ratioWeight {
			p.tickAge, p.tickWeight = 0, 0
		}
		c := p.ageQueue[0]
		p.ageQueue = p.ageQueue[1:]
		p.discardFromWeight(c.ID)
		p.discardFromInduction(c.ID)
		return c, true
	}
	if p.weights.Len() > 0 {
		p.tickWeight++
		if p.tickAge >= p.ratioAge && p.tickWeight >= p.ratioWeight {
			p.tickAge, p.tickWeight = 0, 0
		}
		item := heap.Pop(&p.weights).(*weightItem)
		p.discardFromAge(item.clause.ID)
		p.discardFromInduction(item.clause.ID)
		return item.clause, true
	}
	// Age-FIFO fallback for a non-empty age queue with an empty weight heap.
	// Every Push and pop above keeps the age and weight sub-queues holding
	// the same clauses, so that state does not arise in practice.
	c := p.ageQueue[0]
	p.ageQueue = p.ageQueue[1:]
	p.discardFromWeight(c.ID)
	p.discardFromInduction(c.ID)
	return c, true
}

func (p *Passive) discard(id kernel.ClauseID) {
	p.discardFromAge(id)
	p.discardFromWeight(id)
}

func (p *Passive) discardFromAge(id kernel.ClauseID) {
	for i, c := range p.ageQueue {
		if c.ID == id {
			p.ageQueue = append(p.ageQueue[:i], p.ageQueue[i+1:]...)
			return
		}
	}
}

func (p *Passive) discardFromWeight(id kernel.ClauseID) {
	for i, item := range p.weights {
		if item.clause.ID == id {
			heap.Remove(&p.weights, i)
			return
		}
	}
}

func (p *Passive) discardFromInduction(id kernel.ClauseID) {
	for i, item := range p.induction {
		if item.clause.ID == id {
			heap.Remove(&p.induction, i)
			return
		}
	}
}
