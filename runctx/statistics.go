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

package runctx

import "sync/atomic"

// Statistics are the run-level counters spec §6 exposes alongside the
// refutation/satisfiable result: how many clauses were generated, retained,
// simplified away, and how many cooperative limit checks ran.
type Statistics struct {
	ClausesGenerated  uint64
	ClausesRetained   uint64
	ClausesSimplified uint64
	ClausesDeleted    uint64
	LimitChecks       uint64
	GivenClauseLoops  uint64
}

// NewStatistics creates a zeroed Statistics.
func NewStatistics() *Statistics { return &Statistics{} }

// IncGenerated atomically bumps the generated-clause count by n.
func (s *Statistics) IncGenerated(n uint64) { atomic.AddUint64(&s.ClausesGenerated, n) }

// IncRetained atomically bumps the retained-clause count.
func (s *Statistics) IncRetained() { atomic.AddUint64(&s.ClausesRetained, 1) }

// IncSimplified atomically bumps the simplified-clause count.
func (s *Statistics) IncSimplified() { atomic.AddUint64(&s.ClausesSimplified, 1) }

// IncDeleted atomically bumps the deleted-clause count.
func (s *Statistics) IncDeleted() { atomic.AddUint64(&s.ClausesDeleted, 1) }

// IncLimitChecks atomically bumps the cooperative-checkpoint count.
func (s *Statistics) IncLimitChecks() { atomic.AddUint64(&s.LimitChecks, 1) }

// IncGivenClauseLoop atomically bumps the given-clause iteration count.
func (s *Statistics) IncGivenClauseLoop() { atomic.AddUint64(&s.GivenClauseLoops, 1) }

// Snapshot returns a value copy safe to hand to a caller without racing
// further counter updates. Each field is loaded atomically on its own, so
// the copy as a whole is a best-effort snapshot, not a consistent one.
func (s *Statistics) Snapshot() Statistics {
	return Statistics{
		ClausesGenerated:  atomic.LoadUint64(&s.ClausesGenerated),
		ClausesRetained:   atomic.LoadUint64(&s.ClausesRetained),
		ClausesSimplified: atomic.LoadUint64(&s.ClausesSimplified),
		ClausesDeleted:    atomic.LoadUint64(&s.ClausesDeleted),
		LimitChecks:       atomic.LoadUint64(&s.LimitChecks),
		GivenClauseLoops:  atomic.LoadUint64(&s.GivenClauseLoops),
	}
}
