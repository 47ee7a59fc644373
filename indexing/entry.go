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

// Package indexing implements the substitution-tree, code-tree and
// type-substitution-tree retrieval structures of spec §4.4, plus the
// refcounted index manager that owns them.
//
// Every query returns a lazy, pull-based Cursor. Each Cursor allocates a
// fresh substitution per yielded item rather than sharing one mutable
// substitution across the whole walk — the simpler of the two alternatives
// spec §9's design notes call out ("allocate a fresh substitution per
// yielded item (simpler, higher cost); pick per rule based on fan-out
// measurements"), chosen here because the rule set this core serves
// (resolution, superposition, demodulation) materialises every yielded
// substitution immediately via kernel.NewClause anyway, so the "live until
// next() " discipline would buy nothing but complexity.
package indexing

import "github.com/satforge/saturn/kernel"

// TermEntry is what a term-keyed index (subterm positions, demodulation
// LHSs) stores per insertion: the indexed term, the literal and clause it
// came from, and an opaque extra payload a rule may attach (e.g. the
// position within the literal).
type TermEntry struct {
	Term    kernel.Term
	Literal kernel.Literal
	Clause  kernel.ClauseID
	Extra   interface{}
}

// LiteralEntry is the literal-keyed analogue, used by the resolution and
// factoring indices.
type LiteralEntry struct {
	Literal kernel.Literal
	Clause  kernel.ClauseID
	Extra   interface{}
}

// Key pairs a matched clause id with the opaque extra payload stored for
// it. It carries neither the matched term or literal nor a substitution.
type Key struct {
	Clause kernel.ClauseID
	Extra  interface{}
}
