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

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrIllSortedTerm describes a literal shared with a free polymorphic
	// variable in a position that requires a sort. Nothing in this module
	// returns it: the preprocessor is trusted to hand over well-sorted
	// clauses, and sharing does not check sorts.
	ErrIllSortedTerm = errors.NewKind("ill-sorted term in position requiring a sort: %s")

	// ErrStaleBank describes a substitution asked to apply to a term or
	// literal referencing a bank it never recorded. Nothing in this module
	// returns it.
	ErrStaleBank = errors.NewKind("apply to stale bank %d")

	// ErrIndexInconsistency describes an invariant violation: an index
	// entry referencing a clause that is no longer in Active. Nothing in
	// this module returns it.
	ErrIndexInconsistency = errors.NewKind("index entry references clause %d not in Active")
)
