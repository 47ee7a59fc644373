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

// Package order implements the simplification (reduction) ordering used by
// demodulation and superposition: KBO and LPO behind a common interface
// (spec §4.3). Both are stable under substitution and total on ground
// terms.
package order

import "github.com/satforge/saturn/kernel"

// Result is the outcome of comparing two terms or literals. LessEq/GreaterEq
// cover the "known modulo an unoriented variable" case the spec calls out.
type Result uint8

const (
	Incomparable Result = iota
	Less
	Equal
	Greater
	LessEq
	GreaterEq
)

func (r Result) String() string {
	switch r {
	case Less:
		return "LESS"
	case Equal:
		return "EQUAL"
	case Greater:
		return "GREATER"
	case LessEq:
		return "LESS_EQ"
	case GreaterEq:
		return "GREATER_EQ"
	default:
		return "INCOMPARABLE"
	}
}

// Ordering is the contract every implementation (KBO, LPO) satisfies.
type Ordering interface {
	// Compare returns the relation of a to b. On ground terms the result
	// is never Incomparable.
	Compare(a, b kernel.Term) Result
	// CompareLiterals extends Compare to literals, folding in predicate
	// level; polarity is not considered.
	CompareLiterals(a, b kernel.Literal) Result
}

// Precedence is a total order on functor/predicate symbols: higher value
// outranks lower.
type Precedence map[int32]int

func (p Precedence) of(sym int32) int { return p[sym] }

// invert swaps Less/Greater and LessEq/GreaterEq, leaving Equal/Incomparable
// fixed. Used to derive Compare(b,a) from Compare(a,b) without recursing.
func invert(r Result) Result {
	switch r {
	case Less:
		return Greater
	case Greater:
		return Less
	case LessEq:
		return GreaterEq
	case GreaterEq:
		return LessEq
	default:
		return r
	}
}

// varMultisetGE reports whether, for every variable occurring in b, a
// contains at least as many occurrences of it (the KBO/LPO variable
// condition: a can only dominate b if it mentions every variable of b at
// least as often).
func varMultisetGE(a, b kernel.Term) bool {
	countB := make(map[kernel.VarID]int)
	countVars(b, countB)
	if len(countB) == 0 {
		return true
	}
	countA := make(map[kernel.VarID]int)
	countVars(a, countA)
	for v, n := range countB {
		if countA[v] < n {
			return false
		}
	}
	return true
}

func countVars(t kernel.Term, into map[kernel.VarID]int) {
	if t.IsVar() {
		into[t.VarID()]++
		return
	}
	for i := 0; i < t.Arity(); i++ {
		countVars(t.Arg(i), into)
	}
}

func occursAsSubterm(v kernel.Term, t kernel.Term) bool {
	if t.Equals(v) {
		return true
	}
	if t.IsVar() {
		return false
	}
	for i := 0; i < t.Arity(); i++ {
		if occursAsSubterm(v, t.Arg(i)) {
			return true
		}
	}
	return false
}
