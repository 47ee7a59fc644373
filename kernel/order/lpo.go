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

package order

import "github.com/satforge/saturn/kernel"

// LPO is a lexicographic path ordering parameterised by a functor/predicate
// precedence and, like KBO, a per-predicate level for literal comparison
// (spec §4.3 "LPO is the alternative; both obey the same interface").
type LPO struct {
	Precedence Precedence
	Level      map[int32]int
}

// NewLPO builds an LPO over the given precedence.
func NewLPO(precedence Precedence, level map[int32]int) *LPO {
	return &LPO{Precedence: precedence, Level: level}
}

// Compare implements the textbook recursive LPO definition: subterm
// dominance first, then head-symbol precedence, with a lexicographic
// argument comparison when precedences tie.
func (l *LPO) Compare(a, b kernel.Term) Result {
	if a.Equals(b) {
		return Equal
	}
	if a.IsVar() {
		if occursAsSubterm(a, b) {
			return Less
		}
		return Incomparable
	}
	if b.IsVar() {
		if occursAsSubterm(b, a) {
			return Greater
		}
		return Incomparable
	}

	// Subterm property: if some argument of a is >= b, a > b.
	for i := 0; i < a.Arity(); i++ {
		r := l.Compare(a.Arg(i), b)
		if r == Greater || r == Equal {
			return Greater
		}
	}
	// Symmetric check for b's arguments dominating a.
	for j := 0; j < b.Arity(); j++ {
		r := l.Compare(a, b.Arg(j))
		if r == Less || r == Equal {
			return Less
		}
	}

	pa, pb := l.Precedence.of(a.Functor()), l.Precedence.of(b.Functor())
	switch {
	case pa > pb:
		if l.allLess(a, b) {
			return Greater
		}
		return Incomparable
	case pa < pb:
		if l.allGreater(a, b) {
			return Less
		}
		return Incomparable
	default:
		if a.Functor() != b.Functor() || a.Arity() != b.Arity() {
			return Incomparable
		}
		return l.lexArgs(a, b)
	}
}

// allLess reports that a dominates every argument of b (a > b_j for all j),
// required for a to outrank b when a's head symbol outranks b's.
func (l *LPO) allLess(a, b kernel.Term) bool {
	for j := 0; j < b.Arity(); j++ {
		if l.Compare(a, b.Arg(j)) != Greater {
			return false
		}
	}
	return true
}

func (l *LPO) allGreater(a, b kernel.Term) bool {
	for i := 0; i < a.Arity(); i++ {
		if l.Compare(a.Arg(i), b) != Less {
			return false
		}
	}
	return true
}

// lexArgs compares same-functor terms left to right, and additionally
// requires a to dominate every later argument of b once the first
// difference is found (and vice versa) so the result respects the subterm
// property throughout.
func (l *LPO) lexArgs(a, b kernel.Term) Result {
	for i := 0; i < a.Arity(); i++ {
		r := l.Compare(a.Arg(i), b.Arg(i))
		if r == Equal {
			continue
		}
		if r == Greater && l.allLess(a, b) {
			return Greater
		}
		if r == Less && l.allGreater(a, b) {
			return Less
		}
		return Incomparable
	}
	return Equal
}

// CompareLiterals mirrors KBO.CompareLiterals but uses LPO's Compare.
func (l *LPO) CompareLiterals(a, b kernel.Literal) Result {
	la, lb := l.levelOf(a.Predicate()), l.levelOf(b.Predicate())
	if la != lb {
		if la > lb {
			return Greater
		}
		return Less
	}
	if a.IsEquality() && b.IsEquality() {
		return l.compareEqualities(a, b)
	}
	if a.Arity() != b.Arity() {
		return Incomparable
	}
	res := Equal
	for i := 0; i < a.Arity(); i++ {
		r := l.Compare(a.Arg(i), b.Arg(i))
		if r == Equal {
			continue
		}
		if res != Equal && res != r {
			return Incomparable
		}
		res = r
	}
	return res
}

func (l *LPO) levelOf(predicate int32) int {
	if l.Level == nil {
		return 0
	}
	return l.Level[predicate]
}

func (l *LPO) compareEqualities(a, b kernel.Literal) Result {
	aMax, aMin := l.orientedPair(a)
	bMax, bMin := l.orientedPair(b)
	r := l.Compare(aMax, bMax)
	if r != Equal {
		return r
	}
	return l.Compare(aMin, bMin)
}

func (l *LPO) orientedPair(lit kernel.Literal) (max, min kernel.Term) {
	s, t := lit.Arg(0), lit.Arg(1)
	switch l.Compare(s, t) {
	case Greater, GreaterEq:
		return s, t
	case Less, LessEq:
		return t, s
	default:
		return s, t
	}
}
