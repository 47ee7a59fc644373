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

// WeightFunc maps a functor symbol to a positive integer weight. A nil
// WeightFunc (or one returning 0) falls back to DefaultWeight.
type WeightFunc func(functor int32) uint32

// DefaultWeight is used for any functor a WeightFunc does not cover.
const DefaultWeight uint32 = 1

// KBO is a Knuth-Bendix ordering parameterised by a functor/predicate
// precedence, a per-functor weight function and a per-predicate level used
// when comparing literals (spec §4.3).
type KBO struct {
	Precedence Precedence
	Weight     WeightFunc
	// VarWeight is the weight assigned to every variable occurrence; spec
	// reserves a slot for this, conventionally 1.
	VarWeight uint32
	// Level assigns each predicate symbol a comparison level; literals over
	// a higher-level predicate outrank ones over a lower-level predicate
	// regardless of their arguments.
	Level map[int32]int
}

// NewKBO builds a KBO with the given precedence and per-functor weights; a
// variable weight of 1 is used if varWeight is 0.
func NewKBO(precedence Precedence, weight WeightFunc, varWeight uint32, level map[int32]int) *KBO {
	if varWeight == 0 {
		varWeight = 1
	}
	return &KBO{Precedence: precedence, Weight: weight, VarWeight: varWeight, Level: level}
}

func (k *KBO) weightOf(t kernel.Term) uint64 {
	if t.IsVar() {
		return uint64(k.VarWeight)
	}
	w := uint64(k.functorWeight(t.Functor()))
	for i := 0; i < t.Arity(); i++ {
		w += k.weightOf(t.Arg(i))
	}
	return w
}

func (k *KBO) functorWeight(functor int32) uint32 {
	if k.Weight == nil {
		return DefaultWeight
	}
	if w := k.Weight(functor); w > 0 {
		return w
	}
	return DefaultWeight
}

// Compare implements the standard KBO comparison: weight first, broken by
// the variable-occurrence condition and then lexicographically by
// precedence-ordered head symbols (spec §4.3).
func (k *KBO) Compare(a, b kernel.Term) Result {
	if a.Equals(b) {
		return Equal
	}

	aGeB := varMultisetGE(a, b)
	bGeA := varMultisetGE(b, a)
	wa, wb := k.weightOf(a), k.weightOf(b)

	switch {
	case wa > wb:
		if aGeB {
			return Greater
		}
		return Incomparable
	case wa < wb:
		if bGeA {
			return Less
		}
		return Incomparable
	default: // wa == wb
		if !aGeB || !bGeA {
			return Incomparable
		}
		return k.tieBreak(a, b)
	}
}

func (k *KBO) tieBreak(a, b kernel.Term) Result {
	if a.IsVar() || b.IsVar() {
		// Equal weight, both variable multisets dominate each other, and
		// at least one side is a bare variable: only possible if a==b,
		// already handled above.
		return Incomparable
	}
	if a.Functor() != b.Functor() {
		pa, pb := k.Precedence.of(a.Functor()), k.Precedence.of(b.Functor())
		switch {
		case pa > pb:
			return Greater
		case pa < pb:
			return Less
		default:
			return Incomparable
		}
	}
	if a.Arity() != b.Arity() {
		return Incomparable
	}
	for i := 0; i < a.Arity(); i++ {
		r := k.Compare(a.Arg(i), b.Arg(i))
		switch r {
		case Equal:
			continue
		case Greater, Less:
			return r
		default:
			return Incomparable
		}
	}
	return Equal
}

// CompareLiterals orders by predicate level first, then (for equalities)
// treats the two sides as an unordered pair, orienting each equality afresh
// on every call (no orientation is cached). Otherwise it compares arguments
// pairwise: the result is the direction every differing pair agrees on, or
// Incomparable if two pairs disagree.
func (k *KBO) CompareLiterals(a, b kernel.Literal) Result {
	la, lb := k.levelOf(a.Predicate()), k.levelOf(b.Predicate())
	if la != lb {
		if la > lb {
			return Greater
		}
		return Less
	}
	if a.IsEquality() && b.IsEquality() {
		return k.compareEqualities(a, b)
	}
	if a.Arity() != b.Arity() {
		return Incomparable
	}
	res := Equal
	for i := 0; i < a.Arity(); i++ {
		r := k.Compare(a.Arg(i), b.Arg(i))
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

func (k *KBO) levelOf(predicate int32) int {
	if k.Level == nil {
		return 0
	}
	return k.Level[predicate]
}

// compareEqualities orders by the weight of the (ordering-maximal, second)
// pair of sides, ignoring which physical argument position they occupy —
// equality literals are commutative (spec §3.1 "commutativity bit").
func (k *KBO) compareEqualities(a, b kernel.Literal) Result {
	aMax, aMin := k.orientedPair(a)
	bMax, bMin := k.orientedPair(b)
	rMax := k.Compare(aMax, bMax)
	if rMax != Equal {
		return rMax
	}
	return k.Compare(aMin, bMin)
}

func (k *KBO) orientedPair(l kernel.Literal) (max, min kernel.Term) {
	s, t := l.Arg(0), l.Arg(1)
	switch k.Compare(s, t) {
	case Greater, GreaterEq:
		return s, t
	case Less, LessEq:
		return t, s
	default:
		return s, t
	}
}
