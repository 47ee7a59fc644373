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

package subst

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/satforge/saturn/kernel"
)

const (
	fF int32 = iota + 1
	fA
	fG
)

func TestUnifySoundness(t *testing.T) {
	store := kernel.NewStore()
	s := New(store)

	// f(x, a) ~ f(g(y), y)  =>  x := g(a), y := a
	lhs := store.Share(kernel.App(fF, kernel.Var(0), kernel.App(fA)))
	rhs := store.Share(kernel.App(fF, kernel.App(fG, kernel.Var(1)), kernel.Var(1)))

	ok := s.Unify(lhs, QueryBank, rhs, ResultBank)
	require.True(t, ok)

	require.True(t, s.Apply(lhs, QueryBank).Equals(s.Apply(rhs, ResultBank)))
}

func TestUnifyBasic(t *testing.T) {
	store := kernel.NewStore()
	s := New(store)

	lhs := store.Share(kernel.App(fF, kernel.Var(0), kernel.Var(0)))
	rhs := store.Share(kernel.App(fF, kernel.App(fA), kernel.App(fA)))

	ok := s.Unify(lhs, QueryBank, rhs, ResultBank)
	require.True(t, ok)

	applied := s.Apply(lhs, QueryBank)
	require.True(t, applied.Equals(rhs))
}

func TestUnifyOccursCheck(t *testing.T) {
	store := kernel.NewStore()
	s := New(store)

	x := store.Share(kernel.Var(0))
	fx := store.Share(kernel.App(fF, kernel.Var(0)))

	ok := s.Unify(x, QueryBank, fx, QueryBank)
	require.False(t, ok, "x must not unify with f(x) in the same bank")
}

func TestUnifyFailureLeavesNoPartialBindings(t *testing.T) {
	store := kernel.NewStore()
	s := New(store)

	// f(x, a) ~ f(g, x), both sides in one bank: x := g from the first arg,
	// then a ~ g fails.
	lhs := store.Share(kernel.App(fF, kernel.Var(0), kernel.App(fA)))
	rhs := store.Share(kernel.App(fF, kernel.App(fG), kernel.Var(0)))

	ok := s.Unify(lhs, QueryBank, rhs, QueryBank)
	require.False(t, ok)

	// x must still be unbound: applying it should just rename it apart,
	// not resolve to a or g.
	x := store.Share(kernel.Var(0))
	applied := s.Apply(x, QueryBank)
	require.True(t, applied.IsVar())
}

func TestBanksKeepVariablesApart(t *testing.T) {
	store := kernel.NewStore()
	s := New(store)

	// Same symbolic variable 0 in both banks must not be conflated.
	qx := store.Share(kernel.Var(0))
	ra := store.Share(kernel.App(fA))
	ok := s.Unify(qx, QueryBank, ra, ResultBank)
	require.True(t, ok)

	// Variable 0 in ResultBank is untouched.
	rx := store.Share(kernel.Var(0))
	applied := s.Apply(rx, ResultBank)
	require.True(t, applied.IsVar())
}

func TestMatchOneDirectional(t *testing.T) {
	store := kernel.NewStore()
	s := New(store)

	base := store.Share(kernel.App(fF, kernel.Var(0), kernel.App(fA)))
	instance := store.Share(kernel.App(fF, kernel.App(fG), kernel.App(fA)))

	ok := s.Match(base, QueryBank, instance, ResultBank)
	require.True(t, ok)

	applied := s.Apply(base, QueryBank)
	require.True(t, applied.Equals(instance))
}

func TestMatchFailsWhenInstanceSideVaries(t *testing.T) {
	store := kernel.NewStore()
	s := New(store)

	base := store.Share(kernel.App(fF, kernel.App(fA)))
	instance := store.Share(kernel.App(fF, kernel.Var(0)))

	ok := s.Match(base, QueryBank, instance, ResultBank)
	require.False(t, ok, "instance-side variables never bind in plain matching")
}

func TestScopeBacktrackUndoesBindings(t *testing.T) {
	store := kernel.NewStore()
	s := New(store)

	x := store.Share(kernel.Var(0))
	a := store.Share(kernel.App(fA))

	scope := s.OpenScope()
	ok := s.unify(x, QueryBank, a, QueryBank)
	require.True(t, ok)
	scope.Backtrack()

	applied := s.Apply(x, QueryBank)
	require.True(t, applied.IsVar(), "backtrack must undo the binding")
}

func TestMismatchHandlerIntroducesConstraint(t *testing.T) {
	store := kernel.NewStore()
	s := New(store)
	s.SetMismatchHandler(func(a kernel.Term, ba Bank, b kernel.Term, bb Bank) (Constraint, bool) {
		return Constraint{A: a, BankA: ba, B: b, BankB: bb}, true
	})

	lhs := store.Share(kernel.App(fF, kernel.App(fA)))
	rhs := store.Share(kernel.App(fG, kernel.App(fA)))

	ok := s.Unify(lhs, QueryBank, rhs, ResultBank)
	require.True(t, ok, "abstraction handler should rescue the mismatch")
	require.Len(t, s.Constraints(), 1)
}
