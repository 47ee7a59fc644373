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

package inferences

import "github.com/satforge/saturn/kernel"

// SchemaState is a node in the induction-schema lifecycle of spec §4.6.3.
type SchemaState uint8

const (
	Unseen SchemaState = iota
	Postponed
	Active
	Exhausted
	Vacuous
)

func (s SchemaState) String() string {
	switch s {
	case Postponed:
		return "Postponed"
	case Active:
		return "Active"
	case Exhausted:
		return "Exhausted"
	case Vacuous:
		return "Vacuous"
	default:
		return "Unseen"
	}
}

// schemaKey identifies one induction schema instance: the predicate being
// inducted on and the ground term it is instantiated for.
type schemaKey struct {
	predicate int32
	term      kernel.TermID
}

// pendingSchema pairs a blocked schema's key with the premise clause its
// GenerateClauses call was postponed from, so ReactivateFor can hand the
// caller something it can re-push at Unprocessed rather than just a key.
type pendingSchema struct {
	key     schemaKey
	premise kernel.ClauseID
}

// PostponementRegistry is the auxiliary store of spec §9 ("Induction
// postponement uses reverse-lookup indices keyed on literals pending
// activation"): it tracks schema instances missing one or more constructor
// cases and reactivates them when a qualifying clause arrives, independent
// of the main term/literal indices.
type PostponementRegistry struct {
	states map[schemaKey]SchemaState
	// pending maps a missing-constructor key to the schemas blocked on it, so
	// a newly arrived clause mentioning that constructor can reactivate
	// every blocked schema in one reverse lookup.
	pending map[int32][]pendingSchema
}

// NewPostponementRegistry creates an empty registry.
func NewPostponementRegistry() *PostponementRegistry {
	return &PostponementRegistry{states: make(map[schemaKey]SchemaState), pending: make(map[int32][]pendingSchema)}
}

// State reports a schema instance's current lifecycle state (Unseen if
// never recorded).
func (r *PostponementRegistry) State(predicate int32, term kernel.Term) SchemaState {
	return r.states[schemaKey{predicate, term.ID()}]
}

// Postpone records that a schema instance is missing constructorFunctor's
// case, transitioning Unseen/Active → Postponed. premise is the clause whose
// GenerateClauses call was deferred, so a later ReactivateFor can hand it
// back to the caller.
func (r *PostponementRegistry) Postpone(predicate int32, term kernel.Term, constructorFunctor int32, premise kernel.ClauseID) {
	key := schemaKey{predicate, term.ID()}
	r.states[key] = Postponed
	r.pending[constructorFunctor] = append(r.pending[constructorFunctor], pendingSchema{key, premise})
}

// Activate transitions a schema instance to Active, e.g. once every
// constructor case is present.
func (r *PostponementRegistry) Activate(predicate int32, term kernel.Term) {
	r.states[schemaKey{predicate, term.ID()}] = Active
}

// Exhaust marks a schema instance Exhausted (results already emitted).
func (r *PostponementRegistry) Exhaust(predicate int32, term kernel.Term) {
	r.states[schemaKey{predicate, term.ID()}] = Exhausted
}

// ReactivateFor returns (and clears) the premise clause ids whose schema was
// waiting on constructorFunctor, for the caller to re-push at Unprocessed so
// StructuralInduction gets another GenerateClauses call at them — the
// reverse lookup spec §9 calls for when a new clause mentioning that
// constructor arrives.
func (r *PostponementRegistry) ReactivateFor(constructorFunctor int32) []kernel.ClauseID {
	blocked := r.pending[constructorFunctor]
	delete(r.pending, constructorFunctor)
	out := make([]kernel.ClauseID, len(blocked))
	for i, b := range blocked {
		out[i] = b.premise
	}
	return out
}

// ClauseMentionsFunctor reports whether any literal of cl has functor
// occurring somewhere in its arguments. Used both to decide whether a
// structural induction schema's constructor cases are witnessed yet, and by
// the saturation loop's reactivation hook to know when a newly active clause
// might unblock a postponed schema.
func ClauseMentionsFunctor(cl *kernel.Clause, functor int32) bool {
	for _, l := range cl.Lits {
		if l.IsEquality() {
			continue
		}
		for i := 0; i < l.Arity(); i++ {
			if termMentionsFunctor(l.Arg(i), functor) {
				return true
			}
		}
	}
	return false
}

func termMentionsFunctor(t kernel.Term, functor int32) bool {
	if t.IsVar() {
		return false
	}
	if t.Functor() == functor {
		return true
	}
	for i := 0; i < t.Arity(); i++ {
		if termMentionsFunctor(t.Arg(i), functor) {
			return true
		}
	}
	return false
}

// StructuralInduction instantiates the base/step/conclusion schema for a
// single-recursive-argument inductive type (e.g. `nat = zero | succ(nat)`),
// per spec §4.6.1: "instantiate a structural ... induction schema to
// produce the base, step, and conclusion clauses connected by a fresh
// inductively defined Skolem." This implementation covers the common
// one-base/one-step constructor shape; richer signatures (multiple base
// constructors, multiple recursive arguments) are a direct generalisation
// left for a follow-up once a concrete multi-constructor type drives it.
type StructuralInduction struct {
	Zero     int32 // nullary base constructor
	Succ     int32 // unary recursive constructor
	Registry *PostponementRegistry
	NextVar  func() kernel.VarID
	// Active lists the clauses currently held by the saturation loop's active
	// set, so GenerateClauses can tell whether a constructor case has
	// actually been witnessed yet. Nil disables the check (every call
	// proceeds straight to schema generation), which is also what every
	// caller got before this field existed.
	Active func() []*kernel.Clause
}

// missingConstructor reports whether no active clause mentions functor yet.
func (si *StructuralInduction) missingConstructor(functor int32) bool {
	if si.Active == nil {
		return false
	}
	for _, c := range si.Active() {
		if ClauseMentionsFunctor(c, functor) {
			return false
		}
	}
	return true
}

// candidateInductionTerm finds a literal whose sole or leading argument is a
// non-variable, non-constructor ground term — a Skolem constant standing for
// an arbitrary element of the inductive type — and reports it with the
// literal's index and polarity.
func candidateInductionTerm(cl *kernel.Clause, zero, succ int32) (litIdx int, lit kernel.Literal, term kernel.Term, ok bool) {
	for i, l := range cl.Lits {
		if l.IsEquality() || l.Arity() == 0 {
			continue
		}
		t := l.Arg(0)
		if t.IsVar() || !t.Ground() || t.Functor() == zero || t.Functor() == succ {
			continue
		}
		return i, l, t, true
	}
	return 0, kernel.Literal{}, kernel.Term{}, false
}

// GenerateClauses looks for a clause consisting of a single literal over a
// Skolem induction term and emits the structural schema.
func (si *StructuralInduction) GenerateClauses(ctx *Context, premise *kernel.Clause) *ClauseCursor {
	if len(premise.Lits) != 1 {
		return NewClauseCursor(nil)
	}
	_, lit, term, ok := candidateInductionTerm(premise, si.Zero, si.Succ)
	if !ok {
		return NewClauseCursor(nil)
	}
	key := schemaKey{lit.Predicate(), term.ID()}
	if si.Registry != nil {
		if st := si.Registry.states[key]; st == Exhausted || st == Vacuous {
			return NewClauseCursor(nil)
		}
	}
	if si.missingConstructor(si.Zero) {
		if si.Registry != nil {
			si.Registry.Postpone(lit.Predicate(), term, si.Zero, premise.ID)
		}
		return NewClauseCursor(nil)
	}
	if si.missingConstructor(si.Succ) {
		if si.Registry != nil {
			si.Registry.Postpone(lit.Predicate(), term, si.Succ, premise.ID)
		}
		return NewClauseCursor(nil)
	}
	if si.Registry != nil {
		si.Registry.Activate(lit.Predicate(), term)
	}

	base := ctx.Store.ShareLiteral(&kernel.LiteralBuilder{
		Predicate: lit.Predicate(), Polarity: !lit.Polarity(),
		Args: []*kernel.Builder{kernel.App(si.Zero)},
	})
	x := si.freshVar()
	stepNeg := ctx.Store.ShareLiteral(&kernel.LiteralBuilder{
		Predicate: lit.Predicate(), Polarity: lit.Polarity(),
		Args: []*kernel.Builder{kernel.Var(x)},
	})
	stepPos := ctx.Store.ShareLiteral(&kernel.LiteralBuilder{
		Predicate: lit.Predicate(), Polarity: !lit.Polarity(),
		Args: []*kernel.Builder{kernel.App(si.Succ, kernel.Var(x))},
	})

	baseClause := ctx.Registry.Alloc([]kernel.Literal{base}, kernel.Inference{Rule: "induction_base", Parents: []kernel.ClauseID{premise.ID}}, nextAge(premise))
	stepClause := ctx.Registry.Alloc([]kernel.Literal{stepNeg, stepPos}, kernel.Inference{Rule: "induction_step", Parents: []kernel.ClauseID{premise.ID}}, nextAge(premise))
	conclusion := ctx.Registry.Alloc(append([]kernel.Literal(nil), premise.Lits...), kernel.Inference{
		Rule: "induction_conclusion", Parents: []kernel.ClauseID{premise.ID},
	}, nextAge(premise))
	conclusion.Extra.Induction = &kernel.InductionInfo{Terms: []kernel.TermID{term.ID()}}

	if si.Registry != nil {
		si.Registry.Exhaust(lit.Predicate(), term)
	}
	return NewClauseCursor([]*kernel.Clause{baseClause, stepClause, conclusion})
}

func (si *StructuralInduction) freshVar() kernel.VarID {
	if si.NextVar != nil {
		return si.NextVar()
	}
	return 1
}

// IntegerInduction instantiates the upward-infinite-interval integer
// induction schema (spec §4.6.1, scenario D): given a goal literal over a
// Skolem integer term and a side clause bounding it below, produce the three
// clauses `{¬pi(b), ¬(k<b)}`, `{¬pi(b), pi(k)}`, `{¬pi(b), ¬pi(k+1)}` for a
// fresh variable k, where b is the bound term and `Succ` the `+1` functor.
type IntegerInduction struct {
	LessThan int32
	Succ     int32
	NextVar  func() kernel.VarID
}

// GenerateClauses pairs premise (the goal literal) against sideBound (the
// `¬(t < b)` clause). The saturation package's integer-induction adapter
// calls it for the given clause against every Active clause, in both
// argument orders; a pairing of the wrong shape yields nothing.
func (ii *IntegerInduction) GenerateClauses(ctx *Context, premise *kernel.Clause, sideBound *kernel.Clause) *ClauseCursor {
	if len(premise.Lits) != 1 || len(sideBound.Lits) != 1 {
		return NewClauseCursor(nil)
	}
	goalLit := premise.Lits[0]
	boundLit := sideBound.Lits[0]
	if goalLit.Arity() == 0 || boundLit.Predicate() != ii.LessThan || boundLit.Polarity() {
		return NewClauseCursor(nil)
	}
	bound := boundLit.Arg(1)
	k := ii.freshVar()

	negPi := func() kernel.Literal {
		return ctx.Store.ShareLiteral(&kernel.LiteralBuilder{Predicate: goalLit.Predicate(), Polarity: false, Args: []*kernel.Builder{termToBuilderArg(bound)}})
	}
	c1 := []kernel.Literal{negPi(), ctx.Store.ShareLiteral(&kernel.LiteralBuilder{
		Predicate: ii.LessThan, Polarity: false,
		Args: []*kernel.Builder{kernel.Var(k), termToBuilderArg(bound)},
	})}
	c2 := []kernel.Literal{negPi(), ctx.Store.ShareLiteral(&kernel.LiteralBuilder{
		Predicate: goalLit.Predicate(), Polarity: true, Args: []*kernel.Builder{kernel.Var(k)},
	})}
	c3 := []kernel.Literal{negPi(), ctx.Store.ShareLiteral(&kernel.LiteralBuilder{
		Predicate: goalLit.Predicate(), Polarity: false,
		Args: []*kernel.Builder{kernel.App(ii.Succ, kernel.Var(k))},
	})}

	parents := []kernel.ClauseID{premise.ID, sideBound.ID}
	out := []*kernel.Clause{
		ctx.Registry.Alloc(c1, kernel.Inference{Rule: "integer_induction_bound", Parents: parents}, nextAge(premise, sideBound)),
		ctx.Registry.Alloc(c2, kernel.Inference{Rule: "integer_induction_base", Parents: parents}, nextAge(premise, sideBound)),
		ctx.Registry.Alloc(c3, kernel.Inference{Rule: "integer_induction_step", Parents: parents}, nextAge(premise, sideBound)),
	}
	return NewClauseCursor(out)
}

func (ii *IntegerInduction) freshVar() kernel.VarID {
	if ii.NextVar != nil {
		return ii.NextVar()
	}
	return 1
}
