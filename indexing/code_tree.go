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

package indexing

import "github.com/satforge/saturn/kernel"

type opcode uint8

const (
	// opFunctor matches the current subject position against a concrete
	// functor/arity, pushing its arguments (left to right) for subsequent
	// instructions to consume.
	opFunctor opcode = iota
	// opVar binds (or, on repeat, checks) a pattern variable slot against
	// the current subject position.
	opVar
)

type instr struct {
	op      opcode
	functor int32
	arity   int
	slot    int
}

// compileLHS flattens pattern into a one-way matching instruction stream: a
// pre-order traversal where each functor position becomes an opFunctor and
// each variable occurrence becomes an opVar keyed by a per-pattern
// first-occurrence slot number (spec §4.4 "a flattened bytecode form ...
// stored as an instruction stream interpreted by a loop with an explicit
// stack").
func compileLHS(pattern kernel.Term) []instr {
	slots := make(map[kernel.VarID]int)
	var prog []instr
	var walk func(t kernel.Term)
	walk = func(t kernel.Term) {
		if t.IsVar() {
			slot, ok := slots[t.VarID()]
			if !ok {
				slot = len(slots)
				slots[t.VarID()] = slot
			}
			prog = append(prog, instr{op: opVar, slot: slot})
			return
		}
		prog = append(prog, instr{op: opFunctor, functor: t.Functor(), arity: t.Arity()})
		for i := 0; i < t.Arity(); i++ {
			walk(t.Arg(i))
		}
	}
	walk(pattern)
	return prog
}

// run executes prog against subject using an explicit subject stack,
// returning the variable-slot bindings on success.
func run(prog []instr, subject kernel.Term) (map[int]kernel.Term, bool) {
	bindings := make(map[int]kernel.Term)
	stack := []kernel.Term{subject}
	for _, ins := range prog {
		if len(stack) == 0 {
			return nil, false
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch ins.op {
		case opFunctor:
			if top.IsVar() || top.Functor() != ins.functor || top.Arity() != ins.arity {
				return nil, false
			}
			for i := ins.arity - 1; i >= 0; i-- {
				stack = append(stack, top.Arg(i))
			}
		case opVar:
			if prev, ok := bindings[ins.slot]; ok {
				if !prev.Equals(top) {
					return nil, false
				}
			} else {
				bindings[ins.slot] = top
			}
		}
	}
	return bindings, true
}

type codeTreeRecord struct {
	program []instr
	rec     *termRecord
}

// CodeTree is the fast one-way matching structure used by forward
// demodulation (spec §4.4): inserted left-hand sides are compiled once;
// querying a subject term runs the programs filed under the subject's top
// functor and arity, plus those of variable left-hand sides.
type CodeTree struct {
	store   *kernel.Store
	byShape map[shapeKey][]*codeTreeRecord
}

// NewCodeTree creates an empty code tree over store.
func NewCodeTree(store *kernel.Store) *CodeTree {
	return &CodeTree{store: store, byShape: make(map[shapeKey][]*codeTreeRecord)}
}

// Insert compiles pattern (expected to be a demodulator's oriented
// left-hand side) and adds it to the tree.
func (ct *CodeTree) Insert(pattern kernel.Term, literal kernel.Literal, clause kernel.ClauseID, extra interface{}) {
	key, isVar := shapeOf(pattern)
	if isVar {
		key = shapeKey{} // degenerate: a variable LHS matches everything; rare, kept in the zero-shape bucket
	}
	rec := &termRecord{term: pattern, literal: literal, clause: clause, extra: extra}
	ct.byShape[key] = append(ct.byShape[key], &codeTreeRecord{program: compileLHS(pattern), rec: rec})
}

// Remove deletes a previously-inserted pattern; a no-op if absent.
func (ct *CodeTree) Remove(pattern kernel.Term, literal kernel.Literal, clause kernel.ClauseID) {
	key, isVar := shapeOf(pattern)
	if isVar {
		key = shapeKey{}
	}
	for _, c := range ct.byShape[key] {
		if c.rec.removed {
			continue
		}
		if c.rec.term.Equals(pattern) && c.rec.literal.Equals(literal) && c.rec.clause == clause {
			c.rec.removed = true
			return
		}
	}
}

// CodeTreeMatch is one successful one-way match: the matched LHS entry and
// the slot bindings (slot -> subject subterm) the interpreter produced.
type CodeTreeMatch struct {
	Term    kernel.Term
	Literal kernel.Literal
	Clause  kernel.ClauseID
	Extra   interface{}
	// Bindings maps each variable in the matched LHS to the subject subterm
	// bound to it.
	Bindings map[kernel.VarID]kernel.Term
}

// FirstMatch runs every compiled program whose shape could match subject,
// stopping at the first success (the typical demodulation use: fire the
// first applicable rewrite rule).
func (ct *CodeTree) FirstMatch(subject kernel.Term) (CodeTreeMatch, bool) {
	for _, c := range ct.matchCandidates(subject) {
		if bindings, ok := run(c.program, subject); ok {
			return toMatch(c.rec, bindings), true
		}
	}
	return CodeTreeMatch{}, false
}

// AllMatches returns every compiled program matching subject, in insertion
// order, for callers (e.g. completeness tests) that need every rewrite that
// could fire rather than just the first.
func (ct *CodeTree) AllMatches(subject kernel.Term) []CodeTreeMatch {
	var out []CodeTreeMatch
	for _, c := range ct.matchCandidates(subject) {
		if bindings, ok := run(c.program, subject); ok {
			out = append(out, toMatch(c.rec, bindings))
		}
	}
	return out
}

func (ct *CodeTree) matchCandidates(subject kernel.Term) []*codeTreeRecord {
	var out []*codeTreeRecord
	out = append(out, nonRemoved(ct.byShape[shapeKey{}])...) // variable LHS patterns always apply
	if !subject.IsVar() {
		out = append(out, nonRemoved(ct.byShape[shapeKey{functor: subject.Functor(), arity: subject.Arity()}])...)
	}
	return out
}

func nonRemoved(in []*codeTreeRecord) []*codeTreeRecord {
	var out []*codeTreeRecord
	for _, c := range in {
		if !c.rec.removed {
			out = append(out, c)
		}
	}
	return out
}

// toMatch re-keys the slot bindings a compiled program produced back
// onto the pattern's original variable ids, for callers that want a normal
// VarID-indexed substitution rather than positional slots.
func toMatch(rec *termRecord, slotBindings map[int]kernel.Term) CodeTreeMatch {
	slots := make(map[kernel.VarID]int)
	var collect func(t kernel.Term)
	collect = func(t kernel.Term) {
		if t.IsVar() {
			if _, ok := slots[t.VarID()]; !ok {
				slots[t.VarID()] = len(slots)
			}
			return
		}
		for i := 0; i < t.Arity(); i++ {
			collect(t.Arg(i))
		}
	}
	collect(rec.term)
	bindings := make(map[kernel.VarID]kernel.Term, len(slots))
	for v, slot := range slots {
		bindings[v] = slotBindings[slot]
	}
	return CodeTreeMatch{Term: rec.term, Literal: rec.literal, Clause: rec.clause, Extra: rec.extra, Bindings: bindings}
}
