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

// Package proof builds the derivation DAG spec.md §6's "Output" contract
// requires: given a refutation (the empty clause), walk its inference
// parents back to the top-level inputs. Printing the proof in any
// particular external format is out of scope (spec.md Non-goals); this
// package only produces the structural DAG and a stable binary encoding of
// it for an external printer to consume.
package proof

import (
	"fmt"

	"github.com/satforge/saturn/kernel"
)

// Node is one clause in the derivation DAG together with the rule that
// produced it and its parents' ids.
type Node struct {
	ID      kernel.ClauseID
	Literals []string // human-readable rendering, not used for re-parsing
	Rule    string
	Parents []kernel.ClauseID
}

// Derivation is the DAG rooted at a refutation's empty clause.
type Derivation struct {
	Root  kernel.ClauseID
	Nodes map[kernel.ClauseID]Node
}

// GetRefutation walks registry's parent links from emptyClauseID back to
// every top-level input it transitively depends on, building the DAG spec
// §6 requires as the proof output.
func GetRefutation(registry *kernel.Registry, emptyClauseID kernel.ClauseID) Derivation {
	d := Derivation{Root: emptyClauseID, Nodes: make(map[kernel.ClauseID]Node)}
	var visit func(id kernel.ClauseID)
	visit = func(id kernel.ClauseID) {
		if _, seen := d.Nodes[id]; seen {
			return
		}
		cl, ok := registry.Get(id)
		if !ok {
			return
		}
		n := Node{ID: id, Rule: cl.Inf.Rule, Parents: cl.Inf.Parents}
		for _, l := range cl.Lits {
			n.Literals = append(n.Literals, renderLiteral(l))
		}
		d.Nodes[id] = n
		for _, p := range cl.Inf.Parents {
			visit(p)
		}
	}
	visit(emptyClauseID)
	return d
}

// renderLiteral gives a debug-friendly rendering; it is not a re-parseable
// term syntax, only a readable label for the DAG node.
func renderLiteral(l kernel.Literal) string {
	sign := ""
	if !l.Polarity() {
		sign = "!"
	}
	s := sign + renderPredicate(l.Predicate(), l.IsEquality())
	s += "("
	for i := 0; i < l.Arity(); i++ {
		if i > 0 {
			s += ","
		}
		s += renderTerm(l.Arg(i))
	}
	s += ")"
	return s
}

func renderPredicate(p int32, isEq bool) string {
	if isEq {
		return "="
	}
	return fmt.Sprintf("p%d", p)
}

func renderTerm(t kernel.Term) string {
	if t.IsVar() {
		return fmt.Sprintf("X%d", t.VarID())
	}
	s := fmt.Sprintf("f%d", t.Functor())
	if t.Arity() == 0 {
		return s
	}
	s += "("
	for i := 0; i < t.Arity(); i++ {
		if i > 0 {
			s += ","
		}
		s += renderTerm(t.Arg(i))
	}
	return s + ")"
}
