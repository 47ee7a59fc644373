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

// subtermPosition names one non-variable subterm of a literal: ArgIndex
// selects which top-level argument of the literal, Path then descends
// through that argument's own subterms (each entry an argument index).
type subtermPosition struct {
	ArgIndex int
	Path     []int
	Subterm  kernel.Term
}

// nonVariableSubterms enumerates every non-variable subterm of lit,
// including its top-level arguments themselves, used by superposition to
// find rewrite targets (spec §4.6.1: "a position p in another clause such
// that the subterm at p unifies with s").
func nonVariableSubterms(lit kernel.Literal) []subtermPosition {
	var out []subtermPosition
	for i := 0; i < lit.Arity(); i++ {
		walkSubterms(lit.Arg(i), i, nil, &out)
	}
	return out
}

func walkSubterms(t kernel.Term, argIndex int, path []int, out *[]subtermPosition) {
	if t.IsVar() {
		return
	}
	cp := append([]int(nil), path...)
	*out = append(*out, subtermPosition{ArgIndex: argIndex, Path: cp, Subterm: t})
	for i := 0; i < t.Arity(); i++ {
		walkSubterms(t.Arg(i), argIndex, append(cp, i), out)
	}
}

// replaceAt rebuilds t with the subterm at path replaced by replacement.
func replaceAt(t kernel.Term, path []int, replacement kernel.Term) *kernel.Builder {
	if len(path) == 0 {
		return termToBuilderArg(replacement)
	}
	args := make([]*kernel.Builder, t.Arity())
	for i := range args {
		if i == path[0] {
			args[i] = replaceAt(t.Arg(i), path[1:], replacement)
		} else {
			args[i] = termToBuilderArg(t.Arg(i))
		}
	}
	return kernel.App(t.Functor(), args...)
}

// literalWithSubtermReplaced rebuilds lit with the subterm at pos replaced
// by replacement, sharing the result in store.
func literalWithSubtermReplaced(store *kernel.Store, lit kernel.Literal, pos subtermPosition, replacement kernel.Term) kernel.Literal {
	b := &kernel.LiteralBuilder{Predicate: lit.Predicate(), Polarity: lit.Polarity()}
	for i := 0; i < lit.Arity(); i++ {
		if i == pos.ArgIndex {
			b.Args = append(b.Args, replaceAt(lit.Arg(i), pos.Path, replacement))
		} else {
			b.Args = append(b.Args, termToBuilderArg(lit.Arg(i)))
		}
	}
	return store.ShareLiteral(b)
}
