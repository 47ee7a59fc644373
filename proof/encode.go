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

package proof

import (
	"github.com/pkg/errors"
	msgpack "gopkg.in/vmihailenco/msgpack.v2"

	"github.com/satforge/saturn/kernel"
)

// wireNode is Node's msgpack-friendly shape (kernel.ClauseID is a uint64
// alias, already msgpack-native; the split exists only to give the external
// proof printer stable field names independent of the in-memory struct).
type wireNode struct {
	ID       uint64
	Literals []string
	Rule     string
	Parents  []uint64
}

type wireDerivation struct {
	Root  uint64
	Nodes []wireNode
}

// Encode msgpack-serializes d for an external proof printer to consume
// (spec.md §1 names printing as an out-of-scope collaborator; this is the
// stable structural hand-off to it).
func (d Derivation) Encode() ([]byte, error) {
	w := wireDerivation{Root: uint64(d.Root)}
	for _, n := range d.Nodes {
		wn := wireNode{ID: uint64(n.ID), Literals: n.Literals, Rule: n.Rule}
		for _, p := range n.Parents {
			wn.Parents = append(wn.Parents, uint64(p))
		}
		w.Nodes = append(w.Nodes, wn)
	}
	out, err := msgpack.Marshal(w)
	if err != nil {
		return nil, errors.Wrap(err, "encoding derivation DAG")
	}
	return out, nil
}

// Decode reconstructs a Derivation from bytes produced by Encode.
func Decode(data []byte) (Derivation, error) {
	var w wireDerivation
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return Derivation{}, errors.Wrap(err, "decoding derivation DAG")
	}
	d := Derivation{Root: kernel.ClauseID(w.Root), Nodes: make(map[kernel.ClauseID]Node, len(w.Nodes))}
	for _, wn := range w.Nodes {
		n := Node{ID: kernel.ClauseID(wn.ID), Literals: wn.Literals, Rule: wn.Rule}
		for _, p := range wn.Parents {
			n.Parents = append(n.Parents, kernel.ClauseID(p))
		}
		d.Nodes[n.ID] = n
	}
	return d, nil
}
