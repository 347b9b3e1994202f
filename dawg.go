// dawg.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the Directed Acyclic Word Graph (DAWG) which
// encodes the dictionary of candidate words.
//
// This Dawg is built in memory from an arbitrary caller-supplied word
// list at call time, rather than loaded from a precompiled on-disk
// blob. Construction uses the standard Daciuk-Mihov
// incremental minimization over the sorted input: a register of
// already-minimized nodes, canonicalizing each node's suffix as soon
// as the input diverges from it.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package mueddi

import (
	"fmt"
	"sort"
	"strings"
)

// edge is one labelled outgoing transition from a node.
type edge struct {
	label  rune
	target *Node
}

// Node is a DAWG node. Nodes are immutable once BuildDawg returns;
// edges are kept in ascending label order, established during the
// build and never reordered afterward.
type Node struct {
	final bool
	edges []edge
}

// Final reports whether this node accepts the empty suffix, i.e.
// whether the path leading here spells a complete dictionary word.
func (n *Node) Final() bool {
	return n.final
}

// Child looks up the outgoing edge labelled r.
func (n *Node) Child(r rune) (*Node, bool) {
	lo, hi := 0, len(n.edges)
	for lo < hi {
		mid := (lo + hi) / 2
		if n.edges[mid].label < r {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(n.edges) && n.edges[lo].label == r {
		return n.edges[lo].target, true
	}
	return nil, false
}

// Edge is an exported, read-only view of one outgoing transition.
type Edge struct {
	Label  rune
	Target *Node
}

// Children returns this node's outgoing edges in stable (ascending
// label) order.
func (n *Node) Children() []Edge {
	out := make([]Edge, len(n.edges))
	for i, e := range n.edges {
		out[i] = Edge{Label: e.label, Target: e.target}
	}
	return out
}

// Dawg is the immutable minimal DAG accepting exactly the dictionary
// it was built from.
type Dawg struct {
	root *Node
}

// Root returns the Dawg's single root node.
func (d *Dawg) Root() *Node {
	return d.root
}

// Contains reports whether word is in the language accepted by d.
func (d *Dawg) Contains(word string) bool {
	node := d.root
	for _, r := range word {
		child, ok := node.Child(r)
		if !ok {
			return false
		}
		node = child
	}
	return node.final
}

// buildFrame records one pending edge of the path built so far: the
// parent node, the label of the edge leading to child, and child
// itself, not yet known to be canonical.
type buildFrame struct {
	parent *Node
	label  rune
	child  *Node
}

// BuildDawg constructs the minimal DAG accepting exactly words.
// Duplicate words are a caller error (spec section 4.1).
func BuildDawg(words []string) (*Dawg, error) {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Strings(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, ErrDuplicateWord
		}
	}

	root := &Node{}
	register := map[string]*Node{}
	var pending []buildFrame
	var previous []rune

	minimize := func(downTo int) {
		for len(pending) > downTo {
			f := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			sig := nodeSignature(f.child)
			if canon, ok := register[sig]; ok {
				replaceEdgeTarget(f.parent, f.label, canon)
			} else {
				register[sig] = f.child
			}
		}
	}

	for _, w := range sorted {
		runes := []rune(w)
		common := commonPrefixLen(previous, runes)
		minimize(common)

		node := root
		if len(pending) > 0 {
			node = pending[len(pending)-1].child
		}
		for _, r := range runes[common:] {
			child := &Node{}
			node.edges = append(node.edges, edge{label: r, target: child})
			pending = append(pending, buildFrame{parent: node, label: r, child: child})
			node = child
		}
		node.final = true
		previous = runes
	}
	minimize(0)

	return &Dawg{root: root}, nil
}

// replaceEdgeTarget repoints parent's edge labelled label at canon,
// used when a freshly built suffix turns out to duplicate an
// already-registered one.
func replaceEdgeTarget(parent *Node, label rune, canon *Node) {
	for i := range parent.edges {
		if parent.edges[i].label == label {
			parent.edges[i].target = canon
			return
		}
	}
}

// nodeSignature renders a node's structural identity: its final flag
// plus its ordered (label, canonical target) edges. Children are
// always canonicalized before their parent (minimize() processes the
// pending stack back to front), so target pointer identity is a valid
// proxy for structural equivalence at the time this is computed.
func nodeSignature(n *Node) string {
	var sb strings.Builder
	if n.final {
		sb.WriteByte('1')
	} else {
		sb.WriteByte('0')
	}
	for _, e := range n.edges {
		sb.WriteRune(e.label)
		fmt.Fprintf(&sb, ":%p;", e.target)
	}
	return sb.String()
}

// commonPrefixLen returns the length of the shared rune prefix of a
// and b.
func commonPrefixLen(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
