// search.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the search driver: the synchronized traversal
// of the DAWG and the Levenshtein facade that enumerates dictionary
// words within tolerance. A pluggable Navigator callback interface
// (supporting several distinct kinds of DAWG traversal - word lookup,
// rack permutation, pattern match) would be overkill here, since this
// package only ever needs one kind of navigation; the traversal is
// inlined directly instead: walk the DAWG edge by edge, advance a
// second state machine in lockstep, and prune the instant that second
// machine fails.

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

import "iter"

// worklistEntry is one pending branch of the synchronized traversal: a
// matched prefix so far, the DAWG node it has reached, and the
// Levenshtein automaton state paired with it.
type worklistEntry struct {
	prefix []rune
	node   *Node
	state  *LevenState
}

// Search enumerates, lazily, every word in d whose Levenshtein distance
// to q is at most n. The worklist discipline is FIFO (matching the
// reference Python implementation this package is grounded on); output
// order is therefore breadth-first over the DAWG but the output set
// does not depend on the discipline chosen. Consumers may stop
// ranging early; doing so is the only form of cancellation this
// package needs, since enumeration is otherwise pull-based and cannot
// fail once construction has succeeded.
func Search(q string, n int, d *Dawg) (iter.Seq[string], error) {
	facade, err := NewFacade(q, n)
	if err != nil {
		return nil, err
	}
	return func(yield func(string) bool) {
		queue := []worklistEntry{{prefix: nil, node: d.root, state: facade.InitialState()}}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			if cur.node.Final() && facade.IsFinal(cur.state) {
				if !yield(string(cur.prefix)) {
					return
				}
			}

			for _, e := range cur.node.Children() {
				next := facade.Delta(cur.state, e.Label)
				if next == nil {
					// Failure state: prune this branch. This is the
					// entire reason the automaton pairing is
					// efficient - without it, the driver would visit
					// the whole DAWG.
					continue
				}
				prefix := make([]rune, len(cur.prefix)+1)
				copy(prefix, cur.prefix)
				prefix[len(cur.prefix)] = e.Label
				queue = append(queue, worklistEntry{prefix: prefix, node: e.Target, state: next})
			}
		}
	}, nil
}

// SearchCollect is a convenience wrapper around Search for callers
// that want a materialized slice rather than a lazy sequence.
func SearchCollect(q string, n int, d *Dawg) ([]string, error) {
	seq, err := Search(q, n, d)
	if err != nil {
		return nil, err
	}
	var out []string
	for w := range seq {
		out = append(out, w)
	}
	return out, nil
}
