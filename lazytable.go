// lazytable.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the lazily memoized Levenshtein state
// transition table: a mutex-guarded LRU wrapping a fetch-or-compute
// lookup, keyed by a composite value.

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
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// lazyTableOuterSize and lazyTableInnerSize bound the number of
// distinct reduced unions (the outer key) a LazyTable remembers, and
// the number of distinct
// characteristic vectors remembered per union (the inner key). The
// state space for a given n is finite but grows quickly with n
// (documented ceiling MaxTolerance); these sizes are generous enough
// that eviction is a latent safety valve rather than the normal path -
// an evicted entry just costs a recompute on next use, which is
// harmless since the table is a pure memoization of a deterministic
// function.
const (
	lazyTableOuterSize = 1 << 16
	lazyTableInnerSize = 1 << 10
)

// LazyTable is a memoization (ReducedUnion, CharVec) -> ReducedUnion
// for a fixed tolerance n, seeded with the initial singleton {(0,0)}.
// Safe for concurrent use by queries sharing the same n.
type LazyTable struct {
	n  int
	mu sync.Mutex
	// outer maps a ReducedUnion's cache key to an inner LRU mapping
	// CharVec -> ReducedUnion.
	outer *simplelru.LRU
}

// newLazyTable constructs a LazyTable for tolerance n, pre-seeding the
// initial position {(0,0)}'s entry in the outer cache.
func newLazyTable(n int) *LazyTable {
	outer, err := simplelru.NewLRU(lazyTableOuterSize, nil)
	if err != nil {
		// Only returns an error for a non-positive size, which
		// lazyTableOuterSize never is - an invariant violation if it
		// ever fires.
		panic(err)
	}
	t := &LazyTable{n: n, outer: outer}
	var zero ReducedUnion
	zero.AddUnchecked(newRelPos(0, 0))
	t.ensureInner(zero)
	return t
}

// ensureInner returns the inner LRU for red, creating it if absent.
// Caller must hold t.mu.
func (t *LazyTable) ensureInner(red ReducedUnion) *simplelru.LRU {
	key := red.key()
	if v, ok := t.outer.Get(key); ok {
		return v.(*simplelru.LRU)
	}
	inner, err := simplelru.NewLRU(lazyTableInnerSize, nil)
	if err != nil {
		panic(err)
	}
	t.outer.Add(key, inner)
	return inner
}

// Delta computes (or returns the memoized) image of state.R under the
// given full characteristic vector, relative to query length w.
func (t *LazyTable) Delta(state *LevenState, w int, charVec CharVec) ReducedUnion {
	t.mu.Lock()
	defer t.mu.Unlock()

	inner := t.ensureInner(state.R)
	ckey := charVec
	if v, ok := inner.Get(ckey); ok {
		return v.(ReducedUnion)
	}

	var image ReducedUnion
	for _, p := range state.R.Positions() {
		image.Update(elemDelta(state.Base, w, p, charVec, t.n))
	}
	inner.Add(ckey, image)
	return image
}
