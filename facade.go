// facade.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the per-query facade over the universal
// Levenshtein automaton: a target word and tolerance bundled with a
// handle onto the process-wide LazyTable for that tolerance.

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

// LevenState is a state of the Levenshtein automaton: a base offset
// into the query plus a reduced union of positions relative to that
// base, always held in normal form (RaiseLevel() == 0). The failure
// state has no LevenState value at all - it is the nil *LevenState.
type LevenState struct {
	Base int
	R    ReducedUnion
}

// Facade is the per-query handle bundling the target word, the
// tolerance, and the (shared, process-wide) memoized transition table
// for that tolerance.
type Facade struct {
	word  []rune
	w     int
	n     int
	table *LazyTable
}

// NewFacade constructs a Facade for query q and tolerance n. n must
// satisfy 1 <= n <= MaxTolerance; q may be empty.
func NewFacade(q string, n int) (*Facade, error) {
	if n < 1 || n > MaxTolerance {
		return nil, ErrToleranceOutOfRange
	}
	word := []rune(q)
	return &Facade{
		word:  word,
		w:     len(word),
		n:     n,
		table: lazyTableFor(n),
	}, nil
}

// N returns the tolerance this facade was constructed with.
func (f *Facade) N() int {
	return f.n
}

// InitialState returns the automaton's start state: base 0, the
// singleton union {(0,0)}.
func (f *Facade) InitialState() *LevenState {
	var r ReducedUnion
	r.AddUnchecked(newRelPos(0, 0))
	return &LevenState{Base: 0, R: r}
}

// Delta advances state on symbol, returning the successor state or nil
// on failure. state must be in normal form (state.R.RaiseLevel() == 0);
// violating this is a contract breach, not a recoverable error.
func (f *Facade) Delta(state *LevenState, symbol rune) *LevenState {
	if state.R.RaiseLevel() != 0 {
		panic("mueddi: Facade.Delta given a state not in normal form")
	}
	i := state.Base
	rl := getRelStateLen(i, f.w, f.n)
	window := f.word[i : i+rl]
	charVec := makeCharVec(window, symbol)

	Logger.Printf("delta base=%d window=%q symbol=%q charVec=%+v", i, string(window), symbol, charVec)

	image := f.table.Delta(state, f.w, charVec)
	if image.IsEmpty() {
		return nil
	}
	k := image.RaiseLevel()
	if k > 0 {
		return &LevenState{Base: i + k, R: image.Rebase(k)}
	}
	return &LevenState{Base: i, R: image}
}

// IsFinal reports whether state is an accepting state: some position
// in it has no more remaining query symbols than remaining edit budget.
func (f *Facade) IsFinal(state *LevenState) bool {
	for _, p := range state.R.Positions() {
		i := state.Base + p.Offset
		if f.w-i <= f.n-p.Edit {
			return true
		}
	}
	return false
}
