// transitions.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the elementary transitions of the universal
// Levenshtein automaton, Table 4.1 of Schulz & Mihov's "Fast String
// Correction with Levenshtein-Automata".

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

// getRelPosLen is the length of the relevant subword for a position
// (i, e): enough query symbols to determine every reachable successor
// without running past the end of the query.
func getRelPosLen(i, w, e, n int) int {
	return min(n-e+1, w-i)
}

// getRelStateLen is the length of the relevant subword for a state at
// base i: the full characteristic vector window needed to transition
// every position the state holds.
func getRelStateLen(i, w, n int) int {
	return min(2*n+1, w-i)
}

// elemDelta computes the elementary image of a single absolute
// position (base+p.Offset, p.Edit) under a full characteristic vector
// charVec relevant to the state's base. It sub-ranges charVec to the
// position-relevant window before dispatching to deltaI or deltaII.
func elemDelta(base, w int, p RelPos, charVec CharVec, n int) ReducedUnion {
	rl := getRelPosLen(base+p.Offset, w, p.Edit, n)
	if rl > charVec.Size {
		panic("mueddi: relevant subword longer than supplied characteristic vector")
	}
	localVec := charVec
	if rl < charVec.Size || p.Offset > 0 {
		localVec = charVec.Subrange(rl, 1+p.Offset)
	}
	if p.Edit < n {
		return deltaI(p, localVec)
	}
	return deltaII(p, localVec)
}

// deltaI is Part I of Table 4.1: the position has edit budget left.
func deltaI(p RelPos, cv CharVec) ReducedUnion {
	var result ReducedUnion
	if cv.IsEmpty() {
		// No query symbols remain in the relevant window: only an
		// insertion keeps the position alive.
		result.AddUnchecked(newRelPos(p.Offset, p.Edit+1))
		return result
	}
	if cv.Size == 1 {
		if cv.HasFirstBitSet() {
			result.AddUnchecked(newRelPos(p.Offset+1, p.Edit))
		} else {
			result.AddUnchecked(newRelPos(p.Offset, p.Edit+1))
			result.AddUnchecked(newRelPos(p.Offset+1, p.Edit+1))
		}
		return result
	}
	// cv.Size > 1
	if cv.HasFirstBitSet() {
		result.AddUnchecked(newRelPos(p.Offset+1, p.Edit))
		return result
	}
	result.AddUnchecked(newRelPos(p.Offset, p.Edit+1))
	result.AddUnchecked(newRelPos(p.Offset+1, p.Edit+1))
	if j, ok := cv.LowestSetBit(); ok {
		// j > 1 is guaranteed here since bit 0 (index 1) was just
		// found unset above.
		result.AddUnchecked(newRelPos(p.Offset+j, p.Edit+j-1))
	}
	return result
}

// deltaII is Part II of Table 4.1: the position has exhausted its
// edit budget, so only an exact match can keep it alive.
func deltaII(p RelPos, cv CharVec) ReducedUnion {
	var result ReducedUnion
	if cv.HasFirstBitSet() {
		result.AddUnchecked(newRelPos(p.Offset+1, p.Edit))
	}
	return result
}
