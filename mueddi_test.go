// mueddi_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// Tests the universal properties and concrete scenarios of spec
// section 8: soundness, completeness, no duplicates, subset,
// monotonicity in n, a symmetry spot check, determinism, and the nine
// worked dictionary/query/tolerance examples.

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
	"sort"
	"testing"
)

// referenceDistance is a standalone, unbounded Levenshtein distance
// used only to check the automaton's output, never to produce it -
// so a bug shared between the two can't cancel out in these tests.
func referenceDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			m := prev[j] + 1
			if v := cur[j-1] + 1; v < m {
				m = v
			}
			if v := prev[j-1] + cost; v < m {
				m = v
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func mustSearch(t *testing.T, q string, n int, words []string) []string {
	t.Helper()
	d, err := BuildDawg(words)
	if err != nil {
		t.Fatalf("BuildDawg: %v", err)
	}
	found, err := SearchCollect(q, n, d)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	return found
}

func asSet(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func TestScenarios(t *testing.T) {
	cases := []struct {
		name string
		dict []string
		q    string
		n    int
		want []string
	}{
		{"1", []string{"", "a"}, "b", 1, []string{"", "a"}},
		{"2", []string{"foo", "bar"}, "baz", 1, []string{"bar"}},
		{"3", []string{"foo", "bar"}, "baz", 2, []string{"bar"}},
		{"4", []string{"this", "that", "other"}, "the", 1, nil},
		{"5", []string{"this", "that", "other"}, "the", 2, []string{"this", "that", "other"}},
		{"6", []string{"abtrbtz"}, "abtrtz", 1, []string{"abtrbtz"}},
		{"7", []string{"meter", "otter", "potter"}, "mutter", 1, nil},
		{"8", []string{"meter", "otter", "potter"}, "mutter", 2, []string{"meter", "otter", "potter"}},
		{"9", []string{"ababa", "babab"}, "abba", 3, []string{"ababa", "babab"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := mustSearch(t, c.q, c.n, c.dict)
			gotSet, wantSet := asSet(got), asSet(c.want)
			if len(gotSet) != len(wantSet) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
			for w := range wantSet {
				if !gotSet[w] {
					t.Errorf("missing %q in %v", w, got)
				}
			}
		})
	}
}

var fuzzDictionary = []string{
	"kitten", "sitting", "bitten", "mitten", "smitten",
	"hello", "yellow", "mellow", "fellow", "bellow",
	"programming", "program", "programs", "grammar",
	"levenshtein", "leviathan", "leaven", "eleven",
	"", "a", "ab", "abc", "abcd", "xyz", "xy",
}

func TestSoundnessAndCompleteness(t *testing.T) {
	queries := []string{"kitten", "hello", "progra", "levenstein", "ab", "xyzz", "notthere"}
	for _, q := range queries {
		for n := 1; n <= 4; n++ {
			got := mustSearch(t, q, n, fuzzDictionary)
			gotSet := asSet(got)
			// Completeness: every word within tolerance must appear.
			for _, w := range fuzzDictionary {
				if referenceDistance(q, w) <= n && !gotSet[w] {
					t.Errorf("q=%q n=%d: missing %q (distance %d)", q, n, w, referenceDistance(q, w))
				}
			}
			// Soundness: everything that appears must be within tolerance.
			for _, w := range got {
				if d := referenceDistance(q, w); d > n {
					t.Errorf("q=%q n=%d: %q has distance %d > n", q, n, w, d)
				}
			}
		}
	}
}

func TestNoDuplicates(t *testing.T) {
	got := mustSearch(t, "programing", 3, fuzzDictionary)
	seen := map[string]bool{}
	for _, w := range got {
		if seen[w] {
			t.Fatalf("duplicate result %q in %v", w, got)
		}
		seen[w] = true
	}
}

func TestSubsetOfDictionary(t *testing.T) {
	in := asSet(fuzzDictionary)
	got := mustSearch(t, "hellp", 2, fuzzDictionary)
	for _, w := range got {
		if !in[w] {
			t.Fatalf("result %q is not in the dictionary", w)
		}
	}
}

func TestMonotonicityInN(t *testing.T) {
	q := "programin"
	for n := 1; n < MaxTolerance; n++ {
		small := asSet(mustSearch(t, q, n, fuzzDictionary))
		large := mustSearch(t, q, n+1, fuzzDictionary)
		largeSet := asSet(large)
		for w := range small {
			if !largeSet[w] {
				t.Fatalf("n=%d result %q missing at n=%d", n, w, n+1)
			}
		}
	}
}

func TestSymmetrySpotCheck(t *testing.T) {
	pairs := [][2]string{{"kitten", "sitting"}, {"hello", "hallo"}, {"abc", "abd"}}
	for _, p := range pairs {
		v, q := p[0], p[1]
		for n := 1; n <= 3; n++ {
			if referenceDistance(v, q) > n {
				continue
			}
			fwd := mustSearch(t, q, n, []string{v})
			if !asSet(fwd)[v] {
				continue
			}
			back := mustSearch(t, v, n, []string{q})
			if !asSet(back)[q] {
				t.Errorf("n=%d: %q found %q but %q did not find %q", n, q, v, v, q)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	d, err := BuildDawg(fuzzDictionary)
	if err != nil {
		t.Fatalf("BuildDawg: %v", err)
	}
	first, err := SearchCollect("programing", 3, d)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := SearchCollect("programing", 3, d)
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("run %d: length %d != %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: order differs at %d: %v vs %v", i, j, again, first)
			}
		}
	}
}

func TestEarlyStop(t *testing.T) {
	d, err := BuildDawg(fuzzDictionary)
	if err != nil {
		t.Fatalf("BuildDawg: %v", err)
	}
	seq, err := Search("hello", 3, d)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	count := 0
	for range seq {
		count++
		break
	}
	if count != 1 {
		t.Fatalf("expected to stop after one result, got %d", count)
	}
}

func TestToleranceValidation(t *testing.T) {
	d, err := BuildDawg([]string{"a"})
	if err != nil {
		t.Fatalf("BuildDawg: %v", err)
	}
	for _, n := range []int{0, -1, 16, 100} {
		if _, err := Search("a", n, d); err != ErrToleranceOutOfRange {
			t.Errorf("n=%d: got %v, want ErrToleranceOutOfRange", n, err)
		}
	}
}

func TestReducedUnionSubsumption(t *testing.T) {
	var r ReducedUnion
	r.Add(newRelPos(2, 1))
	r.Add(newRelPos(3, 2)) // subsumed by (2,1): |3-2| <= 2-1
	if len(r.Positions()) != 1 {
		t.Fatalf("expected subsumed position to be dropped, got %v", r.Positions())
	}
	r.Add(newRelPos(0, 2)) // not subsumed: |0-2| = 2 > 2-1 = 1
	if len(r.Positions()) != 2 {
		t.Fatalf("expected independent position to be kept, got %v", r.Positions())
	}
}

func TestReducedUnionEqual(t *testing.T) {
	var a, b ReducedUnion
	a.AddUnchecked(newRelPos(0, 0))
	a.AddUnchecked(newRelPos(1, 1))
	b.AddUnchecked(newRelPos(0, 0))
	b.AddUnchecked(newRelPos(1, 1))
	if !a.Equal(b) {
		t.Fatalf("expected %v to equal %v", a, b)
	}
	b.AddUnchecked(newRelPos(3, 1))
	if a.Equal(b) {
		t.Fatalf("expected %v not to equal %v", a, b)
	}
}

func TestCharVecSubrangeAndLowestBit(t *testing.T) {
	cv := makeCharVec([]rune("xaxbx"), 'x')
	if !cv.HasFirstBitSet() {
		t.Fatal("expected first bit set")
	}
	idx, ok := cv.LowestSetBit()
	if !ok || idx != 1 {
		t.Fatalf("LowestSetBit = (%d, %v), want (1, true)", idx, ok)
	}
	sub := cv.Subrange(3, 2)
	if sub.Size != 3 {
		t.Fatalf("Subrange size = %d, want 3", sub.Size)
	}
}

func TestSort(t *testing.T) {
	// Sanity check that the DAWG build's sort.Strings precondition
	// behaves as this package assumes (lexicographic rune order for
	// valid UTF-8).
	words := []string{"banana", "apple", "cherry"}
	sort.Strings(words)
	if words[0] != "apple" || words[2] != "cherry" {
		t.Fatalf("unexpected sort order: %v", words)
	}
}
