// Package crosstest implements the cross-validation harness described
// in section 6 of the specification: a tab-separated result file,
// header row (input_path, tolerance, single_dict_flag), one row per
// query word containing the query followed by its matches in
// enumeration order. Running against a fresh path records; running
// again against an existing file replays it and reports any
// divergence. Grounded on the original Python reference's
// tests/crosstest.py.
package crosstest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/vbar/mueddi"
)

// Run executes (or replays) the harness for every word in dictionary
// against itself, at tolerance n, writing/reading resultPath. When
// singleDict is true the tested word remains in its own dictionary
// (self-match is always within distance 0); otherwise each tested word
// is excluded from the dictionary it is matched against, mirroring the
// "single_dict_flag" column of the result file.
func Run(dictPath string, dictionary []string, n int, singleDict bool, resultPath string) error {
	absPath, err := filepath.Abs(dictPath)
	if err != nil {
		return err
	}

	if _, err := os.Stat(resultPath); os.IsNotExist(err) {
		return record(absPath, dictionary, n, singleDict, resultPath)
	} else if err != nil {
		return err
	}
	return replay(absPath, dictionary, n, singleDict, resultPath)
}

func record(absPath string, dictionary []string, n int, singleDict bool, resultPath string) error {
	f, err := os.Create(resultPath)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Comma = '\t'
	defer w.Flush()

	if err := w.Write([]string{absPath, strconv.Itoa(n), strconv.Itoa(boolToInt(singleDict))}); err != nil {
		return err
	}

	var dawg *mueddi.Dawg
	if singleDict {
		dawg, err = mueddi.BuildDawg(dictionary)
		if err != nil {
			return err
		}
	}

	sorted := append([]string(nil), dictionary...)
	sort.Strings(sorted)
	for _, word := range sorted {
		if !singleDict {
			dawg, err = mueddi.BuildDawg(without(dictionary, word))
			if err != nil {
				return err
			}
		}
		matches, err := independentMatches(word, n, dictionary, singleDict)
		if err != nil {
			return err
		}
		found, err := mueddi.SearchCollect(word, n, dawg)
		if err != nil {
			return err
		}
		if !sameSet(matches, found) {
			return fmt.Errorf("crosstest: results for %q differ between reference and automaton", word)
		}
		row := append([]string{word}, found...)
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func replay(absPath string, dictionary []string, n int, singleDict bool, resultPath string) error {
	f, err := os.Open(resultPath)
	if err != nil {
		return err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return err
	}
	if len(header) != 3 {
		return fmt.Errorf("crosstest: expected a three-column header, got %d columns", len(header))
	}
	if header[0] != absPath || header[1] != strconv.Itoa(n) || header[2] != strconv.Itoa(boolToInt(singleDict)) {
		return fmt.Errorf("crosstest: inputs changed since %s was recorded", resultPath)
	}

	var dawg *mueddi.Dawg
	if singleDict {
		dawg, err = mueddi.BuildDawg(dictionary)
		if err != nil {
			return err
		}
	}

	sorted := append([]string(nil), dictionary...)
	sort.Strings(sorted)
	for _, word := range sorted {
		if !singleDict {
			dawg, err = mueddi.BuildDawg(without(dictionary, word))
			if err != nil {
				return err
			}
		}
		row, err := r.Read()
		if err != nil {
			return fmt.Errorf("crosstest: reading expected row for %q: %w", word, err)
		}
		if len(row) == 0 || row[0] != word {
			return fmt.Errorf("crosstest: result row start mismatch for %q", word)
		}
		found, err := mueddi.SearchCollect(word, n, dawg)
		if err != nil {
			return err
		}
		if len(row)-1 != len(found) {
			return fmt.Errorf("crosstest: result row length mismatch for %q", word)
		}
		for i, got := range found {
			if row[i+1] != got {
				return fmt.Errorf("crosstest: result row mismatch for %q at position %d", word, i)
			}
		}
	}
	return nil
}

// independentMatches computes the reference result set for word using
// a standalone full edit-distance computation, never the automaton
// under test, so a shared bug cannot cancel out in the comparison -
// the Go analogue of the original harness importing a separate
// Levenshtein.distance implementation rather than reusing mueddit's
// own code.
func independentMatches(word string, n int, dictionary []string, singleDict bool) ([]string, error) {
	var out []string
	for _, candidate := range dictionary {
		if !singleDict && candidate == word {
			continue
		}
		if distance(word, candidate) <= n {
			out = append(out, candidate)
		}
	}
	return out, nil
}

// distance computes the full (unbounded) Levenshtein edit distance
// between a and b via the standard O(len(a)*len(b)) dynamic program.
func distance(a, b string) int {
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
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func without(words []string, omit string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w != omit {
			out = append(out, w)
		}
	}
	return out
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa := append([]string(nil), a...)
	sb := append([]string(nil), b...)
	sort.Strings(sa)
	sort.Strings(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
