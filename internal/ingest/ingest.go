// Package ingest loads a dictionary word list from text: split on
// whitespace, strip non-word runes from each token, and deduplicate
// into a sorted set. Kept out of the core mueddi package so that the
// library itself stays agnostic to where its word lists come from.
package ingest

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"sort"
)

// nonWord matches any rune that is not a letter, digit, or underscore.
// Go's RE2 \w is ASCII-only, unlike Unicode-aware equivalents in other
// regex engines, so the character class is spelled out explicitly.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// LoadFile reads path, splits its contents on whitespace, strips
// non-word runes from each resulting token, and returns the distinct,
// non-empty results in sorted order.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Load is the io.Reader-based core of LoadFile, split out for testing
// without touching the filesystem.
func Load(r io.Reader) ([]string, error) {
	seen := map[string]struct{}{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := nonWord.ReplaceAllString(scanner.Text(), "")
		if word == "" {
			continue
		}
		seen[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out, nil
}
