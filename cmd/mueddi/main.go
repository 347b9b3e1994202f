// cmd/mueddi is a CLI for approximate dictionary lookup: a thin
// wrapper taking a query word, a tolerance, and a dictionary word
// list over flags and positional arguments.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/vbar/mueddi"
)

func main() {
	tolerance := flag.Int("t", 0, "maximum number of edits (required, 1-15)")
	seen := flag.String("s", "", "query word (required)")
	verbose := flag.Bool("v", false, "log automaton transitions to stderr")
	flag.Parse()

	if *verbose {
		mueddi.Logger.SetOutput(os.Stderr)
	}

	if *seen == "" {
		fmt.Fprintln(os.Stderr, "mueddi: -s (query word) is required")
		flag.Usage()
		os.Exit(2)
	}
	if *tolerance < 1 {
		fmt.Fprintln(os.Stderr, "mueddi: -t (tolerance) must be at least 1")
		flag.Usage()
		os.Exit(2)
	}

	words := flag.Args()
	if len(words) == 0 {
		fmt.Fprintln(os.Stderr, "mueddi: at least one dictionary word is required")
		flag.Usage()
		os.Exit(2)
	}

	dawg, err := mueddi.BuildDawg(words)
	if err != nil {
		log.Fatalf("mueddi: %v", err)
	}

	seq, err := mueddi.Search(*seen, *tolerance, dawg)
	if err != nil {
		log.Fatalf("mueddi: %v", err)
	}
	for w := range seq {
		fmt.Println(w)
	}
}
