// Command rsscheck reads a tick JSON from a file argument (or stdin) and
// writes the resulting RssState JSON to stdout.
//
// The input document has the shape:
//
//	{"time_index": 1, "situation": { ... rss.Situation fields ... }}
//
// Each run builds a fresh checker and evaluates a single tick, so no
// safe-state memory carries over from one invocation to the next.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cxd309/rss-intersection-kernel/internal/quantity"
	"github.com/cxd309/rss-intersection-kernel/rss"
)

type tickInput struct {
	TimeIndex uint64        `json:"time_index"`
	Situation rss.Situation `json:"situation"`
}

func main() {
	var (
		data []byte
		err  error
	)

	if len(os.Args) > 1 {
		data, err = os.ReadFile(os.Args[1])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading input: %v\n", err)
		os.Exit(1)
	}

	var input tickInput
	if err := json.Unmarshal(data, &input); err != nil {
		fmt.Fprintf(os.Stderr, "error parsing input: %v\n", err)
		os.Exit(1)
	}

	if err := rss.ValidateSituation(input.Situation); err != nil {
		fmt.Fprintf(os.Stderr, "invalid situation: %v\n", err)
		os.Exit(1)
	}

	checker := rss.NewIntersectionChecker()
	state, err := checker.CalculateRssStateIntersection(quantity.TimeIndex(input.TimeIndex), input.Situation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rss evaluation error: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error encoding result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
