package main

import (
	"flag"

	"github.com/midbel/moebius/cmd/moerepl"
)

// runRepl hands off to moerepl's bubbletea program in-process,
// mirroring how cmd/angle's trie dispatches to unrelated subcommand
// packages within one binary.
func runRepl(args []string) error {
	set := flag.NewFlagSet("repl", flag.ContinueOnError)
	debug := set.String("debug", "", "write bubbletea's internal log to this file")
	if err := set.Parse(args); err != nil {
		return err
	}
	return moerepl.Run(*debug)
}
