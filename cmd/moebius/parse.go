package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/midbel/moebius/cmd/climod"
	"github.com/midbel/moebius/combinator"
	"github.com/midbel/moebius/diagnostic"
	"github.com/midbel/moebius/lang"
	"github.com/midbel/moebius/source"
)

// runParse implements "moebius parse <file...>": Success prints
// nothing and exits 0, Failure prints "failure" and exits 1, Error
// renders the diagnostic and exits 1.
func runParse(args []string) error {
	set := flag.NewFlagSet("parse", flag.ContinueOnError)
	parallel := set.Bool("parallel", false, "parse files concurrently")
	if err := set.Parse(args); err != nil {
		return err
	}
	files := set.Args()
	if len(files) == 0 {
		return fmt.Errorf("parse: no input files")
	}

	srcs := make([]*source.Source, 0, len(files))
	for _, f := range files {
		src, err := source.Open(f)
		if err != nil {
			return err
		}
		srcs = append(srcs, src)
	}

	if *parallel && len(srcs) > 1 {
		return parseParallel(srcs)
	}
	var failed bool
	for _, src := range srcs {
		_, res, diag := lang.ParseProgram(src)
		if !reportOne(src, res, diag) {
			failed = true
		}
	}
	if failed {
		return errFail
	}
	return nil
}

func parseParallel(srcs []*source.Source) error {
	spin := climod.NewSpinner("parsing", len(srcs))
	var (
		results []lang.BatchResult
		err     error
	)
	spin.Run(func() {
		results, err = lang.Batch(context.Background(), srcs, spin.Advance)
	})
	if err != nil {
		return err
	}
	var failed bool
	for _, r := range results {
		if !reportOne(r.Source, r.Result, r.Diagnostic) {
			failed = true
		}
	}
	if failed {
		return errFail
	}
	return nil
}

func reportOne(src *source.Source, res combinator.Result, diag *diagnostic.Diagnostic) bool {
	switch res {
	case combinator.Success:
		return true
	case combinator.Failure:
		fmt.Fprintln(os.Stderr, "failure")
		return false
	default:
		if diag != nil {
			diagnostic.Render(os.Stderr, *diag, src)
		}
		return false
	}
}
