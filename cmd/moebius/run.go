package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/midbel/moebius/cmd/climod"
	"github.com/midbel/moebius/combinator"
	"github.com/midbel/moebius/diagnostic"
	"github.com/midbel/moebius/interp"
	"github.com/midbel/moebius/lang"
	"github.com/midbel/moebius/source"
)

// runRun implements "moebius run <file...>": parse then evaluate,
// printing the resulting value, one line per file.
func runRun(args []string) error {
	set := flag.NewFlagSet("run", flag.ContinueOnError)
	parallel := set.Bool("parallel", false, "parse files concurrently before evaluating")
	if err := set.Parse(args); err != nil {
		return err
	}
	files := set.Args()
	if len(files) == 0 {
		return fmt.Errorf("run: no input files")
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
		spin := climod.NewSpinner("running", len(srcs))
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
			if !evalOne(r.Source, r.Expr, r.Result, r.Diagnostic) {
				failed = true
			}
		}
		if failed {
			return errFail
		}
		return nil
	}

	var failed bool
	for _, src := range srcs {
		expr, res, diag := lang.ParseProgram(src)
		if !evalOne(src, expr, res, diag) {
			failed = true
		}
	}
	if failed {
		return errFail
	}
	return nil
}

func evalOne(src *source.Source, expr lang.Expr, res combinator.Result, diag *diagnostic.Diagnostic) bool {
	if res != combinator.Success {
		if res == combinator.Failure {
			fmt.Fprintln(os.Stderr, "failure")
		} else if diag != nil {
			diagnostic.Render(os.Stderr, *diag, src)
		}
		return false
	}
	v, err := interp.Eval(expr, interp.NewEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", src.Path(), err)
		return false
	}
	fmt.Println(v)
	return true
}
