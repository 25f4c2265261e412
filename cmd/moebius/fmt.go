package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/midbel/moebius/combinator"
	"github.com/midbel/moebius/diagnostic"
	"github.com/midbel/moebius/lang"
	"github.com/midbel/moebius/printer"
	"github.com/midbel/moebius/source"
)

// runFmt implements "moebius fmt <file>": parses then re-emits the
// tree through printer, plain text by default, colored with -color.
func runFmt(args []string) error {
	set := flag.NewFlagSet("fmt", flag.ContinueOnError)
	color := set.Bool("color", false, "colorize the printed tree")
	if err := set.Parse(args); err != nil {
		return err
	}
	files := set.Args()
	if len(files) != 1 {
		return fmt.Errorf("fmt: expected exactly one file")
	}

	src, err := source.Open(files[0])
	if err != nil {
		return err
	}
	expr, res, diag := lang.ParseProgram(src)
	if res != combinator.Success {
		if res == combinator.Failure {
			return fmt.Errorf("failure")
		}
		if diag != nil {
			diagnostic.Render(os.Stderr, *diag, src)
		}
		return errFail
	}

	p := printer.New()
	p.NoColor = !*color
	p.Print(os.Stdout, expr)
	return nil
}
