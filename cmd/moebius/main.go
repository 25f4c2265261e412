package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/midbel/cli"
)

var errFail = errors.New("fail")

var (
	summary = "moebius parses, runs and formats moebius expression programs"
	help    = ""
)

func main() {
	os.Exit(dispatch(os.Args[1:]))
}

// dispatch parses the top-level flags, runs the matched subcommand,
// and turns whatever it returns into a process exit code, the same
// print-then-signal split reportOne/evalOne use for a single file,
// just applied to the whole invocation.
func dispatch(args []string) int {
	root := prepare()
	root.SetSummary(summary)
	root.SetHelp(help)

	set := cli.NewFlagSet("moebius")
	if err := set.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
		}
		return 2
	}
	return exitCode(root.Execute(set.Args()))
}

// exitCode reports err (a did-you-mean hint for an unknown subcommand,
// or the subcommand's own error) and maps it to a process exit status.
// errFail marks a failure a subcommand has already reported itself, so
// it is the one error exitCode stays silent about.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	reportSuggestion(err)
	if !errors.Is(err, errFail) {
		fmt.Fprintln(os.Stderr, err)
	}
	return 1
}

func reportSuggestion(err error) {
	s, ok := err.(cli.SuggestionError)
	if !ok || len(s.Others) == 0 {
		return
	}
	fmt.Fprintln(os.Stderr, "similar command(s)")
	for _, n := range s.Others {
		fmt.Fprintln(os.Stderr, "-", n)
	}
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"parse"}, &parseCmd)
	root.Register([]string{"run"}, &runCmd)
	root.Register([]string{"fmt"}, &fmtCmd)
	root.Register([]string{"format"}, &fmtCmd)
	root.Register([]string{"repl"}, &replCmd)
	return root
}

var parseCmd = cli.Command{
	Name:    "parse",
	Summary: "parse a moebius program and report success, failure or a diagnostic",
	Handler: handlerFunc(runParse),
}

var runCmd = cli.Command{
	Name:    "run",
	Summary: "parse and evaluate a moebius program",
	Handler: handlerFunc(runRun),
}

var fmtCmd = cli.Command{
	Name:    "fmt",
	Alias:   []string{"format"},
	Summary: "re-emit a program's parsed AST",
	Handler: handlerFunc(runFmt),
}

var replCmd = cli.Command{
	Name:    "repl",
	Summary: "launch an interactive moebius session",
	Handler: handlerFunc(runRepl),
}

type handlerFunc func([]string) error

func (f handlerFunc) Run(args []string) error {
	return f(args)
}
