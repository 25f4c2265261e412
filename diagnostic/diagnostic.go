// Package diagnostic renders a single committed parse diagnostic into
// a human-readable, caret-annotated report.
package diagnostic

import (
	"fmt"
	"io"
	"strings"

	"github.com/midbel/moebius/source"
)

// Category classifies why a parse did not succeed, per the three
// error categories of the host-facing contract.
type Category int

const (
	SyntaxFailure Category = iota
	SyntaxError
	IoErrorCategory
)

func (c Category) String() string {
	switch c {
	case SyntaxFailure:
		return "failure"
	case SyntaxError:
		return "error"
	case IoErrorCategory:
		return "io error"
	default:
		return "unknown"
	}
}

// Diagnostic is the renderable form of a source.Diagnostic: a path,
// byte offset, and message.
type Diagnostic struct {
	Path    string
	Offset  int
	Message string
}

func FromCursor(d *source.Diagnostic) Diagnostic {
	return Diagnostic{Path: d.Path, Offset: d.Offset, Message: d.Message}
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d: %s", d.Path, d.Offset, d.Message)
}

// Render writes a multi-line report: a summary, a "--> path:line:col"
// locator, the offending source line, and a caret line. Tabs in the
// source line are reproduced as tabs in the caret prefix so alignment
// survives fixed tab stops.
func Render(w io.Writer, d Diagnostic, src *source.Source) error {
	pos := src.Position(d.Offset)
	line := src.Line(pos.Line)

	if _, err := fmt.Fprintf(w, "error: %s\n", d.Message); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  --> %s:%d:%d\n", d.Path, pos.Line, pos.Column); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
		return err
	}
	caret := caretPrefix(line, pos.Column)
	_, err := fmt.Fprintf(w, "  %s^\n", caret)
	return err
}

func caretPrefix(line []byte, column int) string {
	n := column - 1
	if n > len(line) {
		n = len(line)
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		if line[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Summary renders just the one-line "error: message" form, used by
// callers that print their own locator (e.g. the REPL's inline pane).
func Summary(d Diagnostic) string {
	return fmt.Sprintf("error: %s", d.Message)
}
