// Package printer renders a Moebius expression tree back to an
// indented, bracketed text form: one node per line, children indented
// two spaces under their parent.
package printer

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/midbel/moebius/lang"
)

// Printer writes a lang.Expr tree to an io.Writer. A Printer built by
// New prints with ANSI coloring; set NoColor to get plain text suitable
// for piping or diffing. The zero value has no styles set and prints
// plain text.
type Printer struct {
	NoColor bool

	number lipgloss.Style
	ident  lipgloss.Style
	op     lipgloss.Style
}

func New() *Printer {
	return &Printer{
		number: lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd7ff")),
		ident:  lipgloss.NewStyle().Foreground(lipgloss.Color("#d7af5f")),
		op:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ff8700")).Bold(true),
	}
}

// Print is a package-level convenience for the common plain-text case.
func Print(w io.Writer, expr lang.Expr) {
	p := Printer{NoColor: true}
	p.Print(w, expr)
}

func (p *Printer) Print(w io.Writer, expr lang.Expr) {
	p.printExpr(w, expr, 0)
}

func (p *Printer) printExpr(w io.Writer, expr lang.Expr, depth int) {
	prefix := strings.Repeat(" ", depth*2)
	fmt.Fprint(w, prefix)
	switch e := expr.(type) {
	case lang.Number:
		fmt.Fprintln(w, p.render(p.number, fmt.Sprintf("number(%d)", e.Value)))
	case lang.Ident:
		fmt.Fprintln(w, p.render(p.ident, fmt.Sprintf("ident(%s)", e.Name)))
	case lang.Unary:
		fmt.Fprintln(w, p.render(p.op, fmt.Sprintf("unary(%c)[", e.Op)))
		p.printExpr(w, e.Operand, depth+1)
		fmt.Fprint(w, prefix)
		fmt.Fprintln(w, "]")
	case lang.Binary:
		fmt.Fprintln(w, p.render(p.op, fmt.Sprintf("binary(%c)[", e.Op)))
		p.printExpr(w, e.Left, depth+1)
		p.printExpr(w, e.Right, depth+1)
		fmt.Fprint(w, prefix)
		fmt.Fprintln(w, "]")
	default:
		fmt.Fprintln(w, fmt.Sprintf("unknown(%T)", e))
	}
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if p.NoColor {
		return text
	}
	return s.Render(text)
}
