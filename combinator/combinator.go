// Package combinator implements the closed family of parser
// combinators: character predicate, literal, sequence, ordered choice,
// repetition, lookahead, reference, and the callback protocol that
// fans matched values out to user collectors.
package combinator

import "github.com/midbel/moebius/source"

// Result is the three-valued outcome of a parse attempt.
type Result int

const (
	// Success means the parser matched; the cursor has advanced past
	// the match and any pushes have been delivered.
	Success Result = iota
	// Failure means the parser did not match but consumed nothing a
	// caller can't backtrack past: the cursor is restored to its
	// entry position.
	Failure
	// Error means a diagnostic has been committed. The cursor is not
	// restored and no further alternative is tried.
	Error
)

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Span locates a completed match in the source.
type Span struct {
	Start int
	End   int
}

// Callback receives the values pushed by a successful (sub-)parse, in
// source order, and optionally the span of a completed match.
type Callback interface {
	Push(values ...any)
	SetLocation(span Span)
}

// Parser is satisfied by every member of the closed combinator family.
type Parser interface {
	Parse(ctx *source.Cursor, cb Callback) Result
}

// ParserFunc adapts a plain function to the Parser interface, for
// stateless parsers defined outside this package (e.g. an
// end-of-input check).
type ParserFunc func(ctx *source.Cursor, cb Callback) Result

func (f ParserFunc) Parse(ctx *source.Cursor, cb Callback) Result {
	return f(ctx, cb)
}

// Rule is the named-rule convention: any type exposing Self can be
// referenced before its own definition is complete, enabling mutual
// recursion (see Reference).
type Rule interface {
	Self() Parser
}

// Run is the top-level entry point: it parses src from offset zero
// and reports the outcome plus any committed diagnostic.
func Run(p Parser, src *source.Source, cb Callback) (Result, *source.Cursor, *source.Diagnostic) {
	ctx := source.NewCursor(src)
	if cb == nil {
		cb = IgnoreCallback{}
	}
	res := p.Parse(ctx, cb)
	return res, ctx, ctx.Diagnostic()
}
