package combinator

import "github.com/midbel/moebius/source"

type ignore struct {
	inner Parser
}

// Ignore parses inner but discards any pushes it would have produced.
func Ignore(inner Parser) Parser {
	return ignore{inner: inner}
}

func (p ignore) Parse(ctx *source.Cursor, cb Callback) Result {
	return p.inner.Parse(ctx, IgnoreCallback{})
}
