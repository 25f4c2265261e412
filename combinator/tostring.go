package combinator

import "github.com/midbel/moebius/source"

type toString struct {
	inner Parser
}

// ToString parses inner, discarding its own pushes, and pushes the
// matched substring as a single []byte value.
func ToString(inner Parser) Parser {
	return toString{inner: inner}
}

func (p toString) Parse(ctx *source.Cursor, cb Callback) Result {
	cp := ctx.Save()
	res := p.inner.Parse(ctx, IgnoreCallback{})
	if res != Success {
		return res
	}
	cb.Push(ctx.Slice(cp))
	return Success
}
