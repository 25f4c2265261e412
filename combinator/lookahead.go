package combinator

import "github.com/midbel/moebius/source"

type not struct {
	inner Parser
}

// Not is a negative lookahead: it Succeeds iff inner Fails, never
// consumes input, and never pushes. A committed Error from inner
// propagates rather than being downgraded to Failure (strict commit).
func Not(inner Parser) Parser {
	return not{inner: inner}
}

func (p not) Parse(ctx *source.Cursor, cb Callback) Result {
	cp := ctx.Save()
	switch p.inner.Parse(ctx, IgnoreCallback{}) {
	case Success:
		ctx.Restore(cp)
		return Failure
	case Error:
		return Error
	default:
		ctx.Restore(cp)
		return Success
	}
}

type peek struct {
	inner Parser
}

// Peek is a positive lookahead: it Succeeds iff inner Succeeds, never
// consumes input, and never pushes.
func Peek(inner Parser) Parser {
	return peek{inner: inner}
}

func (p peek) Parse(ctx *source.Cursor, cb Callback) Result {
	cp := ctx.Save()
	res := p.inner.Parse(ctx, IgnoreCallback{})
	if res != Error {
		ctx.Restore(cp)
	}
	return res
}
