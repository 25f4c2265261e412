package combinator

import "github.com/midbel/moebius/source"

type mapped struct {
	inner  Parser
	mapper Mapper
}

// Map parses inner, wrapping every push it produces through mapper
// before it reaches the surrounding callback.
func Map(inner Parser, mapper Mapper) Parser {
	return mapped{inner: inner, mapper: mapper}
}

func (p mapped) Parse(ctx *source.Cursor, cb Callback) Result {
	return p.inner.Parse(ctx, MapCallback{Inner: cb, Mapper: p.mapper})
}
