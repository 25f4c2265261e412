package combinator

import "github.com/midbel/moebius/source"

type tagged[T any] struct {
	inner Parser
	tag   T
}

// Tag parses inner, placing tag as a marker value ahead of the values
// of every push, so a shared collector can discriminate which
// grammar alternative produced it.
func Tag[T any](inner Parser, tag T) Parser {
	return tagged[T]{inner: inner, tag: tag}
}

func (p tagged[T]) Parse(ctx *source.Cursor, cb Callback) Result {
	return p.inner.Parse(ctx, TagCallback[T]{Inner: cb, Tag: p.tag})
}
