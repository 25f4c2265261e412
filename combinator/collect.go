package combinator

import "github.com/midbel/moebius/source"

type collect struct {
	inner  Parser
	create func() Collector
}

// Collect instantiates a fresh Collector, routes every push from
// inner into it, and, iff inner Succeeds, calls Retrieve exactly
// once to forward the finalized value to outer. On Failure or Error
// the collector is simply dropped.
func Collect(inner Parser, create func() Collector) Parser {
	return collect{inner: inner, create: create}
}

func (p collect) Parse(ctx *source.Cursor, cb Callback) Result {
	collector := p.create()
	res := p.inner.Parse(ctx, CollectCallback{Collector: collector})
	if res != Success {
		return res
	}
	collector.Retrieve(cb)
	return Success
}
