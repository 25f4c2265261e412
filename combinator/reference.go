package combinator

import "github.com/midbel/moebius/source"

type reference struct {
	resolve func() Parser
}

// Reference late-binds to another parser: resolve is called afresh
// each time the Reference parses. This is the indirection that lets two rules refer to each
// other without a cycle in how their grammars are constructed: a rule
// is any type exposing Self() Parser, and RuleRef wraps it.
func Reference(resolve func() Parser) Parser {
	return reference{resolve: resolve}
}

func (p reference) Parse(ctx *source.Cursor, cb Callback) Result {
	return p.resolve().Parse(ctx, cb)
}

// RuleRef builds a Reference to a named Rule, the Go analogue of the
// "type with a public parser constant" convention: Self is read lazily
// on every parse, so mutually-recursive rules need not be constructed
// in dependency order.
func RuleRef(r Rule) Parser {
	return reference{resolve: r.Self}
}
