// Package pratt layers a precedence-tier operator parser on top of
// the combinator algebra, modeled on the same infix/prefix
// dispatch-table shape an XPath-style expression compiler uses, but
// generalized from a single fixed operator table keyed by token kind
// to grammar-author-supplied precedence tiers.
package pratt

import (
	"fmt"

	"github.com/midbel/moebius/combinator"
	"github.com/midbel/moebius/source"
)

// OpKind classifies an Operator's position within its Level.
type OpKind int

const (
	// OpTerminal is the primary; valid only in the innermost Level.
	OpTerminal OpKind = iota
	// OpPrefix appears to the left of its operand and binds at its
	// own Level.
	OpPrefix
	// OpPostfix appears to the right of an already-parsed operand
	// and takes no right operand.
	OpPostfix
	// OpInfixLTR is left-associative: its right operand parses one
	// Level tighter.
	OpInfixLTR
	// OpInfixRTL is right-associative: its right operand parses at
	// the same Level.
	OpInfixRTL
)

// Operator describes one operator within a Level: the parser that
// recognizes it and the mapper that, once its operand(s) have already
// been pushed into the shared Collector by the recursive sub-parses
// that produced them, appends a marker value so the collector knows
// which operation to fold the top of its accumulated values with.
// AST construction itself stays inside the Collector; the engine
// never sees a typed operand value, only the push stream.
type Operator struct {
	Kind   OpKind
	Parser combinator.Parser
	Map    func(cb combinator.Callback)
}

// Level is a tuple of operators sharing one precedence tier.
// Operators within a Level are tried in listed order.
type Level []Operator

// Pratt is a precedence-tier operator parser: a primary expression
// followed by zero or more operator applications at decreasing
// precedence, all sharing one Collector per invocation.
type Pratt struct {
	Levels       []Level
	NewCollector func() combinator.Collector
}

// MustCompile checks every Level for the one structural mistake this
// package can catch cheaply: an empty Level, which can never
// contribute a nud or led match and signals a grammar author error,
// and panics otherwise. Whether an individual operator parser can
// match without consuming input (the non-nullability the engine
// otherwise depends on) is a runtime property this package cannot
// prove ahead of time; MustCompile does not attempt the exhaustive
// check.
func MustCompile(p Pratt) Pratt {
	for li, level := range p.Levels {
		if len(level) == 0 {
			panic(fmt.Sprintf("pratt: level %d has no operators", li))
		}
	}
	return p
}

func (p Pratt) Parse(ctx *source.Cursor, cb combinator.Callback) combinator.Result {
	cp := ctx.Save()
	collector := p.NewCollector()
	inner := combinator.CollectCallback{Collector: collector}

	res := p.nud(ctx, inner, 0)
	if res == combinator.Success {
		res = p.led(ctx, inner, 0)
	}
	if res != combinator.Success {
		if res == combinator.Failure {
			ctx.Restore(cp)
		}
		return res
	}

	collector.Retrieve(cb)
	return combinator.Success
}

// nud walks levels from outermost (index 0) to innermost, trying each
// Prefix operator at the current level before falling through to the
// next level; Terminal is only valid in the innermost level.
func (p Pratt) nud(ctx *source.Cursor, cb combinator.Callback, level int) combinator.Result {
	if level >= len(p.Levels) {
		return combinator.Failure
	}
	for _, op := range p.Levels[level] {
		switch op.Kind {
		case OpPrefix:
			cp := ctx.Save()
			switch op.Parser.Parse(ctx, combinator.IgnoreCallback{}) {
			case combinator.Success:
				res := p.nud(ctx, cb, level)
				if res == combinator.Success {
					res = p.led(ctx, cb, level)
				}
				if res != combinator.Success {
					return res
				}
				op.Map(cb)
				return combinator.Success
			case combinator.Error:
				return combinator.Error
			default:
				if ctx.Committed() {
					return combinator.Error
				}
				ctx.Restore(cp)
			}
		case OpTerminal:
			cp := ctx.Save()
			switch op.Parser.Parse(ctx, cb) {
			case combinator.Success:
				return combinator.Success
			case combinator.Error:
				return combinator.Error
			default:
				if ctx.Committed() {
					return combinator.Error
				}
				ctx.Restore(cp)
			}
		}
	}
	return p.nud(ctx, cb, level+1)
}

// led scans operators from minLevel (outermost it is allowed to
// consider) inward, applying each matching infix/postfix operator to
// the value already on top of the shared collector's stack, and
// loops until no operator at any eligible level matches.
func (p Pratt) led(ctx *source.Cursor, cb combinator.Callback, minLevel int) combinator.Result {
	for {
		advanced, res := p.ledOnce(ctx, cb, minLevel)
		if res != combinator.Success {
			return res
		}
		if !advanced {
			return combinator.Success
		}
	}
}

func (p Pratt) ledOnce(ctx *source.Cursor, cb combinator.Callback, minLevel int) (bool, combinator.Result) {
	for li := minLevel; li < len(p.Levels); li++ {
		for _, op := range p.Levels[li] {
			switch op.Kind {
			case OpInfixLTR, OpInfixRTL, OpPostfix:
			default:
				continue
			}
			cp := ctx.Save()
			switch op.Parser.Parse(ctx, combinator.IgnoreCallback{}) {
			case combinator.Success:
				if op.Kind == OpPostfix {
					op.Map(cb)
					return true, combinator.Success
				}
				rightLevel := li + 1
				if op.Kind == OpInfixRTL {
					rightLevel = li
				}
				res := p.nud(ctx, cb, rightLevel)
				if res == combinator.Success {
					res = p.led(ctx, cb, rightLevel)
				}
				if res != combinator.Success {
					return false, res
				}
				op.Map(cb)
				return true, combinator.Success
			case combinator.Error:
				return false, combinator.Error
			default:
				if ctx.Committed() {
					return false, combinator.Error
				}
				ctx.Restore(cp)
			}
		}
	}
	return false, combinator.Success
}
