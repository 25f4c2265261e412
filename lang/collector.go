package lang

import "github.com/midbel/moebius/combinator"

// opTag is the marker value a completed operator application
// pushes once its operand(s) already rest on the collector's own
// stack; its identity, not any argument, tells the collector which
// node to fold the stack with.
type opTag byte

const unaryMinusTag opTag = 0

// exprCollector is the single collector shared by one Pratt.Parse
// invocation of the Moebius expression grammar: every terminal,
// prefix, and infix push funnels through it in source order.
type exprCollector struct {
	stack []Expr
}

func newExprCollector() combinator.Collector {
	return &exprCollector{}
}

func (c *exprCollector) Push(values ...any) {
	if len(values) != 1 {
		return
	}
	if e, ok := values[0].(Expr); ok {
		c.stack = append(c.stack, e)
		return
	}
	tag, ok := values[0].(opTag)
	if !ok {
		return
	}
	switch tag {
	case unaryMinusTag:
		c.stack = append(c.stack, Unary{Op: '-', Operand: c.pop()})
	case '+', '-', '*', '/':
		right, left := c.pop(), c.pop()
		c.stack = append(c.stack, Binary{Op: byte(tag), Left: left, Right: right})
	}
}

func (c *exprCollector) pop() Expr {
	n := len(c.stack)
	e := c.stack[n-1]
	c.stack = c.stack[:n-1]
	return e
}

func (c *exprCollector) SetLocation(combinator.Span) {}

func (c *exprCollector) Retrieve(outer combinator.Callback) {
	outer.Push(c.stack[len(c.stack)-1])
}
