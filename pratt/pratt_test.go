package pratt_test

import (
	"strconv"
	"testing"

	"github.com/midbel/moebius/combinator"
	"github.com/midbel/moebius/pratt"
	"github.com/midbel/moebius/source"
)

// opTag is the marker value pushed once an operator's operands
// are already resting on the collector's own stack; the tag's
// identity, not any argument, tells the collector which operation to
// fold the stack with.
type opTag byte

const negTag = opTag('~')

type exprCollector struct {
	stack []int64
}

func (c *exprCollector) Push(values ...any) {
	if len(values) != 1 {
		return
	}
	if n, ok := values[0].(int64); ok {
		c.stack = append(c.stack, n)
		return
	}
	tag, ok := values[0].(opTag)
	if !ok {
		return
	}
	switch tag {
	case negTag:
		c.stack = append(c.stack, -c.pop())
	case '+':
		r, l := c.pop(), c.pop()
		c.stack = append(c.stack, l+r)
	case '-':
		r, l := c.pop(), c.pop()
		c.stack = append(c.stack, l-r)
	case '*':
		r, l := c.pop(), c.pop()
		c.stack = append(c.stack, l*r)
	case '/':
		r, l := c.pop(), c.pop()
		c.stack = append(c.stack, l/r)
	}
}

func (c *exprCollector) pop() int64 {
	n := len(c.stack)
	v := c.stack[n-1]
	c.stack = c.stack[:n-1]
	return v
}

func (c *exprCollector) SetLocation(combinator.Span) {}

func (c *exprCollector) Retrieve(outer combinator.Callback) {
	outer.Push(c.stack[len(c.stack)-1])
}

func digitParser() combinator.Parser {
	isDigit := func(b byte) bool { return b >= '0' && b <= '9' }
	return combinator.Map(
		combinator.ToString(combinator.Repetition(combinator.CharClass(isDigit))),
		combinator.MapperFunc(func(cb combinator.Callback, args ...any) {
			n, _ := strconv.ParseInt(string(args[0].([]byte)), 10, 64)
			cb.Push(n)
		}),
	)
}

func binaryOp(b byte) pratt.Operator {
	return pratt.Operator{
		Kind:   pratt.OpInfixLTR,
		Parser: combinator.Byte(b),
		Map: func(cb combinator.Callback) {
			cb.Push(opTag(b))
		},
	}
}

func calcGrammar() pratt.Pratt {
	return pratt.MustCompile(pratt.Pratt{
		NewCollector: func() combinator.Collector { return &exprCollector{} },
		Levels: []pratt.Level{
			{binaryOp('+'), binaryOp('-')},
			{binaryOp('*'), binaryOp('/')},
			{
				{
					Kind:   pratt.OpPrefix,
					Parser: combinator.Byte('-'),
					Map: func(cb combinator.Callback) {
						cb.Push(negTag)
					},
				},
			},
			{{Kind: pratt.OpTerminal, Parser: digitParser()}},
		},
	})
}

func evalInput(t *testing.T, in string) (combinator.Result, int64) {
	t.Helper()
	src := source.FromBytes("t", []byte(in))
	var result int64
	res, _, _ := combinator.Run(calcGrammar(), src, combinator.GetValue[int64]{Slot: &result})
	if res != combinator.Success {
		return res, 0
	}
	return res, result
}

func TestPrattPrecedence(t *testing.T) {
	data := []struct {
		In   string
		Want int64
	}{
		{"1+2", 3},
		{"2*3+4", 10},
		{"2+3*4", 14},
	}
	for _, d := range data {
		res, got := evalInput(t, d.In)
		if res != combinator.Success {
			t.Fatalf("%q: want Success, got %s", d.In, res)
		}
		if got != d.Want {
			t.Errorf("%q: want %d, got %d", d.In, d.Want, got)
		}
	}
}

func TestPrattLeftAssociativity(t *testing.T) {
	// a-b-c groups as (a-b)-c, not a-(b-c); right-assoc would give
	// 10-(2-3)=11 instead of (10-2)-3=5.
	res, got := evalInput(t, "10-2-3")
	if res != combinator.Success {
		t.Fatalf("want Success, got %s", res)
	}
	if got != 5 {
		t.Errorf("want (10-2)-3=5, got %d", got)
	}
}

func TestPrattPrefixMinus(t *testing.T) {
	res, got := evalInput(t, "2*-3")
	if res != combinator.Success {
		t.Fatalf("want Success, got %s", res)
	}
	if got != -6 {
		t.Errorf("want -6, got %d", got)
	}
}

// powCollector backs the RTL test below: '^' needs real exponentiation
// (rather than e.g. subtraction) so left- and right-associative
// groupings of the same input produce visibly different results.
type powCollector struct {
	stack []int64
}

func (c *powCollector) Push(values ...any) {
	if len(values) != 1 {
		return
	}
	if n, ok := values[0].(int64); ok {
		c.stack = append(c.stack, n)
		return
	}
	if _, ok := values[0].(opTag); ok {
		r, l := c.pop(), c.pop()
		var p int64 = 1
		for i := int64(0); i < r; i++ {
			p *= l
		}
		c.stack = append(c.stack, p)
	}
}

func (c *powCollector) pop() int64 {
	n := len(c.stack)
	v := c.stack[n-1]
	c.stack = c.stack[:n-1]
	return v
}

func (c *powCollector) SetLocation(combinator.Span) {}

func (c *powCollector) Retrieve(outer combinator.Callback) {
	outer.Push(c.stack[len(c.stack)-1])
}

func powGrammar() pratt.Pratt {
	return pratt.MustCompile(pratt.Pratt{
		NewCollector: func() combinator.Collector { return &powCollector{} },
		Levels: []pratt.Level{
			{
				{
					Kind:   pratt.OpInfixRTL,
					Parser: combinator.Byte('^'),
					Map: func(cb combinator.Callback) {
						cb.Push(opTag('^'))
					},
				},
			},
			{{Kind: pratt.OpTerminal, Parser: digitParser()}},
		},
	})
}

func TestPrattRightAssociativity(t *testing.T) {
	// 2^3^2 must group as 2^(3^2)=2^9=512, the right-associative reading.
	// Left-associative grouping would instead give (2^3)^2=8^2=64.
	src := source.FromBytes("t", []byte("2^3^2"))
	var result int64
	res, _, _ := combinator.Run(powGrammar(), src, combinator.GetValue[int64]{Slot: &result})
	if res != combinator.Success {
		t.Fatalf("want Success, got %s", res)
	}
	if result != 512 {
		t.Errorf("want 2^(3^2)=512, got %d", result)
	}
}

// bangCollector backs the postfix test: '!' consumes its single left
// operand and pushes a derived value with no right operand at all,
// the shape pratt.OpPostfix exists for.
type bangCollector struct {
	stack []int64
}

func (c *bangCollector) Push(values ...any) {
	if len(values) != 1 {
		return
	}
	if n, ok := values[0].(int64); ok {
		c.stack = append(c.stack, n)
		return
	}
	if _, ok := values[0].(opTag); ok {
		n := len(c.stack)
		v := c.stack[n-1]
		var f int64 = 1
		for i := int64(2); i <= v; i++ {
			f *= i
		}
		c.stack[n-1] = f
	}
}

func (c *bangCollector) SetLocation(combinator.Span) {}

func (c *bangCollector) Retrieve(outer combinator.Callback) {
	outer.Push(c.stack[len(c.stack)-1])
}

func bangGrammar() pratt.Pratt {
	return pratt.MustCompile(pratt.Pratt{
		NewCollector: func() combinator.Collector { return &bangCollector{} },
		Levels: []pratt.Level{
			{
				{
					Kind:   pratt.OpPostfix,
					Parser: combinator.Byte('!'),
					Map: func(cb combinator.Callback) {
						cb.Push(opTag('!'))
					},
				},
			},
			{{Kind: pratt.OpTerminal, Parser: digitParser()}},
		},
	})
}

func TestPrattPostfix(t *testing.T) {
	src := source.FromBytes("t", []byte("4!"))
	var result int64
	res, _, _ := combinator.Run(bangGrammar(), src, combinator.GetValue[int64]{Slot: &result})
	if res != combinator.Success {
		t.Fatalf("want Success, got %s", res)
	}
	if result != 24 {
		t.Errorf("want 4!=24, got %d", result)
	}
}
