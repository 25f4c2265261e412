package lang

import (
	"strconv"

	"github.com/midbel/moebius/combinator"
	"github.com/midbel/moebius/pratt"
	"github.com/midbel/moebius/source"
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func anyByte(byte) bool { return true }

// comment matches a "//" line comment or a "/* */" block comment.
func comment() combinator.Parser {
	line := combinator.Sequence("//", combinator.Repetition(combinator.Sequence(combinator.Not(combinator.Byte('\n')), anyByte)))
	block := combinator.Sequence("/*", combinator.Repetition(combinator.Sequence(combinator.Not(combinator.Literal([]byte("*/"))), anyByte)), combinator.Expect([]byte("*/")))
	return combinator.Choice(line, block)
}

// skipSpace consumes a run of whitespace interleaved with comments
// and never fails; grounded on original_source/moebius.cpp's
// WhiteSpace rule, which the distilled grammar had dropped entirely.
func skipSpace() combinator.Parser {
	return combinator.Ignore(combinator.Sequence(
		combinator.Repetition(isSpace),
		combinator.Repetition(combinator.Sequence(comment(), combinator.Repetition(isSpace))),
	))
}

// Digits is the named-rule convention's entry for a run of decimal
// digits: any type exposing Self can be wired through
// combinator.RuleRef ahead of its own definition site, which is how
// Primary below reaches Digits and Identifier without caring in what
// order this file defines them.
type Digits struct{}

func (Digits) Self() combinator.Parser {
	return combinator.ToString(combinator.Sequence(isDigit, combinator.Repetition(isDigit)))
}

func numberRule() combinator.Parser {
	return combinator.Map(combinator.RuleRef(Digits{}), combinator.MapperFunc(func(cb combinator.Callback, args ...any) {
		n, _ := strconv.ParseInt(string(args[0].([]byte)), 10, 64)
		cb.Push(Expr(Number{Value: n}))
	}))
}

// Identifier is the named-rule for a bare identifier: a letter or
// underscore followed by any number of letters, digits, or
// underscores.
type Identifier struct{}

func (Identifier) Self() combinator.Parser {
	return combinator.ToString(combinator.Sequence(isIdentStart, combinator.Repetition(isIdentPart)))
}

func identifierRule() combinator.Parser {
	return combinator.Map(combinator.RuleRef(Identifier{}), combinator.MapperFunc(func(cb combinator.Callback, args ...any) {
		cb.Push(Expr(Ident{Name: string(args[0].([]byte))}))
	}))
}

// tok skips surrounding whitespace/comments around a fixed piece of
// punctuation, surfacing none of Expect's own pushes to the
// surrounding collector, the Go shape of int_calculator.cpp's
// `op(p) = sequence(white_space, ignore(p), white_space)`.
func tok(s string) combinator.Parser {
	return combinator.Sequence(skipSpace(), combinator.Ignore(combinator.Expect([]byte(s))), skipSpace())
}

// Primary is the named-rule for a single operand: a number, an
// identifier, or a fully parenthesized expression. The parenthesized
// case is where the grammar is genuinely recursive; Primary reaches
// back to ExprRule before ExprRule's own definition is reached, which
// is exactly what Self()/RuleRef exist to allow. Leading whitespace
// is skipped here rather than by every caller, so it is consumed
// exactly once per operand regardless of which Pratt level reaches it.
type Primary struct{}

func (Primary) Self() combinator.Parser {
	return combinator.Sequence(skipSpace(), combinator.Choice(
		numberRule(),
		identifierRule(),
		combinator.Sequence(combinator.Ignore(combinator.Byte('(')), combinator.RuleRef(ExprRule{}), tok(")")),
		combinator.ErrorParser("expected an expression"),
	))
}

// opToken matches a single operator byte, skipping any whitespace or
// comment that precedes it so "a + b" and "a+b" parse identically.
func opToken(b byte) combinator.Parser {
	return combinator.Sequence(skipSpace(), combinator.Byte(b))
}

func binaryOperator(b byte) pratt.Operator {
	return pratt.Operator{
		Kind:   pratt.OpInfixLTR,
		Parser: opToken(b),
		Map: func(cb combinator.Callback) {
			cb.Push(opTag(b))
		},
	}
}

// ExprRule is the named-rule for a full Moebius expression: the Pratt
// engine over Primary. Named ExprRule rather than bare Expr so it
// does not collide with the lang.Expr AST interface declared in
// ast.go.
type ExprRule struct{}

func (ExprRule) Self() combinator.Parser { return exprGrammar }

var exprGrammar = buildGrammar()

func buildGrammar() pratt.Pratt {
	return pratt.MustCompile(pratt.Pratt{
		NewCollector: newExprCollector,
		Levels: []pratt.Level{
			{binaryOperator('+'), binaryOperator('-')},
			{
				binaryOperator('*'), binaryOperator('/'),
				{
					Kind:   pratt.OpPrefix,
					Parser: opToken('-'),
					Map: func(cb combinator.Callback) {
						cb.Push(unaryMinusTag)
					},
				},
			},
			{{Kind: pratt.OpTerminal, Parser: combinator.RuleRef(Primary{})}},
		},
	})
}

func atEndOfInput() combinator.Parser {
	return combinator.ParserFunc(func(ctx *source.Cursor, cb combinator.Callback) combinator.Result {
		if ctx.AtEnd() {
			return combinator.Success
		}
		return combinator.Failure
	})
}

// ProgramRule is the named-rule for a full program: a single
// expression that must consume the whole input, or a committed
// diagnostic at the first unexpected trailing byte.
type ProgramRule struct{}

func (ProgramRule) Self() combinator.Parser {
	return combinator.Sequence(
		combinator.RuleRef(ExprRule{}),
		skipSpace(),
		combinator.Choice(atEndOfInput(), combinator.ErrorParser("unexpected character at end of program")),
	)
}

var program = ProgramRule{}.Self()

// Grammar exposes the expression-level rule for embedding in larger
// grammars; it implements combinator.Parser directly (Pratt.Parse).
func Grammar() pratt.Pratt {
	return exprGrammar
}
