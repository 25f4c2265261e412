package lang

import (
	"github.com/midbel/moebius/combinator"
	"github.com/midbel/moebius/diagnostic"
	"github.com/midbel/moebius/source"
)

// ParseProgram implements the host-facing contract of
// parse(grammar, source) -> (Result, final_cursor, optional diagnostic),
// specialized to the Moebius expression grammar.
func ParseProgram(src *source.Source) (Expr, combinator.Result, *diagnostic.Diagnostic) {
	var result Expr
	res, _, srcDiag := combinator.Run(program, src, combinator.GetValue[Expr]{Slot: &result})
	if srcDiag == nil {
		return result, res, nil
	}
	d := diagnostic.FromCursor(srcDiag)
	return result, res, &d
}

// ParseExpr parses a single expression without requiring it to
// consume the entire input, used by callers (e.g. the REPL) that
// want the trailing-garbage check on their own terms.
func ParseExpr(src *source.Source) (Expr, combinator.Result, *diagnostic.Diagnostic) {
	var result Expr
	res, _, srcDiag := combinator.Run(exprGrammar, src, combinator.GetValue[Expr]{Slot: &result})
	if srcDiag == nil {
		return result, res, nil
	}
	d := diagnostic.FromCursor(srcDiag)
	return result, res, &d
}
