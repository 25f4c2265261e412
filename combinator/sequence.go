package combinator

import "github.com/midbel/moebius/source"

type sequence struct {
	parsers []Parser
}

// Sequence matches each operand in order. Each operand may be a
// Parser, a raw byte, a byte string, or a byte predicate; Lift
// normalizes it into a Parser before matching starts, so grammar
// definitions can write Sequence(byte('('), RuleRef(ExprRule{}), byte(')'))
// instead of wrapping every piece of punctuation by hand.
//
// If any member Fails, the cursor is restored to the sequence's entry
// point and Failure is reported, unless a descendant has committed a
// diagnostic, in which case the commit rule forbids restoring and the
// sequence reports Error instead.
func Sequence(operands ...any) Parser {
	return sequence{parsers: LiftAll(operands...)}
}

func (p sequence) Parse(ctx *source.Cursor, cb Callback) Result {
	cp := ctx.Save()
	for _, parser := range p.parsers {
		switch parser.Parse(ctx, cb) {
		case Success:
			continue
		case Error:
			return Error
		default:
			if ctx.Committed() {
				return Error
			}
			ctx.Restore(cp)
			return Failure
		}
	}
	return Success
}
