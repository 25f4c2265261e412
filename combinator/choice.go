package combinator

import "github.com/midbel/moebius/source"

type choice struct {
	parsers []Parser
}

// Choice tries each operand in order and commits to the first that
// does not Fail. Only the winning alternative's pushes reach cb. Like
// Sequence, each operand is normalized through Lift before matching,
// so a raw byte or string literal can stand in for an alternative
// directly.
func Choice(operands ...any) Parser {
	return choice{parsers: LiftAll(operands...)}
}

func (p choice) Parse(ctx *source.Cursor, cb Callback) Result {
	for _, parser := range p.parsers {
		switch res := parser.Parse(ctx, cb); res {
		case Success:
			return Success
		case Error:
			return Error
		default:
			if ctx.Committed() {
				return Error
			}
		}
	}
	return Failure
}
