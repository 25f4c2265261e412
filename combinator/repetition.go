package combinator

import "github.com/midbel/moebius/source"

type repetition struct {
	body Parser
}

// Repetition matches body zero or more times and never Fails. body is
// normalized through Lift, so a bare predicate function can be passed
// directly: Repetition(isDigit) instead of Repetition(CharClass(isDigit)).
// If an iteration Succeeds without advancing the cursor, Repetition
// commits a diagnostic and reports Error rather than looping forever.
func Repetition(body any) Parser {
	return repetition{body: Lift(body)}
}

func (p repetition) Parse(ctx *source.Cursor, cb Callback) Result {
	for {
		before := ctx.Offset()
		switch p.body.Parse(ctx, cb) {
		case Success:
			if ctx.Offset() == before {
				ctx.SetDiagnostic("repetition body must consume input")
				return Error
			}
		case Error:
			return Error
		default:
			return Success
		}
	}
}
