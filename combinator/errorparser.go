package combinator

import "github.com/midbel/moebius/source"

type errorParser struct {
	message string
}

// ErrorParser unconditionally commits a diagnostic at the current
// position and reports Error. It is typically placed as the last arm
// of a Choice to turn "no alternative matched" into a precise
// diagnostic instead of a bare Failure.
func ErrorParser(message string) Parser {
	return errorParser{message: message}
}

func (p errorParser) Parse(ctx *source.Cursor, cb Callback) Result {
	ctx.SetDiagnostic(p.message)
	return Error
}

type expect struct {
	want []byte
}

// Expect behaves like Literal but promotes a miss to a committed
// Error with an "expected `...`" message, marking this as a point
// the grammar author has chosen not to backtrack past.
func Expect(want []byte) Parser {
	return expect{want: want}
}

func (p expect) Parse(ctx *source.Cursor, cb Callback) Result {
	cp := ctx.Save()
	for _, want := range p.want {
		b, ok := ctx.Peek()
		if !ok || b != want {
			ctx.Restore(cp)
			ctx.SetDiagnostic("expected `" + string(p.want) + "`")
			return Error
		}
		ctx.Advance()
	}
	cb.Push(ctx.Slice(cp))
	return Success
}
