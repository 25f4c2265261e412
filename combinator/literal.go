package combinator

import "github.com/midbel/moebius/source"

type literal struct {
	want []byte
}

// Literal matches a byte sequence exactly, all-or-nothing: on a
// partial match the cursor is left untouched and Failure is reported.
func Literal(want []byte) Parser {
	return literal{want: want}
}

func (p literal) Parse(ctx *source.Cursor, cb Callback) Result {
	cp := ctx.Save()
	for _, want := range p.want {
		b, ok := ctx.Peek()
		if !ok || b != want {
			ctx.Restore(cp)
			return Failure
		}
		ctx.Advance()
	}
	cb.Push(ctx.Slice(cp))
	return Success
}
