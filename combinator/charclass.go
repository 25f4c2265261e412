package combinator

import "github.com/midbel/moebius/source"

type charClass struct {
	pred func(byte) bool
}

// CharClass matches and consumes exactly one byte satisfying pred,
// pushing the matched byte.
func CharClass(pred func(byte) bool) Parser {
	return charClass{pred: pred}
}

func (p charClass) Parse(ctx *source.Cursor, cb Callback) Result {
	b, ok := ctx.Peek()
	if !ok || !p.pred(b) {
		return Failure
	}
	ctx.Advance()
	cb.Push(b)
	return Success
}

// Byte matches a single specific byte.
func Byte(want byte) Parser {
	return CharClass(func(b byte) bool { return b == want })
}
