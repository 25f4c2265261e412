package combinator

// Lift normalizes the values callers commonly want to drop into a
// grammar position (a raw byte, a string/[]byte literal, a predicate
// function, or an already-built Parser) into the closed Parser
// family. Sequence, Choice and Repetition apply it to their operands,
// so `Sequence(byte('('), ...)` reads naturally without every caller
// wrapping Byte/Literal by hand. An untyped rune constant such as '('
// is a rune, not a byte, and is not accepted.
func Lift(v any) Parser {
	switch t := v.(type) {
	case Parser:
		return t
	case byte:
		return Byte(t)
	case string:
		return Literal([]byte(t))
	case []byte:
		return Literal(t)
	case func(byte) bool:
		return CharClass(t)
	default:
		panic("combinator: cannot lift value into a Parser")
	}
}

// LiftAll maps Lift over a slice of heterogeneous grammar operands.
func LiftAll(vs ...any) []Parser {
	ps := make([]Parser, len(vs))
	for i, v := range vs {
		ps[i] = Lift(v)
	}
	return ps
}
