package combinator

// IgnoreCallback swallows every push. It backs Not, Peek, Ignore, and
// Expect, which never need to surface values to their surrounding
// scope.
type IgnoreCallback struct{}

func (IgnoreCallback) Push(values ...any) {}
func (IgnoreCallback) SetLocation(Span)   {}

// GetValue assigns the last pushed value into Slot. It is the
// simplest consumer: a single-value grammar rule with no collector.
type GetValue[T any] struct {
	Slot *T
}

func (g GetValue[T]) Push(values ...any) {
	for _, v := range values {
		if t, ok := v.(T); ok {
			*g.Slot = t
		}
	}
}

func (g GetValue[T]) SetLocation(Span) {}

// Mapper transforms pushes before they reach an inner callback. Map
// combinators call T.Map for every push.
type Mapper interface {
	Map(cb Callback, args ...any)
}

// MapperFunc adapts a plain function to Mapper.
type MapperFunc func(cb Callback, args ...any)

func (f MapperFunc) Map(cb Callback, args ...any) {
	f(cb, args...)
}

// MapCallback forwards every push through a Mapper before it reaches
// Inner, enabling e.g. wrapping a binary-operator's operands with a
// tag that a collector can discriminate on.
type MapCallback struct {
	Inner  Callback
	Mapper Mapper
}

func (m MapCallback) Push(values ...any) {
	m.Mapper.Map(m.Inner, values...)
}

func (m MapCallback) SetLocation(span Span) {
	m.Inner.SetLocation(span)
}

// Collector accumulates the pushes of a sub-parse and, on success,
// finalizes exactly one value for the enclosing scope.
type Collector interface {
	Callback
	// Retrieve finalizes the collector's accumulated state and
	// forwards the built value to outer. Called at most once, only
	// on a Success.
	Retrieve(outer Callback)
}

// CollectCallback routes pushes into a Collector instead of the
// enclosing scope's callback.
type CollectCallback struct {
	Collector Collector
}

func (c CollectCallback) Push(values ...any) {
	c.Collector.Push(values...)
}

func (c CollectCallback) SetLocation(span Span) {
	c.Collector.SetLocation(span)
}

// TagCallback places a marker value ahead of the values of every
// forwarded push, letting a shared collector discriminate which
// grammar alternative produced a given push. It backs Tag; the Pratt
// engine does not use it.
type TagCallback[T any] struct {
	Inner Callback
	Tag   T
}

func (t TagCallback[T]) Push(values ...any) {
	t.Inner.Push(append([]any{t.Tag}, values...)...)
}

func (t TagCallback[T]) SetLocation(span Span) {
	t.Inner.SetLocation(span)
}
