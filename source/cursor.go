package source

// Diagnostic is the single committed parse error a Cursor may carry.
// At most one is ever active: once set, it sticks across restores.
type Diagnostic struct {
	Path    string
	Offset  int
	Message string
}

// Checkpoint is an O(1) save point for a Cursor. Restoring a Cursor to
// a Checkpoint rewinds its offset but never clears a diagnostic that
// has since been committed: commit is cross-cutting state that
// outlives backtracking.
type Checkpoint struct {
	offset int
}

// Cursor is the sole mutable state of a parse: a byte offset into a
// Source plus an optional committed Diagnostic. A Cursor never
// advances past the end of its Source.
type Cursor struct {
	src    *Source
	offset int
	diag   *Diagnostic
}

func NewCursor(src *Source) *Cursor {
	return &Cursor{src: src}
}

func (c *Cursor) Source() *Source {
	return c.src
}

func (c *Cursor) Offset() int {
	return c.offset
}

// Peek returns the byte at the current offset. ok is false at
// end-of-source.
func (c *Cursor) Peek() (byte, bool) {
	data := c.src.Bytes()
	if c.offset >= len(data) {
		return 0, false
	}
	return data[c.offset], true
}

// Advance moves the cursor forward by one byte. It is a no-op at
// end-of-source.
func (c *Cursor) Advance() {
	if c.offset < c.src.Len() {
		c.offset++
	}
}

// AdvanceBy moves the cursor forward by n bytes, clamped to the end of
// the source.
func (c *Cursor) AdvanceBy(n int) {
	c.offset += n
	if c.offset > c.src.Len() {
		c.offset = c.src.Len()
	}
}

func (c *Cursor) Save() Checkpoint {
	return Checkpoint{offset: c.offset}
}

func (c *Cursor) Restore(cp Checkpoint) {
	c.offset = cp.offset
}

// Slice returns the bytes between cp and the cursor's current offset.
func (c *Cursor) Slice(cp Checkpoint) []byte {
	return c.src.Bytes()[cp.offset:c.offset]
}

// SetDiagnostic commits a diagnostic at the current offset. First
// write wins: once a diagnostic is set it is never overwritten or
// cleared by SetDiagnostic or Restore.
func (c *Cursor) SetDiagnostic(message string) {
	if c.diag != nil {
		return
	}
	c.diag = &Diagnostic{Path: c.src.Path(), Offset: c.offset, Message: message}
}

func (c *Cursor) Diagnostic() *Diagnostic {
	return c.diag
}

func (c *Cursor) Committed() bool {
	return c.diag != nil
}

func (c *Cursor) Position() Position {
	return c.src.Position(c.offset)
}

func (c *Cursor) AtEnd() bool {
	return c.offset >= c.src.Len()
}
