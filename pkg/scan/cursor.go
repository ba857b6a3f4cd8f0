// Package scan provides the positioned character cursor the recognizers
// operate on. A Cursor owns a byte position into an immutable input string;
// callers save a mark before a speculative parse and restore it on failure.
package scan

// Cursor is a position into an input string.
type Cursor struct {
	input string
	pos   int
}

// New creates a cursor at the start of input.
func New(input string) *Cursor {
	return &Cursor{input: input}
}

// Peek returns the byte at the cursor without consuming it.
// Returns false at end of input.
func (c *Cursor) Peek() (byte, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	return c.input[c.pos], true
}

// Next consumes and returns the byte at the cursor.
// Returns false at end of input.
func (c *Cursor) Next() (byte, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	ch := c.input[c.pos]
	c.pos++
	return ch, true
}

// EOF reports whether the cursor has reached the end of input.
func (c *Cursor) EOF() bool {
	return c.pos >= len(c.input)
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Mark saves the current position for a later ResetTo.
func (c *Cursor) Mark() int {
	return c.pos
}

// ResetTo restores a position previously returned by Mark.
func (c *Cursor) ResetTo(mark int) {
	c.pos = mark
}

// Rest returns the unconsumed remainder of the input.
func (c *Cursor) Rest() string {
	return c.input[c.pos:]
}

// Advance moves the cursor forward by n bytes, clamped to end of input.
func (c *Cursor) Advance(n int) {
	c.pos += n
	if c.pos > len(c.input) {
		c.pos = len(c.input)
	}
}

// Slice returns the input between two positions.
func (c *Cursor) Slice(from, to int) string {
	return c.input[from:to]
}

// TakeWhile consumes the longest run of bytes satisfying pred and
// returns it. The run may be empty.
func (c *Cursor) TakeWhile(pred func(byte) bool) string {
	start := c.pos
	for c.pos < len(c.input) && pred(c.input[c.pos]) {
		c.pos++
	}
	return c.input[start:c.pos]
}

// SkipSpace advances past ASCII whitespace.
func (c *Cursor) SkipSpace() {
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			c.pos++
		default:
			return
		}
	}
}
