package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"bigcalc/internal/source"
)

// Cursor is a byte position inside one registered input.
type Cursor struct {
	Input *source.Input
	Off   uint32
	limit uint32
}

// NewCursor creates a cursor at the start of the input.
func NewCursor(in *source.Input) Cursor {
	limit, err := safecast.Conv[uint32](len(in.Content))
	if err != nil {
		panic(fmt.Errorf("input length overflow: %w", err))
	}
	return Cursor{Input: in, Off: 0, limit: limit}
}

// EOF reports whether the cursor has consumed the whole input.
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit
}

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Input.Content[c.Off]
}

// Peek2 returns the current and next byte; ok is false when fewer than two
// bytes remain.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.limit {
		return 0, 0, false
	}
	return c.Input.Content[c.Off], c.Input.Content[c.Off+1], true
}

// Bump advances one byte and returns it, or 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Input.Content[c.Off]
	c.Off++
	return b
}

// Mark saves a position so a Span can be cut later.
type Mark uint32

// Mark returns the current position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom returns the span from a mark to the current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		Input: c.Input.ID,
		Start: uint32(m),
		End:   c.Off,
	}
}
