package buffer

// Cursor is the logical (x, y) position inside a Buffer: y indexes a
// logical line, x indexes a character within it (spec.md §3, I2).
type Cursor struct {
	X int
	Y int
}

// Clamp constrains the cursor into a buffer that may have shrunk:
// y first, then x against the (possibly different) line at the
// clamped y, matching the clamp order spec.md §4.1(d) requires.
func (c *Cursor) Clamp(b *Buffer) {
	if c.Y < 0 {
		c.Y = 0
	}
	if last := b.Len() - 1; c.Y > last {
		c.Y = last
	}
	if c.X < 0 {
		c.X = 0
	}
	if lineLen := len([]rune(b.Line(c.Y))); c.X > lineLen {
		c.X = lineLen
	}
}
