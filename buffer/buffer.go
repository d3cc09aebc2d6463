// Package buffer implements the ordered sequence of logical lines that
// backs a redit editor, plus the logical cursor tied to it (spec.md §3,
// §4.1).
package buffer

import (
	"fmt"
	"strings"
)

// Buffer is an ordered sequence of logical lines. It is never empty;
// the empty-expression state is a single empty line (I1).
type Buffer struct {
	lines []string
}

// New returns a Buffer containing a single empty logical line.
func New() *Buffer {
	return &Buffer{lines: []string{""}}
}

// Replace substitutes the buffer's contents wholesale. An empty lines
// slice is normalized to a single empty line so I1 always holds.
func (b *Buffer) Replace(lines []string) {
	if len(lines) == 0 {
		b.lines = []string{""}
		return
	}
	cp := make([]string, len(lines))
	copy(cp, lines)
	b.lines = cp
}

// Clear resets the buffer to a single empty logical line.
func (b *Buffer) Clear() {
	b.lines = []string{""}
}

// Len returns the number of logical lines.
func (b *Buffer) Len() int { return len(b.lines) }

// Line returns the logical line at index y. It panics if y is out of
// range; callers are expected to keep y within [0, Len()) via Cursor.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= len(b.lines) {
		panic(fmt.Sprintf("buffer: line index %d out of range [0, %d)", y, len(b.lines)))
	}
	return b.lines[y]
}

// Lines returns a copy of all logical lines.
func (b *Buffer) Lines() []string {
	cp := make([]string, len(b.lines))
	copy(cp, b.lines)
	return cp
}

// setLine replaces the logical line at index y.
func (b *Buffer) setLine(y int, s string) {
	b.lines[y] = s
}

// insertLineAt inserts s as a new logical line at index y, shifting
// subsequent lines down.
func (b *Buffer) insertLineAt(y int, s string) {
	b.lines = append(b.lines, "")
	copy(b.lines[y+1:], b.lines[y:])
	b.lines[y] = s
}

// removeLineAt deletes the logical line at index y.
func (b *Buffer) removeLineAt(y int) {
	b.lines = append(b.lines[:y], b.lines[y+1:]...)
}

// Join returns the expression with logical lines separated by '\n'
// (the Editor-level "expression" getter of spec.md §6).
func (b *Buffer) Join() string {
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l)
	}
	return sb.String()
}
