package redit

import "fmt"

// Terminal control sequence builders (spec.md §6). Every sequence is a
// standard ANSI/VT100 CSI escape; no other control sequences are
// emitted anywhere in this module.

// CSIHideCursor returns the sequence that hides the real cursor.
func CSIHideCursor() string { return "\x1b[?25l" }

// CSIShowCursor returns the sequence that shows the real cursor.
func CSIShowCursor() string { return "\x1b[?25h" }

// CSIMoveUp returns the sequence moving the cursor up n rows. n <= 0
// produces no motion.
func CSIMoveUp(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%dA", n)
}

// CSIMoveDown returns the sequence moving the cursor down n rows.
func CSIMoveDown(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%dB", n)
}

// CSIMoveRight returns the sequence moving the cursor right n columns.
func CSIMoveRight(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%dC", n)
}

// CSIMoveLeft returns the sequence moving the cursor left n columns.
func CSIMoveLeft(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%dD", n)
}

// CSIMoveToColumn returns the sequence jumping to the 0-indexed
// absolute column col without changing the current row (VT100 CHA).
func CSIMoveToColumn(col int) string {
	return fmt.Sprintf("\x1b[%dG", col+1)
}

// CSIMoveToRow returns the sequence jumping to the 0-indexed absolute
// row without changing the current column (VT100 VPA).
func CSIMoveToRow(row int) string {
	return fmt.Sprintf("\x1b[%dd", row+1)
}

// CSIMoveTo returns the sequence jumping to the 0-indexed absolute
// (row, col) position (VT100 CUP).
func CSIMoveTo(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row+1, col+1)
}

// CSIClearToEndOfLine returns the sequence erasing from the cursor to
// the end of the current line.
func CSIClearToEndOfLine() string { return "\x1b[K" }

// CSIClearScreenDown returns the sequence erasing from the cursor to
// the end of the screen.
func CSIClearScreenDown() string { return "\x1b[J" }

// SGRReset returns the sequence resetting all SGR attributes.
func SGRReset() string { return "\x1b[0m" }

// relativeMotion composes the CSI sequence that moves the real cursor
// by (dx, dy): dy > 0 is down, dy < 0 is up; dx > 0 is right, dx < 0
// is left. Either component may be zero.
func relativeMotion(dx, dy int) string {
	var s string
	switch {
	case dy > 0:
		s += CSIMoveDown(dy)
	case dy < 0:
		s += CSIMoveUp(-dy)
	}
	switch {
	case dx > 0:
		s += CSIMoveRight(dx)
	case dx < 0:
		s += CSIMoveLeft(-dx)
	}
	return s
}

// RelativeMotion is the exported form of relativeMotion, used by the
// editor package to walk the real cursor between navigation
// positions without a full repaint (spec.md §4.3).
func RelativeMotion(dx, dy int) string { return relativeMotion(dx, dy) }
