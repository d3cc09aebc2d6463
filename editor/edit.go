package editor

import "github.com/cliofy/redit/buffer"

// Edit primitives (spec.md §4.1, §6). Each delegates to the
// corresponding redit/buffer free function. They must only be called
// from within the closure passed to Update: the envelope is what
// clamps the cursor, invalidates caches, and repaints afterward.

// InsertChar appends r at the cursor, advancing it by one column. A
// line-break character starts a new line instead; an ASCII control
// character other than line break is dropped.
func (e *Editor) InsertChar(r rune) { buffer.InsertChar(e.buf, &e.cursor, r) }

// InsertString applies InsertChar to every scalar of s in order.
func (e *Editor) InsertString(s string) { buffer.InsertString(e.buf, &e.cursor, s) }

// InsertNewLine splits the current line at the cursor, indenting the
// new line by 2*indent spaces.
func (e *Editor) InsertNewLine(indent int) { buffer.InsertNewLine(e.buf, &e.cursor, indent) }

// DeleteForward removes the character at the cursor, or joins the
// next line onto the current one at the end of the line.
func (e *Editor) DeleteForward() { buffer.DeleteForward(e.buf, &e.cursor) }

// Backspace removes the character before the cursor, or joins the
// current line onto the previous one at column 0.
func (e *Editor) Backspace() { buffer.Backspace(e.buf, &e.cursor) }

// ClearExpression resets the buffer to a single empty logical line.
func (e *Editor) ClearExpression() { e.buf.Clear() }

// Replace substitutes the buffer wholesale inside its own Update
// envelope (spec.md §4.1 "replace(lines)").
func (e *Editor) Replace(lines []string) error {
	return e.Update(func() { e.buf.Replace(lines) })
}

// PromptNext starts a fresh expression: scroll, buffer, cursor, and
// caches reset, then the prompt for line 0 is printed and its
// uncolored width recorded as the prompt width (spec.md §4.7).
func (e *Editor) PromptNext() error {
	e.scroll = 0
	e.buf = buffer.New()
	e.cursor = buffer.Cursor{}
	e.invalidateCache()
	e.everPainted = false
	e.lastPaintedHeight = 0
	e.paintedX, e.paintedY = 0, 0
	e.headerHeight = 0

	uncolored, err := e.prompt(0, false)
	if err != nil {
		return err
	}
	e.promptWidth = len([]rune(uncolored))

	display := uncolored
	if e.colorEnabled {
		display, err = e.prompt(0, true)
		if err != nil {
			return err
		}
	}
	return e.emit(display)
}

// EndEditing forces a full-view repaint, optionally replacing the
// buffer first, moves the logical cursor to the end of the expression
// without scrolling, and emits a final line feed so the prompt
// detaches cleanly (spec.md §4.8).
func (e *Editor) EndEditing(replacement ...[]string) error {
	if len(replacement) > 0 {
		e.buf.Replace(replacement[0])
		e.invalidateCache()
	}

	y := e.buf.Len() - 1
	x := len([]rune(e.buf.Line(y)))
	e.cursor.X, e.cursor.Y = x, y

	if err := e.Render(true); err != nil {
		return err
	}
	return e.emit("\n")
}
