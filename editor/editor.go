// Package editor implements the Editor facade: the top-level type that
// owns a buffer, logical cursor, scroll offset, and render caches, and
// coordinates them through the transactional Update envelope (spec.md
// §3, §4.1, §5).
package editor

import (
	"fmt"
	"io"
	"strings"

	"github.com/cliofy/redit"
	"github.com/cliofy/redit/buffer"
)

// Editor is a single editing session. It is not safe for concurrent
// use (spec.md §5): all mutation and rendering happens on the caller's
// single thread.
type Editor struct {
	buf    *buffer.Buffer
	cursor buffer.Cursor

	scroll       int
	promptWidth  int
	headerHeight int

	widthOverride, heightOverride int

	prompt    redit.PromptFunc
	header    redit.HeaderFunc
	highlight redit.HighlightFunc
	adapter   redit.TerminalAdapter
	sink      io.Writer

	colorEnabled bool

	// caches, invalidated by invalidateCache() (spec.md §3 "Caches").
	joinedValid  bool
	cachedJoined string

	heightValid  bool
	cachedWidth  int
	cachedHeight int

	coloredValid  bool
	cachedColored []string

	// last-painted logical position, used by Render to walk the real
	// cursor back to the logical cursor (spec.md §4.5 step 6).
	paintedX, paintedY int
	everPainted        bool
	lastPaintedHeight  int
}

// Option configures optional Editor behavior at construction time.
type Option func(*Editor)

// WithHeader installs a header callback (default: redit.NoopHeader).
func WithHeader(h redit.HeaderFunc) Option {
	return func(e *Editor) { e.header = h }
}

// WithHighlight installs a highlight callback and enables colorized
// rendering (default: redit.IdentityHighlight, color disabled).
func WithHighlight(h redit.HighlightFunc) Option {
	return func(e *Editor) {
		e.highlight = h
		e.colorEnabled = true
	}
}

// WithSize overrides the terminal width/height instead of querying the
// adapter each time they are needed.
func WithSize(width, height int) Option {
	return func(e *Editor) {
		e.widthOverride = width
		e.heightOverride = height
	}
}

// New constructs an Editor. prompt and adapter are required; sink is
// the output stream control sequences and text are written to.
func New(prompt redit.PromptFunc, adapter redit.TerminalAdapter, sink io.Writer, opts ...Option) *Editor {
	e := &Editor{
		buf:       buffer.New(),
		prompt:    prompt,
		header:    redit.NoopHeader,
		highlight: redit.IdentityHighlight,
		adapter:   adapter,
		sink:      sink,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// size returns the current terminal width/height, preferring the
// configured overrides (spec.md §3 "Width/height overrides").
func (e *Editor) size() (width, height int, err error) {
	if e.widthOverride > 0 && e.heightOverride > 0 {
		return e.widthOverride, e.heightOverride, nil
	}
	return e.adapter.Size()
}

// invalidateCache marks cached derived state as unset (spec.md §3
// "Caches ... invalidated on any edit").
func (e *Editor) invalidateCache() {
	e.joinedValid = false
	e.cachedJoined = ""
	e.heightValid = false
	e.cachedHeight = 0
	e.coloredValid = false
	e.cachedColored = nil
}

// joined returns (and caches) the expression as a single '\n'-joined
// string.
func (e *Editor) joined() string {
	if !e.joinedValid {
		e.cachedJoined = e.buf.Join()
		e.joinedValid = true
	}
	return e.cachedJoined
}

// Expression returns the full expression text (spec.md §6 getter).
func (e *Editor) Expression() string { return e.buf.Join() }

// Lines returns a copy of the logical lines (spec.md §6 getter).
func (e *Editor) Lines() []string { return e.buf.Lines() }

// Position returns the logical cursor (spec.md §6 getter "(x, y)").
func (e *Editor) Position() (x, y int) { return e.cursor.X, e.cursor.Y }

// CurrentLine returns the logical line the cursor is on (spec.md §6
// getter).
func (e *Editor) CurrentLine() string { return e.buf.Line(e.cursor.Y) }

// PreviousLine returns the logical line before the cursor's, and
// whether one exists (spec.md §6 getter "previous_line?").
func (e *Editor) PreviousLine() (string, bool) {
	if e.cursor.Y == 0 {
		return "", false
	}
	return e.buf.Line(e.cursor.Y - 1), true
}

// NextLine returns the logical line after the cursor's, and whether
// one exists (spec.md §6 getter "next_line?").
func (e *Editor) NextLine() (string, bool) {
	if e.cursor.Y+1 >= e.buf.Len() {
		return "", false
	}
	return e.buf.Line(e.cursor.Y + 1), true
}

// CursorOnLastLine reports whether the cursor is on the buffer's last
// logical line (spec.md §6 getter "cursor_on_last_line?").
func (e *Editor) CursorOnLastLine() bool {
	return e.cursor.Y == e.buf.Len()-1
}

// ExpressionBeforeCursor returns the expression text up to (x, y),
// defaulting to the current cursor position when x, y are both -1
// (spec.md §6 getter "expression_before_cursor(x?, y?)").
func (e *Editor) ExpressionBeforeCursor(x, y int) (string, error) {
	if x < 0 && y < 0 {
		x, y = e.cursor.X, e.cursor.Y
	}
	if y < 0 || y >= e.buf.Len() {
		return "", fmt.Errorf("editor: line index %d out of range", y)
	}
	line := []rune(e.buf.Line(y))
	if x < 0 || x > len(line) {
		return "", fmt.Errorf("editor: column index %d out of range for line %d", x, y)
	}

	lines := append(e.buf.Lines()[:y], string(line[:x]))
	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l)
	}
	return sb.String(), nil
}

// ExpressionHeight returns the total visual height of the expression
// in its current, possibly still-unscrolled form (spec.md §6 getter,
// I6).
func (e *Editor) ExpressionHeight() (int, error) {
	width, _, err := e.size()
	if err != nil {
		return 0, err
	}
	return e.totalVisualHeight(width)
}

func (e *Editor) totalVisualHeight(width int) (int, error) {
	if e.heightValid && e.cachedWidth == width {
		return e.cachedHeight, nil
	}
	total := 0
	for _, l := range e.buf.Lines() {
		h, err := redit.VisualHeight(e.promptWidth, len([]rune(l)), width)
		if err != nil {
			return 0, err
		}
		total += h
	}
	e.heightValid = true
	e.cachedWidth = width
	e.cachedHeight = total
	return total, nil
}
