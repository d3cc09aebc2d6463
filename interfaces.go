// Package redit implements the core of a multi-line, wrapping-aware
// interactive expression editor meant to be embedded inside a REPL.
//
// The package keeps three coordinate systems consistent under edits and
// navigation: the logical cursor inside an in-memory buffer, the visual
// cursor on a soft-wrapped terminal screen, and a scrolling viewport over
// that screen. Key-sequence decoding, history, completion, and the actual
// terminal I/O driver are left to the caller; this package consumes a
// prompt callback, an optional highlight callback, an optional header
// callback, a line-based output sink, and a terminal size provider.
package redit

import "io"

// TerminalAdapter supplies the current terminal dimensions. Width and
// Height are queried every time the editor needs them unless the editor
// was constructed with explicit overrides.
type TerminalAdapter interface {
	Size() (width, height int, err error)
}

// PromptFunc returns the prompt string for the given zero-based logical
// line index. When colored is true, the returned string may contain SGR
// escape sequences; the editor always measures the prompt's printable
// (uncolored) width separately.
type PromptFunc func(lineIndex int, colored bool) (string, error)

// HighlightFunc transforms the joined expression text into a colorized
// form (SGR escapes permitted). The identity function is a valid
// HighlightFunc and is used when no highlighter is configured.
type HighlightFunc func(expression string) (string, error)

// HeaderFunc renders an auxiliary header above the prompt into sink and
// returns the number of visual rows it printed. previousHeight is the
// row count returned by the previous invocation, letting the callback
// decide how much of its own prior output to clear. The default
// HeaderFunc prints nothing and returns 0.
type HeaderFunc func(sink io.Writer, previousHeight int) (int, error)

// OutputSink is the line-based terminal output stream the renderer
// writes control sequences and text to.
type OutputSink interface {
	io.Writer
}

// NoopHeader is the default HeaderFunc: it prints nothing.
func NoopHeader(io.Writer, int) (int, error) { return 0, nil }

// IdentityHighlight is the default HighlightFunc: it returns its input
// unchanged.
func IdentityHighlight(expression string) (string, error) { return expression, nil }
