package redit

import "errors"

// ErrPromptTooWide is returned when the terminal width is not wide
// enough to accommodate the current prompt. spec.md leaves this case
// undefined upstream; this package refuses to paint rather than run the
// division/modulo arithmetic against a nonsensical layout.
var ErrPromptTooWide = errors.New("redit: terminal width must exceed prompt width")

// VisualHeight returns the number of visual rows a logical line of
// length lineLen occupies, given a prompt of width promptWidth and a
// terminal of width width (I4):
//
//	visual_height(line) = 1 + floor((p + len(line)) / w)
func VisualHeight(promptWidth, lineLen, width int) (int, error) {
	if width <= promptWidth {
		return 0, ErrPromptTooWide
	}
	return 1 + (promptWidth+lineLen)/width, nil
}

// LastRowWidth returns the number of occupied columns on the last
// visual row produced by col scalar characters following a prompt of
// width promptWidth, under a terminal of width width (I5):
//
//	last_row_width(col) = (p + col) mod w
//
// A return value of 0 means the row is exactly full (I5): the caller
// must follow it with an explicit line feed so that subsequent
// division/modulo arithmetic against the next line stays exact.
func LastRowWidth(promptWidth, col, width int) (int, error) {
	if width <= promptWidth {
		return 0, ErrPromptTooWide
	}
	return (promptWidth + col) % width, nil
}
