package editor

import "github.com/cliofy/redit"

// viewportHeight returns the number of visual rows available for the
// expression itself, excluding the header (spec.md §3 I8, "Viewport
// height = ht − h").
func (e *Editor) viewportHeight(height int) int {
	vh := height - e.headerHeight
	if vh < 1 {
		vh = 1
	}
	return vh
}

// viewportBounds returns the inclusive [start, end] range of visual
// rows currently displayed (spec.md §4.4). The scroll offset is
// clamped into its valid range before use (I7).
func (e *Editor) viewportBounds(width, height int) (start, end int, err error) {
	hExp, err := e.totalVisualHeight(width)
	if err != nil {
		return 0, 0, err
	}
	hVp := e.viewportHeight(height)

	maxOffset := hExp - hVp
	if maxOffset < 0 {
		maxOffset = 0
	}
	clamped := clampInt(e.scroll, 0, maxOffset)

	base := hExp - hVp
	if base < 0 {
		base = 0
	}
	start = base - clamped
	end = hExp - 1 - clamped
	return start, end, nil
}

// cursorVisualRow returns the cursor's absolute visual row within the
// full (unscrolled) expression: the sum of every prior logical line's
// visual height, plus the row-within-line the cursor's column falls
// on, plus yShift (spec.md §4.4 "update_scroll_offset").
func (e *Editor) cursorVisualRow(width, yShift int) (int, error) {
	row := 0
	for _, l := range e.buf.Lines()[:e.cursor.Y] {
		h, err := redit.VisualHeight(e.promptWidth, len([]rune(l)), width)
		if err != nil {
			return 0, err
		}
		row += h
	}
	hx, err := redit.VisualHeight(e.promptWidth, e.cursor.X, width)
	if err != nil {
		return 0, err
	}
	row += hx - 1 + yShift
	return row, nil
}

// updateScrollOffset adjusts the scroll offset, if necessary, so the
// cursor's visual row stays within [start, end]. It reports whether
// the offset changed (spec.md §4.4).
func (e *Editor) updateScrollOffset(yShift int) (bool, error) {
	width, height, err := e.size()
	if err != nil {
		return false, err
	}
	start, end, err := e.viewportBounds(width, height)
	if err != nil {
		return false, err
	}
	cursorRow, err := e.cursorVisualRow(width, yShift)
	if err != nil {
		return false, err
	}

	hExp, err := e.totalVisualHeight(width)
	if err != nil {
		return false, err
	}
	hVp := e.viewportHeight(height)
	maxOffset := hExp - hVp
	if maxOffset < 0 {
		maxOffset = 0
	}

	newOffset := e.scroll
	switch {
	case cursorRow < start:
		newOffset = e.scroll + (start - cursorRow)
	case cursorRow > end:
		newOffset = e.scroll - (cursorRow - end)
	default:
		return false, nil
	}
	newOffset = clampInt(newOffset, 0, maxOffset)
	if newOffset == e.scroll {
		return false, nil
	}
	e.scroll = newOffset
	return true, nil
}

// ScrollUp increments the scroll offset within its valid range,
// revealing earlier (smaller-index) visual rows, and repaints
// (spec.md §4.4).
func (e *Editor) ScrollUp() error {
	width, height, err := e.size()
	if err != nil {
		return err
	}
	hExp, err := e.totalVisualHeight(width)
	if err != nil {
		return err
	}
	maxOffset := hExp - e.viewportHeight(height)
	if maxOffset < 0 {
		maxOffset = 0
	}
	if e.scroll < maxOffset {
		e.scroll++
	}
	return e.Render(false)
}

// ScrollDown decrements the scroll offset within its valid range,
// revealing later (larger-index) visual rows, and repaints.
func (e *Editor) ScrollDown() error {
	if e.scroll > 0 {
		e.scroll--
	}
	return e.Render(false)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
