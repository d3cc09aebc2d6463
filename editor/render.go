package editor

import (
	"strings"

	"github.com/cliofy/redit"
)

// Render runs the full render pass (spec.md §4.5): hide cursor,
// rewind, repaint the header, clear and paint the visible expression
// slice, restore the real cursor, show it again. Update wraps this
// same sequence around a mutation closure, interleaving clamp and
// cache invalidation between the header and paint steps (spec.md §5).
//
// When forceFullView is true the whole expression is painted
// regardless of viewport height, with no scrolling arithmetic
// (spec.md §4.5, used at submit time by EndEditing).
func (e *Editor) Render(forceFullView bool) error {
	if err := e.emit(redit.CSIHideCursor()); err != nil {
		return err
	}
	if err := e.rewindStep(); err != nil {
		return err
	}
	if err := e.repaintHeaderStep(); err != nil {
		return err
	}
	if err := e.clearAndPaintStep(forceFullView); err != nil {
		return err
	}
	if err := e.restoreCursorStep(); err != nil {
		return err
	}
	return e.emit(redit.CSIShowCursor())
}

// Update is the transactional envelope (spec.md §4.1, §5): hide
// cursor, rewind, repaint header, run mutate, clamp the cursor,
// invalidate caches, paint, restore cursor, show cursor. mutate may
// call the Editor's edit primitives; it must not call Render or
// Update itself.
func (e *Editor) Update(mutate func()) error {
	if err := e.emit(redit.CSIHideCursor()); err != nil {
		return err
	}
	if err := e.rewindStep(); err != nil {
		return err
	}
	if err := e.repaintHeaderStep(); err != nil {
		return err
	}

	mutate()
	e.clamp()
	e.invalidateCache()

	if err := e.clearAndPaintStep(false); err != nil {
		return err
	}
	if err := e.restoreCursorStep(); err != nil {
		return err
	}
	return e.emit(redit.CSIShowCursor())
}

// clamp restores I1/I2 after a mutation (spec.md §4.1 step (d)).
func (e *Editor) clamp() {
	e.cursor.Clamp(e.buf)
}

// rewindStep walks the real cursor back to the top-left of the
// previously drawn expression (spec.md §4.5 step 2). On the very
// first render there is nothing to rewind.
func (e *Editor) rewindStep() error {
	if !e.everPainted {
		return nil
	}
	_, height, err := e.size()
	if err != nil {
		return err
	}

	if e.lastPaintedHeight >= height {
		if err := e.emit(redit.CSIMoveToRow(0)); err != nil {
			return err
		}
	} else {
		origX, origY := e.cursor.X, e.cursor.Y
		if err := e.MoveCursorTo(0, 0, false); err != nil {
			return err
		}
		e.cursor.X, e.cursor.Y = origX, origY
	}
	return e.emit(redit.CSIMoveToColumn(0))
}

// repaintHeaderStep erases the previously painted header area and
// invokes the header callback to repaint it, recording the row count
// it reports (spec.md §4.5 step 3).
func (e *Editor) repaintHeaderStep() error {
	if err := e.emit(redit.CSIClearToEndOfLine()); err != nil {
		return err
	}
	if e.headerHeight > 0 {
		if err := e.emit(redit.CSIMoveUp(e.headerHeight)); err != nil {
			return err
		}
		if err := e.emit(redit.CSIClearScreenDown()); err != nil {
			return err
		}
	}
	h, err := e.header(e.sink, e.headerHeight)
	if err != nil {
		return err
	}
	e.headerHeight = h
	return nil
}

// coloredLines returns (and caches) the expression's logical lines
// after the highlight callback has run, or the raw lines when color
// is disabled (spec.md §3 "Caches").
func (e *Editor) coloredLines() ([]string, error) {
	if !e.colorEnabled {
		return e.buf.Lines(), nil
	}
	if e.coloredValid {
		return e.cachedColored, nil
	}
	colored, err := e.highlight(e.joined())
	if err != nil {
		return nil, err
	}
	lines := strings.Split(colored, "\n")
	e.cachedColored = lines
	e.coloredValid = true
	return lines, nil
}

// clearAndPaintStep clears the screen below the cursor and paints the
// visible slice of the expression, tracking the last-painted logical
// position for restoreCursorStep (spec.md §4.5 steps 4-5).
func (e *Editor) clearAndPaintStep(forceFullView bool) error {
	if err := e.emit(redit.CSIClearScreenDown()); err != nil {
		return err
	}

	width, height, err := e.size()
	if err != nil {
		return err
	}

	var start, end int
	if forceFullView {
		start = 0
		end = 1 << 30
	} else {
		start, end, err = e.viewportBounds(width, height)
		if err != nil {
			return err
		}
	}

	lines := e.buf.Lines()
	colored, err := e.coloredLines()
	if err != nil {
		return err
	}

	anyPainted := false
	runningY := 0
	for li, line := range lines {
		runeLen := len([]rune(line))
		h, err := redit.VisualHeight(e.promptWidth, runeLen, width)
		if err != nil {
			return err
		}
		lineStart := runningY
		lineEnd := runningY + h - 1
		runningY += h

		if lineEnd < start {
			continue
		}
		if lineStart > end {
			break
		}

		coloredLine := line
		if li < len(colored) {
			coloredLine = colored[li]
		}

		if anyPainted {
			if err := e.emit("\n"); err != nil {
				return err
			}
		}
		anyPainted = true

		if lineStart >= start && lineEnd <= end {
			promptText, err := e.prompt(li, e.colorEnabled)
			if err != nil {
				return err
			}
			if err := e.emit(promptText); err != nil {
				return err
			}
			if err := e.emit(coloredLine); err != nil {
				return err
			}
			lrw, err := redit.LastRowWidth(e.promptWidth, runeLen, width)
			if err != nil {
				return err
			}
			if lrw == 0 {
				if err := e.emit("\n"); err != nil {
					return err
				}
			}
			e.paintedX, e.paintedY = runeLen, li
			continue
		}

		fragments, err := redit.SplitHighlighted(coloredLine, e.promptWidth, width)
		if err != nil {
			return err
		}
		cumX := 0
		for fi, frag := range fragments {
			rowIdx := lineStart + fi
			isLastFragment := fi == len(fragments)-1

			var colAdvance int
			if fi == 0 {
				colAdvance = frag.Width - e.promptWidth
			} else {
				colAdvance = frag.Width
			}

			if rowIdx < start || rowIdx > end {
				cumX += colAdvance
				continue
			}

			if fi == 0 {
				promptText, err := e.prompt(li, e.colorEnabled)
				if err != nil {
					return err
				}
				if err := e.emit(promptText); err != nil {
					return err
				}
			}
			if err := e.emit(frag.Text); err != nil {
				return err
			}
			cumX += colAdvance
			if isLastFragment && frag.Width == 0 {
				if err := e.emit("\n"); err != nil {
					return err
				}
			}
			e.paintedX, e.paintedY = cumX, li
		}
	}

	totalHeight, err := e.totalVisualHeight(width)
	if err != nil {
		return err
	}
	e.lastPaintedHeight = totalHeight
	e.everPainted = true
	return nil
}

// restoreCursorStep walks the real cursor from the last-painted
// logical position back to the logical cursor (spec.md §4.5 step 6).
func (e *Editor) restoreCursorStep() error {
	targetX, targetY := e.cursor.X, e.cursor.Y
	e.cursor.X, e.cursor.Y = e.paintedX, e.paintedY
	return e.MoveCursorTo(targetX, targetY, false)
}
