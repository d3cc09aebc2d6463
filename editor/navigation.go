package editor

import (
	"fmt"
	"io"

	"github.com/cliofy/redit"
)

// Navigation methods coordinate the logical cursor with minimal,
// directly-emitted real cursor motion (spec.md §4.3). They never
// invoke a full repaint; scroll maintenance is the caller's job via
// updateScrollOffset, wired in by moveAndRescroll below.

func (e *Editor) emit(s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(e.sink, s)
	return err
}

// MoveLeft moves the cursor one column left, wrapping to the previous
// line's end if already at column 0 (spec.md §4.3 "move_left").
func (e *Editor) MoveLeft() (bool, error) {
	return e.moveAndRescroll(e.moveLeftRaw)
}

// MoveRight moves the cursor one column right, wrapping to the next
// line's start if already at the end of the line (spec.md §4.3
// "move_right").
func (e *Editor) MoveRight() (bool, error) {
	return e.moveAndRescroll(e.moveRightRaw)
}

// MoveUp moves the cursor up one visual row, honoring soft-wrap
// boundaries (spec.md §4.3 "move_up").
func (e *Editor) MoveUp() (bool, error) {
	return e.moveAndRescroll(e.moveUpRaw)
}

// MoveDown moves the cursor down one visual row, honoring soft-wrap
// boundaries (spec.md §4.3 "move_down").
func (e *Editor) MoveDown() (bool, error) {
	return e.moveAndRescroll(e.moveDownRaw)
}

func (e *Editor) moveAndRescroll(step func() (bool, error)) (bool, error) {
	moved, err := step()
	if err != nil || !moved {
		return moved, err
	}
	changed, err := e.updateScrollOffset(0)
	if err != nil {
		return moved, err
	}
	if changed {
		if err := e.Render(false); err != nil {
			return moved, err
		}
	}
	return moved, nil
}

func (e *Editor) moveLeftRaw() (bool, error) {
	width, _, err := e.size()
	if err != nil {
		return false, err
	}
	x, y := e.cursor.X, e.cursor.Y

	if x > 0 {
		lrw, err := redit.LastRowWidth(e.promptWidth, x, width)
		if err != nil {
			return false, err
		}
		if lrw == 0 {
			if err := e.emit(redit.CSIMoveUp(1) + redit.CSIMoveToColumn(width-1)); err != nil {
				return false, err
			}
		} else {
			if err := e.emit(redit.CSIMoveLeft(1)); err != nil {
				return false, err
			}
		}
		e.cursor.X = x - 1
		return true, nil
	}

	if y == 0 {
		return false, nil
	}
	prevLen := len([]rune(e.buf.Line(y - 1)))
	lp, err := redit.LastRowWidth(e.promptWidth, prevLen, width)
	if err != nil {
		return false, err
	}
	dx := -e.promptWidth + lp
	if err := e.emit(redit.RelativeMotion(dx, -1)); err != nil {
		return false, err
	}
	e.cursor.X = prevLen
	e.cursor.Y = y - 1
	return true, nil
}

func (e *Editor) moveRightRaw() (bool, error) {
	width, _, err := e.size()
	if err != nil {
		return false, err
	}
	x, y := e.cursor.X, e.cursor.Y
	line := []rune(e.buf.Line(y))

	if x < len(line) {
		lrw, err := redit.LastRowWidth(e.promptWidth, x, width)
		if err != nil {
			return false, err
		}
		if lrw == width-1 {
			if err := e.emit(redit.CSIMoveDown(1) + redit.CSIMoveToColumn(0)); err != nil {
				return false, err
			}
		} else {
			if err := e.emit(redit.CSIMoveRight(1)); err != nil {
				return false, err
			}
		}
		e.cursor.X = x + 1
		return true, nil
	}

	if y+1 >= e.buf.Len() {
		return false, nil
	}
	lrw, err := redit.LastRowWidth(e.promptWidth, len(line), width)
	if err != nil {
		return false, err
	}
	dx := e.promptWidth - lrw
	if err := e.emit(redit.RelativeMotion(dx, 1)); err != nil {
		return false, err
	}
	e.cursor.X = 0
	e.cursor.Y = y + 1
	return true, nil
}

func (e *Editor) moveUpRaw() (bool, error) {
	width, _, err := e.size()
	if err != nil {
		return false, err
	}
	x, y := e.cursor.X, e.cursor.Y

	if e.promptWidth+x >= width {
		// Wrapped continuation row of the current line: stay on it.
		// Row 0 starts p columns in, so the row directly above may
		// not reach as far left as this one; clamp and correct the
		// real-cursor delta rather than assuming a bare "up 1".
		xNew := x - width
		if xNew < 0 {
			oldCol := (e.promptWidth + x) % width
			dx := e.promptWidth - oldCol
			if err := e.emit(redit.RelativeMotion(dx, -1)); err != nil {
				return false, err
			}
			xNew = 0
		} else {
			if err := e.emit(redit.CSIMoveUp(1)); err != nil {
				return false, err
			}
		}
		e.cursor.X = xNew
		return true, nil
	}

	if y == 0 {
		return false, nil
	}

	prevLine := []rune(e.buf.Line(y - 1))
	lp, err := redit.LastRowWidth(e.promptWidth, len(prevLine), width)
	if err != nil {
		return false, err
	}
	sc := e.promptWidth + x

	if lp < sc {
		dx := lp - sc
		if err := e.emit(redit.RelativeMotion(dx, -1)); err != nil {
			return false, err
		}
		e.cursor.X = len(prevLine)
		e.cursor.Y = y - 1
		return true, nil
	}

	rPrev, err := redit.VisualHeight(e.promptWidth, len(prevLine), width)
	if err != nil {
		return false, err
	}
	if err := e.emit(redit.CSIMoveUp(1)); err != nil {
		return false, err
	}
	e.cursor.X = (rPrev-1)*width + x
	e.cursor.Y = y - 1
	return true, nil
}

func (e *Editor) moveDownRaw() (bool, error) {
	width, _, err := e.size()
	if err != nil {
		return false, err
	}
	x, y := e.cursor.X, e.cursor.Y
	line := []rune(e.buf.Line(y))

	curRow := (e.promptWidth + x) / width
	r, err := redit.VisualHeight(e.promptWidth, len(line), width)
	if err != nil {
		return false, err
	}

	if curRow+1 < r {
		newX := x + width
		motion := redit.CSIMoveDown(1)
		if newX > len(line) {
			// The row below ends left of the current column: land on
			// the line's end and move the real cursor there too.
			newX = len(line)
			dx := (e.promptWidth+newX)%width - (e.promptWidth+x)%width
			motion = redit.RelativeMotion(dx, 1)
		}
		if err := e.emit(motion); err != nil {
			return false, err
		}
		e.cursor.X = newX
		return true, nil
	}

	if y+1 >= e.buf.Len() {
		return false, nil
	}
	next := []rune(e.buf.Line(y + 1))
	sc := (e.promptWidth + x) % width

	var newX, targetCol int
	switch {
	case sc < e.promptWidth:
		newX = 0
		targetCol = e.promptWidth
	case sc-e.promptWidth <= len(next):
		newX = sc - e.promptWidth
		targetCol = sc
	default:
		newX = len(next)
		targetCol = e.promptWidth + len(next)
	}
	dx := targetCol - sc
	if err := e.emit(redit.RelativeMotion(dx, 1)); err != nil {
		return false, err
	}
	e.cursor.X = newX
	e.cursor.Y = y + 1
	return true, nil
}

// MoveCursorTo moves the cursor to the logical position (x, y) via a
// sequence of raw single-column steps, never adjusting scroll mid-way.
// If allowScroll is true, scroll is recomputed once at the end and a
// repaint issued if it changed (spec.md §4.3 "move_cursor_to").
//
// An overshoot — stepping past the target without landing on it
// exactly — indicates a caller passed an invalid (x, y) and is a fatal
// programming error, matching the teacher's defensive-panic style for
// invariant violations.
func (e *Editor) MoveCursorTo(x, y int, allowScroll bool) error {
	target := lexKey(y, x)
	for {
		cur := lexKey(e.cursor.Y, e.cursor.X)
		if cur == target {
			break
		}
		if cur < target {
			moved, err := e.moveRightRaw()
			if err != nil {
				return err
			}
			if !moved {
				return fmt.Errorf("editor: move_cursor_to(%d, %d): position unreachable", x, y)
			}
			if lexKey(e.cursor.Y, e.cursor.X) > target {
				panic(fmt.Sprintf("editor: move_cursor_to(%d, %d) overshot to (%d, %d)", x, y, e.cursor.X, e.cursor.Y))
			}
		} else {
			moved, err := e.moveLeftRaw()
			if err != nil {
				return err
			}
			if !moved {
				return fmt.Errorf("editor: move_cursor_to(%d, %d): position unreachable", x, y)
			}
			if lexKey(e.cursor.Y, e.cursor.X) < target {
				panic(fmt.Sprintf("editor: move_cursor_to(%d, %d) overshot to (%d, %d)", x, y, e.cursor.X, e.cursor.Y))
			}
		}
	}

	if !allowScroll {
		return nil
	}
	changed, err := e.updateScrollOffset(0)
	if err != nil {
		return err
	}
	if changed {
		return e.Render(false)
	}
	return nil
}

// lexKey packs (y, x) into a single comparable value for the
// lexicographic ordering move_cursor_to sweeps over. Lines are bounded
// well under this factor in any real terminal session.
func lexKey(y, x int) int64 { return int64(y)<<32 | int64(x) }

// MoveToBegin moves the cursor to (0, 0) (spec.md §4.3
// "move_to_begin").
func (e *Editor) MoveToBegin() error {
	return e.MoveCursorTo(0, 0, true)
}

// MoveToEnd moves the cursor to the end of the last logical line
// (spec.md §4.3 "move_to_end").
func (e *Editor) MoveToEnd() error {
	y := e.buf.Len() - 1
	x := len([]rune(e.buf.Line(y)))
	return e.MoveCursorTo(x, y, true)
}

// MoveToEndOfLine moves the cursor to the end of its current logical
// line (spec.md §4.3 "move_to_end_of_line").
func (e *Editor) MoveToEndOfLine() error {
	x := len([]rune(e.buf.Line(e.cursor.Y)))
	return e.MoveCursorTo(x, e.cursor.Y, true)
}
