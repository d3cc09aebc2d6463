package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS6ViewportShowsOnlyContinuationRow(t *testing.T) {
	// S6: width 10, prompt width 7, buffer ["0123456789"]: visual
	// height 2, last_row_width 7. Viewport height 1 means the clamp's
	// valid range is [0, 1]; the default bottom-anchored offset (0)
	// already shows only the continuation row, and the cursor -
	// sitting at the end of what was just typed - is already inside
	// it, so no further adjustment is needed.
	ed, _ := newNavEditor(t, 10, 1)
	require.NoError(t, ed.Update(func() { ed.InsertString("0123456789") }))

	start, end, err := ed.viewportBounds(10, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, start)
	assert.Equal(t, 1, end)

	changed, err := ed.updateScrollOffset(0)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 0, ed.scroll)
}

func TestP7ScrollOffsetStaysInValidRange(t *testing.T) {
	ed, _ := newNavEditor(t, 20, 5)
	lines := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		lines = append(lines, "line")
	}
	require.NoError(t, ed.Replace(lines))

	for y := 0; y < 30; y++ {
		require.NoError(t, ed.MoveCursorTo(0, y, true))

		width, height, err := ed.size()
		require.NoError(t, err)
		hExp, err := ed.totalVisualHeight(width)
		require.NoError(t, err)
		maxOffset := hExp - ed.viewportHeight(height)
		if maxOffset < 0 {
			maxOffset = 0
		}
		assert.GreaterOrEqual(t, ed.scroll, 0)
		assert.LessOrEqual(t, ed.scroll, maxOffset)
	}
}

func TestScrollUpDownStayWithinRange(t *testing.T) {
	ed, _ := newNavEditor(t, 20, 5)
	lines := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		lines = append(lines, "line")
	}
	require.NoError(t, ed.Replace(lines))

	for i := 0; i < 20; i++ {
		require.NoError(t, ed.ScrollUp())
	}
	width, height, err := ed.size()
	require.NoError(t, err)
	hExp, err := ed.totalVisualHeight(width)
	require.NoError(t, err)
	maxOffset := hExp - ed.viewportHeight(height)
	assert.Equal(t, maxOffset, ed.scroll)

	for i := 0; i < 20; i++ {
		require.NoError(t, ed.ScrollDown())
	}
	assert.Equal(t, 0, ed.scroll)
}
