package redit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualHeight(t *testing.T) {
	t.Run("S1: prompt width 7, terminal width 20, 27-char line", func(t *testing.T) {
		h, err := VisualHeight(7, 27, 20)
		require.NoError(t, err)
		assert.Equal(t, 2, h)
	})

	t.Run("S6: prompt width 7, terminal width 10, 10-char line", func(t *testing.T) {
		h, err := VisualHeight(7, 10, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, h)
	})

	t.Run("prompt wider than terminal is refused", func(t *testing.T) {
		_, err := VisualHeight(20, 5, 10)
		assert.ErrorIs(t, err, ErrPromptTooWide)
	})

	t.Run("I4: empty line still occupies one row", func(t *testing.T) {
		h, err := VisualHeight(0, 0, 80)
		require.NoError(t, err)
		assert.Equal(t, 1, h)
	})
}

func TestLastRowWidth(t *testing.T) {
	t.Run("S1: cursor at column 16 lands at row col 3", func(t *testing.T) {
		w, err := LastRowWidth(7, 16, 20)
		require.NoError(t, err)
		assert.Equal(t, 3, w)
	})

	t.Run("S1: full line of 27 chars", func(t *testing.T) {
		w, err := LastRowWidth(7, 27, 20)
		require.NoError(t, err)
		assert.Equal(t, 14, w)
	})

	t.Run("S6: 10-char line's last row holds 7 columns", func(t *testing.T) {
		w, err := LastRowWidth(7, 10, 10)
		require.NoError(t, err)
		assert.Equal(t, 7, w)
	})
}

func TestVisualHeightInvariant(t *testing.T) {
	// P3: visual_height(line) * w >= p + len(line) + 1
	cases := []struct{ p, l, w int }{
		{0, 0, 80}, {7, 27, 20}, {7, 10, 10}, {1, 200, 40}, {79, 1, 80},
	}
	for _, c := range cases {
		h, err := VisualHeight(c.p, c.l, c.w)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, h*c.w, c.p+c.l+1)
		want := 1 + (c.p+c.l)/c.w
		assert.Equal(t, want, h)
	}
}
