package redit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitHighlightedPlainText(t *testing.T) {
	// prompt width 0, terminal width 5: "abcdefgh" -> "abcde", "fgh"
	fragments, err := SplitHighlighted("abcdefgh", 0, 5)
	require.NoError(t, err)
	require.Len(t, fragments, 2)
	assert.Equal(t, "abcde"+SGRReset(), fragments[0].Text)
	assert.Equal(t, 5, fragments[0].Width)
	assert.Equal(t, "fgh", fragments[1].Text)
	assert.Equal(t, 3, fragments[1].Width)
}

func TestSplitHighlightedPreservesColorAcrossWrap(t *testing.T) {
	red := "\x1b[31m"
	line := red + "abcdefgh"
	fragments, err := SplitHighlighted(line, 0, 5)
	require.NoError(t, err)
	require.Len(t, fragments, 2)

	// First fragment: color prefix + 5 printable chars + reset.
	assert.Equal(t, red+"abcde"+SGRReset(), fragments[0].Text)
	assert.Equal(t, 5, fragments[0].Width)

	// Second fragment re-applies the active color so the terminal's
	// state stays correct even though the original line's escape only
	// appeared once.
	assert.Equal(t, red+"fgh", fragments[1].Text)
	assert.Equal(t, 3, fragments[1].Width)
}

func TestSplitHighlightedExactWidthProducesEmptyFinalFragment(t *testing.T) {
	// A line whose last row is exactly full (I5) ends scanning right on
	// a boundary, producing an explicit empty final fragment.
	fragments, err := SplitHighlighted("abcde", 0, 5)
	require.NoError(t, err)
	require.Len(t, fragments, 2)
	assert.Equal(t, 5, fragments[0].Width)
	assert.Equal(t, 0, fragments[1].Width)
	assert.Equal(t, "", fragments[1].Text)
}

func TestSplitHighlightedPromptTooWide(t *testing.T) {
	_, err := SplitHighlighted("abc", 10, 5)
	assert.ErrorIs(t, err, ErrPromptTooWide)
}

func TestSplitHighlightedMultipleColorChanges(t *testing.T) {
	// P8: each fragment carries whatever SGR state was active when it
	// started, and every non-final fragment ends with an explicit
	// reset, so concatenating fragments renders identically to the
	// original line under a terminal of the given width.
	line := "\x1b[32mhello\x1b[0m world\x1b[1magain"
	fragments, err := SplitHighlighted(line, 0, 6)
	require.NoError(t, err)
	require.Len(t, fragments, 3)

	assert.Equal(t, "\x1b[32mhello\x1b[0m \x1b[0m", fragments[0].Text)
	assert.Equal(t, 6, fragments[0].Width)

	assert.Equal(t, "\x1b[0mworld\x1b[1ma\x1b[0m", fragments[1].Text)
	assert.Equal(t, 6, fragments[1].Width)

	assert.Equal(t, "\x1b[1mgain", fragments[2].Text)
	assert.Equal(t, 4, fragments[2].Width)
}
