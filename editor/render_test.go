package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateEmitsHideThenShowCursor(t *testing.T) {
	ed, sink := newNavEditor(t, 40, 24)

	require.NoError(t, ed.Update(func() { ed.InsertString("abc") }))

	out := sink.String()
	require.Contains(t, out, "\x1b[?25l")
	require.Contains(t, out, "\x1b[?25h")
	assert.Less(t, strings.Index(out, "\x1b[?25l"), strings.Index(out, "\x1b[?25h"))
	assert.Contains(t, out, "prompt>abc")
}

func TestUpdatePaintsMultipleLinesWithPromptPerLine(t *testing.T) {
	ed, sink := newNavEditor(t, 40, 24)

	require.NoError(t, ed.Update(func() {
		ed.InsertString("one")
		ed.InsertNewLine(0)
		ed.InsertString("two")
	}))

	out := sink.String()
	assert.Contains(t, out, "prompt>one")
	assert.Contains(t, out, "prompt>two")
}

func TestEndEditingEmitsFinalLineFeed(t *testing.T) {
	ed, sink := newNavEditor(t, 40, 24)
	require.NoError(t, ed.Update(func() { ed.InsertString("done") }))
	sink.Reset()

	require.NoError(t, ed.EndEditing())

	out := sink.String()
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, "prompt>done")
}

func TestEndEditingWithReplacement(t *testing.T) {
	ed, _ := newNavEditor(t, 40, 24)
	require.NoError(t, ed.Update(func() { ed.InsertString("draft") }))

	require.NoError(t, ed.EndEditing([]string{"final", "lines"}))

	assert.Equal(t, []string{"final", "lines"}, ed.Lines())
	x, y := ed.Position()
	assert.Equal(t, 5, x) // end of "lines"
	assert.Equal(t, 1, y)
}

func TestColoredHighlightReachesOutput(t *testing.T) {
	var sink strings.Builder
	colorPrompt := func(lineIndex int, colored bool) (string, error) { return "> ", nil }
	highlight := func(expr string) (string, error) {
		return "\x1b[31m" + expr + "\x1b[0m", nil
	}
	ed := New(colorPrompt, fixedAdapter{10, 24}, &sink, WithHighlight(highlight))
	require.NoError(t, ed.PromptNext())

	require.NoError(t, ed.Update(func() { ed.InsertString("0123456789") }))

	out := sink.String()
	assert.Contains(t, out, "\x1b[31m")
}

func TestForceFullViewIgnoresScrollWindow(t *testing.T) {
	ed, _ := newNavEditor(t, 20, 3)
	lines := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		lines = append(lines, "line")
	}
	require.NoError(t, ed.Replace(lines))

	var sink2 strings.Builder
	ed.sink = &sink2
	require.NoError(t, ed.Render(true))

	out := sink2.String()
	count := strings.Count(out, "prompt>")
	assert.Equal(t, 20, count)
}
