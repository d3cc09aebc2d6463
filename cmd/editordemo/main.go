// Command editordemo is a minimal host loop around the redit editor:
// it puts the terminal in raw mode, reads keystrokes one at a time,
// and drives an editor.Editor: Enter submits the expression and starts
// a fresh prompt, Ctrl-D ends the session (spec.md §6 "Construction
// input").
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cliofy/redit"
	"github.com/cliofy/redit/editor"
	"github.com/cliofy/redit/highlight"
	"github.com/cliofy/redit/rlog"
	"github.com/cliofy/redit/termadapter"
)

func prompt(lineIndex int, colored bool) (string, error) {
	text := "... "
	if lineIndex == 0 {
		text = ">>> "
	}
	if !colored {
		return text, nil
	}
	return "\x1b[1;32m" + text + "\x1b[0m", nil
}

func main() {
	if os.Getenv("REDIT_DEBUG") != "" {
		rlog.Enable()
	}

	fd := int(os.Stdin.Fd())
	adapter := termadapter.New(fd)

	raw, err := termadapter.Enter(fd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "editordemo:", err)
		os.Exit(1)
	}

	// Guarantee the cursor is visible and the terminal restored even
	// after an abnormal exit (spec.md §5 "process-exit hook").
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		fmt.Fprint(os.Stdout, redit.CSIShowCursor())
		raw.Restore()
		os.Exit(1)
	}()
	defer func() {
		fmt.Fprint(os.Stdout, redit.CSIShowCursor())
		raw.Restore()
	}()

	ed := editor.New(prompt, adapter, os.Stdout, editor.WithHighlight(highlight.New("go", "monokai")))

	if err := ed.PromptNext(); err != nil {
		fmt.Fprintln(os.Stderr, "editordemo:", err)
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		r, _, err := reader.ReadRune()
		if err != nil {
			return
		}

		switch r {
		case 4: // Ctrl-D
			return
		case '\r', '\n':
			if err := ed.EndEditing(); err != nil {
				fmt.Fprintln(os.Stderr, "editordemo:", err)
				return
			}
			if err := ed.PromptNext(); err != nil {
				fmt.Fprintln(os.Stderr, "editordemo:", err)
				return
			}
			continue
		case 127, 8: // Backspace
			if err := ed.Update(func() { ed.Backspace() }); err != nil {
				fmt.Fprintln(os.Stderr, "editordemo:", err)
				return
			}
			continue
		case 9: // Tab: insert two spaces
			if err := ed.Update(func() { ed.InsertString("  ") }); err != nil {
				fmt.Fprintln(os.Stderr, "editordemo:", err)
				return
			}
			continue
		}

		if err := ed.Update(func() { ed.InsertChar(r) }); err != nil {
			fmt.Fprintln(os.Stderr, "editordemo:", err)
			return
		}
	}
}
