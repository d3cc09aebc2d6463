// Package termadapter implements redit.TerminalAdapter against the
// real controlling terminal using golang.org/x/term, and provides the
// raw-mode enter/restore lifecycle a host REPL needs around an Editor
// session (spec.md §6 "Environment").
package termadapter

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/cliofy/redit/rlog"
)

// Adapter queries the terminal attached to a given file descriptor
// for its current size.
type Adapter struct {
	fd int
}

// New returns an Adapter for fd (typically int(os.Stdin.Fd())).
func New(fd int) *Adapter {
	return &Adapter{fd: fd}
}

// NewStdin returns an Adapter for the process's standard input.
func NewStdin() *Adapter {
	return New(int(os.Stdin.Fd()))
}

// Size implements redit.TerminalAdapter.
func (a *Adapter) Size() (width, height int, err error) {
	width, height, err = term.GetSize(a.fd)
	if err != nil {
		rlog.Errorf("termadapter: get size on fd %d: %v", a.fd, err)
		return 0, 0, fmt.Errorf("termadapter: get size: %w", err)
	}
	return width, height, nil
}

// RawSession is a terminal that Enter has put into raw mode; the
// caller must defer its Restore method. A process-exit signal hook is not
// installed here; callers that need one should register it around
// the call to Enter, following the same defer-Restore pattern (spec.md
// §5 "process-exit hook").
type RawSession struct {
	fd    int
	state *term.State
}

// Enter switches fd into raw mode, remembering the prior terminal
// state.
func Enter(fd int) (*RawSession, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		rlog.Errorf("termadapter: enter raw mode on fd %d: %v", fd, err)
		return nil, fmt.Errorf("termadapter: enter raw mode: %w", err)
	}
	rlog.Debugf("termadapter: entered raw mode on fd %d", fd)
	return &RawSession{fd: fd, state: state}, nil
}

// Restore puts the terminal back into its prior mode.
func (s *RawSession) Restore() error {
	if err := term.Restore(s.fd, s.state); err != nil {
		rlog.Errorf("termadapter: restore fd %d: %v", s.fd, err)
		return fmt.Errorf("termadapter: restore terminal: %w", err)
	}
	return nil
}
