// Package rlog is a minimal structured-logging shim used by
// redit/termadapter and cmd/editordemo for diagnostics outside the
// render hot path (SPEC_FULL.md §3 "Logging"). It wraps a single
// package-level *log.Logger rather than pulling a logging framework
// into the editor core.
package rlog

import (
	"io"
	"log"
	"os"
)

var logger = log.New(io.Discard, "", log.LstdFlags)

// SetOutput redirects logging output; io.Discard (the default) drops
// everything.
func SetOutput(w io.Writer) { logger.SetOutput(w) }

// Enable points the logger at stderr, the common case for a REPL
// driver that wants diagnostics visible without touching the edited
// buffer's own terminal output.
func Enable() { logger.SetOutput(os.Stderr) }

// Debugf logs a low-priority diagnostic line.
func Debugf(format string, args ...any) { logger.Printf("DEBUG "+format, args...) }

// Errorf logs an error-level diagnostic line.
func Errorf(format string, args ...any) { logger.Printf("ERROR "+format, args...) }
