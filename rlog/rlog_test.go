package rlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetOutputCapturesFormattedMessages(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(discard{})

	Debugf("value=%d", 7)
	Errorf("boom: %s", "oops")

	out := buf.String()
	assert.True(t, strings.Contains(out, "DEBUG value=7"))
	assert.True(t, strings.Contains(out, "ERROR boom: oops"))
}

func TestSetOutputAfterEnableRedirectsAway(t *testing.T) {
	Enable() // points the logger at stderr

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(discard{})

	Debugf("redirected")
	assert.Contains(t, buf.String(), "redirected")
}

// discard mirrors io.Discard's behavior, letting tests reset the
// shared package-level logger after redirecting it to a local buffer.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
