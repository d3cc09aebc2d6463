package termadapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// These tests avoid anything that requires a real controlling
// terminal: Size and Enter both bottom out in ioctl calls against the
// given file descriptor, which fail predictably against an invalid
// fd without needing a tty to be attached to the test process.

func TestSizeOnInvalidFDReturnsError(t *testing.T) {
	a := New(-1)
	_, _, err := a.Size()
	assert.Error(t, err)
}

func TestEnterOnInvalidFDReturnsError(t *testing.T) {
	_, err := Enter(-1)
	assert.Error(t, err)
}

func TestNewStdinUsesStdinDescriptor(t *testing.T) {
	a := NewStdin()
	assert.NotNil(t, a)
}
