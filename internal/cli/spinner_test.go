package cli

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSpinner_Disabled(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, false)

	stop := s.Start("zcrawpour")
	stop()

	assert.Empty(t, buf.String())
}

func TestSpinner_StopsGoroutine(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, true)

	stop := s.Start("zcrawpour")
	time.Sleep(3 * spinInterval)
	stop()
	stop()

	assert.Contains(t, buf.String(), "zcrawpour")
	goleak.VerifyNone(t)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	assert.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.False(t, IsTerminal(f))
}
