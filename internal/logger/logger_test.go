package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture redirects log output into a buffer and restores the
// package state when the test finishes.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	SetOutput(buf)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return buf
}

func TestVerboseToggle(t *testing.T) {
	capture(t)

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_FormatsWithPrefix(t *testing.T) {
	buf := capture(t)
	SetVerbose(true)

	Debug("Corpus: %d places", 42)

	assert.Equal(t, "[DEBUG] Corpus: 42 places\n", buf.String())
}

func TestDebug_SilentWithoutVerbose(t *testing.T) {
	buf := capture(t)
	SetVerbose(false)

	Debug("After keywords: %d", 3)
	Info("Final results: %d", 3)
	Warn("unused")

	assert.Zero(t, buf.Len())
}

func TestSection_Header(t *testing.T) {
	buf := capture(t)
	SetVerbose(true)

	Section("Search Execution")

	assert.Equal(t, "\n=== Search Execution ===\n", buf.String())
}

func TestInfoAndWarn_Prefixes(t *testing.T) {
	buf := capture(t)
	SetVerbose(true)

	Info("Read %d records", 7)
	Warn("index snapshot stale")

	assert.Equal(t, "[INFO] Read 7 records\n[WARN] index snapshot stale\n", buf.String())
}

func TestLogger_ConcurrentToggles(t *testing.T) {
	capture(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			SetVerbose(n%2 == 0)
			Debug("worker %d", n)
			IsVerbose()
		}(i)
	}
	wg.Wait()
}
