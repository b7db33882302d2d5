// Package iotest routes test output into the test log.
package iotest

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
)

// Writer builds an io.Writer that writes complete lines
// to the given testing.TB.
//
// A partial trailing line is held until the next write completes it.
// Call the returned writer's Write with a newline to flush it.
func Writer(t testing.TB) io.Writer {
	return &writer{t: t}
}

type writer struct {
	t testing.TB

	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *writer) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.t.Helper()
	w.buf.Write(b)
	for {
		line, err := w.buf.ReadBytes('\n')
		if err != nil {
			// Incomplete line: put it back.
			rest := append([]byte(nil), line...)
			w.buf.Reset()
			w.buf.Write(rest)
			break
		}
		w.t.Logf("%s", bytes.TrimSuffix(line, []byte("\n")))
	}
	return len(b), nil
}

// Logger builds a debug-level logger that writes to the given testing.TB.
func Logger(t testing.TB) *log.Logger {
	return log.NewWithOptions(Writer(t), log.Options{
		Level:  log.DebugLevel,
		Prefix: t.Name(),
	})
}
