// Package linebuf provides line-buffered IO utilities.
package linebuf

import (
	"bytes"
	"io"
	"sync"
)

// Writer returns an io.Writer that splits its input into lines,
// calling fn for each complete line without its line ending.
//
// Call done when writing is finished
// to deliver a final line that was not terminated.
func Writer(fn func(line string)) (_ io.Writer, done func()) {
	w := writer{writeLine: fn}
	return &w, w.flush
}

type writer struct {
	writeLine func(string)

	// Holds text written since the last newline.
	mu   sync.Mutex
	buff bytes.Buffer
}

func (w *writer) Write(bs []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	total := len(bs)
	for {
		idx := bytes.IndexByte(bs, '\n')
		if idx < 0 {
			w.buff.Write(bs)
			return total, nil
		}

		w.buff.Write(bs[:idx])
		bs = bs[idx+1:]
		w.emit()
	}
}

func (w *writer) emit() {
	line := bytes.TrimSuffix(w.buff.Bytes(), []byte{'\r'})
	w.writeLine(string(line))
	w.buff.Reset()
}

func (w *writer) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buff.Len() > 0 {
		w.emit()
	}
}
