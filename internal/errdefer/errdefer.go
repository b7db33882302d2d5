// Package errdefer provides functions for running operations
// that must be deferred until the end of a function,
// but which may return errors that should be returned from the function.
package errdefer

import (
	"errors"
	"io"
	"os"
)

// Close calls Close on the given Closer,
// and joins any error returned with the given error.
//
// Use it inside a defer statement with a named return.
func Close(err *error, closer io.Closer) {
	*err = errors.Join(*err, closer.Close())
}

// Remove deletes the file at path,
// and joins any error other than the file not existing
// with the given error.
//
// Use it inside a defer statement with a named return.
func Remove(err *error, path string) {
	if rerr := os.Remove(path); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
		*err = errors.Join(*err, rerr)
	}
}
