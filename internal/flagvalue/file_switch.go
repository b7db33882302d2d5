package flagvalue

import (
	"flag"
	"io"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
)

// FileSwitch is a flag that accepts both "-x" and "-x=path".
//
// Without a value, output goes to a fallback writer.
// With a value, output goes to the named file.
type FileSwitch string

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the path for this flag,
// "-" if it was passed without a value,
// or "" if it wasn't passed.
func (fs *FileSwitch) Get() any { return string(*fs) }

func (fs *FileSwitch) String() string {
	return string(*fs)
}

// IsBoolFlag marks this as a flag
// that doesn't require a value.
func (*FileSwitch) IsBoolFlag() bool {
	return true
}

// Set receives the value for this flag.
func (fs *FileSwitch) Set(v string) error {
	switch v {
	case "true":
		v = "-"
	case "false":
		v = ""
	}
	*fs = FileSwitch(v)
	return nil
}

// Bool reports whether this flag was set with any value.
func (fs *FileSwitch) Bool() bool {
	return len(*fs) > 0
}

// Create opens the destination of this flag for writing,
// and returns it with a function to close it.
//
//   - the flag wasn't passed: returns [io.Discard]
//   - the flag was passed without a value: returns fallback
//   - the flag was passed with a path: creates the file,
//     along with any missing parent directories
func (fs *FileSwitch) Create(fallback io.Writer) (w io.Writer, close func() error, err error) {
	switch *fs {
	case "":
		return io.Discard, nopClose, nil
	case "-":
		return fallback, nopClose, nil
	}

	path := string(*fs)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, errtrace.Wrap(err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errtrace.Wrap(err)
	}
	return f, f.Close, nil
}

func nopClose() error { return nil }
