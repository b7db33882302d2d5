package render

import "fmt"

// Names of the document tags served by this package.
const (
	SingleTag  = "pygmentize"
	CompareTag = "pygmentize_and_compare"
)

// Error reports a failure to render a tag,
// along with where in the document the tag was found.
type Error struct {
	// Tag is the name of the tag being rendered.
	Tag string

	// Location identifies the tag in its document,
	// e.g. "index.page:12".
	Location string

	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("error processing the %v tag <%v>: %v", e.Tag, e.Location, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
