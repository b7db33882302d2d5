package highlight

import (
	"context"
	"fmt"
	"regexp"
)

// Request is a single highlighting request.
type Request struct {
	// Language is the name or alias of the language of Code.
	Language string

	// Code is the source code to highlight.
	Code string

	// LineNumbers requests that line numbers be rendered.
	LineNumbers bool
}

// Result is the output of a highlighting request.
type Result struct {
	HTML string
}

// Engine highlights source code.
type Engine interface {
	Highlight(ctx context.Context, req *Request) (*Result, error)
}

// EngineError is returned when an Engine could not highlight code.
type EngineError struct {
	// Engine is the name of the engine that failed, if known.
	Engine string

	// Language that was requested.
	Language string

	// Stderr holds the error output of the engine, if any.
	Stderr string

	Err error
}

func (e *EngineError) Error() string {
	msg := fmt.Sprintf("highlight %q: %v", e.Language, e.Err)
	if e.Engine != "" {
		msg = e.Engine + ": " + msg
	}
	if e.Stderr != "" {
		msg += "\n" + e.Stderr
	}
	return msg
}

func (e *EngineError) Unwrap() error { return e.Err }

var _newline = regexp.MustCompile(`\r?\n`)

// EscapeNewlines replaces line breaks in html with the &#x000A; entity.
//
// Templates that re-indent or reflow their contents
// would otherwise mangle the whitespace inside <pre> blocks.
func EscapeNewlines(html string) string {
	return _newline.ReplaceAllLiteralString(html, "&#x000A;")
}
