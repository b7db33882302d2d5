// Package indent removes the margin that a document adds
// to the code blocks embedded inside it.
//
// Code inside a block tag is usually indented to match the tag.
// The closing tag sits on its own line, so the text of the block
// ends with a line made up entirely of whitespace:
// the tag indent.
// The tag indent tells us how far the code was shifted to the right,
// and where the rendered HTML must be placed.
package indent

import (
	"flag"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Strategy decides how the margin of a block is detected.
type Strategy int

const (
	// TagIndent strips as many leading whitespace characters
	// as there are in the trailing whitespace-only line.
	// This is the default.
	TagIndent Strategy = iota

	// MinimumMargin strips the shortest leading whitespace run
	// found across all non-blank lines.
	MinimumMargin
)

// String returns the flag spelling of the strategy.
func (s Strategy) String() string {
	switch s {
	case TagIndent:
		return "tag"
	case MinimumMargin:
		return "min"
	default:
		return "Strategy(" + strconv.Itoa(int(s)) + ")"
	}
}

var _ flag.Getter = (*Strategy)(nil)

// Get returns the strategy.
func (s *Strategy) Get() any { return *s }

// Set parses a strategy from its flag spelling.
func (s *Strategy) Set(v string) error {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "tag", "":
		*s = TagIndent
	case "min", "minimum":
		*s = MinimumMargin
	default:
		return fmt.Errorf("unknown margin strategy %q: expected tag or min", v)
	}
	return nil
}

// Normalize strips the margin from text using the TagIndent strategy.
//
// It returns the de-indented text, without trailing blank lines or line breaks,
// and the tag indent to restore when placing the rendered output.
// The tag indent is empty if the text does not end
// with a whitespace-only line.
func Normalize(text string) (stripped, tagIndent string) {
	return TagIndent.Normalize(text)
}

// Normalize strips the margin from text using this strategy.
// See [Normalize] for details on the return values.
func (s Strategy) Normalize(text string) (stripped, tagIndent string) {
	lines := SplitLines(text)
	if n := len(lines); n > 0 {
		if last := lines[n-1]; last != "" && IsBlank(last) {
			tagIndent = last
			lines = lines[:n-1]
		}
	}

	var margin int
	switch s {
	case MinimumMargin:
		var text string
		margin, text = minimumMargin(lines)
		if tagIndent == "" {
			tagIndent = text
		}
	default:
		margin = len(tagIndent)
	}

	if margin == 0 && tagIndent == "" {
		return trimLineBreaks(text), ""
	}

	for i, line := range lines {
		lines[i] = TrimMargin(line, margin)
	}
	for len(lines) > 0 && IsBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n"), tagIndent
}

// minimumMargin reports the length and text of the shortest
// leading whitespace among lines that have any non-blank content.
func minimumMargin(lines []string) (int, string) {
	var (
		found  bool
		margin string
	)
	for _, line := range lines {
		if IsBlank(line) {
			continue
		}
		ws := LeadingWhitespace(line)
		if !found || len(ws) < len(margin) {
			margin = ws
			found = true
		}
	}
	return len(margin), margin
}

var _lineBreak = regexp.MustCompile(`\r?\n`)

// SplitLines splits text on "\n" and "\r\n".
// Trailing empty lines are dropped,
// so a text ending with a line break
// does not produce an empty final line.
func SplitLines(text string) []string {
	lines := _lineBreak.Split(text, -1)
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// IsBlank reports whether line consists only of spaces and tabs.
// The empty line is blank.
func IsBlank(line string) bool {
	return len(LeadingWhitespace(line)) == len(line)
}

// LeadingWhitespace returns the run of spaces and tabs
// at the start of line.
func LeadingWhitespace(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i]
}

// TrimMargin removes up to n leading spaces and tabs from line.
// Lines with a shorter whitespace prefix lose only what they have.
func TrimMargin(line string, n int) string {
	ws := LeadingWhitespace(line)
	if len(ws) > n {
		ws = ws[:n]
	}
	return line[len(ws):]
}

// trimLineBreaks removes all trailing line breaks from s.
func trimLineBreaks(s string) string {
	return strings.TrimRight(s, "\r\n")
}
