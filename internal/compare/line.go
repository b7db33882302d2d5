package compare

import "regexp"

var (
	_separator = regexp.MustCompile(`^\s*-{6,}\s*$`)
	_header    = regexp.MustCompile(`^\s*([^\s:]+)\s*:\s*(.*)$`)
)

// IsSeparator reports whether line is a section separator:
// six or more dashes with optional surrounding whitespace.
func IsSeparator(line string) bool {
	return _separator.MatchString(line)
}

// ParseHeader splits a "language: heading" header line.
// ok is false if line is not a header.
func ParseHeader(line string) (lang, heading string, ok bool) {
	m := _header.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
