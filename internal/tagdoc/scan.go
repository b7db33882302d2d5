package tagdoc

import (
	"errors"
	"fmt"
	"strings"

	"go.abhg.dev/syntaxblock/internal/render"
)

// Tag is a block tag found in a document.
type Tag struct {
	// Name of the tag: render.SingleTag or render.CompareTag.
	Name string

	// Params is the raw text between "::" and the end of the opening tag.
	Params string

	// Body is the text between the opening and closing tags,
	// minus the line break right after the opening tag.
	Body string

	// Start and End are the byte offsets of the whole tag,
	// closing tag included.
	Start, End int

	// Line is the 1-indexed line of the opening tag.
	Line int
}

// Names of known tags.
// Longer names come first so that no name shadows another.
var _tagNames = []string{render.CompareTag, render.SingleTag}

// Scan finds the block tags in doc.
// name identifies the document in errors.
func Scan(name, doc string) ([]*Tag, error) {
	var (
		tags []*Tag
		pos  int
		line = 1
	)
	for {
		idx := strings.IndexByte(doc[pos:], '{')
		if idx < 0 {
			return tags, nil
		}
		start := pos + idx
		line += strings.Count(doc[pos:start], "\n")
		pos = start

		tagName, ok := openingTag(doc[start:])
		if !ok {
			pos++
			continue
		}

		tag, err := scanTag(doc, tagName, start)
		if err != nil {
			return nil, &render.Error{
				Tag:      tagName,
				Location: fmt.Sprintf("%v:%d", name, line),
				Err:      err,
			}
		}
		tag.Line = line
		tags = append(tags, tag)

		line += strings.Count(doc[start:tag.End], "\n")
		pos = tag.End
	}
}

// openingTag reports the name of the tag that s starts with, if any.
func openingTag(s string) (string, bool) {
	for _, name := range _tagNames {
		if strings.HasPrefix(s, "{"+name+"::") {
			return name, true
		}
	}
	return "", false
}

// scanTag reads the tag with the given name starting at doc[start].
func scanTag(doc, name string, start int) (*Tag, error) {
	paramsStart := start + len(name) + len("{::")
	paramsEnd := matchBrace(doc, paramsStart)
	if paramsEnd < 0 {
		return nil, errors.New("opening tag is not closed")
	}

	bodyStart := paramsEnd + 1
	closing := "{" + name + "}"
	idx := strings.Index(doc[bodyStart:], closing)
	if idx < 0 {
		return nil, fmt.Errorf("missing closing %v", closing)
	}
	bodyEnd := bodyStart + idx

	return &Tag{
		Name:   name,
		Params: doc[paramsStart:paramsEnd],
		Body:   trimLeadingLineBreak(doc[bodyStart:bodyEnd]),
		Start:  start,
		End:    bodyEnd + len(closing),
	}, nil
}

// matchBrace returns the index of the '}'
// that closes a '{' opened just before doc[from],
// or -1 if there is none.
func matchBrace(doc string, from int) int {
	depth := 1
	for i := from; i < len(doc); i++ {
		switch doc[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func trimLeadingLineBreak(s string) string {
	if rest, ok := strings.CutPrefix(s, "\r\n"); ok {
		return rest
	}
	return strings.TrimPrefix(s, "\n")
}
