// Package code provides the representation of code blocks
// extracted from documents.
package code

import "strings"

// Block is a code block ready to be highlighted.
//
// Lines hold the code without the margin
// that the surrounding document indented it with.
type Block struct {
	// Language is the name of the highlighting language,
	// e.g. "java" or "text".
	Language string

	// Heading is the title of the block.
	// It is only set for blocks that are part of a comparison.
	Heading string

	Lines []string
}

// Text returns the code of the block
// with each line terminated by a newline.
func (b *Block) Text() string {
	if len(b.Lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, line := range b.Lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
