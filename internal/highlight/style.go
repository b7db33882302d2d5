package highlight

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the name of the style used when none is specified.
// Chroma and Pygments both ship a style with this name.
const DefaultStyle = "colorful"

// PlainStyle is a minimal syntax highlighting style for Chroma.
// It leaves most text as-is, and fades comments ever so slightly.
var PlainStyle = chroma.MustNewStyle("plain", map[chroma.TokenType]string{
	chroma.Comment:     "#666666",
	chroma.LineNumbers: "#999999",
	chroma.PreWrapper:  "bg:#eeeeee",
	chroma.Background:  "bg:#eeeeee",
})

func init() {
	styles.Register(PlainStyle)
}

// LookupStyle returns the Chroma style with the given name.
// An empty name selects [DefaultStyle].
func LookupStyle(name string) (*chroma.Style, error) {
	if name == "" {
		name = DefaultStyle
	}
	s, ok := styles.Registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown style %q", name)
	}
	return s, nil
}

// defaultStyle returns the style named DefaultStyle,
// or Chroma's fallback style if it isn't registered.
func defaultStyle() *chroma.Style {
	if s, err := LookupStyle(DefaultStyle); err == nil {
		return s
	}
	return styles.Fallback
}
