package render

import (
	"html"
	"strings"
)

// panel is one side of a comparison.
type panel struct {
	Class   string // compare-left or compare-right
	Heading string
	HTML    string
}

func composeSingle(tagIndent, code string) string {
	return tagIndent + `<div class="syntax">` + code + "</div>\n"
}

func composeCompare(tagIndent string, left, right panel) string {
	var sb strings.Builder
	sb.WriteString(tagIndent)
	sb.WriteString(`<div class="compare">`)
	writePanel(&sb, left)
	writePanel(&sb, right)
	sb.WriteString(`<br class="clear"/>`)
	sb.WriteString("</div>\n")
	return sb.String()
}

func writePanel(sb *strings.Builder, p panel) {
	sb.WriteString(`<div class="`)
	sb.WriteString(p.Class)
	sb.WriteString(`"><h3>`)
	sb.WriteString(html.EscapeString(p.Heading))
	sb.WriteString(`</h3><div class="syntax">`)
	sb.WriteString(p.HTML)
	sb.WriteString(`</div></div>`)
}
