package tagdoc

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/syntaxblock/internal/render"
	"gopkg.in/yaml.v3"
)

// params are the settings of a single tag.
// Nil fields were not specified.
type params struct {
	Lang  *string
	Lines *bool
}

// parseParams parses the raw parameters of the named tag.
func parseParams(tag, raw string) (params, error) {
	var p params
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return p, nil
	}

	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return p, errtrace.Wrap(fmt.Errorf("bad parameters %q: %w", raw, err))
	}

	m, ok := v.(map[string]any)
	if !ok {
		m = map[string]any{defaultParam(tag): v}
	}
	for key, value := range m {
		if err := p.set(tag, key, value); err != nil {
			return p, errtrace.Wrap(err)
		}
	}
	return p, nil
}

func defaultParam(tag string) string {
	if tag == render.CompareTag {
		return "lines"
	}
	return "lang"
}

func (p *params) set(tag, key string, value any) error {
	// Accept the fully qualified names of the webgen configuration,
	// e.g. fuse.pygmentize.lang.
	name := strings.TrimPrefix(key, "fuse."+tag+".")

	switch {
	case name == "lang" && tag == render.SingleTag:
		if value == nil {
			return fmt.Errorf("parameter %q must not be empty", key)
		}
		lang := fmt.Sprint(value)
		p.Lang = &lang

	case name == "lines":
		lines, ok := value.(bool)
		if !ok {
			return fmt.Errorf("parameter %q must be true or false, got %v", key, value)
		}
		p.Lines = &lines

	default:
		return fmt.Errorf("unknown parameter %q", key)
	}
	return nil
}
