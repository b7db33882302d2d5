package tagdoc

import (
	"context"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/charmbracelet/log"
	"go.abhg.dev/syntaxblock/internal/render"
)

// Renderer renders the bodies of tags.
type Renderer interface {
	RenderSingle(context.Context, string, render.Options) (string, error)
	RenderCompare(context.Context, string, render.CompareOptions) (string, error)
}

var _ Renderer = (*render.Renderer)(nil)

// Defaults are the settings of tags that don't override them.
type Defaults struct {
	// Language of pygmentize tags.
	Language string

	// LineNumbers for pygmentize tags.
	LineNumbers bool

	// CompareLineNumbers for pygmentize_and_compare tags.
	CompareLineNumbers bool
}

// Processor replaces the block tags of documents with rendered HTML.
type Processor struct {
	Renderer Renderer // required
	Defaults Defaults
	Log      *log.Logger
}

// Process renders every tag in doc.
// name identifies the document in errors.
//
// The first tag that fails to render aborts processing.
func (p *Processor) Process(ctx context.Context, name, doc string) (string, error) {
	tags, err := Scan(name, doc)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	logger := p.Log
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger.Debug("scanned document", "name", name, "tags", len(tags))

	var (
		sb   strings.Builder
		last int
	)
	for _, tag := range tags {
		out, err := p.render(ctx, name, tag)
		if err != nil {
			return "", errtrace.Wrap(err)
		}
		sb.WriteString(doc[last:tag.Start])
		sb.WriteString(out)
		last = tag.End
	}
	sb.WriteString(doc[last:])
	return sb.String(), nil
}

func (p *Processor) render(ctx context.Context, name string, tag *Tag) (string, error) {
	loc := fmt.Sprintf("%v:%d", name, tag.Line)

	params, err := parseParams(tag.Name, tag.Params)
	if err != nil {
		return "", errtrace.Wrap(&render.Error{Tag: tag.Name, Location: loc, Err: err})
	}

	switch tag.Name {
	case render.CompareTag:
		opts := render.CompareOptions{
			LineNumbers: p.Defaults.CompareLineNumbers,
			Location:    loc,
		}
		if params.Lines != nil {
			opts.LineNumbers = *params.Lines
		}
		return errtrace.Wrap2(p.Renderer.RenderCompare(ctx, tag.Body, opts))

	default:
		opts := render.Options{
			Language:    p.Defaults.Language,
			LineNumbers: p.Defaults.LineNumbers,
			Location:    loc,
		}
		if params.Lang != nil {
			opts.Language = *params.Lang
		}
		if params.Lines != nil {
			opts.LineNumbers = *params.Lines
		}
		return errtrace.Wrap2(p.Renderer.RenderSingle(ctx, tag.Body, opts))
	}
}
