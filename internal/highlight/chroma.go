package highlight

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/log"
)

const _chromaEngine = "chroma"

// Chroma is an Engine that highlights code in-process
// with the Chroma library.
//
// It is safe for concurrent use.
type Chroma struct {
	// Style used for syntax highlighting of code.
	// Defaults to the style named [DefaultStyle].
	Style *chroma.Style

	// UseClasses specifies whether the highlighter
	// uses inline 'style' attributes for highlighting,
	// or classes, assuming use of an appropriate style sheet.
	UseClasses bool

	Log *log.Logger

	once     sync.Once
	style    *chroma.Style
	plain    *chromahtml.Formatter
	numbered *chromahtml.Formatter
}

var _ Engine = (*Chroma)(nil)

func (c *Chroma) init() {
	c.once.Do(func() {
		c.style = c.Style
		if c.style == nil {
			c.style = defaultStyle()
		}
		c.plain = chromahtml.New(
			chromahtml.WithClasses(c.UseClasses),
		)
		c.numbered = chromahtml.New(
			chromahtml.WithClasses(c.UseClasses),
			chromahtml.WithLineNumbers(true),
		)
	})
}

// WriteCSS writes the style classes for this highlighter to writer.
// If this highlighter is not using classes, WriteCSS is a no-op.
func (c *Chroma) WriteCSS(w io.Writer) error {
	c.init()

	if !c.UseClasses {
		return nil
	}

	return errtrace.Wrap(c.plain.WriteCSS(w, c.style))
}

// Highlight renders the requested code into HTML.
// Languages unknown to Chroma are an error.
func (c *Chroma) Highlight(ctx context.Context, req *Request) (*Result, error) {
	c.init()

	if err := ctx.Err(); err != nil {
		return nil, c.fail(req, err)
	}

	lexer := lexers.Get(req.Language)
	if lexer == nil {
		return nil, c.fail(req, errors.New("unknown language"))
	}

	iter, err := chroma.Coalesce(lexer).Tokenise(nil, req.Code)
	if err != nil {
		return nil, c.fail(req, err)
	}

	f := c.plain
	if req.LineNumbers {
		f = c.numbered
	}

	var buf bytes.Buffer
	if err := f.Format(&buf, c.style, iter); err != nil {
		return nil, c.fail(req, err)
	}

	if c.Log != nil {
		c.Log.Debug("highlighted", "engine", _chromaEngine, "lexer", lexer.Config().Name)
	}
	return &Result{HTML: buf.String()}, nil
}

func (c *Chroma) fail(req *Request, err error) error {
	return errtrace.Wrap(&EngineError{
		Engine:   _chromaEngine,
		Language: req.Language,
		Err:      err,
	})
}
