package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"braces.dev/errtrace"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"go.abhg.dev/syntaxblock/internal/code"
	"go.abhg.dev/syntaxblock/internal/compare"
	"go.abhg.dev/syntaxblock/internal/highlight"
	"go.abhg.dev/syntaxblock/internal/indent"
)

// DefaultLanguage is the language of blocks that don't specify one.
const DefaultLanguage = "text"

// DefaultTimeout bounds each call to the highlighting engine
// if Renderer.Timeout is unset.
const DefaultTimeout = 30 * time.Second

// Options control how a single block is rendered.
type Options struct {
	// Language of the block.
	// Defaults to DefaultLanguage.
	Language string

	// LineNumbers requests that line numbers be shown.
	LineNumbers bool

	// Location of the block in its document.
	// It's used only to report errors.
	Location string
}

// CompareOptions control how a comparison block is rendered.
// The languages and headings come from the block itself.
type CompareOptions struct {
	// LineNumbers requests that line numbers be shown on both sides.
	LineNumbers bool

	// Location of the block in its document.
	// It's used only to report errors.
	Location string
}

// Renderer renders code blocks into HTML fragments.
//
// A Renderer holds no per-call state.
// It's safe for concurrent use if its Engine is.
type Renderer struct {
	// Engine highlights code.
	Engine highlight.Engine // required

	// Margin selects how the margin of blocks is detected.
	Margin indent.Strategy

	// Timeout bounds each call to Engine.
	// Defaults to DefaultTimeout. Negative values disable the bound.
	Timeout time.Duration

	Log *log.Logger
}

// RenderSingle renders src as a single highlighted block.
//
// Errors are reported as [*Error] wrapping
// a [*highlight.EngineError].
// No HTML is returned on error.
func (r *Renderer) RenderSingle(ctx context.Context, src string, opts Options) (string, error) {
	text, tagIndent := r.Margin.Normalize(src)

	lang := opts.Language
	if lang == "" {
		lang = DefaultLanguage
	}
	blk := &code.Block{
		Language: lang,
		Lines:    indent.SplitLines(text),
	}

	html, err := r.highlight(ctx, blk, text, opts.LineNumbers)
	if err != nil {
		return "", errtrace.Wrap(&Error{Tag: SingleTag, Location: opts.Location, Err: err})
	}
	return composeSingle(tagIndent, html), nil
}

// RenderCompare renders src as two blocks side by side.
// src must follow the format understood by [compare.Parse].
//
// Errors are reported as [*Error] wrapping
// a [*compare.FormatError] or a [*highlight.EngineError].
// No HTML is returned on error.
func (r *Renderer) RenderCompare(ctx context.Context, src string, opts CompareOptions) (string, error) {
	out, err := r.renderCompare(ctx, src, opts)
	if err != nil {
		return "", errtrace.Wrap(&Error{Tag: CompareTag, Location: opts.Location, Err: err})
	}
	return out, nil
}

func (r *Renderer) renderCompare(ctx context.Context, src string, opts CompareOptions) (string, error) {
	text, tagIndent := r.Margin.Normalize(src)

	left, right, err := compare.Parse(text)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	leftHTML, err := r.highlight(ctx, left, left.Text(), opts.LineNumbers)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	rightHTML, err := r.highlight(ctx, right, right.Text(), opts.LineNumbers)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	return composeCompare(tagIndent,
		panel{Class: "compare-left", Heading: left.Heading, HTML: leftHTML},
		panel{Class: "compare-right", Heading: right.Heading, HTML: rightHTML},
	), nil
}

// highlight runs the engine on src, the text of blk,
// within the configured timeout and escapes the newlines of the result.
func (r *Renderer) highlight(ctx context.Context, blk *code.Block, src string, lineNumbers bool) (string, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req := &highlight.Request{
		Language:    blk.Language,
		Code:        src,
		LineNumbers: lineNumbers,
	}
	start := time.Now()
	res, err := r.Engine.Highlight(ctx, req)
	if err != nil {
		return "", errtrace.Wrap(engineError(ctx, req, err, timeout))
	}

	r.logger().Debug("highlighted block",
		"lang", req.Language,
		"lines", len(blk.Lines),
		"size", humanize.Bytes(uint64(len(res.HTML))),
		"took", time.Since(start).Round(time.Millisecond),
	)
	return highlight.EscapeNewlines(res.HTML), nil
}

// engineError makes sure that err is a highlight.EngineError,
// and that it reports an expired deadline.
func engineError(ctx context.Context, req *highlight.Request, err error, timeout time.Duration) error {
	ctxErr := ctx.Err()
	if errors.Is(ctxErr, context.DeadlineExceeded) && !errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("%w: %w", err, ctxErr)
	}

	var eerr *highlight.EngineError
	if errors.As(err, &eerr) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("no result after %v: %w", timeout, err)
	}
	return &highlight.EngineError{
		Language: req.Language,
		Err:      err,
	}
}

func (r *Renderer) logger() *log.Logger {
	if r.Log != nil {
		return r.Log
	}
	return log.New(io.Discard)
}
