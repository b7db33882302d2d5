package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"braces.dev/errtrace"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"go.abhg.dev/syntaxblock/internal/render"
	"go.abhg.dev/syntaxblock/internal/tagdoc"
	"golang.org/x/sync/errgroup"
)

// Mode is the kind of input syntaxblock works on.
type Mode string

const (
	// DocumentMode renders the block tags inside documents.
	DocumentMode Mode = "doc"

	// SingleMode renders each input as one code block.
	SingleMode Mode = "single"

	// CompareMode renders each input as a comparison block.
	CompareMode Mode = "compare"
)

// String returns the flag spelling of the mode.
func (m Mode) String() string { return string(m) }

// Get returns the mode.
func (m *Mode) Get() any { return *m }

// Set parses a mode from its flag spelling.
func (m *Mode) Set(s string) error {
	switch v := Mode(strings.ToLower(strings.TrimSpace(s))); v {
	case DocumentMode, SingleMode, CompareMode:
		*m = v
		return nil
	default:
		return fmt.Errorf("unknown mode %q: expected doc, single, or compare", s)
	}
}

// Input is a named text to render.
type Input struct {
	Name string
	Text string
}

// Runner renders a batch of inputs.
//
// In terms of code organization,
// Runner's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Runner struct {
	Log      *log.Logger // required
	Mode     Mode
	Renderer tagdoc.Renderer // required
	Defaults tagdoc.Defaults

	// Jobs is the maximum number of inputs rendered at once.
	// Defaults to GOMAXPROCS.
	Jobs int
}

// Run renders all inputs, possibly in parallel.
//
// It returns the outputs of inputs that rendered successfully, in order,
// and an error joining the failures of the others.
func (r *Runner) Run(ctx context.Context, inputs []Input) ([]string, error) {
	jobs := r.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	var (
		outputs = make([]string, len(inputs))
		errs    = make([]error, len(inputs))
		g       errgroup.Group
	)
	g.SetLimit(jobs)
	for i, in := range inputs {
		g.Go(func() error {
			outputs[i], errs[i] = r.render(ctx, in)
			return nil
		})
	}
	_ = g.Wait() // failures are recorded in errs

	var rendered []string
	for i, out := range outputs {
		if errs[i] != nil {
			r.Log.Debug("failed", "input", inputs[i].Name)
			continue
		}
		r.Log.Debug("rendered", "input", inputs[i].Name, "size", humanize.Bytes(uint64(len(out))))
		rendered = append(rendered, out)
	}
	return rendered, errtrace.Wrap(errors.Join(errs...))
}

func (r *Runner) render(ctx context.Context, in Input) (string, error) {
	switch r.Mode {
	case SingleMode:
		return errtrace.Wrap2(r.Renderer.RenderSingle(ctx, in.Text, render.Options{
			Language:    r.Defaults.Language,
			LineNumbers: r.Defaults.LineNumbers,
			Location:    in.Name,
		}))

	case CompareMode:
		return errtrace.Wrap2(r.Renderer.RenderCompare(ctx, in.Text, render.CompareOptions{
			LineNumbers: r.Defaults.CompareLineNumbers,
			Location:    in.Name,
		}))

	default:
		p := tagdoc.Processor{
			Renderer: r.Renderer,
			Defaults: r.Defaults,
			Log:      r.Log,
		}
		return errtrace.Wrap2(p.Process(ctx, in.Name, in.Text))
	}
}
