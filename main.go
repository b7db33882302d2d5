// syntaxblock renders the code block tags of documents
// into syntax highlighted HTML.
//
// See syntaxblock -help for usage.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"braces.dev/errtrace"
	"github.com/charmbracelet/log"
	"go.abhg.dev/syntaxblock/internal/errdefer"
	"go.abhg.dev/syntaxblock/internal/highlight"
	"go.abhg.dev/syntaxblock/internal/render"
	"go.abhg.dev/syntaxblock/internal/tagdoc"
)

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.NewWithOptions(cmd.Stderr, log.Options{Prefix: "syntaxblock"})

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, errHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Error(err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer func() {
		err = errors.Join(err, closeDebug())
	}()

	logger := log.NewWithOptions(debugw, log.Options{
		Prefix:          "syntaxblock",
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})

	engine, err := opts.newEngine(logger)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if err := cmd.writeCSS(opts, engine); err != nil {
		return errtrace.Wrap(err)
	}
	if opts.Cache {
		engine = highlight.NewCache(engine)
	}

	inputs, err := cmd.readInputs(opts.Inputs)
	if err != nil {
		return errtrace.Wrap(err)
	}

	runner := Runner{
		Log:  logger,
		Mode: opts.Mode,
		Renderer: &render.Renderer{
			Engine:  engine,
			Margin:  opts.Margin,
			Timeout: opts.Timeout,
			Log:     logger,
		},
		Defaults: tagdoc.Defaults{
			Language:           opts.Lang,
			LineNumbers:        opts.Lines,
			CompareLineNumbers: opts.CompareLines,
		},
		Jobs: opts.Jobs,
	}

	start := time.Now()
	outputs, runErr := runner.Run(context.Background(), inputs)
	for _, out := range outputs {
		if _, err := io.WriteString(cmd.Stdout, out); err != nil {
			return errtrace.Wrap(err)
		}
	}
	logger.Debug("done", "inputs", len(inputs), "took", time.Since(start).Round(time.Millisecond))
	return errtrace.Wrap(runErr)
}

// writeCSS writes the stylesheet for engines that use CSS classes
// if the user asked for it.
func (cmd *mainCmd) writeCSS(opts *params, engine highlight.Engine) (err error) {
	if !opts.CSS.Bool() {
		return nil
	}

	c, ok := engine.(*highlight.Chroma)
	if !ok || !c.UseClasses {
		return errtrace.Wrap(errors.New("-css requires -engine=chroma and -classes"))
	}

	w, closeCSS, err := opts.CSS.Create(cmd.Stdout)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer func() {
		err = errors.Join(err, closeCSS())
	}()

	return errtrace.Wrap(c.WriteCSS(w))
}

// readInputs reads the named files.
// "-" and an empty list read stdin.
func (cmd *mainCmd) readInputs(names []string) ([]Input, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}

	inputs := make([]Input, 0, len(names))
	for _, name := range names {
		text, err := cmd.readInput(name)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		if name == "-" {
			name = "<stdin>"
		}
		inputs = append(inputs, Input{Name: name, Text: text})
	}
	return inputs, nil
}

func (cmd *mainCmd) readInput(name string) (_ string, err error) {
	if name == "-" {
		bs, err := io.ReadAll(cmd.Stdin)
		if err != nil {
			return "", errtrace.Wrap(fmt.Errorf("read stdin: %w", err))
		}
		return string(bs), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	bs, err := io.ReadAll(f)
	return string(bs), errtrace.Wrap(err)
}
