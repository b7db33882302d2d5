package highlight

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"braces.dev/errtrace"
	"github.com/charmbracelet/log"
	"go.abhg.dev/syntaxblock/internal/errdefer"
	"go.abhg.dev/syntaxblock/internal/linebuf"
)

const _pygmentizeEngine = "pygmentize"

// How long to wait for pygmentize to release its output
// after it has been killed.
const _waitDelay = time.Second

// Pygmentize is an Engine backed by the pygmentize CLI.
// Code is piped to the tool over stdin
// and the HTML is read back from its stdout.
type Pygmentize struct {
	// Path is the path to the pygmentize executable.
	// If unset, we'll search $PATH.
	Path string

	// Style is the name of the Pygments style.
	// Defaults to [DefaultStyle].
	Style string

	// Options holds additional "key=value" formatter options.
	Options []string

	// Log receives the error output of pygmentize.
	Log *log.Logger
}

var _ Engine = (*Pygmentize)(nil)

// Highlight runs pygmentize for the request.
// The tool exiting with a non-zero status is an error.
func (p *Pygmentize) Highlight(ctx context.Context, req *Request) (*Result, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, p.exe(), p.args(req)...)
	cmd.Stdin = strings.NewReader(req.Code)
	cmd.Stdout = &stdout
	if err := p.run(ctx, cmd, req); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Result{HTML: stdout.String()}, nil
}

func (p *Pygmentize) exe() string {
	if p.Path != "" {
		return p.Path
	}
	return "pygmentize"
}

// args builds the arguments for highlighting req,
// without the input and output files.
func (p *Pygmentize) args(req *Request) []string {
	style := p.Style
	if style == "" {
		style = DefaultStyle
	}

	opts := []string{"style=" + style}
	if req.LineNumbers {
		opts = append(opts, "linenos=1")
	}
	opts = append(opts, p.Options...)

	return []string{
		"-O", strings.Join(opts, ","),
		"-f", "html",
		"-l", req.Language,
	}
}

// run runs cmd, logging its stderr and turning failures into EngineErrors.
func (p *Pygmentize) run(ctx context.Context, cmd *exec.Cmd, req *Request) error {
	logger := p.Log
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var stderr bytes.Buffer
	logw, done := linebuf.Writer(func(line string) {
		logger.Debug(line, "engine", _pygmentizeEngine, "lang", req.Language)
	})
	cmd.Stderr = io.MultiWriter(&stderr, logw)
	cmd.WaitDelay = _waitDelay

	err := cmd.Run()
	done()
	if err == nil {
		return nil
	}

	// A killed process hides the reason we killed it.
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = ctxErr
	}
	return errtrace.Wrap(&EngineError{
		Engine:   _pygmentizeEngine,
		Language: req.Language,
		Stderr:   strings.TrimSpace(stderr.String()),
		Err:      err,
	})
}

// PygmentizeFiles is an Engine backed by the pygmentize CLI
// that exchanges code and HTML with the tool through temporary files.
type PygmentizeFiles struct {
	Pygmentize

	// TempDir is the directory for temporary files.
	// Defaults to the system temporary directory.
	TempDir string
}

var _ Engine = (*PygmentizeFiles)(nil)

// Highlight writes the code to a temporary file,
// runs pygmentize on it, and reads back the output file.
// Both files are removed before returning.
func (p *PygmentizeFiles) Highlight(ctx context.Context, req *Request) (_ *Result, err error) {
	in, err := p.writeInput(req.Code)
	if in != "" {
		defer errdefer.Remove(&err, in)
	}
	if err != nil {
		return nil, p.fail(req, err)
	}

	out, err := p.createOutput()
	if err != nil {
		return nil, p.fail(req, err)
	}
	defer errdefer.Remove(&err, out)

	args := append(p.args(req), "-o", out, in)
	cmd := exec.CommandContext(ctx, p.exe(), args...)
	if err := p.run(ctx, cmd, req); err != nil {
		return nil, errtrace.Wrap(err)
	}

	html, err := os.ReadFile(out)
	if err != nil {
		return nil, p.fail(req, err)
	}
	return &Result{HTML: string(html)}, nil
}

func (p *PygmentizeFiles) writeInput(code string) (_ string, err error) {
	f, err := os.CreateTemp(p.TempDir, "pygmentize.*.in")
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	if _, err := io.WriteString(f, code); err != nil {
		return f.Name(), errtrace.Wrap(err)
	}
	return f.Name(), nil
}

func (p *PygmentizeFiles) createOutput() (string, error) {
	f, err := os.CreateTemp(p.TempDir, "pygmentize.*.out")
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return f.Name(), errtrace.Wrap(f.Close())
}

func (p *PygmentizeFiles) fail(req *Request, err error) error {
	return errtrace.Wrap(&EngineError{
		Engine:   _pygmentizeEngine,
		Language: req.Language,
		Err:      err,
	})
}
