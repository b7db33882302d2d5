package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"braces.dev/errtrace"
	"github.com/charmbracelet/log"
	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/syntaxblock/internal/flagvalue"
	"go.abhg.dev/syntaxblock/internal/highlight"
	"go.abhg.dev/syntaxblock/internal/indent"
	"go.abhg.dev/syntaxblock/internal/render"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// Names of the supported highlighting engines.
const (
	_engineChroma          = "chroma"
	_enginePygmentize      = "pygmentize"
	_enginePygmentizeFiles = "pygmentize-files"
)

// _envPrefix is the prefix of environment variables
// that set flags, e.g. SYNTAXBLOCK_LANG.
const _envPrefix = "SYNTAXBLOCK"

// params holds all arguments for syntaxblock.
type params struct {
	version bool
	help    Help
	config  string

	Mode         Mode
	Lang         string
	Lines        bool
	CompareLines bool

	Engine     string
	Pygmentize string
	Style      string
	Classes    bool
	Options    []formatterOption
	CSS        flagvalue.FileSwitch

	Margin  indent.Strategy
	Timeout time.Duration
	Jobs    int
	Cache   bool

	Debug flagvalue.FileSwitch

	Inputs []string
}

// cliParser parses the command line arguments for syntaxblock.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("syntaxblock", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	p := params{Mode: DocumentMode}

	// Input:
	flag.Var(&p.Mode, "mode", "")
	flag.StringVar(&p.Lang, "lang", render.DefaultLanguage, "")
	flag.BoolVar(&p.Lines, "lines", false, "")
	flag.BoolVar(&p.CompareLines, "compare-lines", false, "")
	flag.Var(&p.Margin, "margin", "")

	// Highlighting:
	flag.StringVar(&p.Engine, "engine", _engineChroma, "")
	flag.StringVar(&p.Pygmentize, "pygmentize", "", "")
	flag.StringVar(&p.Style, "style", highlight.DefaultStyle, "")
	flag.BoolVar(&p.Classes, "classes", false, "")
	flag.Var(flagvalue.ListOf(&p.Options), "O", "")
	flag.Var(&p.CSS, "css", "")
	flag.DurationVar(&p.Timeout, "timeout", render.DefaultTimeout, "")
	flag.BoolVar(&p.Cache, "cache", true, "")
	flag.IntVar(&p.Jobs, "jobs", 0, "")

	// Program-level:
	flag.StringVar(&p.config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix(_envPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(func(r io.Reader, set func(name, value string) error) error {
			return configFileParser(p.config)(r, set)
		}),
	)
	if err != nil {
		if !errors.Is(err, errHelp) {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errtrace.Wrap(err)
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "syntaxblock", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			if _, ok := h.lookup(); ok {
				p.help = h
			}
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	switch p.Engine {
	case _engineChroma, _enginePygmentize, _enginePygmentizeFiles:
	default:
		fmt.Fprintf(cmd.Stderr, "Unknown engine %q: expected %v, %v, or %v.\n",
			p.Engine, _engineChroma, _enginePygmentize, _enginePygmentizeFiles)
		return nil, errInvalidArguments
	}

	p.Inputs = args
	return p, nil
}

// newEngine builds the highlighting engine requested by the user.
func (p *params) newEngine(logger *log.Logger) (highlight.Engine, error) {
	opts := make([]string, len(p.Options))
	for i, o := range p.Options {
		opts[i] = o.String()
	}

	pygmentize := highlight.Pygmentize{
		Path:    p.Pygmentize,
		Style:   p.Style,
		Options: opts,
		Log:     logger,
	}

	switch p.Engine {
	case _enginePygmentize:
		return &pygmentize, nil

	case _enginePygmentizeFiles:
		return &highlight.PygmentizeFiles{Pygmentize: pygmentize}, nil

	default:
		style, err := highlight.LookupStyle(p.Style)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		if len(opts) > 0 {
			logger.Warn("formatter options are ignored by chroma", "options", opts)
		}
		return &highlight.Chroma{
			Style:      style,
			UseClasses: p.Classes,
			Log:        logger,
		}, nil
	}
}

// formatterOption is a "key=value" option for the pygmentize formatter.
type formatterOption struct {
	Key   string
	Value string
}

var _ flag.Getter = (*formatterOption)(nil)

func (o *formatterOption) Get() any { return o }

func (o *formatterOption) String() string {
	return o.Key + "=" + o.Value
}

func (o *formatterOption) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected form 'key=value'")
	}
	if strings.Contains(value, ",") {
		return fmt.Errorf("option %q: values must not contain commas", key)
	}

	o.Key = key
	o.Value = value
	return nil
}
