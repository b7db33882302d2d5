package main

import (
	"bytes"
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/syntaxblock/internal/highlight"
	"go.abhg.dev/syntaxblock/internal/indent"
	"go.abhg.dev/syntaxblock/internal/iotest"
)

func TestCLIParser(t *testing.T) {
	t.Parallel()

	defaults := func(p params) params {
		if p.Mode == "" {
			p.Mode = DocumentMode
		}
		if p.Lang == "" {
			p.Lang = "text"
		}
		if p.Engine == "" {
			p.Engine = "chroma"
		}
		if p.Style == "" {
			p.Style = "colorful"
		}
		if p.Timeout == 0 {
			p.Timeout = 30 * time.Second
		}
		return p
	}

	tests := []struct {
		desc string
		give []string
		want params
	}{
		{
			desc: "minimal",
			give: []string{"page.html"},
			want: defaults(params{
				Cache:  true,
				Inputs: []string{"page.html"},
			}),
		},
		{
			desc: "many arguments",
			give: []string{
				"-mode", "compare",
				"-lang=java",
				"-lines",
				"-compare-lines",
				"-margin=min",
				"-engine", "pygmentize",
				"-pygmentize", "/opt/bin/pygmentize",
				"-style", "monokai",
				"-O", "nowrap=True",
				"-O=startinline=1",
				"-timeout", "5s",
				"-jobs", "3",
				"-cache=false",
				"-debug=log.txt",
				"a.html", "-",
			},
			want: params{
				Mode:         CompareMode,
				Lang:         "java",
				Lines:        true,
				CompareLines: true,
				Margin:       indent.MinimumMargin,
				Engine:       "pygmentize",
				Pygmentize:   "/opt/bin/pygmentize",
				Style:        "monokai",
				Options: []formatterOption{
					{Key: "nowrap", Value: "True"},
					{Key: "startinline", Value: "1"},
				},
				Timeout: 5 * time.Second,
				Jobs:    3,
				Debug:   "log.txt",
				Inputs:  []string{"a.html", "-"},
			},
		},
		{
			desc: "classes and css",
			give: []string{"-classes", "-css", "-"},
			want: defaults(params{
				Classes: true,
				CSS:     "-",
				Cache:   true,
				Inputs:  []string{"-"},
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: iotest.Writer(t),
			}).Parse(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestCLIParser_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want string // expected messages
	}{
		{
			desc: "unrecognized",
			give: []string{"-foo=bar", "a.html"},
			want: "flag provided but not defined: -foo",
		},
		{
			desc: "unknown engine",
			give: []string{"-engine=rouge", "a.html"},
			want: `Unknown engine "rouge"`,
		},
		{
			desc: "unknown mode",
			give: []string{"-mode=both"},
			want: `unknown mode "both"`,
		},
		{
			desc: "unknown margin",
			give: []string{"-margin=max"},
			want: `unknown margin strategy "max"`,
		},
		{
			desc: "bad formatter option",
			give: []string{"-O", "linenos"},
			want: "expected form 'key=value'",
		},
		{
			desc: "missing config file",
			give: []string{"-config", "does-not-exist.toml"},
			want: "does-not-exist.toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer
			_, err := (&cliParser{Stderr: &stderr}).Parse(tt.give)
			require.Error(t, err)
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}

func TestCLIParser_helpTopic(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	_, err := (&cliParser{Stderr: &stderr}).Parse([]string{"-h", "compare"})
	require.ErrorIs(t, err, errHelp)
	assert.Equal(t, _compareHelp, stderr.String())
}

func TestParams_newEngine(t *testing.T) {
	t.Parallel()

	logger := iotest.Logger(t)

	t.Run("chroma", func(t *testing.T) {
		t.Parallel()

		p := params{Engine: "chroma", Style: "monokai", Classes: true}
		e, err := p.newEngine(logger)
		require.NoError(t, err)

		c, ok := e.(*highlight.Chroma)
		require.True(t, ok, "want *highlight.Chroma, got %T", e)
		assert.Equal(t, "monokai", c.Style.Name)
		assert.True(t, c.UseClasses)
	})

	t.Run("chroma unknown style", func(t *testing.T) {
		t.Parallel()

		p := params{Engine: "chroma", Style: "no-such-style"}
		_, err := p.newEngine(logger)
		assert.ErrorContains(t, err, "no-such-style")
	})

	t.Run("pygmentize", func(t *testing.T) {
		t.Parallel()

		p := params{
			Engine:     "pygmentize",
			Pygmentize: "/usr/local/bin/pygmentize",
			Style:      "friendly",
			Options:    []formatterOption{{Key: "nowrap", Value: "True"}},
		}
		e, err := p.newEngine(logger)
		require.NoError(t, err)

		py, ok := e.(*highlight.Pygmentize)
		require.True(t, ok, "want *highlight.Pygmentize, got %T", e)
		assert.Equal(t, "/usr/local/bin/pygmentize", py.Path)
		assert.Equal(t, "friendly", py.Style)
		assert.Equal(t, []string{"nowrap=True"}, py.Options)
	})

	t.Run("pygmentize files", func(t *testing.T) {
		t.Parallel()

		p := params{Engine: "pygmentize-files", Style: "colorful"}
		e, err := p.newEngine(logger)
		require.NoError(t, err)

		pf, ok := e.(*highlight.PygmentizeFiles)
		require.True(t, ok, "want *highlight.PygmentizeFiles, got %T", e)
		assert.Equal(t, "colorful", pf.Style)
	})
}

func TestFormatterOption(t *testing.T) {
	t.Parallel()

	fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
	fset.SetOutput(iotest.Writer(t))

	var opt formatterOption
	fset.Var(&opt, "x", "")
	require.NoError(t, fset.Parse([]string{
		"-x", "hl_lines=1 2",
	}))

	assert.Equal(t, "hl_lines", opt.Key)
	assert.Equal(t, "1 2", opt.Value)
	assert.NotNil(t, opt.Get(), "Get")
	assert.Equal(t, "hl_lines=1 2", opt.String())
}

func TestFormatterOption_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want string // expected error
	}{
		{
			desc: "no '='",
			give: "nowrap",
			want: "expected form 'key=value'",
		},
		{
			desc: "empty key",
			give: "=1",
			want: "expected form 'key=value'",
		},
		{
			desc: "comma",
			give: "hl_lines=1,2",
			want: `option "hl_lines": values must not contain commas`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var opt formatterOption
			assert.ErrorContains(t, opt.Set(tt.give), tt.want)
		})
	}
}
