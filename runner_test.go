package main

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/syntaxblock/internal/iotest"
	"go.abhg.dev/syntaxblock/internal/render"
	"go.abhg.dev/syntaxblock/internal/tagdoc"
)

// recordingRenderer renders blocks as "<kind:location:text>"
// and fails on text containing "fail".
type recordingRenderer struct {
	calls atomic.Int32
}

var _ tagdoc.Renderer = (*recordingRenderer)(nil)

func (r *recordingRenderer) RenderSingle(_ context.Context, src string, opts render.Options) (string, error) {
	r.calls.Add(1)
	if strings.Contains(src, "fail") {
		return "", &render.Error{Tag: render.SingleTag, Location: opts.Location, Err: errors.New("great sadness")}
	}
	return "<single:" + opts.Language + ":" + opts.Location + ":" + src + ">", nil
}

func (r *recordingRenderer) RenderCompare(_ context.Context, src string, opts render.CompareOptions) (string, error) {
	r.calls.Add(1)
	if strings.Contains(src, "fail") {
		return "", &render.Error{Tag: render.CompareTag, Location: opts.Location, Err: errors.New("great sadness")}
	}
	return "<compare:" + opts.Location + ":" + src + ">", nil
}

func TestRunner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		mode Mode
		give []Input
		want []string
	}{
		{
			desc: "single",
			mode: SingleMode,
			give: []Input{
				{Name: "a.go", Text: "a"},
				{Name: "b.go", Text: "b"},
			},
			want: []string{
				"<single:go:a.go:a>",
				"<single:go:b.go:b>",
			},
		},
		{
			desc: "compare",
			mode: CompareMode,
			give: []Input{{Name: "c.txt", Text: "c"}},
			want: []string{"<compare:c.txt:c>"},
		},
		{
			desc: "document",
			mode: DocumentMode,
			give: []Input{{
				Name: "page.html",
				Text: "<p>{pygmentize:: ruby}x{pygmentize}</p>",
			}},
			want: []string{"<p><single:ruby:page.html:1:x></p>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			runner := Runner{
				Log:      iotest.Logger(t),
				Mode:     tt.mode,
				Renderer: new(recordingRenderer),
				Defaults: tagdoc.Defaults{Language: "go"},
			}
			got, err := runner.Run(context.Background(), tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunner_failures(t *testing.T) {
	t.Parallel()

	renderer := new(recordingRenderer)
	runner := Runner{
		Log:      iotest.Logger(t),
		Mode:     SingleMode,
		Renderer: renderer,
		Defaults: tagdoc.Defaults{Language: "text"},
		Jobs:     1,
	}

	got, err := runner.Run(context.Background(), []Input{
		{Name: "one", Text: "1"},
		{Name: "two", Text: "fail"},
		{Name: "three", Text: "3"},
		{Name: "four", Text: "fail again"},
	})
	assert.Equal(t, []string{
		"<single:text:one:1>",
		"<single:text:three:3>",
	}, got)
	assert.Equal(t, int32(4), renderer.calls.Load(), "every input is attempted")

	require.Error(t, err)
	assert.ErrorContains(t, err, "error processing the pygmentize tag <two>")
	assert.ErrorContains(t, err, "error processing the pygmentize tag <four>")

	var rerr *render.Error
	assert.ErrorAs(t, err, &rerr)
}

func TestMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give    string
		want    Mode
		wantErr string
	}{
		{give: "doc", want: DocumentMode},
		{give: "Single", want: SingleMode},
		{give: " compare ", want: CompareMode},
		{give: "both", wantErr: `unknown mode "both"`},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			var m Mode
			err := m.Set(tt.give)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
			assert.Equal(t, tt.want, m.Get())
			assert.Equal(t, string(tt.want), m.String())
		})
	}
}
