package tagdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	t.Parallel()

	str := func(s string) *string { return &s }
	boolean := func(b bool) *bool { return &b }

	tests := []struct {
		desc string
		tag  string
		give string
		want params
	}{
		{desc: "empty", tag: "pygmentize", give: "  "},
		{
			desc: "default lang",
			tag:  "pygmentize",
			give: " java",
			want: params{Lang: str("java")},
		},
		{
			desc: "numeric lang",
			tag:  "pygmentize",
			give: "1",
			want: params{Lang: str("1")},
		},
		{
			desc: "mapping",
			tag:  "pygmentize",
			give: " {lang: ruby, lines: true}",
			want: params{Lang: str("ruby"), Lines: boolean(true)},
		},
		{
			desc: "qualified names",
			tag:  "pygmentize",
			give: "{fuse.pygmentize.lang: xml, fuse.pygmentize.lines: false}",
			want: params{Lang: str("xml"), Lines: boolean(false)},
		},
		{
			desc: "compare default",
			tag:  "pygmentize_and_compare",
			give: "true",
			want: params{Lines: boolean(true)},
		},
		{
			desc: "compare qualified",
			tag:  "pygmentize_and_compare",
			give: "{fuse.pygmentize_and_compare.lines: true}",
			want: params{Lines: boolean(true)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := parseParams(tt.tag, tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseParams_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc    string
		tag     string
		give    string
		wantErr string
	}{
		{
			desc:    "bad yaml",
			tag:     "pygmentize",
			give:    "{lang: [",
			wantErr: "bad parameters",
		},
		{
			desc:    "unknown key",
			tag:     "pygmentize",
			give:    "{color: red}",
			wantErr: `unknown parameter "color"`,
		},
		{
			desc:    "lang on compare",
			tag:     "pygmentize_and_compare",
			give:    "{lang: java}",
			wantErr: `unknown parameter "lang"`,
		},
		{
			desc:    "lines not a bool",
			tag:     "pygmentize_and_compare",
			give:    "sometimes",
			wantErr: `parameter "lines" must be true or false`,
		},
		{
			desc:    "empty lang",
			tag:     "pygmentize",
			give:    "{lang: }",
			wantErr: `parameter "lang" must not be empty`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			_, err := parseParams(tt.tag, tt.give)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
