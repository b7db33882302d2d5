package iotest

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeT struct {
	*testing.T

	Buffer bytes.Buffer
}

func (t *fakeT) Logf(msg string, args ...any) {
	fmt.Fprintln(&t.Buffer, fmt.Sprintf(msg, args...))
}

func TestWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want string
	}{
		{
			desc: "single line",
			give: []string{"foo\n"},
			want: "foo\n",
		},
		{
			desc: "partial line held",
			give: []string{"foo"},
			want: "",
		},
		{
			desc: "split across writes",
			give: []string{"fo", "o\nba", "r\n"},
			want: "foo\nbar\n",
		},
		{
			desc: "many lines",
			give: []string{"a\nb\nc\n"},
			want: "a\nb\nc\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			fakeT := fakeT{T: t}
			w := Writer(&fakeT)
			for _, s := range tt.give {
				n, err := io.WriteString(w, s)
				require.NoError(t, err)
				assert.Equal(t, len(s), n)
			}
			assert.Equal(t, tt.want, fakeT.Buffer.String())
		})
	}
}

func TestLogger(t *testing.T) {
	t.Parallel()

	fakeT := fakeT{T: t}
	Logger(&fakeT).Debug("highlighting", "lang", "go")
	assert.Contains(t, fakeT.Buffer.String(), "highlighting")
	assert.Contains(t, fakeT.Buffer.String(), "lang=go")
}
