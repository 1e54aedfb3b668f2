package depfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ly1hex/elua/internal/adapters/depfile"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	p := depfile.NewParser()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "single line",
			in:   "src/a.o: src/a.c inc/a.h\n",
			want: []string{"src/a.c", "inc/a.h"},
		},
		{
			name: "continuation lines",
			in:   "src/a.o: src/a.c \\\n  inc/a.h \\\n  inc/b.h\n",
			want: []string{"src/a.c", "inc/a.h", "inc/b.h"},
		},
		{
			name: "crlf continuations",
			in:   "src/a.o: src/a.c \\\r\n  inc/a.h\r\n",
			want: []string{"src/a.c", "inc/a.h"},
		},
		{
			name: "collapses whitespace",
			in:   "a.o:   a.c\t\tinc/a.h  \n",
			want: []string{"a.c", "inc/a.h"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse([]byte(tt.in)))
		})
	}

	t.Run("no dependencies", func(t *testing.T) {
		assert.Empty(t, p.Parse([]byte("a.o:\n")))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, p.Parse([]byte("")))
	})
}

func TestParser_Parse_Golden(t *testing.T) {
	p := depfile.NewParser()

	in, err := os.ReadFile(filepath.Join("testdata", "uart.d"))
	require.NoError(t, err)

	deps := p.Parse(in)

	g := goldie.New(t)
	g.Assert(t, "uart_deps", []byte(strings.Join(deps, "\n")+"\n"))
}

func TestParser_ReadFile(t *testing.T) {
	p := depfile.NewParser()

	t.Run("missing file yields no deps", func(t *testing.T) {
		deps, err := p.ReadFile(filepath.Join(t.TempDir(), "nope.d"))
		require.NoError(t, err)
		assert.Nil(t, deps)
	})

	t.Run("reads and parses", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a.d")
		require.NoError(t, os.WriteFile(path, []byte("a.o: a.c inc/a.h\n"), 0o644))

		deps, err := p.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.c", "inc/a.h"}, deps)
	})
}
