//go:build !windows

package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ly1hex/elua/internal/adapters/shell"
	"github.com/ly1hex/elua/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor_Execute(t *testing.T) {
	t.Run("captures stdout", func(t *testing.T) {
		e := shell.NewExecutor()
		var out, errOut bytes.Buffer
		e.SetOutput(&out, &errOut)

		err := e.Execute(context.Background(), "echo hello")
		require.NoError(t, err)
		assert.Equal(t, "hello\n", out.String())
	})

	t.Run("runs through the shell", func(t *testing.T) {
		dir := t.TempDir()
		out := filepath.Join(dir, "out.txt")

		e := shell.NewExecutor()
		err := e.Execute(context.Background(), "echo data > "+out)
		require.NoError(t, err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "data\n", string(data))
	})

	t.Run("non-zero exit returns command failure", func(t *testing.T) {
		e := shell.NewExecutor()
		var out, errOut bytes.Buffer
		e.SetOutput(&out, &errOut)

		err := e.Execute(context.Background(), "exit 3")
		require.ErrorIs(t, err, domain.ErrCommandFailed)
	})

	t.Run("cancelled context fails", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		e := shell.NewExecutor()
		var out, errOut bytes.Buffer
		e.SetOutput(&out, &errOut)

		err := e.Execute(ctx, "sleep 5")
		require.Error(t, err)
	})
}
