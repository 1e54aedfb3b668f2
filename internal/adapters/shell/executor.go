// Package shell provides the OS-shell executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/ly1hex/elua/internal/core/domain"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor by handing whole command lines to the
// operating system shell, the way a Makefile recipe line runs.
type Executor struct {
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates a new Executor writing command output to the process
// streams.
func NewExecutor() *Executor {
	return &Executor{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetOutput redirects command output. Used for testing.
func (e *Executor) SetOutput(stdout, stderr io.Writer) {
	e.stdout = stdout
	e.stderr = stderr
}

// Execute runs one expanded command line. A non-zero exit is returned as
// domain.ErrCommandFailed with the exit code and command attached.
func (e *Executor) Execute(ctx context.Context, command string) error {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", command) //nolint:gosec // build commands are user supplied by design
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", command) //nolint:gosec // build commands are user supplied by design
	}

	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(domain.ErrCommandFailed, "exit_code", exitCode), "command", command)
	}

	return nil
}
