// Package main is the entry point for the eluabuild tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/ly1hex/elua/cmd/eluabuild/commands"
	"github.com/ly1hex/elua/internal/app"
	"github.com/ly1hex/elua/internal/core/domain"
	_ "github.com/ly1hex/elua/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(ctx context.Context, args []string, stderr io.Writer, provider ComponentProvider) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		reportError(stderr, components, err)
		return 1
	}
	return 0
}

// reportError prints the failure the way the error class demands:
// configuration errors come with the option registry help, a missing target
// comes with the list of registered targets.
func reportError(stderr io.Writer, components *app.Components, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownOption) || errors.Is(err, domain.ErrInvalidOptionValue):
		_, _ = fmt.Fprintf(stderr, "[builder] %v\n", err)
		_, _ = fmt.Fprint(stderr, "options:\n"+components.App.OptionsHelp())
	case errors.Is(err, domain.ErrTargetNotFound):
		_, _ = fmt.Fprintf(stderr, "[builder] %v\n", err)
		if infos, terr := components.App.Targets(); terr == nil {
			_, _ = fmt.Fprintln(stderr, "available targets:")
			for _, info := range infos {
				line := "  " + info.Name
				if info.Help != "" {
					line += " - " + info.Help
				}
				_, _ = fmt.Fprintln(stderr, line)
			}
		}
	default:
		components.Logger.Error(err)
	}
}
