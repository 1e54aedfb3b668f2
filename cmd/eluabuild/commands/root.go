// Package commands implements the CLI commands for the eluabuild tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/ly1hex/elua/internal/app"
	"github.com/ly1hex/elua/internal/build"
	"github.com/ly1hex/elua/internal/engine/builder"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for eluabuild.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	Targets() ([]app.TargetInfo, error)
	OptionsHelp() string
	Registry() *builder.Registry
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "eluabuild",
		Short:         "An incremental build engine for embedded firmware images",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newTargetsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// engineFlags adds the engine option flags shared by build and clean.
func engineFlags(cmd *cobra.Command) {
	cmd.Flags().String("build-dir", "", "Build output directory")
	cmd.Flags().String("build-mode", "", "Object file placement: keep_dir, build_dir or build_dir_linearized")
	cmd.Flags().String("disp-mode", "", "Display mode: all or summary")
}

// engineOptions collects only the flags the user actually set, so project
// file settings stay in effect otherwise.
func engineOptions(cmd *cobra.Command) map[string]string {
	opts := make(map[string]string)
	for flag, option := range map[string]string{
		"build-dir":  "build_dir",
		"build-mode": "build_mode",
		"disp-mode":  "disp_mode",
	} {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetString(flag)
			opts[option] = v
		}
	}
	return opts
}
