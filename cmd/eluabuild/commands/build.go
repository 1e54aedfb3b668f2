package commands

import (
	"github.com/ly1hex/elua/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [target]",
		Short: "Build the given target, or all components",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			watch, _ := cmd.Flags().GetBool("watch")

			return c.app.Build(cmd.Context(), app.BuildOptions{
				Target:  target,
				Watch:   watch,
				Options: engineOptions(cmd),
			})
		},
	}

	engineFlags(cmd)
	cmd.Flags().BoolP("watch", "w", false, "Rebuild whenever a source file changes")
	return cmd
}
