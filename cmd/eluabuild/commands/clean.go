package commands

import (
	"github.com/ly1hex/elua/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [target]",
		Short: "Remove build outputs and persisted build state",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}

			return c.app.Build(cmd.Context(), app.BuildOptions{
				Target:  target,
				Clean:   true,
				Options: engineOptions(cmd),
			})
		},
	}

	engineFlags(cmd)
	return cmd
}
