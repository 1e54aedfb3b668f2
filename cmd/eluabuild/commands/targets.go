package commands

import (
	"fmt"

	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List the registered build targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos, err := c.app.Targets()
			if err != nil {
				return err
			}

			dump, _ := cmd.Flags().GetBool("dump")
			if dump {
				fmt.Fprintln(cmd.OutOrStdout(), litter.Sdump(c.app.Registry().List()))
				return nil
			}

			for _, info := range infos {
				line := fmt.Sprintf("%-8s %s", info.Kind, info.Name)
				if info.Help != "" {
					line += " - " + info.Help
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().Bool("dump", false, "Dump the full target registry for debugging")
	return cmd
}
