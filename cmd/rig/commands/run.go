package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build every character whose inputs changed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context(), force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Rebuild everything, ignoring the manifest")

	return cmd
}
