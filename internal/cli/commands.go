package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Onegaishimas/xcc-lattice/internal/checkpoint"
)

func newCommandsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "commands <session-id>",
		Short: "Print the resume commands for a saved session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			commands, err := checkpoint.CommandsFor(cfg, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), commands)
			return nil
		},
	}
}
