package app

import (
	"github.com/spf13/cobra"
)

func newLeaguesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leagues",
		Short: "List the configured leagues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			return renderLeagues(cmd.OutOrStdout(), cat)
		},
	}
	return cmd
}
