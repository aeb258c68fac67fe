// Package app holds the rosterctl commands.
package app

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/roster-filter-service/internal/catalog"
	"github.com/preston-bernstein/roster-filter-service/internal/logging"
)

// NewRootCmd builds the rosterctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "rosterctl",
		Short:        "Filter football rosters from the command line",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().String("catalog", "", "Path to a league catalog YAML file (defaults to the embedded catalog)")
	root.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(newLeaguesCmd())
	root.AddCommand(newPlayersCmd())
	return root
}

func loadCatalog(cmd *cobra.Command) (catalog.Catalog, error) {
	path, err := cmd.Flags().GetString("catalog")
	if err != nil {
		return catalog.Catalog{}, err
	}
	return catalog.Load(path)
}

// newLogger logs to stderr so stdout stays clean for tables and JSON.
func newLogger(cmd *cobra.Command, out io.Writer) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.NewLogger(logging.Config{
		Level:   level,
		Service: "rosterctl",
		Output:  out,
	})
}
