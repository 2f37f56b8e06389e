package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/klub/internal/app"
	"github.com/MrSnakeDoc/klub/internal/store"
)

// NewPurgeCommand creates the purge command.
func NewPurgeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete every collection from the record store",
		Long: `Delete every collection from the configured record store and exit.

Reads fall back to the built-in seed data until the next seeding run,
so this is the way to drop all admin edits without restarting.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log := setup()
			defer func() { _ = log.Sync() }()

			if err := app.Purge(cmd.Context(), cfg, log); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "purged (%d)\n", len(store.Keys()))
			return err
		},
	}
}
