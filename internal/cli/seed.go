package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/klub/internal/app"
	"github.com/MrSnakeDoc/klub/internal/seed"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	Reset bool
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write seed data into the record store",
		Long: `Write seed data into the configured record store and exit.

Only missing collections are written unless --reset is given, in which
case every collection is overwritten with the seed content.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log := setup()
			defer func() { _ = log.Sync() }()

			res, err := app.Seed(cmd.Context(), cfg, log, opts.Reset)
			if err != nil {
				return err
			}
			return printSeedResult(cmd.OutOrStdout(), rootOpts.Format, res)
		},
	}

	cmd.Flags().BoolVar(&opts.Reset, "reset", false, "overwrite every collection")

	return cmd
}

func printSeedResult(w io.Writer, format string, res seed.Result) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	_, err := fmt.Fprintf(w, "written (%d): %s\nkept (%d): %s\n",
		len(res.Written), strings.Join(res.Written, ", "),
		len(res.Kept), strings.Join(res.Kept, ", "))
	return err
}
