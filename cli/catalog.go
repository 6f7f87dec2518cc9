package cli

import (
	"github.com/spf13/cobra"

	"github.com/warp/jade-forecast/rewards"
)

// ─── catalog ────────────────────────────────────────────────────────────────

func newCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the reward catalog as YAML",
		Long: `Print the reward catalog in use (defaults merged with --catalog) in the
same YAML shape --catalog reads. Redirect to a file to start an override.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			b, err := rewards.MarshalCatalog(cat)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
