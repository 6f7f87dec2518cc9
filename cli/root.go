// Package cli implements the forecast command-line interface using Cobra.
// The CLI runs the same factory + calculator path as the HTTP API, offline.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/warp/jade-forecast/generic"
	"github.com/warp/jade-forecast/rewards"
)

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "forecast",
		Short: "Forecast Stellar Jades and Limited Passes",
		Long: `Forecast how many Stellar Jades and Limited Passes a player will have
by a chosen end date, from their routine (dailies, weekly and endgame
rewards, battle pass) and any extra one-off sources.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("catalog", "", "YAML file overriding reward amounts and reset dates")

	root.AddCommand(newCalcCommand())
	root.AddCommand(newCatalogCommand())
	root.AddCommand(newPresetsCommand())
	return root
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	root := NewRootCommand()
	root.Version = version

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadCatalog reads the --catalog flag.
func loadCatalog(cmd *cobra.Command) (rewards.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	return rewards.LoadCatalog(path)
}

// today reads the --today flag, falling back to the system clock.
func today(cmd *cobra.Command) (generic.TimePoint, error) {
	s, _ := cmd.Flags().GetString("today")
	if s == "" {
		return generic.SystemClock{}.Today(), nil
	}
	tp, err := generic.ParseDate(s)
	if err != nil {
		return generic.TimePoint{}, fmt.Errorf("--today: %w", err)
	}
	return tp, nil
}

// readInput reads a file, or stdin for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}
