package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arbores/kin/cmd/kin/commands"
	"github.com/arbores/kin/logger"
)

var rootCmd = &cobra.Command{
	Use:   "kin",
	Short: "kin - family tree queries over a people CSV",
	Long: `kin - load a family tree from a people CSV and query it.

The tree is built from the configured people file: parent and spouse
columns reference other people by full name, and surnames missing from
the file are inherited along the configured parent line.

Available commands:
  menu     - Interactive query session (also the default)
  trace    - Trace a person's ancestors or descendants
  deceased - List the deceased, or filter by life status and death year
  names    - Count people carrying a first or full name
  stats    - Tree statistics: totals, births by decade, shared names
  gen      - Generate a simulated tree from demographic statistics
  config   - Manage configuration

Examples:
  kin                       # Start the interactive session
  kin trace "John Smith"    # Show John Smith's ancestors
  kin deceased 1990-2010    # Who died between 1990 and 2010
  kin gen --seed 42         # Grow a reproducible simulated tree`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	// Bare `kin` drops straight into the interactive session
	RunE: func(cmd *cobra.Command, args []string) error {
		return commands.RunMenu("")
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")

	rootCmd.AddCommand(commands.MenuCmd)
	rootCmd.AddCommand(commands.TraceCmd)
	rootCmd.AddCommand(commands.DeceasedCmd)
	rootCmd.AddCommand(commands.NamesCmd)
	rootCmd.AddCommand(commands.StatsCmd)
	rootCmd.AddCommand(commands.GenCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
