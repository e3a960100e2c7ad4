package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arbores/kin/display"
	"github.com/arbores/kin/menu"
	"github.com/arbores/kin/query"
)

// StatsCmd prints the tree census.
var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show tree statistics: totals, births by decade, shared names",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, _, err := loadTree()
		if err != nil {
			return err
		}

		census := query.Stats(t)
		dups := query.DuplicateNames(t)

		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(struct {
				Census     query.Census          `json:"census"`
				Duplicates []query.DuplicateName `json:"duplicates"`
			}{census, dups})
		}
		menu.RenderStats(os.Stdout, census, dups)
		return nil
	},
}
