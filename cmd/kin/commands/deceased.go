package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arbores/kin/display"
	"github.com/arbores/kin/menu"
	"github.com/arbores/kin/query"
)

// DeceasedCmd lists people by life status.
var DeceasedCmd = &cobra.Command{
	Use:   "deceased [filter]",
	Short: "List the deceased, or filter by life status and death year",
	Long: `List deceased people in the tree.

The optional filter narrows the result:
  alive      people still living
  1990-2010  people who died in the year range (either side open)

Examples:
  kin deceased
  kin deceased alive
  kin deceased 1990-2010`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := query.ParseDeathFilter(strings.Join(args, " "))
		if err != nil {
			return err
		}

		t, _, err := loadTree()
		if err != nil {
			return err
		}

		people := query.Deceased(t, f)
		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(people)
		}
		menu.RenderDeceased(os.Stdout, f, people)
		return nil
	},
}
