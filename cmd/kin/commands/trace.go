package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arbores/kin/display"
	"github.com/arbores/kin/menu"
	"github.com/arbores/kin/query"
)

// TraceCmd traces a person's lineage without entering the menu.
var TraceCmd = &cobra.Command{
	Use:   "trace <name>",
	Short: "Trace a person's ancestors or descendants",
	Long: `Trace a person's full lineage, one generation per block.

The name must be a full name (first and last); matching ignores case.
Ancestors are traced by default, pass --direction d for descendants.

Examples:
  kin trace "John Smith"
  kin trace "John Smith" --direction d`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dirFlag, _ := cmd.Flags().GetString("direction")
		dir, err := query.ParseDirection(dirFlag)
		if err != nil {
			return err
		}

		t, _, err := loadTree()
		if err != nil {
			return err
		}

		name := strings.Join(args, " ")
		rows, err := query.Trace(t, name, dir)
		if err != nil {
			return err
		}

		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(rows)
		}
		menu.RenderTrace(os.Stdout, name, dir, rows)
		return nil
	},
}

func init() {
	TraceCmd.Flags().StringP("direction", "d", "", "Trace direction: a (ancestors, default) or d (descendants)")
}
