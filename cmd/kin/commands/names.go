package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arbores/kin/display"
	"github.com/arbores/kin/menu"
	"github.com/arbores/kin/query"
)

// NamesCmd counts people by name.
var NamesCmd = &cobra.Command{
	Use:   "names [name]",
	Short: "Count people carrying a first or full name",
	Long: `Count how many people carry a name, and list them.

A single word matches first names; two or more words match the full
name. Matching ignores case. Zero matches is an answer, not an error.
With no name at all, lists the full names more than one person carries.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, _, err := loadTree()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			dups := query.DuplicateNames(t)
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(dups)
			}
			menu.RenderDuplicates(os.Stdout, dups)
			return nil
		}

		match := query.Names(t, strings.Join(args, " "))
		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(match)
		}
		menu.RenderNames(os.Stdout, match)
		return nil
	},
}
