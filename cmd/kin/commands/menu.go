package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arbores/kin/config"
	"github.com/arbores/kin/logger"
	"github.com/arbores/kin/menu"
)

// MenuCmd starts the interactive query session.
var MenuCmd = &cobra.Command{
	Use:   "menu [file]",
	Short: "Interactive query session over the family tree",
	Long: `Start an interactive prompt over the configured people file, or over
the file given as argument.

Commands inside the session:
  T <name> [a|d]     trace ancestors (default) or descendants
  D [alive|from-to]  list the deceased, optionally filtered
  N [name]           count people by name; bare N lists shared names
  S                  tree statistics
  Q                  quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := ""
		if len(args) > 0 {
			file = args[0]
		}
		return RunMenu(file)
	},
}

// RunMenu loads the tree and runs the interactive loop on the
// terminal. While the session runs, edits to kin.toml are picked up
// and the tree rebuilt for the next command.
func RunMenu(file string) error {
	t, _, err := loadTreeFrom(file)
	if err != nil {
		return err
	}

	m := menu.New(t, os.Stdin, os.Stdout)

	if path := config.FindProjectConfig(); path != "" {
		w, err := config.NewWatcher(path)
		if err != nil {
			logger.Warnw("config watcher unavailable", "path", path, "error", err)
		} else {
			defer w.Close()
			w.OnReload(func(cfg *config.Config) {
				reloaded, err := loadTreeWith(cfg, file)
				if err != nil {
					logger.Warnw("config changed but tree reload failed", "error", err)
					return
				}
				m.SetTree(reloaded)
				logger.Infow("tree reloaded after config change", "people", reloaded.Len())
			})
			w.Start()
		}
	}

	return m.Run()
}
