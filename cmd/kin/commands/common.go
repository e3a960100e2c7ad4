// Package commands holds the kin CLI subcommands.
package commands

import (
	"github.com/arbores/kin/config"
	"github.com/arbores/kin/errors"
	"github.com/arbores/kin/loader"
	"github.com/arbores/kin/logger"
	"github.com/arbores/kin/tree"
)

// loadTree reads the configured people file and builds the tree.
// Malformed rows and unresolvable references are logged and skipped;
// only an unreadable file is fatal.
func loadTree() (*tree.Tree, *config.Config, error) {
	return loadTreeFrom("")
}

// loadTreeFrom is loadTree with an explicit people file overriding the
// configured one.
func loadTreeFrom(override string) (*tree.Tree, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, errors.Wrap(err, "loading configuration")
	}
	t, err := loadTreeWith(cfg, override)
	return t, cfg, err
}

// loadTreeWith builds the tree under an explicit config instead of the
// cached one. The menu's reload callback depends on this: the watcher
// hands it the freshly parsed config, so an edited kin.toml actually
// changes the rebuilt tree.
func loadTreeWith(cfg *config.Config, override string) (*tree.Tree, error) {
	path := override
	if path == "" {
		path = cfg.PeoplePath()
	}
	records, rowErrs, err := loader.ReadPeople(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading people file %s", path)
	}
	for _, rowErr := range rowErrs {
		logger.Warnw("skipped person record", "file", path, "error", rowErr)
	}

	t, problems := tree.Build(records, cfg.Policy())
	for _, problem := range problems {
		logger.Warnw("tree link problem", "error", problem)
	}
	logger.Infow("tree loaded",
		"file", path,
		"people", t.Len(),
		"skipped_rows", len(rowErrs),
		"link_problems", len(problems))

	return t, nil
}
