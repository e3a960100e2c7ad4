package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/arbores/kin/errors"
)

// Save writes the configuration as TOML. The previous file, if any, is
// kept as a single .back copy so a bad edit is recoverable.
func Save(c *Config, path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if err := backup(path); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write config to %s", path)
	}
	return nil
}

// backup copies the current file to path.back before it is overwritten.
func backup(path string) error {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}
	if err := os.WriteFile(path+".back", content, 0644); err != nil {
		return errors.Wrap(err, "failed to write config backup")
	}
	return nil
}
