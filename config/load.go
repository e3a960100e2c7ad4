package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/arbores/kin/errors"
	"github.com/arbores/kin/logger"
)

// ConfigFileName is the project config file searched for by walking up
// the directory tree.
const ConfigFileName = "kin.toml"

var (
	globalConfig  *Config
	viperInstance *viper.Viper
)

// Load reads the kin configuration using Viper. The result is cached;
// call Reset to force a re-read (tests do).
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path, bypassing
// discovery and the cache.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("KIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if path := FindProjectConfig(); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			logger.Warnw("ignoring unreadable config file", "path", path, "error", err)
		} else {
			logger.Debugw("loaded config", "path", path)
		}
	}

	viperInstance = v
	return v
}

// FindProjectConfig searches for kin.toml by walking up the directory
// tree from the working directory. Returns the first hit, or empty when
// none exists (defaults apply).
func FindProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// PeoplePath resolves the person-record file location: absolute paths
// win, otherwise relative to the data dir.
func (c *Config) PeoplePath() string {
	if filepath.IsAbs(c.Data.PeopleFile) {
		return c.Data.PeopleFile
	}
	return filepath.Join(c.Data.Dir, c.Data.PeopleFile)
}
