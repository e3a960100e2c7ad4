// Package config loads kin's configuration: a kin.toml discovered by
// walking up from the working directory, overridable through KIN_*
// environment variables, with defaults for everything.
package config

import (
	"github.com/arbores/kin/errors"
	"github.com/arbores/kin/tree"
)

// Config is the kin configuration tree.
type Config struct {
	Data  DataConfig  `mapstructure:"data" toml:"data"`
	Build BuildConfig `mapstructure:"build" toml:"build"`
	Gen   GenConfig   `mapstructure:"gen" toml:"gen"`
}

// DataConfig locates the CSV inputs.
type DataConfig struct {
	// Dir holds the person-record file and the demographic stats files.
	Dir string `mapstructure:"dir" toml:"dir"`
	// PeopleFile is the person-record CSV, relative to Dir unless absolute.
	PeopleFile string `mapstructure:"people_file" toml:"people_file"`
}

// BuildConfig is the tree-construction policy.
type BuildConfig struct {
	// SurnameLine picks the parental line children inherit surnames
	// from: "father" or "mother".
	SurnameLine string `mapstructure:"surname_line" toml:"surname_line"`
}

// GenConfig drives the tree simulator.
type GenConfig struct {
	// Seed for the random source; 0 means seed from the clock.
	Seed int64 `mapstructure:"seed" toml:"seed"`
	// FounderYear is the birth year of the two founders.
	FounderYear int `mapstructure:"founder_year" toml:"founder_year"`
	// MaxYear stops expansion: nobody is born after it.
	MaxYear int `mapstructure:"max_year" toml:"max_year"`
}

// Policy converts the build section into the tree builder's policy.
func (c *Config) Policy() tree.Policy {
	return tree.Policy{SurnameLine: tree.SurnameLine(c.Build.SurnameLine)}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if line := tree.SurnameLine(c.Build.SurnameLine); !line.Valid() {
		return errors.Newf("build.surname_line must be %q or %q, got %q",
			tree.SurnameFromFather, tree.SurnameFromMother, c.Build.SurnameLine)
	}
	if c.Data.PeopleFile == "" {
		return errors.New("data.people_file cannot be empty")
	}
	if c.Gen.FounderYear <= 0 {
		return errors.Newf("gen.founder_year must be positive, got %d", c.Gen.FounderYear)
	}
	if c.Gen.MaxYear <= c.Gen.FounderYear {
		return errors.Newf("gen.max_year (%d) must be after gen.founder_year (%d)",
			c.Gen.MaxYear, c.Gen.FounderYear)
	}
	return nil
}
