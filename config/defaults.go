package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Data defaults: current directory, classic file name
	v.SetDefault("data.dir", ".")
	v.SetDefault("data.people_file", "people.csv")

	// Build defaults
	v.SetDefault("build.surname_line", "father") // paternal line, maternal fallback

	// Gen defaults mirror the simulation the tool descends from:
	// two founders born 1950, expansion capped at 2120
	v.SetDefault("gen.seed", 0) // 0 = time-seeded
	v.SetDefault("gen.founder_year", 1950)
	v.SetDefault("gen.max_year", 2120)
}
