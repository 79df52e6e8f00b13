package config

import "github.com/townmatch/townmatch/internal/match"

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Scoring  ScoringConfig  `toml:"scoring"`
	Batch    BatchConfig    `toml:"batch"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// ScoringConfig contains the category weight table. The six weights
// are percentages and must sum to 100.
type ScoringConfig struct {
	Weights match.Weights `toml:"weights"`
}

// BatchConfig contains batch scoring settings
type BatchConfig struct {
	Workers int `toml:"workers"`
	Top     int `toml:"top"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "~/.local/share/townmatch/townmatch.db",
		},
		Scoring: ScoringConfig{
			Weights: match.DefaultWeights(),
		},
		Batch: BatchConfig{
			Workers: 8,
			Top:     20,
		},
	}
}
