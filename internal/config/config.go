// Package config holds the YAML-driven tunables for board sizing, the
// solver, and the fuzzer. Grounded on the teacher's internal/config
// LoadConfig/MustLoadConfig idiom (gopkg.in/yaml.v3, os.ReadFile,
// panic-on-error variant for callers that can't recover).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level tunable set.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Solver SolverConfig `yaml:"solver"`
	Fuzzer FuzzerConfig `yaml:"fuzzer"`
}

// BoardConfig parameterizes the board size, including the 1-tile
// indestructible border (spec.md §3).
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SolverConfig holds the best-first route solver's constants
// (spec.md §4.10, the "newer variant").
type SolverConfig struct {
	QueueBuckets        int `yaml:"queue_buckets"`
	QueueCap            int `yaml:"queue_cap"`
	ValidationSeeds     int `yaml:"validation_seeds"`
	ValidationThreshold int `yaml:"validation_threshold"`
	FitnessSlack        int `yaml:"fitness_slack"`
	Workers             int `yaml:"workers"`
}

// FuzzerConfig holds the coverage-guided fuzzer's constants.
type FuzzerConfig struct {
	MaxPassesPerEntry int    `yaml:"max_passes_per_entry"`
	Alphabet          string `yaml:"alphabet"`
}

// Default returns the baseline configuration matching spec.md's original
// constants: a 32x32 board, a 64-bucket/65536-cap/256-seed/64-threshold/
// 6-slack solver, and a 2048-pass fuzzer over the efij< alphabet.
func Default() Config {
	return Config{
		Board: BoardConfig{Width: 32, Height: 32},
		Solver: SolverConfig{
			QueueBuckets:        64,
			QueueCap:            65536,
			ValidationSeeds:     256,
			ValidationThreshold: 64,
			FitnessSlack:        6,
			Workers:             0,
		},
		Fuzzer: FuzzerConfig{
			MaxPassesPerEntry: 2048,
			Alphabet:          "efij<",
		},
	}
}

// Load reads and parses a YAML config file on top of Default(): any field
// the file does not mention keeps its default value. Use Default()
// directly when no file is supplied.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", filename, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", filename, err)
	}
	return cfg, nil
}

// MustLoad loads filename and panics on any error.
func MustLoad(filename string) Config {
	cfg, err := Load(filename)
	if err != nil {
		panic("config: failed to load: " + err.Error())
	}
	return cfg
}
