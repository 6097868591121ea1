package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/TeriYeaki/Pokemon-Battle/internal/game"
)

// Config holds the server's tunable settings. Everything has a default so
// the server runs without a file.
type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Simulation struct {
		// MaxRuns caps the runs a single simulation request may ask for.
		MaxRuns int `yaml:"max_runs"`
		// Parallelism caps concurrent runs per request; zero lets the
		// service pick GOMAXPROCS.
		Parallelism int `yaml:"parallelism"`
	} `yaml:"simulation"`
	Wildcard struct {
		// SurgeChance is the probability a Glitchmon surge fires on each
		// incoming attack.
		SurgeChance float64 `yaml:"surge_chance"`
	} `yaml:"wildcard"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Address = ":8080"
	cfg.Simulation.MaxRuns = 10000
	cfg.Wildcard.SurgeChance = game.DefaultSurgeChance
	return cfg
}

// Load reads a YAML configuration file and overlays it on the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate(path string) error {
	if c.Server.Address == "" {
		return fmt.Errorf("config file %s: server.address must not be empty", path)
	}
	if c.Simulation.MaxRuns < 1 {
		return fmt.Errorf("config file %s: simulation.max_runs must be positive, got %d", path, c.Simulation.MaxRuns)
	}
	if c.Simulation.Parallelism < 0 {
		return fmt.Errorf("config file %s: simulation.parallelism must not be negative, got %d", path, c.Simulation.Parallelism)
	}
	if c.Wildcard.SurgeChance < 0 || c.Wildcard.SurgeChance > 1 {
		return fmt.Errorf("config file %s: wildcard.surge_chance must be within [0,1], got %v", path, c.Wildcard.SurgeChance)
	}
	return nil
}
