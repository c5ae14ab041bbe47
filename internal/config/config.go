package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"contribtext/internal/raster"
)

const (
	minMaxWidth     = 1
	maxMaxWidth     = raster.GraphWidth
	minSpacing      = 0
	maxSpacing      = 10
	minAvgCharWidth = 1
	maxAvgCharWidth = 10
)

type Config struct {
	Graph   GraphConfig   `toml:"graph"`
	Journal JournalConfig `toml:"journal"`
	Commit  CommitConfig  `toml:"commit"`
}

type GraphConfig struct {
	MaxWidth     int `toml:"max_width"`
	Spacing      int `toml:"spacing"`
	AvgCharWidth int `toml:"avg_char_width"`
}

type JournalConfig struct {
	// DBPath is where the emission ledger lives. Empty disables
	// journalling entirely.
	DBPath string `toml:"db_path"`
}

type CommitConfig struct {
	TimeOfDay     string `toml:"time_of_day"`
	MessagePrefix string `toml:"message_prefix"`
}

func DefaultConfig() *Config {
	return &Config{
		Graph: GraphConfig{
			MaxWidth:     raster.GraphWidth,
			Spacing:      1,
			AvgCharWidth: 4,
		},
		Journal: JournalConfig{
			DBPath: "",
		},
		Commit: CommitConfig{
			TimeOfDay:     "12:00:00",
			MessagePrefix: "Commit for",
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return Validate(cfg)
}

func Validate(cfg *Config) (*Config, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}

	if err := validateRange("graph.max_width", cfg.Graph.MaxWidth, minMaxWidth, maxMaxWidth); err != nil {
		return nil, err
	}
	if err := validateRange("graph.spacing", cfg.Graph.Spacing, minSpacing, maxSpacing); err != nil {
		return nil, err
	}
	if err := validateRange("graph.avg_char_width", cfg.Graph.AvgCharWidth, minAvgCharWidth, maxAvgCharWidth); err != nil {
		return nil, err
	}

	if _, err := time.Parse("15:04:05", cfg.Commit.TimeOfDay); err != nil {
		return nil, fmt.Errorf("commit.time_of_day must be HH:MM:SS, got %q", cfg.Commit.TimeOfDay)
	}
	if cfg.Commit.MessagePrefix == "" {
		return nil, fmt.Errorf("commit.message_prefix must not be empty")
	}

	return cfg, nil
}

// Options maps the graph section onto rasterizer options.
func (c *Config) Options() raster.Options {
	return raster.Options{
		MaxWidth:     c.Graph.MaxWidth,
		Spacing:      c.Graph.Spacing,
		AvgCharWidth: c.Graph.AvgCharWidth,
	}
}

func validateRange(name string, value, min, max int) error {
	if value < min || value > max {
		return fmt.Errorf("%s must be between %d and %d, got %d", name, min, max, value)
	}

	return nil
}
