// Package config parses depthbin.toml defaults shared by both tools.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "depthbin.toml"

// Config is the top-level depthbin.toml configuration.
type Config struct {
	Window WindowConfig `toml:"window"`
	Filter FilterConfig `toml:"filter"`
	Output OutputConfig `toml:"output"`
	Plot   PlotConfig   `toml:"plot"`
}

// WindowConfig controls window aggregation.
type WindowConfig struct {
	Size        uint64 `toml:"size"`
	EmitPartial bool   `toml:"emit_partial"`
}

// FilterConfig restricts aggregation to matching sequence names.
type FilterConfig struct {
	Name  string `toml:"name"`
	Exact bool   `toml:"exact"`
}

// OutputConfig controls bin-samtools-depth output.
type OutputConfig struct {
	Format string `toml:"format"`
	Header bool   `toml:"header"`
}

// PlotConfig controls plot-samtools-depth rendering.
type PlotConfig struct {
	Type         string  `toml:"type"`
	TickFraction float64 `toml:"tick_fraction"`
	WidthCM      float64 `toml:"width_cm"`
	HeightCM     float64 `toml:"height_cm"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Window: WindowConfig{Size: 10000},
		Output: OutputConfig{Format: "text"},
		Plot: PlotConfig{
			Type:         "eps",
			TickFraction: 0.1,
			WidthCM:      16,
			HeightCM:     10,
		},
	}
}

// Validate checks the configuration and returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Size == 0 || c.Window.Size == math.MaxUint64 {
		errs = append(errs, fmt.Errorf("window.size must be >= 1 and < %d", uint64(math.MaxUint64)))
	}
	switch c.Output.Format {
	case "text", "json", "jsonl":
	default:
		errs = append(errs, fmt.Errorf("output.format must be text, json or jsonl, got %q", c.Output.Format))
	}
	if c.Plot.Type == "" {
		errs = append(errs, fmt.Errorf("plot.type must not be empty"))
	}
	if c.Plot.TickFraction <= 0 || c.Plot.TickFraction > 1 {
		errs = append(errs, fmt.Errorf("plot.tick_fraction must be in (0, 1]"))
	}
	if c.Plot.WidthCM <= 0 || c.Plot.HeightCM <= 0 {
		errs = append(errs, fmt.Errorf("plot.width_cm and plot.height_cm must be > 0"))
	}

	return errors.Join(errs...)
}

// Load reads the configuration at path on top of Defaults. An empty path
// tries DefaultFile and falls back to Defaults when it does not exist.
// Unknown keys are rejected (likely typos).
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		if _, err := os.Stat(DefaultFile); errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		path = DefaultFile
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}
