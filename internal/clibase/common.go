// internal/clibase/common.go
package clibase

import (
	"strings"

	"github.com/spf13/pflag"

	"depthbin/internal/config"
	"depthbin/internal/engine"
	"depthbin/internal/pipeline"
)

// Common holds CLI fields shared by bin-samtools-depth and plot-samtools-depth.
type Common struct {
	// Input
	Input      string
	ConfigFile string

	// Windowing
	Window      uint64
	Name        string
	ExactName   bool
	EmitPartial bool

	// Misc
	Debug bool
	Quiet bool
}

// Register wires shared flags onto fs.
func Register(fs *pflag.FlagSet, c *Common) {
	def := config.Defaults()

	fs.StringVarP(&c.Input, "input", "i", "", "samtools depth report: local plain or gzip file, '-' for stdin [*]")
	fs.StringVarP(&c.ConfigFile, "config", "c", "", "TOML config file (default ./"+config.DefaultFile+" if present)")

	fs.Uint64VarP(&c.Window, "window", "w", def.Window.Size, "positions per window")
	fs.StringVarP(&c.Name, "name", "n", "", "only include sequences whose name starts with this")
	fs.BoolVar(&c.ExactName, "exact-name", false, "match --name exactly instead of as a prefix")
	fs.BoolVar(&c.EmitPartial, "emit-partial", false, "also emit trailing partial windows, flagged")

	fs.BoolVarP(&c.Debug, "debug", "d", false, "log every window and sequence change to stderr")
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "only log errors")
}

// ApplyConfig copies cfg values into c for every flag the user did not set.
func ApplyConfig(fs *pflag.FlagSet, c *Common, cfg *config.Config) {
	if !fs.Changed("window") {
		c.Window = cfg.Window.Size
	}
	if !fs.Changed("emit-partial") {
		c.EmitPartial = cfg.Window.EmitPartial
	}
	if !fs.Changed("name") {
		c.Name = cfg.Filter.Name
	}
	if !fs.Changed("exact-name") {
		c.ExactName = cfg.Filter.Exact
	}
}

// Validate applies shared CLI invariants used by both tools.
func Validate(c *Common) error {
	if strings.TrimSpace(c.Input) == "" {
		return engine.Argumentf("input", "missing input filename (-i)")
	}
	if err := engine.ValidateWindow(c.Window); err != nil {
		return err
	}
	return nil
}

// Pipeline converts the shared flags into a pipeline configuration.
func (c Common) Pipeline() pipeline.Config {
	return pipeline.Config{
		WindowSize:  c.Window,
		Name:        c.Name,
		ExactName:   c.ExactName,
		EmitPartial: c.EmitPartial,
	}
}
