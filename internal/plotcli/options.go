// internal/plotcli/options.go
package plotcli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"depthbin/internal/clibase"
	"depthbin/internal/config"
	"depthbin/internal/engine"
	"depthbin/internal/render"
	"depthbin/internal/version"
)

// Options holds all plot-samtools-depth flags.
type Options struct {
	clibase.Common

	// Plot
	Type         string // render format, see render.Formats
	TickFraction float64
	WidthCM      float64
	HeightCM     float64
	Summary      string // optional JSON summary path
}

// NewCommand builds the cobra command. run is called once flags, config
// and validation have all succeeded.
func NewCommand(name string, run func(cmd *cobra.Command, opt Options) error) *cobra.Command {
	var opt Options
	def := config.Defaults()
	cmd := &cobra.Command{
		Use:   name + " -i FILE [flags] > plot.eps",
		Short: "Plot windowed samtools depth averages",
		Long: clibase.Long(name, `
Writes a scatter plot of per-window mean depth to stdout. The x axis is
labelled with the window start in kbp, the y axis with the lowest and
highest window mean.`),
		Example: clibase.Examples(name,
			"-i sample.depth > depth.eps",
			"-i sample.depth -t svg -n chr1 > chr1.svg",
			"-i sample.depth -t png --summary stats.json > depth.png"),
		Args:          cobra.NoArgs,
		Version:       version.Current(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := Finalize(cmd.Flags(), &opt); err != nil {
				return err
			}
			return run(cmd, opt)
		},
	}

	fs := cmd.Flags()
	fs.SortFlags = false
	clibase.Register(fs, &opt.Common)
	fs.StringVarP(&opt.Type, "type", "t", def.Plot.Type, "plot type: "+strings.Join(render.Formats(), " | "))
	fs.Float64Var(&opt.TickFraction, "tick-fraction", def.Plot.TickFraction, "x tick spacing as a fraction of the window count")
	fs.Float64Var(&opt.WidthCM, "width", def.Plot.WidthCM, "plot width in cm")
	fs.Float64Var(&opt.HeightCM, "height", def.Plot.HeightCM, "plot height in cm")
	fs.StringVar(&opt.Summary, "summary", "", "also write min/max/mean/median of the window means as JSON to this file")
	return cmd
}

// Finalize layers the config file under explicit flags and validates.
func Finalize(fs *pflag.FlagSet, opt *Options) error {
	cfg, err := config.Load(opt.ConfigFile)
	if err != nil {
		return engine.Argumentf("config", "%v", err)
	}
	clibase.ApplyConfig(fs, &opt.Common, cfg)
	if !fs.Changed("type") {
		opt.Type = cfg.Plot.Type
	}
	if !fs.Changed("tick-fraction") {
		opt.TickFraction = cfg.Plot.TickFraction
	}
	if !fs.Changed("width") {
		opt.WidthCM = cfg.Plot.WidthCM
	}
	if !fs.Changed("height") {
		opt.HeightCM = cfg.Plot.HeightCM
	}

	if err := clibase.Validate(&opt.Common); err != nil {
		return err
	}
	t, err := render.NormalizeFormat(opt.Type)
	if err != nil {
		return err
	}
	opt.Type = t
	if opt.TickFraction <= 0 || opt.TickFraction > 1 {
		return engine.Argumentf("tick-fraction", "--tick-fraction must be in (0, 1]")
	}
	if opt.WidthCM <= 0 || opt.HeightCM <= 0 {
		return engine.Argumentf("width", "--width and --height must be > 0")
	}
	return nil
}

// RenderOptions converts the flags into render options.
func (o Options) RenderOptions() render.Options {
	return render.Options{
		Format:       o.Type,
		WindowSize:   o.Window,
		TickFraction: o.TickFraction,
		WidthCM:      o.WidthCM,
		HeightCM:     o.HeightCM,
	}
}
