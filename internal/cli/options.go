// internal/cli/options.go
package cli

import (
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"depthbin/internal/clibase"
	"depthbin/internal/config"
	"depthbin/internal/engine"
	"depthbin/internal/version"
	"depthbin/internal/writers"
)

// Options holds all bin-samtools-depth flags.
type Options struct {
	clibase.Common

	// Output
	Output string // text | json | jsonl
	Header bool
}

// NewCommand builds the cobra command. run is called once flags, config
// and validation have all succeeded.
func NewCommand(name string, run func(cmd *cobra.Command, opt Options) error) *cobra.Command {
	var opt Options
	cmd := &cobra.Command{
		Use:   name + " -i FILE [flags]",
		Short: "Average samtools depth over fixed-size windows",
		Long: clibase.Long(name, `
Prints one line per completed window: sequence name, the position count
reached when the window closed and the window's mean depth.`),
		Example: clibase.Examples(name,
			"-i sample.depth",
			"-i sample.depth.gz -w 5000 -n chr1",
			"-i - -o jsonl < sample.depth"),
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
	fs.StringVarP(&opt.Output, "output", "o", "text", "output format: "+writers.FormatList())
	fs.BoolVar(&opt.Header, "header", false, "print a header line before text rows")
	return cmd
}

// Finalize layers the config file under explicit flags and validates.
func Finalize(fs *pflag.FlagSet, opt *Options) error {
	cfg, err := config.Load(opt.ConfigFile)
	if err != nil {
		return engine.Argumentf("config", "%v", err)
	}
	clibase.ApplyConfig(fs, &opt.Common, cfg)
	if !fs.Changed("output") {
		opt.Output = cfg.Output.Format
	}
	if !fs.Changed("header") {
		opt.Header = cfg.Output.Header
	}

	if err := clibase.Validate(&opt.Common); err != nil {
		return err
	}
	if !slices.Contains(writers.Formats(), opt.Output) {
		return engine.Argumentf("output", "invalid --output %q (want %s)", opt.Output, writers.FormatList())
	}
	return nil
}
