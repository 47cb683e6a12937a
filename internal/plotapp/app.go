// Package plotapp implements plot-samtools-depth.
package plotapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"depthbin/internal/appcore"
	"depthbin/internal/cmdutil"
	"depthbin/internal/collect"
	"depthbin/internal/jsonutil"
	"depthbin/internal/pipeline"
	"depthbin/internal/plotcli"
	"depthbin/internal/render"
	"depthbin/internal/writers"
)

// Name is the command name shown in help and version output.
const Name = "plot-samtools-depth"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := plotcli.NewCommand(Name, func(cmd *cobra.Command, opt plotcli.Options) error {
		ctx := cmdutil.WithLogger(cmd.Context(), stderr, opt.Debug, opt.Quiet)
		return run(ctx, opt, stdout)
	})
	return appcore.Execute(parent, cmd, argv, stdout, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, opt plotcli.Options, stdout io.Writer) error {
	log := pslog.Ctx(ctx)
	if opt.Name != "" {
		log.Info("only including sequence", "name", opt.Name, "exact", opt.ExactName)
	}

	var c collect.Collector
	if _, err := pipeline.Run(ctx, opt.Pipeline(), opt.Input, c.Emit); err != nil {
		return err
	}
	sum, err := c.Summary()
	if err != nil {
		return err
	}
	log.Debug("collected windows",
		"windows", sum.Windows,
		"min", sum.Min,
		"max", sum.Max,
		"mean", sum.Mean,
		"median", sum.Median)

	if opt.Summary != "" {
		if err := jsonutil.WriteFile(opt.Summary, sum.API()); err != nil {
			return fmt.Errorf("summary: %w", err)
		}
	}

	outw := bufio.NewWriter(stdout)
	if err := render.Render(outw, c.Samples(), sum, opt.RenderOptions()); err != nil {
		return err
	}
	return writers.Flush(outw)
}
