// internal/app/app.go
package app

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"depthbin/internal/appcore"
	"depthbin/internal/cli"
	"depthbin/internal/cmdutil"
	"depthbin/internal/engine"
	"depthbin/internal/pipeline"
	"depthbin/internal/writers"
)

// Name is the command name shown in help and version output.
const Name = "bin-samtools-depth"

// minWindows is the number of completed windows a run needs to succeed.
const minWindows = 2

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := cli.NewCommand(Name, func(cmd *cobra.Command, opt cli.Options) error {
		ctx := cmdutil.WithLogger(cmd.Context(), stderr, opt.Debug, opt.Quiet)
		return run(ctx, opt, stdout)
	})
	return appcore.Execute(parent, cmd, argv, stdout, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, opt cli.Options, stdout io.Writer) error {
	log := pslog.Ctx(ctx)
	if opt.Name != "" {
		log.Info("only including sequence", "name", opt.Name, "exact", opt.ExactName)
	}

	em, err := writers.New(opt.Output, stdout, writers.Options{Header: opt.Header})
	if err != nil {
		return engine.Argumentf("output", "%v", err)
	}
	res, err := pipeline.Run(ctx, opt.Pipeline(), opt.Input, em.Emit)
	if cerr := em.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	log.Debug("run complete",
		"windows", res.State.WindowCount,
		"samples", res.Samples,
		"sequences", res.Sequences,
		"excluded", res.Excluded)
	return engine.CheckWindows(res.State, minWindows)
}
