// internal/appcore/core.go
package appcore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"depthbin/internal/depth"
	"depthbin/internal/engine"
	"depthbin/internal/writers"
)

// Exit codes.
const (
	ExitOK           = 0
	ExitInsufficient = 1
	ExitUsage        = 2
	ExitFailure      = 3
	ExitInterrupted  = 130
)

// Classify maps a command error to an exit code. ran reports whether the
// command's RunE was reached; anything failing before it is a usage
// error. usage asks the caller to print usage text.
func Classify(err error, ran bool) (code int, usage bool) {
	var (
		ae *engine.ArgumentError
		pe *fs.PathError
		de *depth.ParseError
	)
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return ExitOK, false
	case errors.Is(err, context.Canceled):
		return ExitInterrupted, false
	case errors.As(err, &ae):
		return ExitUsage, true
	case !ran:
		return ExitUsage, true
	case errors.As(err, &de):
		return ExitFailure, false
	case errors.Is(err, engine.ErrInsufficientData):
		return ExitInsufficient, false
	case errors.Is(err, depth.ErrOpen), errors.As(err, &pe) && pe.Op == "open":
		return ExitUsage, true
	default:
		return ExitFailure, false
	}
}

// Execute runs cmd on argv and returns the process exit code. Errors go to
// stderr, followed by the usage text when the error is a usage error.
func Execute(ctx context.Context, cmd *cobra.Command, argv []string, stdout, stderr io.Writer) int {
	if argv == nil {
		argv = []string{}
	}
	ran := false
	if inner := cmd.RunE; inner != nil {
		cmd.RunE = func(c *cobra.Command, args []string) error {
			ran = true
			return inner(c, args)
		}
	}
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	code, usage := Classify(err, ran)
	if code == ExitOK || code == ExitInterrupted {
		return code
	}
	_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	if usage {
		_, _ = fmt.Fprintln(stderr)
		_, _ = io.WriteString(stderr, cmd.UsageString())
	}
	return code
}
