// Package appshell is the process wrapper shared by the cmd/ entry points.
package appshell

import (
	"context"
	"io"
	"os"

	"pkt.systems/psi"
)

// Runner is an app entry point: argv without the program name.
type Runner func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run under psi, which cancels ctx on SIGINT/SIGTERM and exits
// with the returned code.
func Main(run Runner) {
	psi.Run(func(ctx context.Context) int {
		return Normalize(ctx, run(ctx, os.Args[1:], os.Stdout, os.Stderr))
	})
}

// Normalize maps a clean exit after cancellation to 130.
func Normalize(ctx context.Context, code int) int {
	if ctx.Err() != nil && code == 0 {
		return 130
	}
	return code
}
