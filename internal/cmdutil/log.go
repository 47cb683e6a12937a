// Package cmdutil holds helpers shared by the command entry points.
package cmdutil

import (
	"context"
	"io"

	"pkt.systems/pslog"
)

// LevelFor maps the -d/-q flags to a minimum log level. Debug wins.
func LevelFor(debug, quiet bool) pslog.Level {
	switch {
	case debug:
		return pslog.DebugLevel
	case quiet:
		return pslog.ErrorLevel
	default:
		return pslog.InfoLevel
	}
}

// NewLogger builds the console logger used for diagnostics on stderr.
// PSLOG_* environment variables may still override the options.
func NewLogger(w io.Writer, debug, quiet bool) pslog.Logger {
	return pslog.LoggerFromEnv(
		pslog.WithEnvWriter(w),
		pslog.WithEnvOptions(pslog.Options{
			Mode:     pslog.ModeConsole,
			MinLevel: LevelFor(debug, quiet),
		}),
	)
}

// WithLogger returns ctx carrying a NewLogger logger.
func WithLogger(ctx context.Context, w io.Writer, debug, quiet bool) context.Context {
	return pslog.ContextWithLogger(ctx, NewLogger(w, debug, quiet))
}
