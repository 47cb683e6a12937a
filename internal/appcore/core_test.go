package appcore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"
	"testing"

	"github.com/spf13/cobra"

	"depthbin/internal/depth"
	"depthbin/internal/engine"
)

func TestClassify(t *testing.T) {
	_, openErr := os.Open("/definitely/not/here.depth")
	tests := []struct {
		name  string
		err   error
		ran   bool
		code  int
		usage bool
	}{
		{"ok", nil, true, ExitOK, false},
		{"broken pipe", fmt.Errorf("write: %w", syscall.EPIPE), true, ExitOK, false},
		{"cancelled", fmt.Errorf("scan: %w", context.Canceled), true, ExitInterrupted, false},
		{"argument", engine.Argumentf("window", "bad"), true, ExitUsage, true},
		{"flag error", errors.New("unknown flag: --nope"), false, ExitUsage, true},
		{"unreadable input", fmt.Errorf("could not open file x: %w", openErr), true, ExitUsage, true},
		{"open", fmt.Errorf("%w x.depth: gone", depth.ErrOpen), true, ExitUsage, true},
		{"parse", &depth.ParseError{Line: 3, Text: "x", Err: errors.New("bad")}, true, ExitFailure, false},
		{"insufficient", fmt.Errorf("%w (sequence)", engine.ErrInsufficientData), true, ExitInsufficient, false},
		{"write", errors.New("disk full"), true, ExitFailure, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, usage := Classify(tt.err, tt.ran)
			if code != tt.code || usage != tt.usage {
				t.Fatalf("Classify = (%d, %v), want (%d, %v)", code, usage, tt.code, tt.usage)
			}
		})
	}
}

func newCmd(run func() error) *cobra.Command {
	return &cobra.Command{
		Use:           "tool",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          func(*cobra.Command, []string) error { return run() },
	}
}

func TestExecuteUsageOnStderr(t *testing.T) {
	var out, errb bytes.Buffer
	cmd := newCmd(func() error { return engine.Argumentf("input", "missing input filename") })
	if code := Execute(context.Background(), cmd, nil, &out, &errb); code != ExitUsage {
		t.Fatalf("code %d", code)
	}
	if !strings.Contains(errb.String(), "error: missing input filename") || !strings.Contains(errb.String(), "Usage:") {
		t.Fatalf("stderr %q", errb.String())
	}
	if out.Len() != 0 {
		t.Fatalf("stdout must stay clean, got %q", out.String())
	}
}

func TestExecuteFlagErrorBeforeRun(t *testing.T) {
	var out, errb bytes.Buffer
	called := false
	cmd := newCmd(func() error { called = true; return nil })
	if code := Execute(context.Background(), cmd, []string{"--bogus"}, &out, &errb); code != ExitUsage || called {
		t.Fatalf("code %d called %v", code, called)
	}
}

func TestExecuteHelpIsOK(t *testing.T) {
	var out, errb bytes.Buffer
	cmd := newCmd(func() error { return errors.New("should not run") })
	if code := Execute(context.Background(), cmd, []string{"-h"}, &out, &errb); code != ExitOK {
		t.Fatalf("code %d stderr %q", code, errb.String())
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("help not printed to stdout: %q", out.String())
	}
}

func TestExecuteInsufficientNoUsage(t *testing.T) {
	var out, errb bytes.Buffer
	cmd := newCmd(func() error { return engine.ErrInsufficientData })
	if code := Execute(context.Background(), cmd, nil, &out, &errb); code != ExitInsufficient {
		t.Fatalf("code %d", code)
	}
	if strings.Contains(errb.String(), "Usage:") || !strings.Contains(errb.String(), "smaller window") {
		t.Fatalf("stderr %q", errb.String())
	}
}
