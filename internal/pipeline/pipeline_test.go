package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/pslog"

	"depthbin/internal/depth"
	"depthbin/internal/engine"
)

func depthLines(name string, vals ...uint64) string {
	var b strings.Builder
	for i, v := range vals {
		fmt.Fprintf(&b, "%s\t%d\t%d\n", name, i+1, v)
	}
	return b.String()
}

func run(t *testing.T, cfg Config, in string) ([]engine.Sample, Result) {
	t.Helper()
	var got []engine.Sample
	res, err := RunReader(context.Background(), cfg, strings.NewReader(in), func(s engine.Sample) error {
		got = append(got, s)
		return nil
	})
	if err != nil {
		t.Fatalf("RunReader: %v", err)
	}
	return got, res
}

func TestKTimesWindowLines(t *testing.T) {
	for _, tc := range []struct{ w, k int }{{1, 2}, {2, 2}, {3, 5}, {10, 3}} {
		vals := make([]uint64, tc.w*tc.k)
		for i := range vals {
			vals[i] = uint64(i%7) * 3
		}
		got, res := run(t, Config{WindowSize: uint64(tc.w)}, depthLines("chr1", vals...))
		if len(got) != tc.k {
			t.Fatalf("w=%d k=%d: got %d samples", tc.w, tc.k, len(got))
		}
		for j, s := range got {
			var sum float64
			for _, v := range vals[j*tc.w : (j+1)*tc.w] {
				sum += float64(v)
			}
			if math.Abs(s.Average-sum/float64(tc.w)) > 1e-9 {
				t.Errorf("w=%d sample %d avg %f", tc.w, j, s.Average)
			}
			if s.TotalPositions != uint64((j+1)*tc.w) {
				t.Errorf("w=%d sample %d pos %d", tc.w, j, s.TotalPositions)
			}
		}
		if err := engine.CheckWindows(res.State, 2); err != nil {
			t.Fatalf("w=%d: %v", tc.w, err)
		}
	}
}

func TestFewerThanTwoWindowsIsInsufficient(t *testing.T) {
	_, res := run(t, Config{WindowSize: 4}, depthLines("chr1", 1, 2, 3, 4, 5, 6, 7))
	if err := engine.CheckWindows(res.State, 2); !errors.Is(err, engine.ErrInsufficientData) {
		t.Fatalf("want ErrInsufficientData, got %v", err)
	}
}

func TestTransitionDiscardsPartialTail(t *testing.T) {
	in := depthLines("A", 1, 2, 3) + depthLines("B", 10, 20, 30, 40, 50, 60, 70, 80)
	got, res := run(t, Config{WindowSize: 4}, in)
	if len(got) != 2 {
		t.Fatalf("got %+v", got)
	}
	for i, s := range got {
		if s.Sequence != "B" || s.Window != uint64(i+1) || s.TotalPositions != uint64(4*(i+1)) {
			t.Fatalf("sample %d: %+v", i, s)
		}
	}
	if got[0].Average != 25 || got[1].Average != 65 {
		t.Fatalf("averages %f %f", got[0].Average, got[1].Average)
	}
	if res.Sequences != 2 || res.State.Sequence != "B" {
		t.Fatalf("result %+v", res)
	}
}

func TestEmitPartialFlushesEachSequence(t *testing.T) {
	in := depthLines("A", 1, 2, 3) + depthLines("B", 10, 20, 30, 40, 50)
	got, _ := run(t, Config{WindowSize: 4, EmitPartial: true}, in)
	if len(got) != 3 {
		t.Fatalf("got %+v", got)
	}
	if !got[0].Partial || got[0].Sequence != "A" || got[0].Average != 2 || got[0].Window != 1 {
		t.Fatalf("A tail %+v", got[0])
	}
	if got[1].Partial || got[1].Sequence != "B" || got[1].Average != 25 {
		t.Fatalf("B window %+v", got[1])
	}
	if !got[2].Partial || got[2].Sequence != "B" || got[2].Average != 50 || got[2].TotalPositions != 5 {
		t.Fatalf("B tail %+v", got[2])
	}
}

func TestPrefixFilter(t *testing.T) {
	in := depthLines("chr1", 1, 1) + depthLines("chr2", 5, 5) + depthLines("chr10", 3, 3)
	got, res := run(t, Config{WindowSize: 2, Name: "chr1"}, in)
	if len(got) != 2 || got[0].Sequence != "chr1" || got[1].Sequence != "chr10" {
		t.Fatalf("got %+v", got)
	}
	if res.Excluded != 2 {
		t.Fatalf("excluded=%d", res.Excluded)
	}

	got, _ = run(t, Config{WindowSize: 2, Name: "chr1", ExactName: true}, in)
	if len(got) != 1 || got[0].Sequence != "chr1" {
		t.Fatalf("exact: got %+v", got)
	}
}

func TestMalformedLinesSkipped(t *testing.T) {
	in := "chrA\t1\t10\nchrA 2 99\n\nchrA\t2\t20\nchrA\t3\nchrA\t3\t30\nchrA\t4\t40\n"
	got, res := run(t, Config{WindowSize: 2}, in)
	if len(got) != 2 || got[0].Average != 15 || got[1].Average != 35 {
		t.Fatalf("got %+v", got)
	}
	if res.Scan.Skipped != 3 || res.State.TotalPositions != 4 {
		t.Fatalf("result %+v", res)
	}
}

func TestParseErrorAbortsAfterEarlierSamples(t *testing.T) {
	in := depthLines("chrA", 1, 1) + "chrA\t3\tx\n" + depthLines("chrA", 2, 2)
	var got []engine.Sample
	_, err := RunReader(context.Background(), Config{WindowSize: 2}, strings.NewReader(in), func(s engine.Sample) error {
		got = append(got, s)
		return nil
	})
	var pe *depth.ParseError
	if !errors.As(err, &pe) || pe.Line != 3 {
		t.Fatalf("want ParseError on line 3, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("earlier sample must survive, got %+v", got)
	}
}

func TestInvalidWindow(t *testing.T) {
	_, err := RunReader(context.Background(), Config{}, strings.NewReader(""), func(engine.Sample) error { return nil })
	var ae *engine.ArgumentError
	if !errors.As(err, &ae) {
		t.Fatalf("want ArgumentError, got %v", err)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "d.depth")
	in := depthLines("chr1", 3, 1, 4, 1, 5, 9, 2, 6, 5, 3) + depthLines("chr2", 5, 8, 9, 7, 9, 3)
	if err := os.WriteFile(fn, []byte(in), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	once := func() string {
		var b strings.Builder
		_, err := Run(context.Background(), Config{WindowSize: 3}, fn, func(s engine.Sample) error {
			fmt.Fprintf(&b, "%s\t%d\t%f\n", s.Sequence, s.TotalPositions, s.Average)
			return nil
		})
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return b.String()
	}
	if a, b := once(), once(); a != b || a == "" {
		t.Fatalf("runs differ:\n%s\n---\n%s", a, b)
	}
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := pslog.NewWithOptions(&buf, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		MinLevel:      pslog.DebugLevel,
		VerboseFields: true,
	})
	ctx := pslog.ContextWithLogger(context.Background(), logger)
	_, err := RunReader(ctx, Config{WindowSize: 2}, strings.NewReader(depthLines("chrA", 10, 20)), func(engine.Sample) error { return nil })
	if err != nil {
		t.Fatalf("RunReader: %v", err)
	}
	found := false
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		entry := map[string]any{}
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("parse log entry %q: %v", line, err)
		}
		if entry["avg"] == 15.0 && entry["sequence"] == "chrA" {
			found = true
		}
	}
	if !found {
		t.Fatalf("window average not logged:\n%s", buf.String())
	}
}
