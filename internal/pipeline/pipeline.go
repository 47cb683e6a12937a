package pipeline

import (
	"context"
	"io"

	"pkt.systems/pslog"

	"depthbin/internal/depth"
	"depthbin/internal/engine"
)

// Config controls one aggregation pass.
type Config struct {
	WindowSize  uint64 // positions per window (≥1)
	Name        string // sequence filter; empty admits every sequence
	ExactName   bool   // match Name exactly instead of as a prefix
	EmitPartial bool   // emit trailing partial windows flagged Partial
}

// Result describes a finished pass.
type Result struct {
	State     engine.State // state of the last active sequence
	Scan      depth.Stats
	Excluded  int // records dropped by the name filter
	Sequences int // sequence transitions
	Samples   int // samples handed to emit
}

// Run aggregates the depth report at path and calls emit once per sample.
func Run(ctx context.Context, cfg Config, path string, emit func(engine.Sample) error) (Result, error) {
	p, err := newPass(ctx, cfg, emit)
	if err != nil {
		return Result{}, err
	}
	st, err := depth.ScanFile(ctx, path, p.record)
	return p.finish(st, err)
}

// RunReader is Run over an already opened stream.
func RunReader(ctx context.Context, cfg Config, r io.Reader, emit func(engine.Sample) error) (Result, error) {
	p, err := newPass(ctx, cfg, emit)
	if err != nil {
		return Result{}, err
	}
	st, err := depth.Scan(ctx, r, p.record)
	return p.finish(st, err)
}

type pass struct {
	cfg     Config
	log     pslog.Logger
	tracker engine.Tracker
	acc     *engine.Accumulator
	emit    func(engine.Sample) error
	res     Result
}

func newPass(ctx context.Context, cfg Config, emit func(engine.Sample) error) (*pass, error) {
	acc, err := engine.NewAccumulator(cfg.WindowSize)
	if err != nil {
		return nil, err
	}
	return &pass{
		cfg:     cfg,
		log:     pslog.Ctx(ctx),
		tracker: engine.Tracker{Filter: cfg.Name, Exact: cfg.ExactName},
		acc:     acc,
		emit:    emit,
	}, nil
}

func (p *pass) record(rec depth.Record) error {
	st := &p.res.State
	switch p.tracker.Check(st, rec.Name) {
	case engine.Exclude:
		p.res.Excluded++
		return nil
	case engine.NewSequence:
		if err := p.flushPartial(); err != nil {
			return err
		}
		if st.Active {
			p.log.Debug("sequence done", "sequence", st.Sequence, "windows", st.WindowCount, "dropped", st.Fill)
		}
		st.Reset(rec.Name)
		p.res.Sequences++
		p.log.Debug("sequence start", "sequence", st.Sequence)
	}
	if s, ok := p.acc.Observe(st, rec.Depth); ok {
		return p.send(s)
	}
	return nil
}

func (p *pass) flushPartial() error {
	if !p.cfg.EmitPartial {
		return nil
	}
	if s, ok := p.acc.Flush(&p.res.State); ok {
		return p.send(s)
	}
	return nil
}

func (p *pass) send(s engine.Sample) error {
	p.log.Debug("window average", "sequence", s.Sequence, "position", s.TotalPositions, "avg", s.Average, "partial", s.Partial)
	p.res.Samples++
	return p.emit(s)
}

func (p *pass) finish(st depth.Stats, err error) (Result, error) {
	p.res.Scan = st
	if err != nil {
		return p.res, err
	}
	if err := p.flushPartial(); err != nil {
		return p.res, err
	}
	p.log.Debug("scan complete",
		"lines", st.Lines, "records", st.Records, "skipped", st.Skipped,
		"excluded", p.res.Excluded, "sequences", p.res.Sequences, "samples", p.res.Samples)
	return p.res, nil
}
