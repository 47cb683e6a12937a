// Package collect gathers window samples for the plotting stage.
package collect

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"depthbin/internal/engine"
	"depthbin/pkg/api"
)

// Summary is the fold over all collected samples.
type Summary struct {
	Windows int
	Min     float64
	Max     float64
	Mean    float64
	Median  float64
}

// API converts s to the stable wire schema.
func (s Summary) API() api.SummaryV1 {
	return api.SummaryV1{Windows: s.Windows, Min: s.Min, Max: s.Max, Mean: s.Mean, Median: s.Median}
}

// Collector keeps samples in arrival order and tracks running min/max.
type Collector struct {
	samples  []engine.Sample
	averages stats.Float64Data
	min, max float64
}

// Emit appends s. It never fails; the signature matches the pipeline callback.
func (c *Collector) Emit(s engine.Sample) error {
	if len(c.samples) == 0 || s.Average < c.min {
		c.min = s.Average
	}
	if len(c.samples) == 0 || s.Average > c.max {
		c.max = s.Average
	}
	c.samples = append(c.samples, s)
	c.averages = append(c.averages, s.Average)
	return nil
}

// Samples returns the collected samples in arrival order.
func (c *Collector) Samples() []engine.Sample { return c.samples }

// Summary folds the collected averages. An empty collector has nothing to
// plot and reports engine.ErrInsufficientData.
func (c *Collector) Summary() (Summary, error) {
	if len(c.samples) == 0 {
		return Summary{}, fmt.Errorf("%w (no window completed)", engine.ErrInsufficientData)
	}
	mean, err := stats.Mean(c.averages)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(c.averages)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Windows: len(c.samples), Min: c.min, Max: c.max, Mean: mean, Median: median}, nil
}
