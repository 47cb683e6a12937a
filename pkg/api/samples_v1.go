package api

// SampleV1 is the stable JSON/JSONL schema for one averaged window.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SampleV1 struct {
	Sequence     string  `json:"sequence"`
	Window       uint64  `json:"window"`
	Position     uint64  `json:"position"` // positions seen when the window closed
	AverageDepth float64 `json:"average_depth"`
	Partial      bool    `json:"partial,omitempty"`
}

// SummaryV1 is the fold over all samples of a plotting run.
type SummaryV1 struct {
	Windows int     `json:"windows"`
	Min     float64 `json:"min_average"`
	Max     float64 `json:"max_average"`
	Mean    float64 `json:"mean_average"`
	Median  float64 `json:"median_average"`
}
