// internal/output/json.go
package output

import (
	"io"

	"depthbin/internal/engine"
	"depthbin/internal/jsonutil"
	"depthbin/pkg/api"
)

// ToAPISample converts a domain Sample to the stable wire schema (v1).
func ToAPISample(s engine.Sample) api.SampleV1 {
	return api.SampleV1{
		Sequence:     s.Sequence,
		Window:       s.Window,
		Position:     s.TotalPositions,
		AverageDepth: s.Average,
		Partial:      s.Partial,
	}
}

func toAPISamples(list []engine.Sample) []api.SampleV1 {
	out := make([]api.SampleV1, 0, len(list))
	for _, s := range list {
		out = append(out, ToAPISample(s))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 samples (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Sample) error {
	return jsonutil.EncodePretty(w, toAPISamples(list))
}
