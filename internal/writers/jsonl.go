// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"depthbin/internal/engine"
	"depthbin/internal/jsonlutil"
	"depthbin/internal/output"
)

func init() { Register("jsonl", NewJSONL) }

type jsonlEmitter struct {
	w *jsonlutil.Writer[engine.Sample]
}

// NewJSONL streams each engine.Sample as one JSON line (v1).
func NewJSONL(out io.Writer, _ Options) Emitter {
	return &jsonlEmitter{w: jsonlutil.New[engine.Sample](out,
		func(enc *json.Encoder, s engine.Sample) error {
			return enc.Encode(output.ToAPISample(s))
		},
		IsBrokenPipe,
	)}
}

func (e *jsonlEmitter) Emit(s engine.Sample) error { return e.w.Write(s) }
func (e *jsonlEmitter) Close() error               { return e.w.Close() }
