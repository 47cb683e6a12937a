package writers

import (
	"io"

	"depthbin/internal/engine"
	"depthbin/internal/output"
)

func init() { Register("json", NewJSON) }

type jsonEmitter struct {
	w   io.Writer
	buf []engine.Sample
}

// NewJSON buffers samples and writes one pretty JSON array on Close.
func NewJSON(w io.Writer, _ Options) Emitter { return &jsonEmitter{w: w} }

func (e *jsonEmitter) Emit(s engine.Sample) error {
	e.buf = append(e.buf, s)
	return nil
}

func (e *jsonEmitter) Close() error {
	return output.WriteJSON(e.w, e.buf)
}
