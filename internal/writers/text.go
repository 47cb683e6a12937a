package writers

import (
	"io"

	"depthbin/internal/engine"
	"depthbin/internal/output"
)

func init() { Register("text", NewText) }

// TextEmitter writes one TSV row per sample with a single Write call.
type TextEmitter struct {
	w      io.Writer
	header bool
	line   []byte
}

// NewText returns the default text emitter.
func NewText(w io.Writer, o Options) Emitter {
	return &TextEmitter{w: w, header: o.Header}
}

func (t *TextEmitter) Emit(s engine.Sample) error {
	if t.header {
		t.header = false
		if _, err := io.WriteString(t.w, output.TSVHeader+"\n"); err != nil {
			return err
		}
	}
	t.line = output.AppendText(t.line[:0], s)
	_, err := t.w.Write(t.line)
	return err
}

func (t *TextEmitter) Close() error { return nil }
