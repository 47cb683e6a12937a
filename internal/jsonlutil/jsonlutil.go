// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
// Encoder itself is tiny and tied to an io.Writer, so we (re)create it per writer.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Writer encodes values of type T as one JSON document per line.
type Writer[T any] struct {
	bw       *bufio.Writer
	enc      *json.Encoder
	encode   func(*json.Encoder, T) error
	isBroken func(error) bool
}

// New binds a pooled buffer to out.
//   - encode: fn to encode one value (convert to wire type & enc.Encode)
//   - isBroken: recognizer for broken/closed pipe errors to suppress them
func New[T any](out io.Writer, encode func(*json.Encoder, T) error, isBroken func(error) bool) *Writer[T] {
	bw := bwPool.Get().(*bufio.Writer)
	// Rebind to the actual output while keeping the pooled buffer.
	bw.Reset(out)
	return &Writer[T]{bw: bw, enc: json.NewEncoder(bw), encode: encode, isBroken: isBroken}
}

// Write encodes one value.
func (w *Writer[T]) Write(v T) error {
	if w.bw == nil {
		return io.ErrClosedPipe
	}
	return w.encode(w.enc, v)
}

// Close flushes and returns the buffer to the pool. Broken pipes are not errors.
func (w *Writer[T]) Close() error {
	if w.bw == nil {
		return nil
	}
	err := w.bw.Flush()
	// Always put back to pool and drop references to 'out'.
	w.bw.Reset(io.Discard)
	bwPool.Put(w.bw)
	w.bw, w.enc = nil, nil
	if err != nil && w.isBroken != nil && w.isBroken(err) {
		return nil
	}
	return err
}
