// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"depthbin/internal/engine"
)

// Emitter consumes samples one at a time. Close is called once after the
// last sample; buffered formats write their payload there.
type Emitter interface {
	Emit(engine.Sample) error
	Close() error
}

// Options are shared by all formats; formats ignore what they do not use.
type Options struct {
	Header bool // text: print TSVHeader before the first row
}

// Factory builds an Emitter writing to w.
type Factory func(w io.Writer, o Options) Emitter

// Writer registry (format → factory). Register in init() blocks of the
// format files.
var emitters = map[string]Factory{}

// Register installs a factory (idempotent last-wins).
func Register(format string, fn Factory) { emitters[format] = fn }

// New dispatches to the factory registered for format.
func New(format string, w io.Writer, o Options) (Emitter, error) {
	fn, ok := emitters[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, o), nil
}

// Formats lists registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(emitters))
	for k := range emitters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FormatList is Formats joined for help text ("json | jsonl | text").
func FormatList() string { return strings.Join(Formats(), " | ") }
