// Package jsonutil holds the indented JSON encoding shared by the json
// writer and the plot summary file.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// EncodePretty writes v as two-space indented JSON to w, newline terminated.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteFile creates path and writes v to it with EncodePretty.
func WriteFile(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("jsonutil: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("jsonutil: %w", cerr)
		}
	}()
	if err := EncodePretty(f, v); err != nil {
		return fmt.Errorf("jsonutil: encode %s: %w", path, err)
	}
	return nil
}
