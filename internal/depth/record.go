// Package depth reads per-base depth reports (samtools depth format).
//
// Each line is `name\tposition\tdepth[\t...]`. Lines that are empty or have
// fewer than two tabs are skipped; a depth field that is not a base-10
// unsigned 64-bit integer is a fatal *ParseError.
package depth

import (
	"bytes"
	"fmt"
	"strconv"
)

// Record is one parsed depth line. Name borrows the caller's line buffer and
// is only valid until the next line is read.
type Record struct {
	Name     []byte
	Position uint64
	Depth    uint64
}

// ParseError reports a depth field that could not be read as an unsigned integer.
type ParseError struct {
	Line int // 1-based line number, 0 when unknown
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("bad number in input line %d: %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("bad number in input line: %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseLine tokenizes one line. ok is false for lines that are silently skipped.
func ParseLine(line []byte) (rec Record, ok bool, err error) {
	line = bytes.TrimRight(line, "\r\n")
	if len(line) == 0 {
		return Record{}, false, nil
	}
	first := bytes.IndexByte(line, '\t')
	if first < 0 {
		return Record{}, false, nil
	}
	rest := line[first+1:]
	second := bytes.IndexByte(rest, '\t')
	if second < 0 {
		return Record{}, false, nil
	}

	field := rest[second+1:]
	if i := bytes.IndexByte(field, '\t'); i >= 0 {
		field = field[:i]
	}
	d, perr := strconv.ParseUint(string(bytes.TrimSpace(field)), 10, 64)
	if perr != nil {
		return Record{}, false, &ParseError{Text: string(line), Err: perr}
	}

	// position is carried but never drives aggregation; junk reads as 0
	pos, _ := strconv.ParseUint(string(bytes.TrimSpace(rest[:second])), 10, 64)

	return Record{Name: line[:first], Position: pos, Depth: d}, true, nil
}
