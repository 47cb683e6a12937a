package depth

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/brentp/xopen"
)

// Stats counts what a scan saw.
type Stats struct {
	Lines   int // all lines read
	Records int // lines handed to the callback
	Skipped int // empty or short lines
}

// ErrOpen marks a depth report that could not be opened.
var ErrOpen = errors.New("could not open file")

// Open opens a depth report. "-" is stdin; gzip input is detected and
// decompressed transparently. An empty (or single byte) input is an empty
// stream. Command pipes ("|cmd") and URLs are refused.
func Open(path string) (io.ReadCloser, error) {
	if strings.HasPrefix(path, "|") || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return nil, fmt.Errorf("%w %s: only local files and '-' are supported", ErrOpen, path)
	}
	rdr, err := xopen.Ropen(path)
	if errors.Is(err, xopen.ErrNoContent) {
		return io.NopCloser(strings.NewReader("")), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}
	return rdr, nil
}

// ScanFile opens path and streams its records through fn.
func ScanFile(ctx context.Context, path string, fn func(Record) error) (Stats, error) {
	rc, err := Open(path)
	if err != nil {
		return Stats{}, err
	}
	defer rc.Close()
	return Scan(ctx, rc, fn)
}

// Scan reads r line by line, tokenizes each line and calls fn for every
// record. Lines have no length limit. It stops at the first parse error,
// callback error or cancellation.
func Scan(ctx context.Context, r io.Reader, fn func(Record) error) (Stats, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	var (
		st   Stats
		long []byte // reassembles lines longer than the reader buffer
	)
	for {
		line, err := br.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			long = append(long[:0], line...)
			for errors.Is(err, bufio.ErrBufferFull) {
				line, err = br.ReadSlice('\n')
				long = append(long, line...)
			}
			line = long
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return st, fmt.Errorf("depth scan: %w", err)
		}
		if len(line) == 0 {
			return st, nil
		}

		st.Lines++
		// check cancellation every 4096 lines
		if st.Lines&0xfff == 0 {
			select {
			case <-ctx.Done():
				return st, ctx.Err()
			default:
			}
		}
		rec, ok, perr := ParseLine(line)
		if perr != nil {
			var pe *ParseError
			if errors.As(perr, &pe) {
				pe.Line = st.Lines
			}
			return st, perr
		}
		if !ok {
			st.Skipped++
		} else {
			st.Records++
			if ferr := fn(rec); ferr != nil {
				return st, ferr
			}
		}
		if err != nil { // io.EOF after a final unterminated line
			return st, nil
		}
	}
}
