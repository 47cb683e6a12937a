package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers like `head` close early; that is not a failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// Flush flushes f and swallows broken pipes.
func Flush(f interface{ Flush() error }) error {
	if err := f.Flush(); err != nil && !IsBrokenPipe(err) {
		return err
	}
	return nil
}
