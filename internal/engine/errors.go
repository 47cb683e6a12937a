package engine

import (
	"errors"
	"fmt"
)

// ErrInsufficientData means too few windows were completed to summarise.
var ErrInsufficientData = errors.New("not enough windows completed; choose a smaller window size")

// ArgumentError is an invalid or out-of-range argument. No work is done.
type ArgumentError struct {
	Arg string
	Msg string
}

func (e *ArgumentError) Error() string { return e.Msg }

// Argumentf builds an *ArgumentError for arg.
func Argumentf(arg, format string, a ...any) error {
	return &ArgumentError{Arg: arg, Msg: fmt.Sprintf(format, a...)}
}

// CheckWindows fails with ErrInsufficientData when the active sequence
// completed fewer than min windows.
func CheckWindows(st State, min uint64) error {
	if st.WindowCount >= min {
		return nil
	}
	return fmt.Errorf("%w (sequence %q completed %d window(s))", ErrInsufficientData, st.Sequence, st.WindowCount)
}
