package engine

import (
	"math"
	"math/bits"
)

// Accumulator owns the window buffer. The buffer is allocated once and
// reused by overwriting slots; a closed window is only logically cleared.
type Accumulator struct {
	buf []uint64
}

// NewAccumulator allocates a buffer for windows of size positions.
func NewAccumulator(size uint64) (*Accumulator, error) {
	if err := ValidateWindow(size); err != nil {
		return nil, err
	}
	return &Accumulator{buf: make([]uint64, size)}, nil
}

// MaxWindow caps the window size so the buffer (8 bytes per position,
// 8 GiB at the cap) is always allocatable.
const MaxWindow = 1 << 30

// ValidateWindow enforces 1 ≤ size ≤ MaxWindow (and size < MaxUint64,
// the historical sentinel).
func ValidateWindow(size uint64) error {
	switch {
	case size == 0:
		return Argumentf("window", "--window must be ≥ 1")
	case size == math.MaxUint64:
		return Argumentf("window", "--window must be < %d", uint64(math.MaxUint64))
	case size > MaxWindow || size > math.MaxInt/8:
		return Argumentf("window", "--window %d is too large (max %d)", size, MaxWindow)
	}
	return nil
}

// Size is the window length in positions.
func (a *Accumulator) Size() int { return len(a.buf) }

// Observe adds one depth value to the current window. When the window fills
// it returns the averaged sample and resets the fill count.
func (a *Accumulator) Observe(st *State, v uint64) (Sample, bool) {
	st.TotalPositions++
	a.buf[st.Fill] = v
	st.Fill++
	if st.Fill < len(a.buf) {
		return Sample{}, false
	}
	avg := a.mean(st.Fill)
	st.WindowCount++
	st.Fill = 0
	return Sample{
		Sequence:       st.Sequence,
		Window:         st.WindowCount,
		TotalPositions: st.TotalPositions,
		Average:        avg,
	}, true
}

// Flush returns the trailing partial window, if any, averaged over the
// filled slots and flagged Partial. WindowCount only counts full windows.
func (a *Accumulator) Flush(st *State) (Sample, bool) {
	if st.Fill == 0 {
		return Sample{}, false
	}
	avg := a.mean(st.Fill)
	st.Fill = 0
	return Sample{
		Sequence:       st.Sequence,
		Window:         st.WindowCount + 1,
		TotalPositions: st.TotalPositions,
		Average:        avg,
		Partial:        true,
	}, true
}

// mean sums the first n slots in 128 bits so no window can overflow.
func (a *Accumulator) mean(n int) float64 {
	var hi, lo, carry uint64
	for _, v := range a.buf[:n] {
		lo, carry = bits.Add64(lo, v, 0)
		hi += carry
	}
	return (float64(hi)*0x1p64 + float64(lo)) / float64(n)
}
