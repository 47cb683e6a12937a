package engine

import "bytes"

// Decision is the tracker's verdict for one line.
type Decision int

const (
	Continue    Decision = iota // same sequence as before
	NewSequence                 // caller must reset State with the new name
	Exclude                     // filtered out; drop the line, keep State
)

func (d Decision) String() string {
	switch d {
	case Continue:
		return "continue"
	case NewSequence:
		return "new-sequence"
	case Exclude:
		return "exclude"
	}
	return "unknown"
}

// Tracker detects sequence-name boundaries and applies the name filter.
//
// The filter is a prefix match unless Exact is set, so "chr1" also admits
// "chr10". An empty Filter admits everything.
type Tracker struct {
	Filter string
	Exact  bool
}

// Check classifies name against the filter and the active sequence in st.
// It does not modify st.
func (t Tracker) Check(st *State, name []byte) Decision {
	if t.Filter != "" && !t.Admits(name) {
		return Exclude
	}
	if !st.Active || st.Sequence != string(name) {
		return NewSequence
	}
	return Continue
}

// Admits reports whether name passes the filter.
func (t Tracker) Admits(name []byte) bool {
	if t.Exact {
		return string(name) == t.Filter
	}
	return bytes.HasPrefix(name, []byte(t.Filter))
}
