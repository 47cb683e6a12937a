package engine

// State is the aggregation state for the active sequence. It is owned by the
// driving loop and reset on every sequence transition.
type State struct {
	Active         bool   // a sequence has been seen
	Sequence       string // owned copy of the active name
	TotalPositions uint64 // positions observed since the transition
	Fill           int    // filled slots of the current window
	WindowCount    uint64 // completed windows
}

// Reset starts a new sequence. name is copied.
func (s *State) Reset(name []byte) {
	s.Active = true
	s.Sequence = string(name)
	s.TotalPositions = 0
	s.Fill = 0
	s.WindowCount = 0
}

// Sample is one averaged window.
type Sample struct {
	Sequence       string
	Window         uint64 // 1-based window index within the sequence
	TotalPositions uint64 // positions seen when the window closed
	Average        float64
	Partial        bool // trailing window shorter than the window size
}
