package danmaku

// Score is the run's kill counter with a dirty flag for display.
type Score struct {
	value int
	dirty bool
}

// Add increases the score by n and marks it for redisplay.
func (s *Score) Add(n int) {
	invariant(n >= 0, "score can only grow, got Add(%d)", n)
	s.value += n
	s.dirty = true
}

// Reset sets the score back to zero for a new run.
func (s *Score) Reset() {
	s.value = 0
	s.dirty = true
}

// Value returns the current score.
func (s *Score) Value() int {
	return s.value
}

// TakeDirty reports whether the score changed since the last call and clears the flag.
func (s *Score) TakeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}
