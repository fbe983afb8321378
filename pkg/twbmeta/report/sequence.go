package report

// Sequence hands out strictly increasing 1-based row ids.
// The zero value is ready to use. A Sequence has a single writer.
type Sequence struct {
	last int
}

// Next returns the next id.
func (s *Sequence) Next() int {
	s.last++
	return s.last
}

// Last returns the most recently issued id, or 0.
func (s *Sequence) Last() int {
	return s.last
}
