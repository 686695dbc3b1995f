package datagen

import "fmt"

// Sequence issues monotonically increasing identifiers with a fixed prefix
// and zero-padded numeric suffix, e.g. TX000000001. Each generator owns its
// sequences explicitly; there is no ambient global counter state.
type Sequence struct {
	prefix string
	width  int
	last   int64
}

// NewSequence creates a sequence producing prefix plus a width-digit suffix.
func NewSequence(prefix string, width int) *Sequence {
	return &Sequence{prefix: prefix, width: width}
}

// Next returns the next identifier in the sequence.
func (s *Sequence) Next() string {
	s.last++
	return fmt.Sprintf("%s%0*d", s.prefix, s.width, s.last)
}

// Count returns how many identifiers have been issued.
func (s *Sequence) Count() int64 {
	return s.last
}
