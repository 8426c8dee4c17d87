package rank

// StrengthIterable is implemented by ranks that can be compared across variants
type StrengthIterable interface {
	Strengths() *StrengthIterator
}

// StrengthIterator walks an ordered, finite list of strength thresholds.
// It can be restarted with Reset.
type StrengthIterator struct {
	values []uint32
	pos    int
}

// NewStrengthIterator returns an iterator over values
func NewStrengthIterator(values ...uint32) *StrengthIterator {
	v := make([]uint32, len(values))
	copy(v, values)

	return &StrengthIterator{values: v}
}

// Next returns the next threshold. ok is false once the sequence is exhausted.
func (s *StrengthIterator) Next() (value uint32, ok bool) {
	if s.pos >= len(s.values) {
		return 0, false
	}

	value = s.values[s.pos]
	s.pos++
	return value, true
}

// Reset rewinds the iterator to the first threshold
func (s *StrengthIterator) Reset() {
	s.pos = 0
}

// Len returns the number of thresholds
func (s *StrengthIterator) Len() int {
	return len(s.values)
}

// Values returns a copy of every threshold
func (s *StrengthIterator) Values() []uint32 {
	v := make([]uint32, len(s.values))
	copy(v, s.values)

	return v
}

// CompareStrengths compares two ranks threshold by threshold.
// A sequence that is a prefix of the other is the weaker one.
func CompareStrengths(a, b StrengthIterable) int {
	ai, bi := a.Strengths(), b.Strengths()
	for {
		av, aok := ai.Next()
		bv, bok := bi.Next()

		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}
}
