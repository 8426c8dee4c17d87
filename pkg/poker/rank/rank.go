// Package rank provides the comparable result of a hand evaluation
package rank

import "sort"

// Rank is the strength of a hand.
// Higher strengths beat lower strengths; equal strengths tie.
type Rank struct {
	Strength uint32 `json:"strength"`

	// Category is the coarse hand classification. 0 means unset
	Category uint16 `json:"category"`

	// SubRank is the position of the hand within its category, weakest first
	SubRank uint16 `json:"subRank"`

	// Description is empty when the evaluator does not describe hands
	Description string `json:"description,omitempty"`
}

// Equal returns true if every field matches
func (r Rank) Equal(other Rank) bool {
	return r == other
}

// Compare returns -1 if r is weaker than other, 1 if stronger, and 0 on a tie.
// Only the strength is considered.
func (r Rank) Compare(other Rank) int {
	switch {
	case r.Strength < other.Strength:
		return -1
	case r.Strength > other.Strength:
		return 1
	}

	return 0
}

// Beats returns true if r is strictly stronger than other
func (r Rank) Beats(other Rank) bool {
	return r.Compare(other) > 0
}

// Strengths returns the comparison thresholds of the rank
func (r Rank) Strengths() *StrengthIterator {
	return NewStrengthIterator(r.Strength)
}

// Max returns the strongest rank. The first one wins a tie.
// ok is false if no ranks are given.
func Max(ranks ...Rank) (best Rank, ok bool) {
	for i, r := range ranks {
		if i == 0 || r.Beats(best) {
			best = r
		}
	}

	return best, len(ranks) > 0
}

// SortDescending sorts the ranks strongest first, keeping the order of ties
func SortDescending(ranks []Rank) {
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Beats(ranks[j])
	})
}
