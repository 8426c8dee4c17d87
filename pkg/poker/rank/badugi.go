package rank

// BadugiRank is a Rank ordered by strength alone.
// Two badugi ranks with the same strength are equal even if other fields differ.
type BadugiRank struct {
	Rank
}

// Equal returns true if both ranks have the same strength
func (b BadugiRank) Equal(other BadugiRank) bool {
	return b.Strength == other.Strength
}

// Compare orders badugi ranks by strength
func (b BadugiRank) Compare(other BadugiRank) int {
	return b.Rank.Compare(other.Rank)
}
