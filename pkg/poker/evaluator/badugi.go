package evaluator

import (
	"sort"

	"pokerhands/pkg/deck"
	"pokerhands/pkg/poker/rank"
)

// a badugi hand is always four cards
const badugiCards = 4

// ranks per suit, used as the universe of the combinatorial ranking
const ranksPerSuit = 13

// EvaluateBadugi evaluates a four-card badugi hand. The board is ignored.
//
// The best hand is the largest subset of cards with no repeated rank and no
// repeated suit. Hands with more cards beat hands with fewer, and among hands
// of the same size the lowest cards win, aces low. The category of the
// returned rank is the number of cards in the best subset.
func EvaluateBadugi(player, board []*deck.Card) (rank.Rank, error) {
	if len(player) > badugiCards {
		return rank.Rank{}, &TooManyCardsError{Context: "player hand", Maximum: badugiCards}
	} else if len(player) < badugiCards {
		return rank.Rank{}, &NotEnoughCardsError{Context: "player hand", Minimum: badugiCards}
	}

	patterns, err := encode(player)
	if err != nil {
		return rank.Rank{}, err
	}

	size := distinctCards(patterns)
	subset := make([]uint32, 0, size)

	var best rank.Rank
	found := false
	forEachCombination(len(patterns), size, func(idx []int) {
		subset = subset[:0]
		for _, i := range idx {
			subset = append(subset, patterns[i])
		}

		// the union of the whole hand can overcount what a single subset holds
		if distinctCards(subset) != size {
			return
		}

		r := badugiRank(subset)
		if !found || r.Beats(best) {
			best = r
			found = true
		}
	})

	if !found {
		return rank.Rank{}, unknownError("no valid rank was generated")
	}

	return best, nil
}

// distinctCards returns how many cards with distinct ranks and distinct suits
// can be drawn from the encoded cards: the lowest set bit is cleared from both
// the suit and rank unions until either runs out.
func distinctCards(patterns []uint32) int {
	var suits, ranks uint32
	for _, p := range patterns {
		suits |= (p >> 12) & 0xf
		ranks |= (p >> 16) & 0x1fff
	}

	n := 0
	for suits != 0 && ranks != 0 {
		suits &= suits - 1
		ranks &= ranks - 1
		n++
	}

	return n
}

// badugiRank ranks a qualifying subset with the combinatorial number system.
// Every smaller subset size is counted below it, then the subset's descending
// low ranks select its offset among subsets of the same size.
func badugiRank(patterns []uint32) rank.Rank {
	n := len(patterns)

	// ace low: Ace = 0, Two = 1, ... King = 12
	lows := make([]int, n)
	for i, p := range patterns {
		lows[i] = (int((p>>8)&0xf) + 1) % ranksPerSuit
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lows)))

	base := uint32(1)
	for i := 1; i < n; i++ {
		base += choose(ranksPerSuit, i)
	}

	var offset uint32
	prev := ranksPerSuit
	for i, r := range lows {
		for s := r + 1; s < prev; s++ {
			offset += choose(s-1, n-1-i)
		}

		prev = r
	}

	return rank.Rank{
		Strength: base + offset,
		Category: uint16(n),
		SubRank:  uint16(offset),
	}
}
