package evaluator

import (
	"sort"
	"testing"

	"pokerhands/pkg/deck"

	"github.com/stretchr/testify/require"
)

func fullDeck() []uint32 {
	patterns := make([]uint32, 0, 52)
	for _, suit := range deck.Suits {
		for r := 2; r <= deck.Ace; r++ {
			c := &deck.Card{Rank: r, Suit: suit}
			patterns = append(patterns, c.BitPattern())
		}
	}

	return patterns
}

// handKey scores five encoded cards by grouping ranks: the category, then the
// group ranks from the biggest group down, highest rank first. Bigger keys are
// stronger hands.
func handKey(cards []uint32) uint32 {
	var counts [13]int
	flush := true
	for i, c := range cards {
		counts[(c>>8)&0xf]++
		if c&cards[0]&0xf000 == 0 && i > 0 {
			flush = false
		}
	}

	type group struct{ rank, count int }
	var groups []group
	for r := 12; r >= 0; r-- {
		if counts[r] > 0 {
			groups = append(groups, group{r, counts[r]})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})

	straight := false
	top := groups[0].rank
	if len(groups) == 5 {
		if groups[0].rank-groups[4].rank == 4 {
			straight = true
		} else if groups[0].rank == 12 && groups[1].rank == 3 {
			straight = true
			top = 3
		}
	}

	var category Category
	switch {
	case straight && flush:
		category = StraightFlush
	case groups[0].count == 4:
		category = FourOfAKind
	case groups[0].count == 3 && groups[1].count == 2:
		category = FullHouse
	case flush:
		category = Flush
	case straight:
		category = Straight
	case groups[0].count == 3:
		category = ThreeOfAKind
	case groups[0].count == 2 && groups[1].count == 2:
		category = TwoPair
	case groups[0].count == 2:
		category = Pair
	default:
		category = HighCard
	}

	var packed uint32
	if straight {
		packed = uint32(top)
	} else {
		for _, g := range groups {
			packed = packed<<4 | uint32(g.rank)
		}
	}

	return uint32(category)<<20 | packed
}

func TestEvalFiveCards_exhaustive(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping every five-card hand in short mode")
	}

	cards := fullDeck()
	keys := make(map[uint16]uint32, distinctHighHands)
	hand := make([]uint32, 5)
	total := 0

	forEachCombination(len(cards), 5, func(idx []int) {
		for i, j := range idx {
			hand[i] = cards[j]
		}

		raw := evalFiveCards(hand[0], hand[1], hand[2], hand[3], hand[4])
		require.True(t, raw >= 1 && raw <= distinctHighHands, "raw score %d out of range", raw)

		key := handKey(hand)
		if prev, ok := keys[raw]; ok {
			require.Equal(t, prev, key, "raw score %d shared by different hands", raw)
		} else {
			keys[raw] = key
		}

		c, _ := decompose(raw)
		require.Equal(t, Category(key>>20), c, "raw score %d", raw)
		total++
	})

	require.Equal(t, 2598960, total)
	require.Len(t, keys, distinctHighHands)

	for raw := uint16(2); raw <= distinctHighHands; raw++ {
		require.Greater(t, keys[raw-1], keys[raw], "raw score %d", raw)
	}
}

func BenchmarkEvaluateHigh_sevenCards(b *testing.B) {
	player := deck.CardsFromString("8h9s")
	board := deck.CardsFromString("2d9d2c9h3h")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := EvaluateHigh(player, board); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluateBadugi(b *testing.B) {
	player := deck.CardsFromString("3d7h6s7c")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := EvaluateBadugi(player, nil); err != nil {
			b.Fatal(err)
		}
	}
}
