package evaluator

import (
	"errors"
	"sort"
	"testing"

	"pokerhands/pkg/deck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateBadugi(t *testing.T) {
	tests := []struct {
		hand     string
		category uint16
		strength uint32
	}{
		{"2h4hThQh", 1, 12},
		{"QhQsQdQc", 1, 2},
		{"2h4hTd2d", 2, 78},
		{"3d7h6s7c", 3, 294},
		{"As3dKc5h", 4, 542},
		{"As2d5c6h", 4, 871},
		{"As2d3c4h", 4, 873},
	}

	for _, test := range tests {
		t.Run(test.hand, func(t *testing.T) {
			r, err := EvaluateBadugi(deck.CardsFromString(test.hand), nil)
			require.NoError(t, err)
			assert.Equal(t, test.category, r.Category)
			assert.Equal(t, test.strength, r.Strength)
			assert.Empty(t, r.Description)
		})
	}
}

func TestEvaluateBadugi_ordering(t *testing.T) {
	rank := func(hand string) uint32 {
		r, err := EvaluateBadugi(deck.CardsFromString(hand), nil)
		require.NoError(t, err)
		return r.Strength
	}

	// more cards always wins
	assert.Greater(t, rank("KsQdJcTh"), rank("As2d3c3h"))
	assert.Greater(t, rank("Ks2d3c4h"), rank("Ah2h3h4h"))

	// lower cards win among the same size
	assert.Greater(t, rank("As2d3c4h"), rank("As2d5c6h"))
	assert.Greater(t, rank("As2d5c6h"), rank("KsQdJcTh"))
}

func TestEvaluateBadugi_boardIgnored(t *testing.T) {
	hand := deck.CardsFromString("As3dKc5h")

	r1, err := EvaluateBadugi(hand, nil)
	require.NoError(t, err)

	r2, err := EvaluateBadugi(hand, deck.CardsFromString("2c2d2h"))
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
}

func TestEvaluateBadugi_errors(t *testing.T) {
	a := assert.New(t)

	_, err := EvaluateBadugi(deck.CardsFromString("As2d3c"), nil)
	var notEnough *NotEnoughCardsError
	a.True(errors.As(err, &notEnough))
	a.Equal(4, notEnough.Minimum)
	a.Equal("player hand", notEnough.Context)

	_, err = EvaluateBadugi(deck.CardsFromString("As2d3c4h5s"), nil)
	var tooMany *TooManyCardsError
	a.True(errors.As(err, &tooMany))
	a.Equal(4, tooMany.Maximum)

	_, err = EvaluateBadugi(deck.CardsFromString("As2d3cAs"), nil)
	a.True(errors.Is(err, ErrDuplicateCard))

	_, err = EvaluateBadugi([]*deck.Card{nil, nil, nil, nil}, nil)
	a.True(errors.Is(err, ErrInvalidCard))
}

func TestEvaluateBadugi_orderIndependent(t *testing.T) {
	hand := deck.CardsFromString("3d7h6s7c")
	expected, err := EvaluateBadugi(hand, nil)
	require.NoError(t, err)

	reversed := []*deck.Card{hand[3], hand[2], hand[1], hand[0]}
	r, err := EvaluateBadugi(reversed, nil)
	require.NoError(t, err)
	assert.Equal(t, expected, r)
}

// lowCard returns a card with the given ace-low rank, Ace = 0 through King = 12
func lowCard(low int, suit deck.Suit) *deck.Card {
	if low == 0 {
		return &deck.Card{Rank: deck.Ace, Suit: suit}
	}

	return &deck.Card{Rank: low + 1, Suit: suit}
}

func TestEvaluateBadugi_fourCardMonotonic(t *testing.T) {
	type scored struct {
		lows     []int
		strength uint32
	}

	var all []scored
	forEachCombination(ranksPerSuit, 4, func(idx []int) {
		lows := []int{idx[3], idx[2], idx[1], idx[0]}
		hand := make([]*deck.Card, 4)
		for i, low := range lows {
			hand[i] = lowCard(low, deck.Suits[i])
		}

		r, err := EvaluateBadugi(hand, nil)
		require.NoError(t, err)
		require.Equal(t, uint16(4), r.Category)
		require.Equal(t, uint32(378), r.Strength-uint32(r.SubRank))

		all = append(all, scored{lows: lows, strength: r.Strength})
	})
	require.Len(t, all, 715)

	sort.Slice(all, func(i, j int) bool {
		for k := range all[i].lows {
			if all[i].lows[k] != all[j].lows[k] {
				return all[i].lows[k] < all[j].lows[k]
			}
		}
		return false
	})

	// a lower descending sequence never scores lower
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i].strength, all[i-1].strength, "%v vs %v", all[i].lows, all[i-1].lows)
	}

	assert.Equal(t, uint32(873), all[0].strength)
}

func TestDistinctCards(t *testing.T) {
	for hand, expected := range map[string]int{
		"As2d3c4h": 4,
		"AsAdAcAh": 1,
		"As2s3s4s": 1,
		"As2d3c3h": 3,
		"2h4hTd2d": 2,
	} {
		patterns, err := encode(deck.CardsFromString(hand))
		require.NoError(t, err)
		assert.Equal(t, expected, distinctCards(patterns), hand)
	}
}
