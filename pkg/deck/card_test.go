package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	card := Card{
		Rank: 2,
		Suit: Hearts,
	}

	assert.Equal(t, "2♡", card.String())

	card = Card{
		Rank: 11,
		Suit: Clubs,
	}

	assert.Equal(t, "J♣", card.String())

	card = Card{
		Rank: 14,
		Suit: Spades,
	}

	assert.Equal(t, "A♠", card.String())
	assert.Equal(t, "As", card.Notation())
}

func TestCard_BitPattern(t *testing.T) {
	a := assert.New(t)

	// King of diamonds, the canonical example of this encoding
	a.Equal(uint32(0x08004b25), CardFromString("Kd").BitPattern())
	// Five of spades
	a.Equal(uint32(0x00081307), CardFromString("5s").BitPattern())
	// Jack of clubs
	a.Equal(uint32(0x0200891d), CardFromString("Jc").BitPattern())

	twoHearts := CardFromString("2h").BitPattern()
	twoClubs := CardFromString("2c").BitPattern()
	a.Equal(twoHearts&0xffff0fff, twoClubs&0xffff0fff, "same rank shares every field but the suit")
	a.NotEqual(twoHearts&0xf000, twoClubs&0xf000)
}

func TestParseCard(t *testing.T) {
	a := assert.New(t)

	for s, expected := range map[string]Card{
		"As":  {Rank: Ace, Suit: Spades},
		"14s": {Rank: Ace, Suit: Spades},
		"td":  {Rank: Ten, Suit: Diamonds},
		"10d": {Rank: Ten, Suit: Diamonds},
		"2H":  {Rank: 2, Suit: Hearts},
		"Qc":  {Rank: Queen, Suit: Clubs},
	} {
		card, err := ParseCard(s)
		a.NoError(err, s)
		a.Equal(expected, *card, s)
	}

	for _, s := range []string{"", "1s", "15c", "Ax", "As2d"} {
		card, err := ParseCard(s)
		a.Nil(card, s)
		a.True(errors.Is(err, ErrInvalidCard), s)
	}
}

func TestParseCards(t *testing.T) {
	a := assert.New(t)

	cards, err := ParseCards("2s3s4s5s7s")
	a.NoError(err)
	a.Equal("2s,3s,4s,5s,7s", CardsToString(cards))

	cards, err = ParseCards("As 10h Kd")
	a.NoError(err)
	a.Equal("14s,10h,13d", CardsToString(cards))

	cards, err = ParseCards("14c,2d, 3h")
	a.NoError(err)
	a.Equal("Ac2d3h", CardsToNotation(cards))

	cards, err = ParseCards("")
	a.NoError(err)
	a.Empty(cards)

	_, err = ParseCards("As2x")
	a.True(errors.Is(err, ErrInvalidCard))

	_, err = ParseCards("Asfoo2d")
	a.True(errors.Is(err, ErrInvalidCard))
}

func TestCardsFromString_panics(t *testing.T) {
	assert.Panics(t, func() {
		CardsFromString("nope")
	})
	assert.Nil(t, CardFromString(""))
}

func TestCard_Valid(t *testing.T) {
	assert.True(t, (&Card{Rank: 2, Suit: Clubs}).Valid())
	assert.False(t, (&Card{Rank: 1, Suit: Clubs}).Valid())
	assert.False(t, (&Card{Rank: 15, Suit: Clubs}).Valid())
	assert.False(t, (&Card{Rank: 5, Suit: "stars"}).Valid())
}
