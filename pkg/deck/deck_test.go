package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedSeed int

func (f fixedSeed) Intn(n int) int {
	return int(f) % n
}

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Equal(t, 52, deck.CardsLeft())
	assert.Equal(t, int64(-1), deck.GetSeed())

	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, *deck.Cards[0])

	assert.Equal(t, Card{Rank: 14, Suit: Spades}, *deck.Cards[51])

	assert.False(t, Hand(deck.Cards).HasDuplicate())

	unshuffled := deck.HashCode()
	assert.NoError(t, deck.Shuffle(1))
	assert.Equal(t, int64(1), deck.GetSeed())
	assert.Equal(t, 52, deck.CardsLeft())
	assert.NotEqual(t, unshuffled, deck.HashCode())
}

func TestDeck_Shuffle_sameSeed(t *testing.T) {
	d1 := New()
	d2 := New()
	assert.NoError(t, d1.Shuffle(233))
	assert.NoError(t, d2.Shuffle(233))
	assert.Equal(t, d1.HashCode(), d2.HashCode())

	for i := 0; i < 52; i++ {
		c1, err := d1.Draw()
		assert.NoError(t, err)
		c2, err := d2.Draw()
		assert.NoError(t, err)
		assert.True(t, c1.Equal(c2), "cards at index %d are not equal (%s != %s)", i, c1, c2)
	}

	// shuffling again rebuilds all 52 cards
	assert.NoError(t, d1.Shuffle(233))
	assert.NoError(t, d2.Shuffle(234))
	assert.Equal(t, 52, d1.CardsLeft())
	assert.NotEqual(t, d1.HashCode(), d2.HashCode())
}

func TestDeck_Shuffle_pickedSeed(t *testing.T) {
	d := New()
	d.SetSeedGenerator(fixedSeed(41))
	assert.NoError(t, d.Shuffle(0))
	assert.Equal(t, int64(42), d.GetSeed())

	d2 := New()
	assert.NoError(t, d2.Shuffle(42))
	assert.Equal(t, d2.HashCode(), d.HashCode())

	assert.Equal(t, ErrInvalidSeed, d.Shuffle(-1))
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	if !deck.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if deck.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := deck.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	if deck.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err := deck.Draw()
	if card != nil {
		t.Errorf("expected card to be nil, got %#v", card)
	}

	if err != ErrEndOfDeck {
		t.Errorf("expected err to be ErrEndOfDeck, got %#v", err)
	}

	assert.NoError(t, deck.Shuffle(7))
	if !deck.CanDraw(52) {
		t.Errorf("expected Shuffle() to reshuffle the deck")
	}
}

func TestDeck_DealCards(t *testing.T) {
	a := assert.New(t)
	d := New()

	cards, err := d.DealCards(5, false)
	a.NoError(err)
	a.Equal("2c,3c,4c,5c,6c", CardsToString(cards))
	a.Equal(47, d.CardsLeft())

	cards, err = d.DealCards(48, false)
	a.Equal(ErrEndOfDeck, err)
	a.Nil(cards)
	a.Equal(47, d.CardsLeft())

	_, err = d.DealCards(-1, false)
	a.Equal(ErrEndOfDeck, err)
}

func TestDeck_DealCards_includeMuck(t *testing.T) {
	a := assert.New(t)
	d := New()
	a.NoError(d.Shuffle(99))

	dealt, err := d.DealCards(50, false)
	a.NoError(err)
	d.MuckCards(dealt[:10]...)
	a.Equal(10, d.MuckSize())

	_, err = d.DealCards(5, false)
	a.Equal(ErrEndOfDeck, err)

	remaining := Hand(d.Cards).Clone()
	cards, err := d.DealCards(5, true)
	a.NoError(err)
	a.Len(cards, 5)
	a.Equal(0, d.MuckSize())
	a.Equal(7, d.CardsLeft())

	// the remaining cards come out before any mucked card
	a.True(cards[0].Equal(remaining[0]))
	a.True(cards[1].Equal(remaining[1]))
	for _, c := range cards[2:] {
		a.True(Hand(dealt[:10]).HasCard(c))
	}
}

func TestDeck_DrawCards(t *testing.T) {
	a := assert.New(t)
	d := New()
	hand, err := d.DealCards(4, false)
	a.NoError(err)

	replacements, err := d.DrawCards(2, hand[:2], false)
	a.NoError(err)
	a.Equal("6c,7c", CardsToString(replacements))
	a.Equal(2, d.MuckSize())

	// not enough cards without the muck, nothing is discarded
	_, err = d.DrawCards(47, hand[2:], false)
	a.Equal(ErrEndOfDeck, err)
	a.Equal(2, d.MuckSize())

	// the pending discards count towards the muck
	cards, err := d.DrawCards(48, hand[2:], true)
	a.NoError(err)
	a.Len(cards, 48)
	a.Equal(2, d.CardsLeft())
	a.Equal(0, d.MuckSize())
	a.False(Hand(cards).HasDuplicate())
}

func TestDeck_ReshuffleMuck(t *testing.T) {
	a := assert.New(t)

	build := func() *Deck {
		d := New()
		a.NoError(d.Shuffle(5))
		cards, err := d.DealCards(10, false)
		a.NoError(err)
		d.MuckCards(cards...)
		d.ReshuffleMuck(77)
		return d
	}

	d1 := build()
	d2 := build()
	a.Equal(52, d1.CardsLeft())
	a.Equal(0, d1.MuckSize())
	a.Equal(d1.HashCode(), d2.HashCode())
	a.False(Hand(d1.Cards).HasDuplicate())
}
