package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"math"
	"math/rand"

	"pokerhands/internal/rng"
)

// ErrEndOfDeck is an error when a draw is attempted and there are not enough cards
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrInvalidSeed is returned when a negative seed is given
var ErrInvalidSeed = errors.New("seed cannot be < 0")

// Deck represents a playing deck.
// Cards are dealt from the front. Discarded cards go into the muck, which can
// be shuffled back in behind the remaining cards.
type Deck struct {
	Cards []*Card `json:"cards"`
	muck  []*Card
	seed  int64
	rng   *rand.Rand

	// seeds picks a seed when Shuffle is called without one
	seeds rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed:  -1,
		seeds: rng.Crypto{},
	}

	d.buildDeck()
	return d
}

// SetSeedGenerator replaces the generator used to pick seeds
func (d *Deck) SetSeedGenerator(g rng.Generator) {
	d.seeds = g
}

func (d *Deck) setSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed)) // nolint:gosec
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
	d.muck = nil
}

func (d *Deck) pickSeed(seed int64) int64 {
	if seed == 0 {
		return rng.Seed(d.seeds, math.MaxInt32)
	}

	return seed
}

// Shuffle will shuffle a fresh set of 52 cards.
// You can manually specify the seed, or you can leave it as 0 to have one picked.
// The seed used is available from GetSeed().
func (d *Deck) Shuffle(seed int64) error {
	if seed < 0 {
		return ErrInvalidSeed
	}

	// we always want to shuffle from an unshuffled deck.
	// this check here is to make sure we aren't double building the deck
	if len(d.Cards) != 52 || d.seed != -1 {
		d.buildDeck()
	}

	d.setSeed(d.pickSeed(seed))
	d.shuffleCards(d.Cards)

	return nil
}

func (d *Deck) shuffleCards(cards []*Card) {
	for j := len(cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck, or -1 if it was never shuffled
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// DealCards deals n cards.
// If the deck is short and includeMuck is true, the muck is reshuffled in first.
func (d *Deck) DealCards(n int, includeMuck bool) ([]*Card, error) {
	if n < 0 || !d.canDeal(n, includeMuck, 0) {
		return nil, ErrEndOfDeck
	}

	if len(d.Cards) < n {
		d.ReshuffleMuck(0)
	}

	cards := make([]*Card, n)
	copy(cards, d.Cards[:n])
	d.Cards = d.Cards[n:]

	return cards, nil
}

// DrawCards discards the given cards into the muck and deals n replacements.
// Nothing is discarded if the replacements cannot be dealt.
func (d *Deck) DrawCards(n int, discards []*Card, includeMuck bool) ([]*Card, error) {
	if n < 0 || !d.canDeal(n, includeMuck, len(discards)) {
		return nil, ErrEndOfDeck
	}

	d.MuckCards(discards...)
	return d.DealCards(n, includeMuck)
}

func (d *Deck) canDeal(n int, includeMuck bool, pendingDiscards int) bool {
	available := len(d.Cards)
	if includeMuck {
		available += len(d.muck) + pendingDiscards
	}

	return available >= n
}

// MuckCards adds cards to the muck
func (d *Deck) MuckCards(cards ...*Card) {
	d.muck = append(d.muck, cards...)
}

// MuckSize returns the number of cards in the muck
func (d *Deck) MuckSize() int {
	return len(d.muck)
}

// ReshuffleMuck shuffles the muck and places it behind the remaining cards.
// A seed of 0 continues the random stream of the last shuffle.
func (d *Deck) ReshuffleMuck(seed int64) {
	if seed != 0 || d.rng == nil {
		d.setSeed(d.pickSeed(seed))
	}

	muck := d.muck
	d.shuffleCards(muck)

	cards := make([]*Card, 0, len(d.Cards)+len(muck))
	cards = append(cards, d.Cards...)
	d.Cards = append(cards, muck...)
	d.muck = nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
