package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits lists every suit in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Two     = 2
	Ten     = 10
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

// one prime per rank, Two through Ace
var rankPrimes = [13]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Valid returns true if the card has a known suit and a rank between Two and Ace
func (c *Card) Valid() bool {
	if c.Rank < Two || c.Rank > Ace {
		return false
	}

	return c.suitBit() != 0
}

func (c *Card) suitBit() uint32 {
	switch c.Suit {
	case Spades:
		return 0x1
	case Hearts:
		return 0x2
	case Diamonds:
		return 0x4
	case Clubs:
		return 0x8
	}

	return 0
}

// BitPattern returns the 32-bit encoding of the card used by the evaluators.
//
//	xxxbbbbb bbbbbbbb ssssrrrr pppppppp
//
// b is a single bit for the rank (Two is the lowest), s is a single bit for
// the suit, r is the rank index (Two = 0 through Ace = 12) and p is the prime
// associated with the rank.
func (c *Card) BitPattern() uint32 {
	r := uint32(c.Rank - Two)
	return 1<<(16+r) | c.suitBit()<<12 | r<<8 | rankPrimes[r]
}

// Notation returns the compact form of the card, e.g., As or Td
func (c *Card) Notation() string {
	var rank string
	switch c.Rank {
	case Ten:
		rank = "T"
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	return rank + suitLetter(c.Suit)
}

const cardPattern = `([2-9]|1[0-4]|[tjqka])([cdhs])`

var (
	cardRx  = regexp.MustCompile(`(?i)^` + cardPattern + `\z`)
	cardsRx = regexp.MustCompile(`(?i)` + cardPattern)
)

// ParseCard returns a Card from the string.
// The rank may be numeric (2-14) or one of T, J, Q, K, A, followed by a suit in [cdhs]
func ParseCard(s string) (*Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	return newCard(match[1], match[2]), nil
}

// ParseCards parses either a comma separated list (14c,2d) or a compact
// run of cards (Ac2d). Whitespace between compact cards is ignored.
func ParseCards(s string) ([]*Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []*Card{}, nil
	}

	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		cards := make([]*Card, len(parts))
		for i, part := range parts {
			card, err := ParseCard(part)
			if err != nil {
				return nil, err
			}

			cards[i] = card
		}

		return cards, nil
	}

	compact := strings.Join(strings.Fields(s), "")
	cards := make([]*Card, 0, len(compact)/2)
	pos := 0
	for _, m := range cardsRx.FindAllStringSubmatchIndex(compact, -1) {
		if m[0] != pos {
			break
		}

		cards = append(cards, newCard(compact[m[2]:m[3]], compact[m[4]:m[5]]))
		pos = m[1]
	}

	if pos != len(compact) {
		return nil, fmt.Errorf("%w: could not parse %q at offset %d", ErrInvalidCard, s, pos)
	}

	return cards, nil
}

// newCard expects rank and suit to have been validated by the card regexp
func newCard(rank, suit string) *Card {
	var r int
	switch strings.ToLower(rank) {
	case "t":
		r = Ten
	case "j":
		r = Jack
	case "q":
		r = Queen
	case "k":
		r = King
	case "a":
		r = Ace
	default:
		r, _ = strconv.Atoi(rank)
	}

	var s Suit
	switch strings.ToLower(suit) {
	case "c":
		s = Clubs
	case "d":
		s = Diamonds
	case "h":
		s = Hearts
	case "s":
		s = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{Rank: r, Suit: s}
}

// CardFromString is like ParseCard, but panics if the card cannot be parsed.
// Returns nil for an empty string.
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %v", err))
	}

	return card
}

// CardsFromString is like ParseCards, but panics if the cards cannot be parsed
func CardsFromString(s string) []*Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse cards: %v", err))
	}

	return cards
}

func suitLetter(suit Suit) string {
	switch suit {
	case Clubs:
		return "c"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Spades:
		return "s"
	}

	return ""
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	return fmt.Sprintf("%d%s", card.Rank, suitLetter(card.Suit))
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}

// CardsToNotation converts a slice of cards to the compact form, e.g., As2d3c
func CardsToNotation(cards []*Card) string {
	var sb strings.Builder
	for _, card := range cards {
		sb.WriteString(card.Notation())
	}

	return sb.String()
}
