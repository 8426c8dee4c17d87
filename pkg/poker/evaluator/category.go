package evaluator

import "fmt"

// Category is the classification of a high hand
type Category uint16

// categories from weakest to strongest. Zero is unset.
const (
	HighCard Category = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// categorySizes holds the number of distinct five-card hands in each category,
// indexed by Category-1
var categorySizes = [...]uint16{1277, 2860, 858, 858, 10, 1277, 156, 156, 10}

// distinctHighHands is the number of distinct raw scores; raw scores run from 1 to 7462
const distinctHighHands = 7462

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	default:
		return fmt.Sprintf("Category(%d)", uint16(c))
	}
}

// Size returns the number of distinct hands in the category, or 0 if unknown
func (c Category) Size() uint16 {
	if c < HighCard || c > StraightFlush {
		return 0
	}

	return categorySizes[c-1]
}

// decompose splits a raw score into its category and the 1-based position of
// the hand within that category, weakest first.
// Raw scores are walked from the strongest category down.
func decompose(raw uint16) (Category, uint16) {
	if raw < 1 || raw > distinctHighHands {
		return 0, 0
	}

	left := raw - 1
	for i := len(categorySizes) - 1; i >= 0; i-- {
		if left < categorySizes[i] {
			return Category(i + 1), categorySizes[i] - left
		}

		left -= categorySizes[i]
	}

	return 0, 0
}
