package evaluator

import (
	"errors"
	"fmt"
	"math"
)

// faceNames is indexed by rank index, Two = 0 through Ace = 12
var faceNames = [13]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King", "Ace"}

// highCardFaces maps the sub rank of a high card or flush hand to its top card.
// The first bound >= sub rank wins.
var highCardFaces = []struct {
	bound uint16
	face  string
}{
	{4, "7"},
	{18, "8"},
	{52, "9"},
	{121, "10"},
	{246, "Jack"},
	{455, "Queen"},
	{784, "King"},
	{1277, "Ace"},
}

var errInvalidCategory = errors.New("hand rank did not have a valid hand category")

func invalidSubRank(c Category) error {
	return fmt.Errorf("sub rank for %s was not valid", c)
}

func face(index int) (string, bool) {
	if index < 0 || index >= len(faceNames) {
		return "", false
	}

	return faceNames[index], true
}

func faces(index int) (string, bool) {
	name, ok := face(index)
	return name + "s", ok
}

func highCardFace(subRank uint16) (string, bool) {
	for _, f := range highCardFaces {
		if subRank <= f.bound {
			return f.face, true
		}
	}

	return "", false
}

// describeHigh renders a category and sub rank, e.g., "9s Full of 2s"
func describeHigh(c Category, subRank uint16) (string, error) {
	size := c.Size()
	if size == 0 {
		return "", errInvalidCategory
	}

	if subRank < 1 || subRank > size {
		return "", invalidSubRank(c)
	}

	s := int(subRank)
	switch c {
	case HighCard, Flush:
		name, ok := highCardFace(subRank)
		if !ok {
			return "", invalidSubRank(c)
		}

		if c == Flush {
			return name + " High Flush", nil
		}

		return name + " High", nil

	case Pair:
		if name, ok := faces((s - 1) / 220); ok {
			return "Pair of " + name, nil
		}

	case TwoPair:
		// sub ranks are grouped by the top pair: 11 kickers for each lower pair
		first := int(math.Floor(math.Sqrt(float64(2*(s-1)/11)+0.25)-0.5)) + 1
		kicker := s - (first-1)*first/2*11
		firstName, ok1 := faces(first)
		secondName, ok2 := faces((kicker - 1) / 11)
		if ok1 && ok2 {
			return fmt.Sprintf("Two Pair of %s and %s", firstName, secondName), nil
		}

	case ThreeOfAKind:
		if name, ok := faces((s - 1) / 66); ok {
			return "Trip " + name, nil
		}

	case Straight, StraightFlush:
		name, _ := face(s + 2)
		if c == StraightFlush {
			return name + " High Straight Flush", nil
		}

		return name + " High Straight", nil

	case FullHouse:
		trips := (s - 1) / 12
		pair := (s - 1) % 12
		if pair >= trips {
			pair++
		}

		tripsName, ok1 := faces(trips)
		pairName, ok2 := faces(pair)
		if ok1 && ok2 {
			return fmt.Sprintf("%s Full of %s", tripsName, pairName), nil
		}

	case FourOfAKind:
		if name, ok := faces((s - 1) / 12); ok {
			return "Quad " + name, nil
		}
	}

	return "", invalidSubRank(c)
}
