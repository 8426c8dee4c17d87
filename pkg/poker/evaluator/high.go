// Package evaluator scores poker hands. Higher strengths are better hands.
package evaluator

import (
	"pokerhands/pkg/deck"
	"pokerhands/pkg/poker/rank"

	"github.com/sirupsen/logrus"
)

// card count bounds for a high hand
const (
	highMinCards = 5
	highMaxCards = 7
)

// EvaluateHigh evaluates the best five-card high hand that can be made from
// the player's cards and the board. Between five and seven cards must be given.
//
// A single rank is returned. The slice leaves room for variants that produce
// more than one rank per hand, e.g., hi/lo splits.
func EvaluateHigh(player, board []*deck.Card) ([]rank.Rank, error) {
	n := len(player) + len(board)
	if n < highMinCards {
		return nil, &NotEnoughCardsError{Context: "set of cards", Minimum: highMinCards}
	} else if n > highMaxCards {
		return nil, &TooManyCardsError{Context: "set of cards", Maximum: highMaxCards}
	}

	cards := make([]*deck.Card, 0, n)
	cards = append(cards, player...)
	cards = append(cards, board...)

	patterns, err := encode(cards)
	if err != nil {
		return nil, err
	}

	var best uint16
	forEachCombination(len(patterns), 5, func(idx []int) {
		score := evalFiveCards(patterns[idx[0]], patterns[idx[1]], patterns[idx[2]], patterns[idx[3]], patterns[idx[4]])
		if best == 0 || score < best {
			best = score
		}
	})

	// 0 is never a valid score
	if best == 0 {
		return nil, unknownError("could not get the minimum rank")
	}

	category, subRank := decompose(best)
	description, err := describeHigh(category, subRank)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"cards":    deck.CardsToNotation(cards),
			"category": uint16(category),
			"subRank":  subRank,
		}).Warn("could not describe hand")

		description = err.Error()
	}

	return []rank.Rank{{
		Strength:    distinctHighHands + 1 - uint32(best),
		Category:    uint16(category),
		SubRank:     subRank,
		Description: description,
	}}, nil
}

// encode returns the bit pattern of every card.
// Cards must be valid and distinct.
func encode(cards []*deck.Card) ([]uint32, error) {
	patterns := make([]uint32, len(cards))
	for i, card := range cards {
		if card == nil || !card.Valid() {
			return nil, ErrInvalidCard
		}

		p := card.BitPattern()
		for _, prev := range patterns[:i] {
			if prev == p {
				return nil, ErrDuplicateCard
			}
		}

		patterns[i] = p
	}

	return patterns, nil
}

// evalFiveCards returns the raw score of five encoded cards: 1 for a royal
// flush through 7462 for the worst high card. 0 means the cards could not be
// scored, which only happens with duplicated cards.
func evalFiveCards(c0, c1, c2, c3, c4 uint32) uint16 {
	q := (c0 | c1 | c2 | c3 | c4) >> 16

	if c0&c1&c2&c3&c4&0xf000 != 0 {
		return flushes[q]
	}

	if score, ok := unique5[q]; ok {
		return score
	}

	product := (c0 & 0xff) * (c1 & 0xff) * (c2 & 0xff) * (c3 & 0xff) * (c4 & 0xff)
	return hashValues[findFast(product)]
}

// findFast is the perfect hash of a prime product. The tables were built
// against these exact steps, so they must not change.
func findFast(u uint32) uint32 {
	u += 0xe91aaa35
	u ^= u >> 16
	u += u << 8
	u ^= u >> 4
	b := (u >> 8) & 0x1ff
	a := (u + (u << 2)) >> 19

	return a ^ uint32(hashAdjust[b])
}
