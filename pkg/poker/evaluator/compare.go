package evaluator

import (
	"context"
	"fmt"
	"sort"

	"pokerhands/pkg/deck"
	"pokerhands/pkg/poker/rank"

	"golang.org/x/sync/errgroup"
)

// Result is the evaluation of one player's hand in a comparison
type Result struct {
	// Index is the position of the hand in the input
	Index int `json:"index"`

	// Place is 1 for the strongest hand. Tied hands share a place.
	Place int         `json:"place"`
	Ranks []rank.Rank `json:"ranks"`
}

// Strengths returns the thresholds of the result's ranks, in order
func (r Result) Strengths() *rank.StrengthIterator {
	var values []uint32
	for _, rk := range r.Ranks {
		values = append(values, rk.Strengths().Values()...)
	}

	return rank.NewStrengthIterator(values...)
}

// Compare evaluates every hand against the board and orders the results
// strongest first. Hands that tie keep their input order.
func Compare(ctx context.Context, fn Func, hands [][]*deck.Card, board []*deck.Card) ([]Result, error) {
	all := deck.Hand(board).Clone()
	for _, hand := range hands {
		all = append(all, hand...)
	}

	for _, card := range all {
		if card == nil {
			return nil, ErrInvalidCard
		}
	}

	if all.HasDuplicate() {
		return nil, ErrDuplicateCard
	}

	results := make([]Result, len(hands))

	g, ctx := errgroup.WithContext(ctx)
	for i, hand := range hands {
		i, hand := i, hand
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			ranks, err := fn(hand, board)
			if err != nil {
				return fmt.Errorf("hand %d: %w", i, err)
			}

			results[i] = Result{Index: i, Ranks: ranks}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return rank.CompareStrengths(results[i], results[j]) > 0
	})

	for i := range results {
		switch {
		case i == 0:
			results[i].Place = 1
		case rank.CompareStrengths(results[i], results[i-1]) == 0:
			results[i].Place = results[i-1].Place
		default:
			results[i].Place = results[i-1].Place + 1
		}
	}

	return results, nil
}
