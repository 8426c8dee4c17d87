package evaluator

import (
	"errors"
	"fmt"
	"sort"

	"pokerhands/pkg/deck"
	"pokerhands/pkg/poker/rank"
)

// ErrUnknownVariant is returned by Lookup for an unregistered variant
var ErrUnknownVariant = errors.New("unknown variant")

// Func evaluates a player's cards against a board
type Func func(player, board []*deck.Card) ([]rank.Rank, error)

// variant names
const (
	High   = "high"
	Badugi = "badugi"
)

var variants = map[string]Func{
	High: EvaluateHigh,
	Badugi: func(player, board []*deck.Card) ([]rank.Rank, error) {
		r, err := EvaluateBadugi(player, board)
		if err != nil {
			return nil, err
		}

		return []rank.Rank{r}, nil
	},
}

// Lookup returns the evaluator for the named variant
func Lookup(name string) (Func, error) {
	fn, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, name)
	}

	return fn, nil
}

// Variants returns the names of every variant, sorted
func Variants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
