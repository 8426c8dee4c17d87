package evaluator

import (
	"errors"
	"testing"

	"pokerhands/pkg/deck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	a := assert.New(t)

	fn, err := Lookup(Badugi)
	require.NoError(t, err)

	ranks, err := fn(deck.CardsFromString("As2d3c4h"), nil)
	a.NoError(err)
	a.Len(ranks, 1)
	a.Equal(uint32(873), ranks[0].Strength)

	_, err = fn(deck.CardsFromString("As2d"), nil)
	a.True(IsInputError(err))

	fn, err = Lookup(High)
	require.NoError(t, err)

	ranks, err = fn(deck.CardsFromString("TsJs"), deck.CardsFromString("QsKsAs"))
	a.NoError(err)
	a.Equal(uint32(7462), ranks[0].Strength)

	_, err = Lookup("razz")
	a.True(errors.Is(err, ErrUnknownVariant))
	a.EqualError(err, "unknown variant: razz")
}

func TestVariants(t *testing.T) {
	assert.Equal(t, []string{"badugi", "high"}, Variants())
}
