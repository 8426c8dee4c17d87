package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_HasCard(t *testing.T) {
	hand := Hand(CardsFromString("2c,3c,4d"))
	assert.True(t, hand.HasCard(CardFromString("3c")))
	assert.False(t, hand.HasCard(CardFromString("3s")))
}

func TestHand_HasDuplicate(t *testing.T) {
	assert.False(t, Hand(CardsFromString("2c3c4d")).HasDuplicate())
	assert.True(t, Hand(CardsFromString("2c3c2c")).HasDuplicate())
	assert.False(t, Hand{}.HasDuplicate())
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(CardFromString("14s"))
	h.AddCard(CardFromString("3c"))
	assert.Equal(t, "14s,3c", CardsToString(h))
	assert.Equal(t, "As3c", h.Notation())
}

func TestHand_Sort(t *testing.T) {
	h := Hand(CardsFromString("Ks2c3d2s"))
	clone := h.Clone()
	sort.Sort(h)

	assert.Equal(t, "2c,3d,2s,13s", h.String())
	assert.Equal(t, "13s,2c,3d,2s", clone.String(), "clone must not be affected")
}
