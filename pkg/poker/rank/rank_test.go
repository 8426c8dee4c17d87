package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank_Compare(t *testing.T) {
	a := assert.New(t)

	weak := Rank{Strength: 10, Category: 1, SubRank: 10, Description: "7 High"}
	strong := Rank{Strength: 20, Category: 1, SubRank: 20}

	a.Equal(-1, weak.Compare(strong))
	a.Equal(1, strong.Compare(weak))
	a.Equal(0, weak.Compare(weak))
	a.True(strong.Beats(weak))
	a.False(weak.Beats(weak))

	// a tie in strength is a tie even if the other fields differ
	other := Rank{Strength: 10, Category: 2, SubRank: 1}
	a.Equal(0, weak.Compare(other))
	a.False(weak.Equal(other))
}

func TestRank_Equal(t *testing.T) {
	a := assert.New(t)

	r1 := Rank{Strength: 5864, Category: 6, SubRank: 1, Description: "7 High Flush"}
	r2 := r1
	r3 := r2

	a.True(r1.Equal(r1))
	a.True(r1.Equal(r2))
	a.True(r2.Equal(r1))
	a.True(r2.Equal(r3))
	a.True(r1.Equal(r3))

	r3.Description = ""
	a.False(r1.Equal(r3))
}

func TestMax(t *testing.T) {
	a := assert.New(t)

	_, ok := Max()
	a.False(ok)

	first := Rank{Strength: 7, Description: "first"}
	second := Rank{Strength: 7, Description: "second"}
	best, ok := Max(Rank{Strength: 3}, first, second, Rank{Strength: 1})
	a.True(ok)
	a.Equal(first, best)
}

func TestSortDescending(t *testing.T) {
	ranks := []Rank{
		{Strength: 2, Description: "a"},
		{Strength: 9},
		{Strength: 2, Description: "b"},
		{Strength: 5},
	}
	SortDescending(ranks)

	assert.Equal(t, []Rank{
		{Strength: 9},
		{Strength: 5},
		{Strength: 2, Description: "a"},
		{Strength: 2, Description: "b"},
	}, ranks)
}

func TestBadugiRank(t *testing.T) {
	a := assert.New(t)

	b1 := BadugiRank{Rank{Strength: 873, Category: 4, SubRank: 495}}
	b2 := BadugiRank{Rank{Strength: 873, Category: 3, SubRank: 1, Description: "different"}}
	b3 := BadugiRank{Rank{Strength: 2, Category: 1, SubRank: 1}}

	a.True(b1.Equal(b2))
	a.Equal(0, b1.Compare(b2))
	a.Equal(1, b1.Compare(b3))
	a.Equal(-1, b3.Compare(b2))
}
