package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrengthIterator(t *testing.T) {
	a := assert.New(t)

	it := NewStrengthIterator(3, 1, 2)
	a.Equal(3, it.Len())

	var got []uint32
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	a.Equal([]uint32{3, 1, 2}, got)

	_, ok := it.Next()
	a.False(ok)

	it.Reset()
	v, ok := it.Next()
	a.True(ok)
	a.Equal(uint32(3), v)

	values := it.Values()
	values[0] = 99
	a.Equal([]uint32{3, 1, 2}, it.Values())
}

func TestRank_Strengths(t *testing.T) {
	r := Rank{Strength: 42, Category: 3}
	assert.Equal(t, []uint32{42}, r.Strengths().Values())

	b := BadugiRank{Rank{Strength: 7}}
	assert.Equal(t, []uint32{7}, b.Strengths().Values())
}

type thresholds []uint32

func (t thresholds) Strengths() *StrengthIterator {
	return NewStrengthIterator(t...)
}

func TestCompareStrengths(t *testing.T) {
	a := assert.New(t)

	a.Equal(0, CompareStrengths(Rank{Strength: 5}, BadugiRank{Rank{Strength: 5}}))
	a.Equal(1, CompareStrengths(Rank{Strength: 6}, BadugiRank{Rank{Strength: 5}}))
	a.Equal(-1, CompareStrengths(thresholds{5, 1}, thresholds{5, 2}))
	a.Equal(-1, CompareStrengths(thresholds{5}, thresholds{5, 2}))
	a.Equal(1, CompareStrengths(thresholds{5, 2}, thresholds{5}))
	a.Equal(0, CompareStrengths(thresholds{}, thresholds{}))
}
