package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(n, k int) [][]int {
	var out [][]int
	forEachCombination(n, k, func(idx []int) {
		out = append(out, append([]int(nil), idx...))
	})

	return out
}

func TestForEachCombination(t *testing.T) {
	a := assert.New(t)

	a.Len(collect(7, 5), 21)
	a.Len(collect(6, 5), 6)
	a.Len(collect(5, 5), 1)
	a.Len(collect(6, 4), 15)
	a.Nil(collect(4, 5))

	a.Equal([][]int{
		{0, 1, 2},
		{0, 1, 3},
		{0, 2, 3},
		{1, 2, 3},
	}, collect(4, 3))
}

func TestChoose(t *testing.T) {
	a := assert.New(t)

	a.Equal(uint32(2598960), choose(52, 5))
	a.Equal(uint32(715), choose(13, 4))
	a.Equal(uint32(1), choose(0, 0))
	a.Equal(uint32(1), choose(12, 0))
	a.Equal(uint32(0), choose(3, 4))
	a.Equal(uint32(0), choose(3, -1))
}
