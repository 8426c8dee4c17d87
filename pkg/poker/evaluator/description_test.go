package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertDescriptions(t *testing.T, hands map[string]string) {
	t.Helper()

	for h, expected := range hands {
		r := evaluateHigh(t, h, "")
		assert.Equal(t, expected, r.Description, "failed on hand %s", h)
	}
}

func TestDescription_pairsTwoPairsHighs(t *testing.T) {
	assertDescriptions(t, map[string]string{
		"2c2h4c5s7s": "Pair of 2s",
		"2c2hAcKsQs": "Pair of 2s",
		"3c3hAcKsQs": "Pair of 3s",
		"7c7hAcKsJs": "Pair of 7s",
		"2c2hAcQsQs": "Two Pair of Queens and 2s",
		"2c7hAcQsQs": "Pair of Queens",
		"2c7hTcKsQs": "King High",
		"AsAhKdKsQh": "Two Pair of Aces and Kings",
	})
}

func TestDescription_trips(t *testing.T) {
	assertDescriptions(t, map[string]string{
		"2c2h2s3s4s": "Trip 2s",
		"2c2h2sAsKs": "Trip 2s",
		"3c3hAc3sKs": "Trip 3s",
		"4c4h4s2s3s": "Trip 4s",
		"AcAhAsKsQs": "Trip Aces",
	})
}

func TestDescription_straights(t *testing.T) {
	assertDescriptions(t, map[string]string{
		"As2c3c4d5h": "5 High Straight",
		"2s3c4c5d6h": "6 High Straight",
		"3s4c5c6d7h": "7 High Straight",
		"4s5c6c7d8h": "8 High Straight",
		"5s6c7c8d9h": "9 High Straight",
		"6s7c8c9dTh": "10 High Straight",
		"7s8c9cTdJh": "Jack High Straight",
		"8s9cTcJdQh": "Queen High Straight",
		"9sTcJcQdKh": "King High Straight",
		"TsJcQcKdAh": "Ace High Straight",
	})
}

func TestDescription_flushes(t *testing.T) {
	assertDescriptions(t, map[string]string{
		"2s3s4s5s7s": "7 High Flush",
		"AsKsQsJs9s": "Ace High Flush",
		"As2s3s4s6s": "Ace High Flush",
		"3h6h9h5hTh": "10 High Flush",
		"5d9dJdQdKd": "King High Flush",
	})
}

func TestDescription_boats(t *testing.T) {
	assertDescriptions(t, map[string]string{
		"2s2c2h3d3s": "2s Full of 3s",
		"3s3c3h2d2s": "3s Full of 2s",
		"AsAcAhKdKs": "Aces Full of Kings",
		"2s2c2hAdAs": "2s Full of Aces",
		"5s5c5hTdTs": "5s Full of 10s",
		"5s5c5d4d4s": "5s Full of 4s",
		"5s5c5d6d6s": "5s Full of 6s",
		"6s6c6d5d5s": "6s Full of 5s",
		"6s6c6d7d7s": "6s Full of 7s",
	})
}

func TestDescription_quads(t *testing.T) {
	assertDescriptions(t, map[string]string{
		"2s2c2h2d3d": "Quad 2s",
		"AsAcAhAdKd": "Quad Aces",
		"QsQcQhQd4d": "Quad Queens",
		"7s7c7h7d6d": "Quad 7s",
	})
}

func TestDescription_straightFlushes(t *testing.T) {
	assertDescriptions(t, map[string]string{
		"As2s3s4s5s": "5 High Straight Flush",
		"2s3s4s5s6s": "6 High Straight Flush",
		"3d4d5d6d7d": "7 High Straight Flush",
		"4h5h6h7h8h": "8 High Straight Flush",
		"5c6c7c8c9c": "9 High Straight Flush",
		"6s7s8s9sTs": "10 High Straight Flush",
		"7h8h9hThJh": "Jack High Straight Flush",
		"8c9cTcJcQc": "Queen High Straight Flush",
		"9dTdJdQdKd": "King High Straight Flush",
		"TsJsQsKsAs": "Ace High Straight Flush",
	})
}

func TestDescribeHigh_invalid(t *testing.T) {
	a := assert.New(t)

	_, err := describeHigh(0, 1)
	a.Equal(errInvalidCategory, err)

	_, err = describeHigh(Category(10), 1)
	a.Equal(errInvalidCategory, err)

	_, err = describeHigh(HighCard, 0)
	a.EqualError(err, "sub rank for High card was not valid")

	_, err = describeHigh(Flush, 1278)
	a.EqualError(err, "sub rank for Flush was not valid")

	_, err = describeHigh(Straight, 11)
	a.EqualError(err, "sub rank for Straight was not valid")

	_, err = describeHigh(StraightFlush, 0)
	a.EqualError(err, "sub rank for Straight flush was not valid")

	_, err = describeHigh(Pair, 2861)
	a.Error(err)
}

func TestDescribeHigh_everySubRank(t *testing.T) {
	for c := HighCard; c <= StraightFlush; c++ {
		for s := uint16(1); s <= c.Size(); s++ {
			desc, err := describeHigh(c, s)
			if !assert.NoError(t, err, "%s %d", c, s) {
				return
			}
			assert.NotEmpty(t, desc)
		}
	}
}

func TestDecompose(t *testing.T) {
	a := assert.New(t)

	for raw, expected := range map[uint16][2]uint16{
		1:    {uint16(StraightFlush), 10},
		10:   {uint16(StraightFlush), 1},
		11:   {uint16(FourOfAKind), 156},
		166:  {uint16(FourOfAKind), 1},
		167:  {uint16(FullHouse), 156},
		323:  {uint16(Flush), 1277},
		1600: {uint16(Straight), 10},
		1610: {uint16(ThreeOfAKind), 858},
		2468: {uint16(TwoPair), 858},
		3326: {uint16(Pair), 2860},
		6185: {uint16(Pair), 1},
		6186: {uint16(HighCard), 1277},
		7462: {uint16(HighCard), 1},
	} {
		c, s := decompose(raw)
		a.Equal(expected[0], uint16(c), "raw %d", raw)
		a.Equal(expected[1], s, "raw %d", raw)
	}

	c, s := decompose(0)
	a.Equal(Category(0), c)
	a.Equal(uint16(0), s)

	c, _ = decompose(7463)
	a.Equal(Category(0), c)
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "Full house", FullHouse.String())
	assert.Equal(t, "Category(12)", Category(12).String())
	assert.Equal(t, uint16(0), Category(12).Size())
}
