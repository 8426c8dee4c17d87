package mux

import (
	"net/http/httptest"
	"testing"

	"pokerhands/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func Test_postDeal(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	a := assert.New(t)

	var obj1 dealResponse
	assertPost(t, ts, "/deal", dealPayload{Seed: 42, Count: 5}, &obj1, 200)
	a.Equal(int64(42), obj1.Seed)
	a.Equal(47, obj1.CardsLeft)
	a.NotEmpty(obj1.HashCode)

	cards, err := deck.ParseCards(obj1.Cards)
	a.NoError(err)
	a.Len(cards, 5)
	a.False(deck.Hand(cards).HasDuplicate())

	// same seed, same deal
	var obj2 dealResponse
	assertPost(t, ts, "/deal", dealPayload{Seed: 42, Count: 5}, &obj2, 200)
	a.Equal(obj1, obj2)

	var obj3 dealResponse
	assertPost(t, ts, "/deal", dealPayload{Count: 52}, &obj3, 200)
	a.Greater(obj3.Seed, int64(0))
	a.Equal(0, obj3.CardsLeft)
}

func Test_postDeal_errors(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var errObj errorResponse
	assertPost(t, ts, "/deal", dealPayload{Seed: 1}, &errObj, 400)
	assert.Equal(t, "count must be greater than zero", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/deal", dealPayload{Seed: -1, Count: 1}, &errObj, 400)
	assert.Equal(t, "seed cannot be < 0", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/deal", dealPayload{Seed: 1, Count: 53}, &errObj, 400)
	assert.Equal(t, "end of deck reached", errObj.Message)
}
