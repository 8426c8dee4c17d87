package mux

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_postEvaluate(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	a := assert.New(t)

	var obj evaluateResponse
	assertPost(t, ts, "/evaluate/high", evaluatePayload{Hand: "8h9s", Board: "2d9d2c9h3h"}, &obj, 200)
	a.Equal("high", obj.Variant)
	if a.Len(obj.Ranks, 1) {
		a.Equal(uint32(7225), obj.Ranks[0].Strength)
		a.Equal(uint16(7), obj.Ranks[0].Category)
		a.Equal(uint16(85), obj.Ranks[0].SubRank)
		a.Equal("9s Full of 2s", obj.Ranks[0].Description)
	}

	obj = evaluateResponse{}
	assertPost(t, ts, "/evaluate/high", evaluatePayload{Hand: "14s,10s,11s,12s,13s"}, &obj, 200)
	a.Equal(uint32(7462), obj.Ranks[0].Strength)

	obj = evaluateResponse{}
	assertPost(t, ts, "/evaluate/badugi", evaluatePayload{Hand: "As2d3c4h"}, &obj, 200)
	a.Equal("badugi", obj.Variant)
	a.Equal(uint32(873), obj.Ranks[0].Strength)
	a.Equal(uint16(4), obj.Ranks[0].Category)
	a.Empty(obj.Ranks[0].Description)
}

func Test_postEvaluate_errors(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	a := assert.New(t)

	var errObj errorResponse
	assertPost(t, ts, "/evaluate/high", evaluatePayload{Hand: "AsKs", Board: "2d3d"}, &errObj, 400)
	a.Equal("set of cards did not have enough cards: need at least 5", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/evaluate/high", evaluatePayload{Hand: "AsKs", Board: "2d3d4d5d6d"}, &errObj, 400)
	a.Equal("set of cards had too many cards: at most 7 allowed", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/evaluate/high", evaluatePayload{Hand: "AsKs", Board: "2d3dAs"}, &errObj, 400)
	a.Equal("duplicate card", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/evaluate/high", evaluatePayload{Hand: "AsXs", Board: "2d3d4d"}, &errObj, 400)
	a.True(strings.HasPrefix(errObj.Message, "invalid card"), errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/evaluate/badugi", evaluatePayload{Hand: "As2d3c"}, &errObj, 400)
	a.Equal("player hand did not have enough cards: need at least 4", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/evaluate/razz", evaluatePayload{Hand: "As2d3c4h5s"}, &errObj, 404)
	a.Equal("unknown variant: razz", errObj.Message)
}

func Test_postCompare(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	a := assert.New(t)

	var obj compareResponse
	assertPost(t, ts, "/compare/high", comparePayload{
		Hands: []string{"4c5s", "8h9s", "9c3s", "4s5c"},
		Board: "2d9d2c9h3h",
	}, &obj, 200)

	a.Equal("high", obj.Variant)
	if a.Len(obj.Results, 4) {
		indexes := make([]int, 4)
		places := make([]int, 4)
		for i, r := range obj.Results {
			indexes[i] = r.Index
			places[i] = r.Place
		}

		a.Equal([]int{2, 1, 0, 3}, indexes)
		a.Equal([]int{1, 2, 3, 3}, places)
		a.Equal("9s Full of 3s", obj.Results[0].Ranks[0].Description)
	}
}

func Test_postCompare_errors(t *testing.T) {
	m := NewMux("")
	m.config.maxHands = 2

	ts := httptest.NewServer(m)
	defer ts.Close()

	a := assert.New(t)

	var errObj errorResponse
	assertPost(t, ts, "/compare/high", comparePayload{Board: "2d9d2c"}, &errObj, 400)
	a.Equal("at least one hand is required", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/compare/high", comparePayload{Hands: []string{"AsKs", "QsJs", "Ts9s"}, Board: "2d9d2c"}, &errObj, 400)
	a.Equal("no more than 2 hands can be compared", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/compare/high", comparePayload{Hands: []string{"AsKs", "AsJs"}, Board: "2d9d2c"}, &errObj, 400)
	a.Equal("duplicate card", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/compare/high", comparePayload{Hands: []string{"AsKs", "Qs"}, Board: "2d9d2c"}, &errObj, 400)
	a.Equal("hand 1: set of cards did not have enough cards: need at least 5", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/compare/badugi", comparePayload{Hands: []string{"AsKs", "Qs??"}}, &errObj, 400)
	a.True(strings.HasPrefix(errObj.Message, "invalid card"), errObj.Message)
}
