package mux

import (
	"errors"
	"net/http"

	"pokerhands/pkg/deck"
)

type dealPayload struct {
	// Seed 0 picks a random seed
	Seed  int64 `json:"seed"`
	Count int   `json:"count"`
}

type dealResponse struct {
	Seed      int64  `json:"seed"`
	HashCode  string `json:"hashCode"`
	Cards     string `json:"cards"`
	CardsLeft int    `json:"cardsLeft"`
}

func (m *Mux) postDeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var dp dealPayload
		if !decodeRequest(w, r, &dp) {
			return
		}

		if dp.Count <= 0 {
			writeJSONError(w, http.StatusBadRequest, errors.New("count must be greater than zero"))
			return
		}

		d := deck.New()
		if err := d.Shuffle(dp.Seed); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		// the hash is of the full shuffled order, before anything is dealt
		hashCode := d.HashCode()

		cards, err := d.DealCards(dp.Count, false)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		requestLogger(r).WithField("seed", d.GetSeed()).Debug("dealt cards")
		writeJSON(w, http.StatusOK, dealResponse{
			Seed:      d.GetSeed(),
			HashCode:  hashCode,
			Cards:     deck.CardsToNotation(cards),
			CardsLeft: d.CardsLeft(),
		})
	}
}
