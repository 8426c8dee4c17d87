package mux

import (
	"errors"
	"fmt"
	"net/http"

	"pokerhands/pkg/deck"
	"pokerhands/pkg/poker/evaluator"
	"pokerhands/pkg/poker/rank"
)

type evaluatePayload struct {
	Hand  string `json:"hand"`
	Board string `json:"board"`
}

type evaluateResponse struct {
	Variant string      `json:"variant"`
	Ranks   []rank.Rank `json:"ranks"`
}

func (m *Mux) postEvaluate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ep evaluatePayload
		if !decodeRequest(w, r, &ep) {
			return
		}

		hand, ok := parseCards(w, ep.Hand)
		if !ok {
			return
		}

		board, ok := parseCards(w, ep.Board)
		if !ok {
			return
		}

		fn := r.Context().Value(ctxVariantKey).(evaluator.Func)
		ranks, err := fn(hand, board)
		if err != nil {
			writeEvaluatorError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, evaluateResponse{
			Variant: r.Context().Value(ctxVariantNameKey).(string),
			Ranks:   ranks,
		})
	}
}

type comparePayload struct {
	Hands []string `json:"hands"`
	Board string   `json:"board"`
}

type compareResponse struct {
	Variant string             `json:"variant"`
	Results []evaluator.Result `json:"results"`
}

func (m *Mux) postCompare() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cp comparePayload
		if !decodeRequest(w, r, &cp) {
			return
		}

		if len(cp.Hands) == 0 {
			writeJSONError(w, http.StatusBadRequest, errors.New("at least one hand is required"))
			return
		}

		if len(cp.Hands) > m.config.maxHands {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("no more than %d hands can be compared", m.config.maxHands))
			return
		}

		hands := make([][]*deck.Card, len(cp.Hands))
		for i, h := range cp.Hands {
			hand, ok := parseCards(w, h)
			if !ok {
				return
			}

			hands[i] = hand
		}

		board, ok := parseCards(w, cp.Board)
		if !ok {
			return
		}

		fn := r.Context().Value(ctxVariantKey).(evaluator.Func)
		results, err := evaluator.Compare(r.Context(), fn, hands, board)
		if err != nil {
			writeEvaluatorError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, compareResponse{
			Variant: r.Context().Value(ctxVariantNameKey).(string),
			Results: results,
		})
	}
}

func (m *Mux) getVariant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, evaluator.Variants())
	}
}
