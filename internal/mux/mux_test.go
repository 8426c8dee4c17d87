package mux

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pokerhands/pkg/poker/evaluator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_requestIDMiddleware(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	resp := assertGetWithResp(t, ts, "/health", nil, 200)
	if assert.NotNil(t, resp) {
		_, err := uuid.Parse(resp.Header.Get(requestIDHeader))
		assert.NoError(t, err)
	}

	id := uuid.New().String()
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	req.Header.Set(requestIDHeader, id)
	resp = assertDo(t, req, nil, 200)
	if assert.NotNil(t, resp) {
		assert.Equal(t, id, resp.Header.Get(requestIDHeader))
	}

	req, _ = http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	req.Header.Set(requestIDHeader, "not-a-uuid")
	resp = assertDo(t, req, nil, 200)
	if assert.NotNil(t, resp) {
		assert.NotEqual(t, "not-a-uuid", resp.Header.Get(requestIDHeader))
	}
}

func Test_variantRouter(t *testing.T) {
	m := NewMux("")
	m.variantRouter.Methods(http.MethodGet).Path("/test/{variant}").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, r.Context().Value(ctxVariantNameKey))
	})

	ts := httptest.NewServer(m)
	defer ts.Close()

	var str string
	assertGet(t, ts, "/test/badugi", &str, 200)
	assert.Equal(t, "badugi", str)

	var errObj errorResponse
	assertGet(t, ts, "/test/razz", &errObj, 404)
	assert.Equal(t, "unknown variant: razz", errObj.Message)
}

func Test_writeEvaluatorError(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	for err, status := range map[error]int{
		&evaluator.NotEnoughCardsError{Context: "set of cards", Minimum: 5}: http.StatusBadRequest,
		evaluator.ErrDuplicateCard:                                         http.StatusBadRequest,
		evaluator.ErrUnknownVariant:                                        http.StatusNotFound,
		context.Canceled:                                                   http.StatusServiceUnavailable,
		evaluator.ErrUnknown:                                               http.StatusInternalServerError,
		errors.New("boom"):                                                 http.StatusInternalServerError,
	} {
		w := httptest.NewRecorder()
		writeEvaluatorError(w, r, err)
		assert.Equal(t, status, w.Code, err.Error())
	}
}

func Test_getVariant(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var variants []string
	assertGet(t, ts, "/variant", &variants, 200)
	assert.Equal(t, []string{"badugi", "high"}, variants)
}
