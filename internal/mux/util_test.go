package mux

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := ioutil.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGetWithResp(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return nil
	}

	return assertDo(t, req, respObj, statusCode)
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()
	assertGetWithResp(t, ts, path, respObj, statusCode)
}

func assertPostWithResp(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return nil
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	return assertDo(t, req, respObj, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()
	assertPostWithResp(t, ts, path, payload, respObj, statusCode)
}

func Test_decodeRequest(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/deal", strings.NewReader(`{"count":1}`))
	req.Header.Set("Content-Type", "text/plain")

	var errObj errorResponse
	assertDo(t, req, &errObj, http.StatusUnsupportedMediaType)
	assert.Equal(t, "Unsupported Media Type", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/deal", "{", &errObj, http.StatusBadRequest)
	assert.Equal(t, http.StatusBadRequest, errObj.StatusCode)
}

func Test_writeJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	writeJSONError(w, http.StatusInternalServerError, errors.New("secret"))

	var errObj errorResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&errObj))
	assert.Equal(t, "Internal Server Error", errObj.Message)
	assert.Equal(t, http.StatusInternalServerError, errObj.StatusCode)

	w = httptest.NewRecorder()
	writeJSONError(w, http.StatusBadRequest, errors.New("bad input"))
	errObj = errorResponse{}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&errObj))
	assert.Equal(t, "bad input", errObj.Message)
}
