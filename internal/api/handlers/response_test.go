package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError_DerivesCode(t *testing.T) {
	cases := map[int]string{
		http.StatusBadRequest:          CodeBadRequest,
		http.StatusNotFound:            CodeNotFound,
		http.StatusConflict:            CodeSlotTaken,
		http.StatusUnprocessableEntity: CodeSlotNotAvailable,
		http.StatusBadGateway:          CodeInternal,
	}
	for status, code := range cases {
		rec := httptest.NewRecorder()
		RespondError(rec, status, "msg")

		assert.Equal(t, status, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, code, body.Code)
		assert.Equal(t, "msg", body.Message)
	}
}

func TestRespondInternalError_HidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondInternalError(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"internal_error","message":"`+msgInternalError+`"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "x", v.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x","extra":1}`))
	assert.Error(t, DecodeJSON(r, &v))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeJSON(r, &v))
}

func TestParseOptionalInt(t *testing.T) {
	n, err := ParseOptionalInt("")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = ParseOptionalInt("4")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = ParseOptionalInt("four")
	assert.Error(t, err)
}
