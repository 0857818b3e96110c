package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/minato369/bookstack/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailedValidationResponseListsEveryField(t *testing.T) {
	h := newTestHandler(t)

	err := &service.ValidationError{Fields: map[string]string{
		"rating": "must not be greater than 5",
		"review": "must be provided",
	}}

	r := httptest.NewRequest(http.MethodPost, "/v1/books/1/reviews", nil)
	w := httptest.NewRecorder()
	h.failedValidationResponse(w, r, err)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Error map[string]string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "must not be greater than 5", body.Error["rating"])
	assert.Equal(t, "must be provided", body.Error["review"])
}
