package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VolleyballService/internal/action"
	"github.com/m04kA/SMC-VolleyballService/internal/eligibility"
	"github.com/m04kA/SMC-VolleyballService/internal/integrations/functions"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

func TestRespondCommonError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not authenticated", session.ErrNotAuthenticated, http.StatusUnauthorized, "must be logged in"},
		{"in flight", action.ErrInFlight, http.StatusConflict, MsgInFlight},
		{"no credits", fmt.Errorf("wrapped: %w", eligibility.ErrNoAvailableCredit), http.StatusPaymentRequired, "no valid credits"},
		{"too close to book", eligibility.ErrTooCloseToStart, http.StatusBadRequest, MsgTooCloseToStart},
		{
			"too close to cancel class", &eligibility.TooCloseToCancelError{Kind: eligibility.KindClass},
			http.StatusBadRequest, "Cannot cancel: class registrations cannot be cancelled within 24 hours of the start time. Please contact us for help.",
		},
		{"server error verbatim", &functions.ServerError{Message: "Slot already booked"}, http.StatusUnprocessableEntity, "Slot already booked"},
		{"server error with status", &functions.ServerError{Status: "NOT_FOUND", Message: "Booking not found"}, http.StatusNotFound, "Booking not found"},
		{"invalid response", fmt.Errorf("%w: bookLesson", functions.ErrInvalidResponse), http.StatusBadGateway, "unexpected server response"},
		{"transport", functions.ErrInternal, http.StatusBadGateway, MsgServerUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			handled := RespondCommonError(rec, tt.err)

			require.True(t, handled)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
		})
	}
}

func TestRespondCommonError_Unknown(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.False(t, RespondCommonError(rec, errors.New("boom")))
	assert.Zero(t, rec.Body.Len())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ok"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "ok", v.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(r, &v), ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"unknown":1}`))
	assert.Error(t, DecodeJSON(r, &v))
}
