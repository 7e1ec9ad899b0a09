package purchase_credits

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/integrations/functions"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
	purchaseCredits "github.com/m04kA/SMC-VolleyballService/internal/usecase/purchase_credits"
	"github.com/m04kA/SMC-VolleyballService/pkg/logger"
)

type stubUseCase struct {
	startErr    error
	completeErr error
	gotComplete *purchaseCredits.CompleteRequest
}

func (s *stubUseCase) Start(_ context.Context, _ session.Session, req *purchaseCredits.StartRequest) (*purchaseCredits.StartResponse, error) {
	if s.startErr != nil {
		return nil, s.startErr
	}
	return &purchaseCredits.StartResponse{
		ClientSecret: "pi_1_secret_x",
		CustomerID:   "cus_1",
		CreditType:   req.CreditType,
		AmountCents:  8000,
		Display:      "$80.00",
	}, nil
}

func (s *stubUseCase) Complete(_ context.Context, _ session.Session, req *purchaseCredits.CompleteRequest) (*purchaseCredits.CompleteResponse, error) {
	s.gotComplete = req
	if s.completeErr != nil {
		return nil, s.completeErr
	}
	return &purchaseCredits.CompleteResponse{PaymentIntentID: "pi_1"}, nil
}

func post(handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, "u-1")
	rec := httptest.NewRecorder()
	middleware.Auth(handler).ServeHTTP(rec, req)
	return rec
}

func TestHandleStart(t *testing.T) {
	h := NewHandler(&stubUseCase{}, logger.Nop())

	rec := post(h.HandleStart, "/api/v1/payments/intents", `{"creditType":"single"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body StartResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "pi_1_secret_x", body.ClientSecret)
	assert.Equal(t, "single", body.CreditType)
	assert.Equal(t, "$80.00", body.Display)
}

func TestHandleStart_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "malformed body", body: `{"creditType":`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"type":"single"}`, wantStatus: http.StatusBadRequest},
		{name: "unknown credit type", body: `{"creditType":"gold"}`, err: purchaseCredits.ErrUnknownCreditType, wantStatus: http.StatusBadRequest},
		{
			name:       "backend rejects",
			body:       `{"creditType":"single"}`,
			err:        &functions.ServerError{Status: "INVALID_ARGUMENT", Message: "Amount must be positive"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{startErr: tt.err}, logger.Nop())

			rec := post(h.HandleStart, "/api/v1/payments/intents", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleComplete(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, logger.Nop())

	rec := post(h.HandleComplete, "/api/v1/payments/complete", `{"outcome":"completed","clientSecret":"pi_1_secret_x"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaymentCompleted, uc.gotComplete.Outcome)

	var body CompleteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, statusCompleted, body.Status)
	assert.Equal(t, "pi_1", body.PaymentIntentID)
}

func TestHandleComplete_CancelledIsNoOp(t *testing.T) {
	h := NewHandler(&stubUseCase{completeErr: purchaseCredits.ErrPaymentCancelled}, logger.Nop())

	rec := post(h.HandleComplete, "/api/v1/payments/complete", `{"outcome":"cancelled"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"cancelled"}`, rec.Body.String())
}

func TestHandleComplete_Failed(t *testing.T) {
	h := NewHandler(&stubUseCase{completeErr: purchaseCredits.ErrPaymentFailed}, logger.Nop())

	rec := post(h.HandleComplete, "/api/v1/payments/complete", `{"outcome":"failed"}`)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), msgPaymentFailed)
}
