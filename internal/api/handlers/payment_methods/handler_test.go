package payment_methods

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/integrations/functions"
	"github.com/m04kA/SMC-VolleyballService/internal/service/payments"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
	"github.com/m04kA/SMC-VolleyballService/pkg/logger"
)

type fakeFunctions struct {
	detached  []string
	detachErr error
}

func (f *fakeFunctions) GetPaymentMethods(_ context.Context, _ session.Session, _ string) ([]domain.PaymentMethod, error) {
	return []domain.PaymentMethod{{ID: "pm_1", Brand: "visa", Last4: "4242", ExpMonth: 12, ExpYear: 2030}}, nil
}

func (f *fakeFunctions) DetachPaymentMethod(_ context.Context, _ session.Session, _, paymentMethodID string) error {
	if f.detachErr != nil {
		return f.detachErr
	}
	f.detached = append(f.detached, paymentMethodID)
	return nil
}

func serve(fn *fakeFunctions, method, path string) *httptest.ResponseRecorder {
	h := NewHandler(payments.NewService(fn, logger.Nop()), logger.Nop())

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/prices", h.HandlePrices)
	protected := r.PathPrefix("/api/v1/payments").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/methods", h.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/methods/{paymentMethodId}", h.HandleDetach).Methods(http.MethodDelete)

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(middleware.HeaderUserID, "u-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleList(t *testing.T) {
	rec := serve(&fakeFunctions{}, http.MethodGet, "/api/v1/payments/methods")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"last4":"4242"`)
}

func TestHandleDetach(t *testing.T) {
	fn := &fakeFunctions{}

	rec := serve(fn, http.MethodDelete, "/api/v1/payments/methods/pm_1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"pm_1"}, fn.detached)
}

func TestHandleDetach_ServerError(t *testing.T) {
	fn := &fakeFunctions{detachErr: &functions.ServerError{Status: "NOT_FOUND", Message: "Payment method not found"}}

	rec := serve(fn, http.MethodDelete, "/api/v1/payments/methods/pm_x")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Payment method not found")
}

func TestHandlePrices(t *testing.T) {
	rec := serve(&fakeFunctions{}, http.MethodGet, "/api/v1/prices")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"display":"$80.00"`)
	assert.Contains(t, rec.Body.String(), `"creditType":"class_pass"`)
}
