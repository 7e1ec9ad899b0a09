package functions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VolleyballService/internal/session"
	"github.com/m04kA/SMC-VolleyballService/pkg/logger"
)

var sess = session.Session{UserID: "user-1", IDToken: "token-1"}

type recordedCall struct {
	Path  string
	Auth  string
	Data  map[string]interface{}
}

func newTestClient(t *testing.T, status int, body string) (*Client, *recordedCall) {
	t.Helper()
	rec := &recordedCall{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Path = r.URL.Path
		rec.Auth = r.Header.Get("Authorization")

		var req struct {
			Data map[string]interface{} `json:"data"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		rec.Data = req.Data

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return NewClient(srv.URL+"/", 5*time.Second, nil, logger.Nop()), rec
}

func TestBookLesson_ReturnsReconciledBooking(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"result":{"booking":{
		"id":"b-1","clientId":"user-1","trainerId":"t-1","slotId":"s-1","packageId":"p-1",
		"startTime":{"_seconds":1751389200},"bookedAt":{"_seconds":1750000000}}}}`)

	res, err := client.BookLesson(context.Background(), sess, "t-1", "s-1", "p-1")
	require.NoError(t, err)
	require.NotNil(t, res.Booking)

	assert.Equal(t, "/bookLesson", rec.Path)
	assert.Equal(t, "Bearer token-1", rec.Auth)
	assert.Equal(t, "t-1", rec.Data["trainerId"])
	assert.Equal(t, "s-1", rec.Data["slotId"])
	assert.Equal(t, "p-1", rec.Data["creditId"])

	assert.Equal(t, "b-1", res.Booking.ID)
	assert.Equal(t, "t-1", res.Booking.TrainerID)
	assert.Equal(t, "p-1", res.Booking.CreditID)
	assert.Equal(t, "confirmed", string(res.Booking.Status))
	assert.Equal(t, int64(1750000000), res.Booking.UpdatedAt.Unix())
}

func TestBookLesson_MessageOnly(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{"result":{"success":true,"message":"Lesson booked!"}}`)

	res, err := client.BookLesson(context.Background(), sess, "t", "s", "p")
	require.NoError(t, err)
	assert.Nil(t, res.Booking)
	assert.Equal(t, "Lesson booked!", res.Message)
}

func TestBookLesson_ApplicationErrorVerbatim(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{"result":{"error":"This slot is no longer available"}}`)

	_, err := client.BookLesson(context.Background(), sess, "t", "s", "p")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServer)

	var serverErr *ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, "This slot is no longer available", serverErr.Message)
}

func TestBookLesson_EmptyResultIsInvalid(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{"result":{}}`)

	_, err := client.BookLesson(context.Background(), sess, "t", "s", "p")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestCall_GatewayErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"failed precondition", http.StatusBadRequest, `{"error":{"message":"No remaining credits","status":"FAILED_PRECONDITION"}}`, ErrServer},
		{"unauthenticated", http.StatusUnauthorized, `{"error":{"message":"auth","status":"UNAUTHENTICATED"}}`, session.ErrNotAuthenticated},
		{"bare 401", http.StatusUnauthorized, ``, session.ErrNotAuthenticated},
		{"bad gateway", http.StatusBadGateway, `<html>`, ErrInvalidResponse},
		{"success false", http.StatusOK, `{"result":{"success":false,"message":"Class is full"}}`, ErrServer},
		{"nested error", http.StatusOK, `{"result":{"error":{"message":"nope"}}}`, ErrServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, tt.status, tt.body)
			err := client.CancelLesson(context.Background(), sess, "b-1")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCall_TransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second, nil, logger.Nop())
	err := client.CancelClassRegistration(context.Background(), sess, "c-1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestAckAcceptsScalarResult(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"result":true}`)
	require.NoError(t, client.ConfirmPaymentAndCreatePackage(context.Background(), sess, "pi_1", "user-1"))
	assert.Equal(t, "pi_1", rec.Data["paymentIntentId"])
	assert.Equal(t, "user-1", rec.Data["userId"])
}

func TestCreatePaymentIntent(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"result":{"clientSecret":"pi_9_secret_x"}}`)

	secret, err := client.CreatePaymentIntent(context.Background(), sess, "two_athlete", 14000, "t-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "pi_9_secret_x", secret)
	assert.Equal(t, float64(14000), rec.Data["amount"])
	assert.Equal(t, "two_athlete", rec.Data["creditType"])

	client, _ = newTestClient(t, http.StatusOK, `{"result":{}}`)
	_, err = client.CreatePaymentIntent(context.Background(), sess, "single", 8000, "", "user-1")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetPaymentMethods(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{"result":{"paymentMethods":[
		{"id":"pm_1","brand":"visa","last4":"4242","expMonth":4,"expYear":2031},
		{"brand":"broken"}]}}`)

	methods, err := client.GetPaymentMethods(context.Background(), sess, "user-1")
	require.NoError(t, err)
	require.Len(t, methods, 1)
	assert.Equal(t, "4242", methods[0].Last4)

	client, _ = newTestClient(t, http.StatusOK, `{"result":{"customerId":"cus_1"}}`)
	_, err = client.GetPaymentMethods(context.Background(), sess, "user-1")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetOrCreateCustomer(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{"result":{"customerId":"cus_1"}}`)
	id, err := client.GetOrCreateCustomer(context.Background(), sess, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "cus_1", id)
}
