package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
	"github.com/m04kA/SMC-VolleyballService/internal/service/bookings"
	"github.com/m04kA/SMC-VolleyballService/internal/service/bookings/models"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
	"github.com/m04kA/SMC-VolleyballService/pkg/logger"
)

type stubService struct {
	err error
}

func (s *stubService) GetByID(_ context.Context, _ session.Session, id string) (*models.BookingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingResponse{ID: id, Status: "confirmed"}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		err        error
		wantStatus int
	}{
		{name: "found", userID: "u-1", wantStatus: http.StatusOK},
		{name: "not found", userID: "u-1", err: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "foreign booking", userID: "u-1", err: bookings.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "no session", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubService{err: tt.err}, logger.Nop())
			r := mux.NewRouter()
			r.Handle("/api/v1/bookings/{bookingId}", middleware.Auth(http.HandlerFunc(h.Handle)))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/b-1", nil)
			if tt.userID != "" {
				req.Header.Set(middleware.HeaderUserID, tt.userID)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
