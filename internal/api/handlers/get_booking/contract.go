package get_booking

import (
	"context"

	"github.com/m04kA/SMC-VolleyballService/internal/service/bookings/models"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

type BookingService interface {
	GetByID(ctx context.Context, sess session.Session, id string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
