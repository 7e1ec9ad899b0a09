package get_user_bookings

import (
	"context"

	"github.com/m04kA/SMC-VolleyballService/internal/service/bookings/models"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

type BookingService interface {
	ListMine(ctx context.Context, sess session.Session) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
