package get_credits

import (
	"context"

	"github.com/m04kA/SMC-VolleyballService/internal/service/credits/models"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

type CreditService interface {
	ListMine(ctx context.Context, sess session.Session) (*models.CreditListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
