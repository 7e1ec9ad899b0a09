package get_classes

import (
	"context"

	"github.com/m04kA/SMC-VolleyballService/internal/service/classes/models"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

type ClassService interface {
	ListUpcoming(ctx context.Context, sess session.Session) (*models.ClassListResponse, error)
	Get(ctx context.Context, sess session.Session, id string) (*models.ClassResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
