package profile

import (
	"context"

	"github.com/m04kA/SMC-VolleyballService/internal/service/profile/models"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

type ProfileService interface {
	Get(ctx context.Context, sess session.Session) (*models.ProfileResponse, error)
	Update(ctx context.Context, sess session.Session, req *models.UpdateProfileRequest) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
