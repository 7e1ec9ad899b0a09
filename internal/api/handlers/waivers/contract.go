package waivers

import (
	"context"

	"github.com/m04kA/SMC-VolleyballService/internal/service/waivers/models"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

type WaiverService interface {
	Sign(ctx context.Context, sess session.Session, req *models.SignWaiverRequest) (*models.DocumentResponse, error)
	Status(ctx context.Context, sess session.Session) (*models.WaiverStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
