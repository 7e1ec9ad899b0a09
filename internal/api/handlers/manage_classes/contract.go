package manage_classes

import (
	"context"

	"github.com/m04kA/SMC-VolleyballService/internal/service/classes/models"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

type ClassService interface {
	Create(ctx context.Context, sess session.Session, req *models.ClassRequest) (*models.ClassResponse, error)
	Update(ctx context.Context, sess session.Session, id string, req *models.ClassRequest) (*models.ClassResponse, error)
	Delete(ctx context.Context, sess session.Session, id string) error
	ListParticipants(ctx context.Context, sess session.Session, id string) (*models.ParticipantListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
