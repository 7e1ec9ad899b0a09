package create_slot

import (
	"context"

	"github.com/m04kA/SMC-VolleyballService/internal/service/trainers/models"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

type TrainerService interface {
	CreateSlot(ctx context.Context, sess session.Session, trainerID string, req *models.CreateSlotRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
