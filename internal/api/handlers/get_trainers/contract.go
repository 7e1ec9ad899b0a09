package get_trainers

import (
	"context"

	"github.com/m04kA/SMC-VolleyballService/internal/service/trainers/models"
)

type TrainerService interface {
	List(ctx context.Context) (*models.TrainerListResponse, error)
	Get(ctx context.Context, trainerID string) (*models.TrainerResponse, error)
	ListOpenSlots(ctx context.Context, trainerID string) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
