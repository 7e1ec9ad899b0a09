package trainers

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
)

// ScheduleRepository интерфейс репозитория тренеров и расписаний
type ScheduleRepository interface {
	ListTrainers(ctx context.Context) ([]domain.Trainer, error)
	GetTrainer(ctx context.Context, trainerID string) (*domain.Trainer, error)
	ListOpenSlots(ctx context.Context, trainerID string, from time.Time) ([]domain.AvailabilitySlot, error)
	SaveSlot(ctx context.Context, s *domain.AvailabilitySlot) error
}

// ProfileRepository интерфейс репозитория профилей (проверка прав администратора)
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
