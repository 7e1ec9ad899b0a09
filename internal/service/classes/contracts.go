package classes

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
)

// ClassRepository интерфейс репозитория групповых занятий
type ClassRepository interface {
	GetByID(ctx context.Context, id string) (*domain.GroupClass, error)
	ListUpcoming(ctx context.Context, from time.Time) ([]domain.GroupClass, error)
	Save(ctx context.Context, c *domain.GroupClass) error
	Delete(ctx context.Context, id string) error
	ListParticipants(ctx context.Context, classID string) ([]domain.ClassParticipant, error)
	GetParticipant(ctx context.Context, classID, userID string) (*domain.ClassParticipant, error)
}

// ProfileRepository интерфейс репозитория профилей (проверка прав администратора)
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
}

// IDGenerator генератор ID новых документов
type IDGenerator interface {
	NewID() string
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
