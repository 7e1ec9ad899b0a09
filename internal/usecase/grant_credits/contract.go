package grant_credits

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/action"
	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/events"
)

// CreditRepository интерфейс репозитория кредитов
type CreditRepository interface {
	Create(ctx context.Context, c *domain.LessonCredit) error
}

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
}

// IDGenerator генератор ID новых документов
type IDGenerator interface {
	NewID() string
}

// ActionGate защита от повторного запуска действия
type ActionGate interface {
	Begin(key action.Key) (func(err error), error)
}

// EventPublisher публикация результатов действий
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Metrics учет результатов действий
type Metrics interface {
	IncAction(action, outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
