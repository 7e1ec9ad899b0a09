package cancel_class_registration

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/action"
	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/events"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

// ClassRepository интерфейс репозитория групповых занятий
type ClassRepository interface {
	GetByID(ctx context.Context, id string) (*domain.GroupClass, error)
	GetParticipant(ctx context.Context, classID, userID string) (*domain.ClassParticipant, error)
}

// FunctionsClient интерфейс клиента удаленных процедур
type FunctionsClient interface {
	CancelClassRegistration(ctx context.Context, sess session.Session, classID string) error
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
