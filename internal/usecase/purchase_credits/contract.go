package purchase_credits

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/action"
	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/events"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

// CreditRepository интерфейс репозитория кредитов
type CreditRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.LessonCredit, error)
}

// FunctionsClient интерфейс клиента удаленных процедур (платежная часть)
type FunctionsClient interface {
	GetOrCreateCustomer(ctx context.Context, sess session.Session, userID string) (string, error)
	CreatePaymentIntent(ctx context.Context, sess session.Session, creditType domain.CreditType, amountCents int64, trainerID, userID string) (string, error)
	ConfirmPaymentAndCreatePackage(ctx context.Context, sess session.Session, paymentIntentID, userID string) error
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
