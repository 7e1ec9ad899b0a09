package payments

import (
	"context"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

// FunctionsClient интерфейс клиента удаленных процедур
type FunctionsClient interface {
	GetPaymentMethods(ctx context.Context, sess session.Session, userID string) ([]domain.PaymentMethod, error)
	DetachPaymentMethod(ctx context.Context, sess session.Session, userID, paymentMethodID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
