package payment_methods

import (
	"context"

	"github.com/m04kA/SMC-VolleyballService/internal/service/payments/models"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

type PaymentService interface {
	ListMethods(ctx context.Context, sess session.Session) (*models.PaymentMethodListResponse, error)
	DetachMethod(ctx context.Context, sess session.Session, paymentMethodID string) error
	PriceList() *models.PriceListResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
