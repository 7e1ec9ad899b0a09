package payments

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/service/payments/models"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

// Service сервис сохраненных карт и прайс-листа.
// Ошибки клиента удаленных процедур возвращаются без изменений,
// их текст разбирает слой HTTP.
type Service struct {
	functions FunctionsClient
	logger    Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(functions FunctionsClient, logger Logger) *Service {
	return &Service{
		functions: functions,
		logger:    logger,
	}
}

// ListMethods возвращает сохраненные карты текущего пользователя
func (s *Service) ListMethods(ctx context.Context, sess session.Session) (*models.PaymentMethodListResponse, error) {
	if err := sess.Require(); err != nil {
		return nil, err
	}

	methods, err := s.functions.GetPaymentMethods(ctx, sess, sess.UserID)
	if err != nil {
		s.logger.Warn("ListMethods: failed for user=%s: %v", sess.UserID, err)
		return nil, err
	}

	return models.FromDomainPaymentMethods(methods), nil
}

// DetachMethod удаляет сохраненную карту текущего пользователя
func (s *Service) DetachMethod(ctx context.Context, sess session.Session, paymentMethodID string) error {
	if err := sess.Require(); err != nil {
		return err
	}
	if strings.TrimSpace(paymentMethodID) == "" {
		return fmt.Errorf("%w: paymentMethodId is required", ErrInvalidInput)
	}

	if err := s.functions.DetachPaymentMethod(ctx, sess, sess.UserID, paymentMethodID); err != nil {
		s.logger.Warn("DetachMethod: failed for user=%s method=%s: %v", sess.UserID, paymentMethodID, err)
		return err
	}

	s.logger.Info("DetachMethod: user=%s detached method=%s", sess.UserID, paymentMethodID)
	return nil
}

// PriceList возвращает цены всех типов кредитов
func (s *Service) PriceList() *models.PriceListResponse {
	entries := domain.PriceList()
	resp := &models.PriceListResponse{Prices: make([]models.PriceResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Prices = append(resp.Prices, models.PriceResponse{
			CreditType:  string(e.CreditType),
			AmountCents: e.Cents,
			Display:     e.Display,
		})
	}
	return resp
}
