package purchase_credits

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-VolleyballService/internal/action"
	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/events"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

// UseCase use case покупки кредитов: создание платежа и его подтверждение.
// Сама платежная форма работает на клиенте, сервис видит только ее результат.
type UseCase struct {
	creditRepo   CreditRepository
	functions    FunctionsClient
	gate         ActionGate
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	creditRepo CreditRepository,
	functions FunctionsClient,
	gate ActionGate,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		creditRepo:   creditRepo,
		functions:    functions,
		gate:         gate,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Start создает платеж и возвращает client secret для платежной формы
func (uc *UseCase) Start(ctx context.Context, sess session.Session, req *StartRequest) (resp *StartResponse, err error) {
	// 1. Проверяем сессию
	if err := sess.Require(); err != nil {
		return nil, err
	}

	uc.logger.Info("PurchaseStart: user=%s, creditType=%s, trainer=%q", sess.UserID, req.CreditType, req.TrainerID)

	// 2. Определяем цену
	cents, err := validateStartRequest(req)
	if err != nil {
		uc.logger.Warn("PurchaseStart: validation failed: %v", err)
		return nil, err
	}

	// 3. Переводим действие в inFlight
	done, err := uc.gate.Begin(action.Key{UserID: sess.UserID, Action: ActionStart})
	if err != nil {
		return nil, err
	}
	defer func() {
		done(err)
		uc.metrics.IncAction(ActionStart, action.Outcome(err))
	}()

	// 4. Покупатель в платежной системе
	customerID, err := uc.functions.GetOrCreateCustomer(ctx, sess, sess.UserID)
	if err != nil {
		uc.logger.Warn("PurchaseStart: getOrCreateCustomer failed for user=%s: %v", sess.UserID, err)
		return nil, err
	}

	// 5. Создаем платеж
	creditType := domain.NormalizeCreditType(req.CreditType)
	secret, err := uc.functions.CreatePaymentIntent(ctx, sess, creditType, cents, req.TrainerID, sess.UserID)
	if err != nil {
		uc.logger.Warn("PurchaseStart: createPaymentIntent failed for user=%s: %v", sess.UserID, err)
		return nil, err
	}

	uc.logger.Info("PurchaseStart: payment created for user=%s, amount=%d", sess.UserID, cents)
	return &StartResponse{
		ClientSecret: secret,
		CustomerID:   customerID,
		CreditType:   creditType,
		AmountCents:  cents,
		Display:      domain.FormatUSD(cents),
	}, nil
}

// Complete обрабатывает результат платежной формы.
// completed: подтверждаем платеж, бэкенд создает пакет кредитов.
// cancelled: ErrPaymentCancelled, ничего не вызывается.
// failed: ErrPaymentFailed.
func (uc *UseCase) Complete(ctx context.Context, sess session.Session, req *CompleteRequest) (resp *CompleteResponse, err error) {
	// 1. Проверяем сессию
	if err := sess.Require(); err != nil {
		return nil, err
	}

	// 2. Валидация входных данных
	if err := validateCompleteRequest(req); err != nil {
		uc.logger.Warn("PurchaseComplete: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("PurchaseComplete: user=%s, outcome=%s", sess.UserID, req.Outcome)

	switch req.Outcome {
	case domain.PaymentCanceled:
		uc.metrics.IncAction(ActionComplete, outcomeCancelled)
		return nil, ErrPaymentCancelled
	case domain.PaymentFailed:
		uc.metrics.IncAction(ActionComplete, action.Outcome(ErrPaymentFailed))
		return nil, ErrPaymentFailed
	}

	// 3. ID платежа
	piID, err := paymentIntentID(req)
	if err != nil {
		uc.logger.Warn("PurchaseComplete: %v", err)
		return nil, err
	}

	// 4. Переводим действие в inFlight
	done, err := uc.gate.Begin(action.Key{UserID: sess.UserID, Action: ActionComplete})
	if err != nil {
		return nil, err
	}
	defer func() {
		done(err)
		uc.metrics.IncAction(ActionComplete, action.Outcome(err))
	}()

	// 5. Подтверждаем платеж
	if err := uc.functions.ConfirmPaymentAndCreatePackage(ctx, sess, piID, sess.UserID); err != nil {
		uc.logger.Warn("PurchaseComplete: confirm failed for payment=%s: %v", piID, err)
		return nil, err
	}

	resp = &CompleteResponse{PaymentIntentID: piID}

	// 6. Публикуем событие
	event := events.Event{
		Type:       events.TypeCreditsPurchased,
		UserID:     sess.UserID,
		EntityID:   piID,
		OccurredAt: uc.timeProvider.Now(),
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("PurchaseComplete: failed to publish event: %v", err)
	}

	// 7. Перечитываем кредиты
	credits, err := uc.creditRepo.ListByUser(ctx, sess.UserID)
	if err != nil {
		uc.logger.Warn("PurchaseComplete: failed to reload credits for user=%s: %v", sess.UserID, err)
	} else {
		resp.Credits = credits
	}

	uc.logger.Info("PurchaseComplete: payment=%s confirmed for user=%s", piID, sess.UserID)
	return resp, nil
}

// IsCancelled true, если ошибка означает закрытую пользователем форму
func IsCancelled(err error) bool {
	return errors.Is(err, ErrPaymentCancelled)
}
