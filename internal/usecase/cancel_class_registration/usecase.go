package cancel_class_registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VolleyballService/internal/action"
	"github.com/m04kA/SMC-VolleyballService/internal/eligibility"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/events"
	classRepo "github.com/m04kA/SMC-VolleyballService/internal/infra/storage/class"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

// UseCase use case для отмены записи на групповое занятие
type UseCase struct {
	classRepo    ClassRepository
	functions    FunctionsClient
	gate         ActionGate
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	classRepo ClassRepository,
	functions FunctionsClient,
	gate ActionGate,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		classRepo:    classRepo,
		functions:    functions,
		gate:         gate,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute отменяет запись, если до начала занятия больше 24 часов
func (uc *UseCase) Execute(ctx context.Context, sess session.Session, req *Request) (resp *Response, err error) {
	// 1. Проверяем сессию
	if err := sess.Require(); err != nil {
		return nil, err
	}

	uc.logger.Info("CancelClassRegistration: user=%s, class=%s", sess.UserID, req.ClassID)

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelClassRegistration: validation failed: %v", err)
		return nil, err
	}

	// 3. Переводим действие в inFlight
	done, err := uc.gate.Begin(action.Key{UserID: sess.UserID, Action: ActionName})
	if err != nil {
		uc.logger.Warn("CancelClassRegistration: user=%s already has a cancellation in progress", sess.UserID)
		return nil, err
	}
	defer func() {
		done(err)
		uc.metrics.IncAction(ActionName, action.Outcome(err))
	}()

	// 4. Загружаем занятие
	class, err := uc.classRepo.GetByID(ctx, req.ClassID)
	if err != nil {
		if errors.Is(err, classRepo.ErrClassNotFound) {
			uc.logger.Warn("CancelClassRegistration: class=%s not found", req.ClassID)
			return nil, ErrClassNotFound
		}
		uc.logger.Error("CancelClassRegistration: failed to get class=%s: %v", req.ClassID, err)
		return nil, fmt.Errorf("%w: failed to get class: %v", ErrInternal, err)
	}

	// 5. Пользователь должен быть записан
	participant, err := uc.classRepo.GetParticipant(ctx, class.ID, sess.UserID)
	if err != nil {
		if errors.Is(err, classRepo.ErrParticipantNotFound) {
			uc.logger.Warn("CancelClassRegistration: user=%s is not registered for class=%s", sess.UserID, class.ID)
			return nil, ErrNotRegistered
		}
		uc.logger.Error("CancelClassRegistration: failed to get participant: %v", err)
		return nil, fmt.Errorf("%w: failed to get participant: %v", ErrInternal, err)
	}

	// 6. Проверяем срок: строго больше 24 часов до начала
	now := uc.timeProvider.Now()
	if err := eligibility.CheckCancellable(eligibility.KindClass, class.StartTime, now); err != nil {
		uc.logger.Warn("CancelClassRegistration: class=%s starts at %s, too close to cancel", class.ID, class.StartTime)
		return nil, err
	}

	// 7. Вызываем удаленную процедуру
	if err := uc.functions.CancelClassRegistration(ctx, sess, class.ID); err != nil {
		uc.logger.Warn("CancelClassRegistration: backend rejected cancellation for class=%s: %v", class.ID, err)
		return nil, err
	}

	resp = &Response{ClassID: class.ID}

	// 8. Публикуем событие
	event := events.Event{
		Type:       events.TypeClassRegistrationCancel,
		UserID:     sess.UserID,
		EntityID:   class.ID,
		CreditID:   participant.CreditID,
		OccurredAt: now,
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("CancelClassRegistration: failed to publish event: %v", err)
	}

	// 9. Перечитываем занятие
	reloaded, err := uc.classRepo.GetByID(ctx, class.ID)
	if err != nil {
		uc.logger.Warn("CancelClassRegistration: failed to reload class=%s: %v", class.ID, err)
	} else {
		resp.Class = reloaded
	}

	uc.logger.Info("CancelClassRegistration: user=%s left class=%s", sess.UserID, class.ID)
	return resp, nil
}
