package register_for_class

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/action"
	"github.com/m04kA/SMC-VolleyballService/internal/eligibility"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/events"
	classRepo "github.com/m04kA/SMC-VolleyballService/internal/infra/storage/class"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

// UseCase use case для записи на групповое занятие
type UseCase struct {
	classRepo    ClassRepository
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
	classRepo ClassRepository,
	creditRepo CreditRepository,
	functions FunctionsClient,
	gate ActionGate,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		classRepo:    classRepo,
		creditRepo:   creditRepo,
		functions:    functions,
		gate:         gate,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute записывает пользователя на занятие по абонементу.
// Ограничения по времени до начала нет, проверяются только флаг записи и места.
func (uc *UseCase) Execute(ctx context.Context, sess session.Session, req *Request) (resp *Response, err error) {
	// 1. Проверяем сессию
	if err := sess.Require(); err != nil {
		return nil, err
	}

	uc.logger.Info("RegisterForClass: user=%s, class=%s, credit=%q", sess.UserID, req.ClassID, req.CreditID)

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RegisterForClass: validation failed: %v", err)
		return nil, err
	}

	// 3. Переводим действие в inFlight
	done, err := uc.gate.Begin(action.Key{UserID: sess.UserID, Action: ActionName})
	if err != nil {
		uc.logger.Warn("RegisterForClass: user=%s already has a registration in progress", sess.UserID)
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
			uc.logger.Warn("RegisterForClass: class=%s not found", req.ClassID)
			return nil, ErrClassNotFound
		}
		uc.logger.Error("RegisterForClass: failed to get class=%s: %v", req.ClassID, err)
		return nil, fmt.Errorf("%w: failed to get class: %v", ErrInternal, err)
	}

	// 5. Запись открыта и есть места
	if err := eligibility.CheckClassRegistrable(class); err != nil {
		uc.logger.Warn("RegisterForClass: class=%s not registrable: %v", class.ID, err)
		return nil, err
	}

	// 6. Пользователь еще не записан
	_, err = uc.classRepo.GetParticipant(ctx, class.ID, sess.UserID)
	switch {
	case err == nil:
		return nil, ErrAlreadyRegistered
	case !errors.Is(err, classRepo.ErrParticipantNotFound):
		uc.logger.Error("RegisterForClass: failed to check participant: %v", err)
		return nil, fmt.Errorf("%w: failed to check participant: %v", ErrInternal, err)
	}

	// 7. Выбираем абонемент с ближайшим сроком действия
	now := uc.timeProvider.Now()
	credits, err := uc.creditRepo.ListByUser(ctx, sess.UserID)
	if err != nil {
		uc.logger.Error("RegisterForClass: failed to list credits for user=%s: %v", sess.UserID, err)
		return nil, fmt.Errorf("%w: failed to list credits: %v", ErrInternal, err)
	}

	selection, err := eligibility.SelectCredit(credits, req.CreditID, eligibility.ForClass, now)
	if err != nil {
		uc.logger.Info("RegisterForClass: user=%s has no class pass, purchase required", sess.UserID)
		return nil, ErrPassRequired
	}

	// 8. Вызываем удаленную процедуру
	message, err := uc.functions.RegisterForClass(ctx, sess, class.ID, selection.CreditID)
	if err != nil {
		uc.logger.Warn("RegisterForClass: backend rejected registration for class=%s: %v", class.ID, err)
		return nil, err
	}

	resp = &Response{
		Message:      message,
		CreditID:     selection.CreditID,
		AutoSelected: !selection.Explicit,
	}

	// 9. Публикуем событие
	uc.publish(ctx, sess, class.ID, selection.CreditID, now)

	// 10. Перечитываем занятие и кредиты
	uc.reload(ctx, sess, class.ID, resp)

	uc.logger.Info("RegisterForClass: user=%s registered for class=%s with credit=%s", sess.UserID, class.ID, selection.CreditID)
	return resp, nil
}

func (uc *UseCase) reload(ctx context.Context, sess session.Session, classID string, resp *Response) {
	class, err := uc.classRepo.GetByID(ctx, classID)
	if err != nil {
		uc.logger.Warn("RegisterForClass: failed to reload class=%s: %v", classID, err)
	} else {
		resp.Class = class
	}

	credits, err := uc.creditRepo.ListByUser(ctx, sess.UserID)
	if err != nil {
		uc.logger.Warn("RegisterForClass: failed to reload credits for user=%s: %v", sess.UserID, err)
	} else {
		resp.Credits = credits
	}
}

func (uc *UseCase) publish(ctx context.Context, sess session.Session, classID, creditID string, now time.Time) {
	event := events.Event{
		Type:       events.TypeClassRegistered,
		UserID:     sess.UserID,
		EntityID:   classID,
		CreditID:   creditID,
		OccurredAt: now,
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("RegisterForClass: failed to publish event: %v", err)
	}
}
