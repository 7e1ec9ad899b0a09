package book_lesson

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/action"
	"github.com/m04kA/SMC-VolleyballService/internal/eligibility"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/events"
	scheduleRepo "github.com/m04kA/SMC-VolleyballService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

// UseCase use case для бронирования индивидуального занятия
type UseCase struct {
	scheduleRepo ScheduleRepository
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
	scheduleRepo ScheduleRepository,
	creditRepo CreditRepository,
	functions FunctionsClient,
	gate ActionGate,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		creditRepo:   creditRepo,
		functions:    functions,
		gate:         gate,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case бронирования.
// Локальные проверки (срок до начала, статус слота, наличие кредита) выполняются
// до вызова бэкенда; при отказе удаленная процедура не вызывается.
func (uc *UseCase) Execute(ctx context.Context, sess session.Session, req *Request) (resp *Response, err error) {
	// 1. Проверяем сессию
	if err := sess.Require(); err != nil {
		return nil, err
	}

	uc.logger.Info("BookLesson: user=%s, trainer=%s, slot=%s, credit=%q",
		sess.UserID, req.TrainerID, req.SlotID, req.CreditID)

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookLesson: validation failed: %v", err)
		return nil, err
	}

	// 3. Переводим действие в inFlight
	done, err := uc.gate.Begin(action.Key{UserID: sess.UserID, Action: ActionName})
	if err != nil {
		uc.logger.Warn("BookLesson: user=%s already has a booking in progress", sess.UserID)
		return nil, err
	}
	defer func() {
		done(err)
		uc.metrics.IncAction(ActionName, action.Outcome(err))
	}()

	// 4. Получаем текущее время (не кешируется между проверками)
	now := uc.timeProvider.Now()

	// 5. Получаем слот
	slot, err := uc.scheduleRepo.GetSlot(ctx, req.TrainerID, req.SlotID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrSlotNotFound) {
			uc.logger.Warn("BookLesson: slot=%s of trainer=%s not found", req.SlotID, req.TrainerID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("BookLesson: failed to get slot=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	// 6. Проверяем срок до начала: строго больше 5 часов
	if err := eligibility.CheckLessonBookable(slot.StartTime, now); err != nil {
		uc.logger.Warn("BookLesson: slot=%s starts at %s, too close to book", slot.ID, slot.StartTime)
		return nil, err
	}

	// 7. Проверяем, что слот еще свободен
	if !slot.IsOpen() {
		uc.logger.Warn("BookLesson: slot=%s has status=%s", slot.ID, slot.Status)
		return nil, ErrSlotUnavailable
	}

	// 8. Выбираем кредит: явный передается как есть, иначе с ближайшим сроком
	credits, err := uc.creditRepo.ListByUser(ctx, sess.UserID)
	if err != nil {
		uc.logger.Error("BookLesson: failed to list credits for user=%s: %v", sess.UserID, err)
		return nil, fmt.Errorf("%w: failed to list credits: %v", ErrInternal, err)
	}

	selection, err := eligibility.SelectCredit(credits, req.CreditID, eligibility.ForLesson, now)
	if err != nil {
		uc.logger.Warn("BookLesson: user=%s has no usable lesson credits", sess.UserID)
		return nil, err
	}

	// 9. Вызываем удаленную процедуру (без повторов)
	result, err := uc.functions.BookLesson(ctx, sess, req.TrainerID, req.SlotID, selection.CreditID)
	if err != nil {
		uc.logger.Warn("BookLesson: backend rejected booking for user=%s: %v", sess.UserID, err)
		return nil, err
	}

	resp = &Response{
		Booking:      result.Booking,
		Message:      result.Message,
		CreditID:     selection.CreditID,
		AutoSelected: !selection.Explicit,
	}
	if resp.Booking != nil && resp.Booking.ClientID == "" {
		resp.Booking.ClientID = sess.UserID
	}

	// 10. Публикуем событие
	uc.publish(ctx, sess, resp, now)

	// 11. Перечитываем кредиты и слоты (локальные списки не изменяются)
	uc.reload(ctx, sess, req.TrainerID, resp)

	uc.logger.Info("BookLesson: user=%s booked slot=%s with credit=%s", sess.UserID, req.SlotID, selection.CreditID)
	return resp, nil
}

func (uc *UseCase) reload(ctx context.Context, sess session.Session, trainerID string, resp *Response) {
	credits, err := uc.creditRepo.ListByUser(ctx, sess.UserID)
	if err != nil {
		uc.logger.Warn("BookLesson: failed to reload credits for user=%s: %v", sess.UserID, err)
	} else {
		resp.Credits = credits
	}

	slots, err := uc.scheduleRepo.ListOpenSlots(ctx, trainerID, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("BookLesson: failed to reload slots for trainer=%s: %v", trainerID, err)
	} else {
		resp.OpenSlots = slots
	}
}

func (uc *UseCase) publish(ctx context.Context, sess session.Session, resp *Response, now time.Time) {
	event := events.Event{
		Type:       events.TypeLessonBooked,
		UserID:     sess.UserID,
		CreditID:   resp.CreditID,
		OccurredAt: now,
	}
	if resp.Booking != nil {
		event.EntityID = resp.Booking.ID
	}

	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("BookLesson: failed to publish event: %v", err)
	}
}
