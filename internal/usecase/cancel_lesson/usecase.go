package cancel_lesson

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/action"
	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/eligibility"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-VolleyballService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

// UseCase use case для отмены индивидуального занятия
type UseCase struct {
	bookingRepo  BookingRepository
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
	bookingRepo BookingRepository,
	creditRepo CreditRepository,
	functions FunctionsClient,
	gate ActionGate,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		creditRepo:   creditRepo,
		functions:    functions,
		gate:         gate,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute отменяет бронирование, если до начала больше 24 часов
func (uc *UseCase) Execute(ctx context.Context, sess session.Session, req *Request) (resp *Response, err error) {
	// 1. Проверяем сессию
	if err := sess.Require(); err != nil {
		return nil, err
	}

	uc.logger.Info("CancelLesson: user=%s, booking=%s", sess.UserID, req.BookingID)

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelLesson: validation failed: %v", err)
		return nil, err
	}

	// 3. Переводим действие в inFlight
	done, err := uc.gate.Begin(action.Key{UserID: sess.UserID, Action: ActionName})
	if err != nil {
		uc.logger.Warn("CancelLesson: user=%s already has a cancellation in progress", sess.UserID)
		return nil, err
	}
	defer func() {
		done(err)
		uc.metrics.IncAction(ActionName, action.Outcome(err))
	}()

	// 4. Загружаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelLesson: booking=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelLesson: failed to get booking=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 5. Бронирование должно принадлежать пользователю
	if booking.ClientID != sess.UserID {
		uc.logger.Warn("CancelLesson: user=%s tried to cancel booking=%s of client=%s",
			sess.UserID, booking.ID, booking.ClientID)
		return nil, ErrAccessDenied
	}
	if booking.IsCancelled() {
		return nil, ErrAlreadyCancelled
	}
	if booking.StartTime == nil {
		uc.logger.Warn("CancelLesson: booking=%s has no start time", booking.ID)
		return nil, ErrStartUnknown
	}

	// 6. Проверяем срок: строго больше 24 часов до начала
	now := uc.timeProvider.Now()
	if err := eligibility.CheckCancellable(eligibility.KindLesson, *booking.StartTime, now); err != nil {
		uc.logger.Warn("CancelLesson: booking=%s starts at %s, too close to cancel", booking.ID, booking.StartTime)
		return nil, err
	}

	// 7. Вызываем удаленную процедуру
	if err := uc.functions.CancelLesson(ctx, sess, booking.ID); err != nil {
		uc.logger.Warn("CancelLesson: backend rejected cancellation of booking=%s: %v", booking.ID, err)
		return nil, err
	}

	resp = &Response{BookingID: booking.ID}

	// 8. Публикуем событие
	uc.publish(ctx, sess, booking, now)

	// 9. Перечитываем бронирования и кредиты
	uc.reload(ctx, sess, resp)

	uc.logger.Info("CancelLesson: user=%s cancelled booking=%s", sess.UserID, booking.ID)
	return resp, nil
}

func (uc *UseCase) reload(ctx context.Context, sess session.Session, resp *Response) {
	bookings, err := uc.bookingRepo.ListByClient(ctx, sess.UserID)
	if err != nil {
		uc.logger.Warn("CancelLesson: failed to reload bookings for user=%s: %v", sess.UserID, err)
	} else {
		resp.Bookings = bookings
	}

	credits, err := uc.creditRepo.ListByUser(ctx, sess.UserID)
	if err != nil {
		uc.logger.Warn("CancelLesson: failed to reload credits for user=%s: %v", sess.UserID, err)
	} else {
		resp.Credits = credits
	}
}

func (uc *UseCase) publish(ctx context.Context, sess session.Session, booking *domain.Booking, now time.Time) {
	event := events.Event{
		Type:       events.TypeLessonCancelled,
		UserID:     sess.UserID,
		EntityID:   booking.ID,
		CreditID:   booking.CreditID,
		OccurredAt: now,
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("CancelLesson: failed to publish event: %v", err)
	}
}
