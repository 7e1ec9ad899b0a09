package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "github.com/m04kA/SMC-VolleyballService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VolleyballService/internal/service/bookings/models"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

// Service сервис для чтения бронирований пользователя
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: realTime{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только свои бронирования
func (s *Service) GetByID(ctx context.Context, sess session.Session, id string) (*models.BookingResponse, error) {
	if err := sess.Require(); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.ClientID != sess.UserID {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", sess.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking, s.timeProvider.Now()), nil
}

// ListMine получает бронирования текущего пользователя по времени начала
func (s *Service) ListMine(ctx context.Context, sess session.Session) (*models.BookingListResponse, error) {
	if err := sess.Require(); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByClient(ctx, sess.UserID)
	if err != nil {
		s.logger.Error("ListMine: repository error for user=%s: %v", sess.UserID, err)
		return nil, fmt.Errorf("%w: ListMine - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListMine: fetched %d bookings for user=%s", len(bookings), sess.UserID)
	return models.FromDomainBookingList(bookings, s.timeProvider.Now()), nil
}

type realTime struct{}

func (realTime) Now() time.Time { return time.Now() }
