package models

import (
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/eligibility"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        string     `json:"id"`
	TrainerID string     `json:"trainerId"`
	SlotID    string     `json:"slotId"`
	CreditID  string     `json:"creditId,omitempty"`
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Status    string     `json:"status"`
	Upcoming  bool       `json:"upcoming"`
	// CanCancel подсказка для интерфейса; окончательно проверяется при отмене
	CanCancel bool      `json:"canCancel"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking, now time.Time) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:        b.ID,
		TrainerID: b.TrainerID,
		SlotID:    b.SlotID,
		CreditID:  b.CreditID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    string(b.Status),
		Upcoming:  b.IsUpcoming(now),
		CreatedAt: b.CreatedAt,
	}

	if resp.Upcoming {
		resp.CanCancel = eligibility.CheckCancellable(eligibility.KindLesson, *b.StartTime, now) == nil
	}

	return resp
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []domain.Booking, now time.Time) *BookingListResponse {
	resp := &BookingListResponse{Bookings: make([]BookingResponse, 0, len(bookings))}
	for i := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(&bookings[i], now))
	}
	return resp
}
