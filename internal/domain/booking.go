package domain

import "time"

// BookingStatus is a free-form status string set by the backend
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// DefaultBookingStatus is assumed when the backend omits the status field
const DefaultBookingStatus = StatusConfirmed

// Booking represents a scheduled private lesson
type Booking struct {
	ID        string // empty until assigned by the backend
	ClientID  string
	TrainerID string
	SlotID    string
	CreditID  string
	StartTime *time.Time // nil until the backend enriches the record
	EndTime   *time.Time
	Status    BookingStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsUpcoming returns true for active bookings starting after now
func (b *Booking) IsUpcoming(now time.Time) bool {
	return !b.IsCancelled() && b.StartTime != nil && b.StartTime.After(now)
}
