package domain

import "time"

// SlotStatus represents whether a trainer slot can still be taken
type SlotStatus string

const (
	SlotOpen   SlotStatus = "open"
	SlotBooked SlotStatus = "booked"
)

// AvailabilitySlot is a trainer-opened bookable time window
type AvailabilitySlot struct {
	ID        string
	TrainerID string
	StartTime time.Time
	EndTime   time.Time
	Status    SlotStatus
}

// IsOpen returns true if nobody has booked the slot yet
func (s *AvailabilitySlot) IsOpen() bool {
	return s.Status == SlotOpen
}

// Duration returns the length of the slot
func (s *AvailabilitySlot) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}
