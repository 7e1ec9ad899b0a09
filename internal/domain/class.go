package domain

import "time"

// GroupClass is an admin-published group session with capacity
type GroupClass struct {
	ID                    string
	Title                 string
	Description           string
	StartTime             time.Time
	EndTime               time.Time
	MaxParticipants       int
	CurrentParticipants   int
	Location              string
	IsOpenForRegistration bool
	TrainerID             string
	CreatedBy             string
	CreatedAt             time.Time
}

// IsFull returns true if no spots are left
func (c *GroupClass) IsFull() bool {
	return c.CurrentParticipants >= c.MaxParticipants
}

// SpotsRemaining returns the number of free spots, never negative
func (c *GroupClass) SpotsRemaining() int {
	if c.CurrentParticipants >= c.MaxParticipants {
		return 0
	}
	return c.MaxParticipants - c.CurrentParticipants
}

// ClassParticipant is a registration record under classes/{id}/participants
type ClassParticipant struct {
	UserID       string
	CreditID     string
	RegisteredAt time.Time
}
