package events

import "time"

// Type тип события
type Type string

const (
	TypeLessonBooked            Type = "lesson_booked"
	TypeLessonCancelled         Type = "lesson_cancelled"
	TypeClassRegistered         Type = "class_registered"
	TypeClassRegistrationCancel Type = "class_registration_cancelled"
	TypeCreditsPurchased        Type = "credits_purchased"
	TypeCreditsGranted          Type = "credits_granted"
)

// Event результат завершенного действия пользователя
type Event struct {
	ID         string            `json:"id"`
	Type       Type              `json:"type"`
	UserID     string            `json:"userId"`
	EntityID   string            `json:"entityId,omitempty"`
	CreditID   string            `json:"creditId,omitempty"`
	OccurredAt time.Time         `json:"occurredAt"`
	Attributes map[string]string `json:"attributes,omitempty"`
}
