package eligibility

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAvailableCredit возвращается, когда нет подходящего действующего кредита
	ErrNoAvailableCredit = errors.New("eligibility: no valid credits")

	// ErrTooCloseToStart возвращается, когда до начала слота осталось слишком мало времени
	ErrTooCloseToStart = errors.New("eligibility: too close to start to book")

	// ErrTooCloseToCancel возвращается, когда отмена уже невозможна
	ErrTooCloseToCancel = errors.New("eligibility: cannot cancel within 24 hours")

	// ErrClassClosed возвращается, когда запись на занятие закрыта администратором
	ErrClassClosed = errors.New("eligibility: class is not open for registration")

	// ErrClassFull возвращается, когда в группе нет свободных мест
	ErrClassFull = errors.New("eligibility: class is full")
)

// EventKind тип события, которое пытаются отменить
type EventKind string

const (
	KindLesson EventKind = "lesson"
	KindClass  EventKind = "class"
)

// TooCloseToCancelError отказ в отмене с указанием типа события
// errors.Is(err, ErrTooCloseToCancel) == true
type TooCloseToCancelError struct {
	Kind EventKind
}

func (e *TooCloseToCancelError) Error() string {
	switch e.Kind {
	case KindClass:
		return "class registrations cannot be cancelled within 24 hours of the start time"
	default:
		return "lessons cannot be cancelled within 24 hours of the start time"
	}
}

func (e *TooCloseToCancelError) Unwrap() error {
	return ErrTooCloseToCancel
}

// Message текст для пользователя
func (e *TooCloseToCancelError) Message() string {
	return fmt.Sprintf("Cannot cancel: %s. Please contact us for help.", e.Error())
}
