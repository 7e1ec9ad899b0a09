package eligibility

import (
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
)

// CheckLessonBookable проверяет, что слот начинается строго позже now + 5 часов.
// Результат нельзя кешировать: now постоянно меняется.
func CheckLessonBookable(slotStart, now time.Time) error {
	if !slotStart.After(now.Add(domain.BookingCutoff)) {
		return ErrTooCloseToStart
	}
	return nil
}

// CheckClassRegistrable проверяет только флаг записи и заполненность группы.
// Ограничения по времени до начала для групповых занятий нет.
func CheckClassRegistrable(class *domain.GroupClass) error {
	if !class.IsOpenForRegistration {
		return ErrClassClosed
	}
	if class.IsFull() {
		return ErrClassFull
	}
	return nil
}

// CheckCancellable проверяет, что событие начинается строго позже now + 24 часов
func CheckCancellable(kind EventKind, eventStart, now time.Time) error {
	if !eventStart.After(now.Add(domain.CancellationCutoff)) {
		return &TooCloseToCancelError{Kind: kind}
	}
	return nil
}
