package reconcile

import (
	"fmt"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
)

// Алиасы полей бронирования: текущее имя первым, устаревшее следом
var (
	trainerRefKeys = []string{"trainerUID", "trainerId"}
	slotRefKeys    = []string{"scheduleSlotId", "slotId"}
	creditRefKeys  = []string{"lessonPackageId", "packageId"}
	createdAtKeys  = []string{"createdAt", "bookedAt"}
	updatedAtKeys  = []string{"updatedAt", "bookedAt"}

	// Алиасы кредита участника класса
	participantCreditKeys = []string{"lessonPackageId", "packageId", "creditId"}
)

// Booking приводит документ бронирования к канонической форме.
// Используется и при чтении коллекции bookings, и для ответа bookLesson.
func Booking(id string, raw Record) (domain.Booking, error) {
	if len(raw) == 0 {
		return domain.Booking{}, ErrEmptyRecord
	}

	if id == "" {
		id = stringField(raw, "id")
	}

	b := domain.Booking{
		ID:        id,
		ClientID:  stringField(raw, "clientId"),
		TrainerID: firstString(raw, trainerRefKeys...),
		SlotID:    firstString(raw, slotRefKeys...),
		CreditID:  firstString(raw, creditRefKeys...),
		StartTime: optionalTime(raw, "startTime"),
		EndTime:   optionalTime(raw, "endTime"),
		Status:    domain.BookingStatus(stringField(raw, "status")),
	}

	if b.TrainerID == "" {
		return domain.Booking{}, fmt.Errorf("%w: trainer reference", ErrMissingField)
	}
	if b.SlotID == "" {
		return domain.Booking{}, fmt.Errorf("%w: slot reference", ErrMissingField)
	}

	if b.Status == "" {
		b.Status = domain.DefaultBookingStatus
	}
	if t, ok := firstTime(raw, createdAtKeys...); ok {
		b.CreatedAt = t
	}
	if t, ok := firstTime(raw, updatedAtKeys...); ok {
		b.UpdatedAt = t
	}

	return b, nil
}

// BookingDocument канонический документ для записи (только текущие имена полей)
func BookingDocument(b domain.Booking) Record {
	doc := Record{
		"clientId":        b.ClientID,
		"trainerUID":      b.TrainerID,
		"scheduleSlotId":  b.SlotID,
		"lessonPackageId": b.CreditID,
		"status":          string(b.Status),
		"createdAt":       b.CreatedAt,
		"updatedAt":       b.UpdatedAt,
	}
	if b.StartTime != nil {
		doc["startTime"] = *b.StartTime
	}
	if b.EndTime != nil {
		doc["endTime"] = *b.EndTime
	}
	return doc
}
