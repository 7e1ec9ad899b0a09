package reconcile

import (
	"fmt"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
)

// Slot приводит документ trainers/{id}/schedules/{id} к AvailabilitySlot.
// Если в документе нет ссылки на тренера, берется trainerID из пути.
func Slot(id, trainerID string, raw Record) (domain.AvailabilitySlot, error) {
	if len(raw) == 0 {
		return domain.AvailabilitySlot{}, ErrEmptyRecord
	}

	s := domain.AvailabilitySlot{
		ID:        id,
		TrainerID: firstString(raw, trainerRefKeys...),
		Status:    domain.SlotStatus(stringField(raw, "status")),
	}
	if s.TrainerID == "" {
		s.TrainerID = trainerID
	}
	if s.Status == "" {
		s.Status = domain.SlotOpen
	}

	start, ok := firstTime(raw, "startTime")
	if !ok {
		return domain.AvailabilitySlot{}, fmt.Errorf("%w: startTime", ErrMissingField)
	}
	s.StartTime = start

	if end, ok := firstTime(raw, "endTime"); ok {
		s.EndTime = end
	}

	return s, nil
}

// SlotDocument документ слота для записи
func SlotDocument(s domain.AvailabilitySlot) Record {
	return Record{
		"trainerUID": s.TrainerID,
		"startTime":  s.StartTime,
		"endTime":    s.EndTime,
		"status":     string(s.Status),
	}
}
