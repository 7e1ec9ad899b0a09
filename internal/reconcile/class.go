package reconcile

import (
	"fmt"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
)

// Class приводит документ classes/{id} к GroupClass
func Class(id string, raw Record) (domain.GroupClass, error) {
	if len(raw) == 0 {
		return domain.GroupClass{}, ErrEmptyRecord
	}

	c := domain.GroupClass{
		ID:                    id,
		Title:                 stringField(raw, "title"),
		Description:           stringField(raw, "description"),
		MaxParticipants:       intField(raw, "maxParticipants"),
		CurrentParticipants:   intField(raw, "currentParticipants"),
		Location:              stringField(raw, "location"),
		IsOpenForRegistration: boolField(raw, "isOpenForRegistration"),
		TrainerID:             firstString(raw, trainerRefKeys...),
		CreatedBy:             stringField(raw, "createdBy"),
	}

	start, ok := firstTime(raw, "startTime")
	if !ok {
		return domain.GroupClass{}, fmt.Errorf("%w: startTime", ErrMissingField)
	}
	c.StartTime = start

	if end, ok := firstTime(raw, "endTime"); ok {
		c.EndTime = end
	}
	if t, ok := firstTime(raw, "createdAt"); ok {
		c.CreatedAt = t
	}

	return c, nil
}

// ClassDocument документ группового занятия для записи
func ClassDocument(c domain.GroupClass) Record {
	return Record{
		"title":                 c.Title,
		"description":           c.Description,
		"startTime":             c.StartTime,
		"endTime":               c.EndTime,
		"maxParticipants":       c.MaxParticipants,
		"currentParticipants":   c.CurrentParticipants,
		"location":              c.Location,
		"isOpenForRegistration": c.IsOpenForRegistration,
		"trainerId":             c.TrainerID,
		"createdBy":             c.CreatedBy,
		"createdAt":             c.CreatedAt,
	}
}

// Participant приводит документ classes/{id}/participants/{userId}
func Participant(userID string, raw Record) domain.ClassParticipant {
	p := domain.ClassParticipant{
		UserID:   userID,
		CreditID: firstString(raw, participantCreditKeys...),
	}
	if p.UserID == "" {
		p.UserID = stringField(raw, "userId")
	}
	if t, ok := firstTime(raw, "registeredAt", "createdAt"); ok {
		p.RegisteredAt = t
	}
	return p
}
