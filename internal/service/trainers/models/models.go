package models

import (
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/eligibility"
)

// TrainerResponse тренер
type TrainerResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Bio         string   `json:"bio,omitempty"`
	Specialties []string `json:"specialties"`
	ImageURL    string   `json:"imageURL,omitempty"`
}

// TrainerListResponse список тренеров
type TrainerListResponse struct {
	Trainers []TrainerResponse `json:"trainers"`
}

// SlotResponse открытый слот тренера
type SlotResponse struct {
	ID        string    `json:"id"`
	TrainerID string    `json:"trainerId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	// Bookable слот начинается позже, чем через 5 часов
	Bookable bool `json:"bookable"`
}

// SlotListResponse список слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// CreateSlotRequest новый слот в расписании тренера
type CreateSlotRequest struct {
	ID        string    `json:"id,omitempty"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// FromDomainTrainer конвертирует domain модель в DTO
func FromDomainTrainer(t *domain.Trainer) TrainerResponse {
	specialties := t.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	return TrainerResponse{
		ID:          t.ID,
		Name:        t.Name,
		Bio:         t.Bio,
		Specialties: specialties,
		ImageURL:    t.ImageURL,
	}
}

// FromDomainSlot конвертирует слот; bookable вычисляется на момент now
func FromDomainSlot(s *domain.AvailabilitySlot, now time.Time) SlotResponse {
	return SlotResponse{
		ID:        s.ID,
		TrainerID: s.TrainerID,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Bookable:  eligibility.CheckLessonBookable(s.StartTime, now) == nil,
	}
}

// FromDomainSlots конвертирует список слотов
func FromDomainSlots(slots []domain.AvailabilitySlot, now time.Time) *SlotListResponse {
	resp := &SlotListResponse{Slots: make([]SlotResponse, 0, len(slots))}
	for i := range slots {
		resp.Slots = append(resp.Slots, FromDomainSlot(&slots[i], now))
	}
	return resp
}
