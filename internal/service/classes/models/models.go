package models

import (
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
)

// Request модели

// ClassRequest данные занятия от администратора
type ClassRequest struct {
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	StartTime             time.Time `json:"startTime"`
	EndTime               time.Time `json:"endTime"`
	MaxParticipants       int       `json:"maxParticipants"`
	Location              string    `json:"location"`
	IsOpenForRegistration bool      `json:"isOpenForRegistration"`
	TrainerID             string    `json:"trainerId"`
}

// Response модели

// ClassResponse групповое занятие
type ClassResponse struct {
	ID                    string    `json:"id"`
	Title                 string    `json:"title"`
	Description           string    `json:"description,omitempty"`
	StartTime             time.Time `json:"startTime"`
	EndTime               time.Time `json:"endTime"`
	MaxParticipants       int       `json:"maxParticipants"`
	CurrentParticipants   int       `json:"currentParticipants"`
	SpotsRemaining        int       `json:"spotsRemaining"`
	Location              string    `json:"location,omitempty"`
	IsOpenForRegistration bool      `json:"isOpenForRegistration"`
	TrainerID             string    `json:"trainerId,omitempty"`
	IsRegistered          bool      `json:"isRegistered"`
}

// ClassListResponse список занятий
type ClassListResponse struct {
	Classes []ClassResponse `json:"classes"`
}

// ParticipantResponse участник занятия
type ParticipantResponse struct {
	UserID       string    `json:"userId"`
	CreditID     string    `json:"creditId,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// ParticipantListResponse список участников
type ParticipantListResponse struct {
	Participants []ParticipantResponse `json:"participants"`
}

// Методы конвертации

// FromDomainClass конвертирует domain модель в DTO
func FromDomainClass(c *domain.GroupClass, registered bool) ClassResponse {
	return ClassResponse{
		ID:                    c.ID,
		Title:                 c.Title,
		Description:           c.Description,
		StartTime:             c.StartTime,
		EndTime:               c.EndTime,
		MaxParticipants:       c.MaxParticipants,
		CurrentParticipants:   c.CurrentParticipants,
		SpotsRemaining:        c.SpotsRemaining(),
		Location:              c.Location,
		IsOpenForRegistration: c.IsOpenForRegistration,
		TrainerID:             c.TrainerID,
		IsRegistered:          registered,
	}
}

// FromDomainParticipants конвертирует список участников
func FromDomainParticipants(list []domain.ClassParticipant) *ParticipantListResponse {
	resp := &ParticipantListResponse{Participants: make([]ParticipantResponse, 0, len(list))}
	for _, p := range list {
		resp.Participants = append(resp.Participants, ParticipantResponse{
			UserID:       p.UserID,
			CreditID:     p.CreditID,
			RegisteredAt: p.RegisteredAt,
		})
	}
	return resp
}

// ApplyTo переносит редактируемые поля в занятие.
// Счетчик участников ведет бэкенд, поэтому он не меняется.
func (r *ClassRequest) ApplyTo(c *domain.GroupClass) {
	c.Title = r.Title
	c.Description = r.Description
	c.StartTime = r.StartTime
	c.EndTime = r.EndTime
	c.MaxParticipants = r.MaxParticipants
	c.Location = r.Location
	c.IsOpenForRegistration = r.IsOpenForRegistration
	c.TrainerID = r.TrainerID
}
