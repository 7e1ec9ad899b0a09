package models

import (
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
)

// SignWaiverRequest подпись отказа от ответственности
type SignWaiverRequest struct {
	SignerName string `json:"signerName"`
	// ParticipantName имя спортсмена, если подписывает родитель или опекун
	ParticipantName string `json:"participantName,omitempty"`
}

// DocumentResponse подписанный документ
type DocumentResponse struct {
	ID              string    `json:"id"`
	DocumentType    string    `json:"documentType"`
	Version         string    `json:"version"`
	SignerName      string    `json:"signerName"`
	ParticipantName string    `json:"participantName,omitempty"`
	SignedAt        time.Time `json:"signedAt"`
}

// WaiverStatusResponse статус подписи актуальной версии
type WaiverStatusResponse struct {
	CurrentVersion string             `json:"currentVersion"`
	Signed         bool               `json:"signed"`
	Documents      []DocumentResponse `json:"documents"`
}

// FromDomainDocument конвертирует domain модель в DTO
func FromDomainDocument(d *domain.SignedDocument) DocumentResponse {
	return DocumentResponse{
		ID:              d.ID,
		DocumentType:    d.DocumentType,
		Version:         d.Version,
		SignerName:      d.SignerName,
		ParticipantName: d.ParticipantOf,
		SignedAt:        d.SignedAt,
	}
}
