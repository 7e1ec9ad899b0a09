package waivers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/service/waivers/models"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

// Service сервис подписи отказа от ответственности (users/{id}/documents).
// Хранится только факт подписи: имя, версия и время.
type Service struct {
	documentRepo DocumentRepository
	ids          IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(documentRepo DocumentRepository, logger Logger) *Service {
	return &Service{
		documentRepo: documentRepo,
		ids:          uuidGenerator{},
		timeProvider: realTime{},
		logger:       logger,
	}
}

// Sign записывает подпись актуальной версии отказа
func (s *Service) Sign(ctx context.Context, sess session.Session, req *models.SignWaiverRequest) (*models.DocumentResponse, error) {
	if err := sess.Require(); err != nil {
		return nil, err
	}

	signer := strings.TrimSpace(req.SignerName)
	if signer == "" {
		return nil, fmt.Errorf("%w: signerName is required", ErrInvalidInput)
	}

	doc := &domain.SignedDocument{
		ID:            s.ids.NewID(),
		UserID:        sess.UserID,
		DocumentType:  domain.DocumentTypeLiabilityWaiver,
		Version:       domain.CurrentWaiverVersion,
		SignerName:    signer,
		SignedAt:      s.timeProvider.Now(),
		ParticipantOf: strings.TrimSpace(req.ParticipantName),
	}

	if err := s.documentRepo.SaveDocument(ctx, doc); err != nil {
		s.logger.Error("Sign: failed to save waiver for user=%s: %v", sess.UserID, err)
		return nil, fmt.Errorf("%w: Sign - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Sign: user=%s signed waiver version=%s", sess.UserID, doc.Version)
	resp := models.FromDomainDocument(doc)
	return &resp, nil
}

// Status возвращает подписанные документы и признак подписи актуальной версии
func (s *Service) Status(ctx context.Context, sess session.Session) (*models.WaiverStatusResponse, error) {
	if err := sess.Require(); err != nil {
		return nil, err
	}

	docs, err := s.documentRepo.ListDocuments(ctx, sess.UserID)
	if err != nil {
		s.logger.Error("Status: repository error for user=%s: %v", sess.UserID, err)
		return nil, fmt.Errorf("%w: Status - repository error: %v", ErrInternal, err)
	}

	resp := &models.WaiverStatusResponse{
		CurrentVersion: domain.CurrentWaiverVersion,
		Documents:      make([]models.DocumentResponse, 0, len(docs)),
	}
	for i := range docs {
		if docs[i].DocumentType == domain.DocumentTypeLiabilityWaiver && docs[i].Version == domain.CurrentWaiverVersion {
			resp.Signed = true
		}
		resp.Documents = append(resp.Documents, models.FromDomainDocument(&docs[i]))
	}

	return resp, nil
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }

type realTime struct{}

func (realTime) Now() time.Time { return time.Now() }
