package classes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	classRepo "github.com/m04kA/SMC-VolleyballService/internal/infra/storage/class"
	userRepo "github.com/m04kA/SMC-VolleyballService/internal/infra/storage/user"
	"github.com/m04kA/SMC-VolleyballService/internal/service/classes/models"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

// Service сервис групповых занятий: просмотр для всех, управление для администраторов
type Service struct {
	classRepo    ClassRepository
	profileRepo  ProfileRepository
	ids          IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса занятий
func NewService(classRepo ClassRepository, profileRepo ProfileRepository, logger Logger) *Service {
	return &Service{
		classRepo:    classRepo,
		profileRepo:  profileRepo,
		ids:          uuidGenerator{},
		timeProvider: realTime{},
		logger:       logger,
	}
}

// ListUpcoming возвращает будущие занятия.
// Для авторизованного пользователя отмечает занятия, на которые он записан.
func (s *Service) ListUpcoming(ctx context.Context, sess session.Session) (*models.ClassListResponse, error) {
	classes, err := s.classRepo.ListUpcoming(ctx, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("ListUpcoming: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
	}

	resp := &models.ClassListResponse{Classes: make([]models.ClassResponse, 0, len(classes))}
	for i := range classes {
		registered, err := s.isRegistered(ctx, sess, classes[i].ID)
		if err != nil {
			return nil, err
		}
		resp.Classes = append(resp.Classes, models.FromDomainClass(&classes[i], registered))
	}

	return resp, nil
}

// Get возвращает занятие по ID
func (s *Service) Get(ctx context.Context, sess session.Session, id string) (*models.ClassResponse, error) {
	class, err := s.getClass(ctx, id)
	if err != nil {
		return nil, err
	}

	registered, err := s.isRegistered(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainClass(class, registered)
	return &resp, nil
}

// Create создает занятие (только администратор)
func (s *Service) Create(ctx context.Context, sess session.Session, req *models.ClassRequest) (*models.ClassResponse, error) {
	if err := s.requireAdmin(ctx, sess); err != nil {
		return nil, err
	}
	if err := validateClassRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	class := &domain.GroupClass{
		ID:        s.ids.NewID(),
		CreatedBy: sess.UserID,
		CreatedAt: s.timeProvider.Now(),
	}
	req.ApplyTo(class)

	if err := s.classRepo.Save(ctx, class); err != nil {
		s.logger.Error("Create: failed to save class: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: class id=%s created by admin=%s", class.ID, sess.UserID)
	resp := models.FromDomainClass(class, false)
	return &resp, nil
}

// Update изменяет занятие (только администратор)
func (s *Service) Update(ctx context.Context, sess session.Session, id string, req *models.ClassRequest) (*models.ClassResponse, error) {
	if err := s.requireAdmin(ctx, sess); err != nil {
		return nil, err
	}
	if err := validateClassRequest(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	class, err := s.getClass(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(class)

	if err := s.classRepo.Save(ctx, class); err != nil {
		s.logger.Error("Update: failed to save class id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: class id=%s updated by admin=%s", id, sess.UserID)
	resp := models.FromDomainClass(class, false)
	return &resp, nil
}

// Delete удаляет занятие вместе с участниками (только администратор)
func (s *Service) Delete(ctx context.Context, sess session.Session, id string) error {
	if err := s.requireAdmin(ctx, sess); err != nil {
		return err
	}

	if err := s.classRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, classRepo.ErrClassNotFound) {
			return ErrClassNotFound
		}
		s.logger.Error("Delete: failed to delete class id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: class id=%s deleted by admin=%s", id, sess.UserID)
	return nil
}

// ListParticipants возвращает участников занятия (только администратор)
func (s *Service) ListParticipants(ctx context.Context, sess session.Session, id string) (*models.ParticipantListResponse, error) {
	if err := s.requireAdmin(ctx, sess); err != nil {
		return nil, err
	}
	if _, err := s.getClass(ctx, id); err != nil {
		return nil, err
	}

	participants, err := s.classRepo.ListParticipants(ctx, id)
	if err != nil {
		s.logger.Error("ListParticipants: repository error for class id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: ListParticipants - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainParticipants(participants), nil
}

func (s *Service) getClass(ctx context.Context, id string) (*domain.GroupClass, error) {
	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, classRepo.ErrClassNotFound) {
			s.logger.Warn("class id=%s not found", id)
			return nil, ErrClassNotFound
		}
		s.logger.Error("failed to get class id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return class, nil
}

func (s *Service) isRegistered(ctx context.Context, sess session.Session, classID string) (bool, error) {
	if !sess.IsAuthenticated() {
		return false, nil
	}

	_, err := s.classRepo.GetParticipant(ctx, classID, sess.UserID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, classRepo.ErrParticipantNotFound):
		return false, nil
	default:
		s.logger.Error("failed to check registration class=%s user=%s: %v", classID, sess.UserID, err)
		return false, fmt.Errorf("%w: participant lookup: %v", ErrInternal, err)
	}
}

// requireAdmin проверяет роль администратора в профиле пользователя
func (s *Service) requireAdmin(ctx context.Context, sess session.Session) error {
	if err := sess.Require(); err != nil {
		return err
	}

	profile, err := s.profileRepo.GetProfile(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrAdminRequired
		}
		s.logger.Error("failed to load profile user=%s: %v", sess.UserID, err)
		return fmt.Errorf("%w: profile lookup: %v", ErrInternal, err)
	}

	if !profile.IsAdmin() {
		s.logger.Warn("user=%s is not an admin", sess.UserID)
		return ErrAdminRequired
	}
	return nil
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }

type realTime struct{}

func (realTime) Now() time.Time { return time.Now() }
