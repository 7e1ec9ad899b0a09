package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "github.com/m04kA/SMC-VolleyballService/internal/infra/storage/user"
	"github.com/m04kA/SMC-VolleyballService/internal/service/profile/models"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

// Service сервис профиля пользователя
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса профиля
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Get возвращает профиль текущего пользователя
func (s *Service) Get(ctx context.Context, sess session.Session) (*models.ProfileResponse, error) {
	if err := sess.Require(); err != nil {
		return nil, err
	}

	p, err := s.userRepo.GetProfile(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Get: profile user=%s not found", sess.UserID)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("Get: repository error for user=%s: %v", sess.UserID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(p), nil
}

// Update изменяет имя, телефон и email; роль не меняется
func (s *Service) Update(ctx context.Context, sess session.Session, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	if err := sess.Require(); err != nil {
		return nil, err
	}
	if email := strings.TrimSpace(req.Email); email != "" && !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email is malformed", ErrInvalidInput)
	}

	p, err := s.userRepo.GetProfile(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrProfileNotFound
		}
		s.logger.Error("Update: repository error for user=%s: %v", sess.UserID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	p.Email = strings.TrimSpace(req.Email)
	p.FirstName = strings.TrimSpace(req.FirstName)
	p.LastName = strings.TrimSpace(req.LastName)
	p.Phone = strings.TrimSpace(req.Phone)

	if err := s.userRepo.UpdateProfile(ctx, p); err != nil {
		s.logger.Error("Update: failed to save profile user=%s: %v", sess.UserID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: profile user=%s updated", sess.UserID)
	return models.FromDomainProfile(p), nil
}
