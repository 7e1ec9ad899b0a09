package trainers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-VolleyballService/internal/infra/storage/schedule"
	userRepo "github.com/m04kA/SMC-VolleyballService/internal/infra/storage/user"
	"github.com/m04kA/SMC-VolleyballService/internal/service/trainers/models"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

// Service сервис тренеров и их расписаний
type Service struct {
	scheduleRepo ScheduleRepository
	profileRepo  ProfileRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса тренеров
func NewService(scheduleRepo ScheduleRepository, profileRepo ProfileRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		profileRepo:  profileRepo,
		timeProvider: realTime{},
		logger:       logger,
	}
}

// List возвращает всех тренеров
func (s *Service) List(ctx context.Context) (*models.TrainerListResponse, error) {
	trainers, err := s.scheduleRepo.ListTrainers(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.TrainerListResponse{Trainers: make([]models.TrainerResponse, 0, len(trainers))}
	for i := range trainers {
		resp.Trainers = append(resp.Trainers, models.FromDomainTrainer(&trainers[i]))
	}
	return resp, nil
}

// Get возвращает тренера по ID
func (s *Service) Get(ctx context.Context, trainerID string) (*models.TrainerResponse, error) {
	trainer, err := s.getTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	resp := models.FromDomainTrainer(trainer)
	return &resp, nil
}

// ListOpenSlots возвращает будущие открытые слоты тренера
func (s *Service) ListOpenSlots(ctx context.Context, trainerID string) (*models.SlotListResponse, error) {
	if _, err := s.getTrainer(ctx, trainerID); err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	slots, err := s.scheduleRepo.ListOpenSlots(ctx, trainerID, now)
	if err != nil {
		s.logger.Error("ListOpenSlots: repository error for trainer=%s: %v", trainerID, err)
		return nil, fmt.Errorf("%w: ListOpenSlots - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlots(slots, now), nil
}

// CreateSlot открывает слот в расписании тренера (только администратор)
func (s *Service) CreateSlot(ctx context.Context, sess session.Session, trainerID string, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	if err := s.requireAdmin(ctx, sess); err != nil {
		return nil, err
	}
	if req.StartTime.IsZero() || !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}
	if _, err := s.getTrainer(ctx, trainerID); err != nil {
		return nil, err
	}

	slot := &domain.AvailabilitySlot{
		ID:        req.ID,
		TrainerID: trainerID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    domain.SlotOpen,
	}
	if slot.ID == "" {
		slot.ID = uuid.NewString()
	}

	if err := s.scheduleRepo.SaveSlot(ctx, slot); err != nil {
		s.logger.Error("CreateSlot: failed to save slot for trainer=%s: %v", trainerID, err)
		return nil, fmt.Errorf("%w: CreateSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSlot: slot id=%s opened for trainer=%s by admin=%s", slot.ID, trainerID, sess.UserID)
	resp := models.FromDomainSlot(slot, s.timeProvider.Now())
	return &resp, nil
}

func (s *Service) getTrainer(ctx context.Context, trainerID string) (*domain.Trainer, error) {
	trainer, err := s.scheduleRepo.GetTrainer(ctx, trainerID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrTrainerNotFound) {
			s.logger.Warn("trainer id=%s not found", trainerID)
			return nil, ErrTrainerNotFound
		}
		s.logger.Error("failed to get trainer id=%s: %v", trainerID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return trainer, nil
}

func (s *Service) requireAdmin(ctx context.Context, sess session.Session) error {
	if err := sess.Require(); err != nil {
		return err
	}

	profile, err := s.profileRepo.GetProfile(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrAdminRequired
		}
		return fmt.Errorf("%w: profile lookup: %v", ErrInternal, err)
	}
	if !profile.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}

type realTime struct{}

func (realTime) Now() time.Time { return time.Now() }
