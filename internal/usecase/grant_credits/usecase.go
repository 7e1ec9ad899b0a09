package grant_credits

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VolleyballService/internal/action"
	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/events"
	userRepo "github.com/m04kA/SMC-VolleyballService/internal/infra/storage/user"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
	"github.com/m04kA/SMC-VolleyballService/pkg/ptr"
)

// UseCase use case ручного начисления кредитов администратором
type UseCase struct {
	creditRepo   CreditRepository
	profileRepo  ProfileRepository
	ids          IDGenerator
	gate         ActionGate
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	creditRepo CreditRepository,
	profileRepo ProfileRepository,
	gate ActionGate,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		creditRepo:   creditRepo,
		profileRepo:  profileRepo,
		ids:          uuidGenerator{},
		gate:         gate,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает пакет кредитов users/{id}/lessonPackages/{uuid}
func (uc *UseCase) Execute(ctx context.Context, sess session.Session, req *Request) (resp *Response, err error) {
	// 1. Проверяем сессию
	if err := sess.Require(); err != nil {
		return nil, err
	}

	uc.logger.Info("GrantCredits: admin=%s, user=%s, type=%s, total=%d",
		sess.UserID, req.UserID, req.CreditType, req.TotalCredits)

	// 2. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("GrantCredits: validation failed: %v", err)
		return nil, err
	}

	// 3. Только администратор
	if err := uc.requireAdmin(ctx, sess); err != nil {
		return nil, err
	}

	// 4. Получатель должен существовать
	if _, err := uc.profileRepo.GetProfile(ctx, req.UserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("GrantCredits: user=%s not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("GrantCredits: failed to get user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 5. Переводим действие в inFlight
	done, err := uc.gate.Begin(action.Key{UserID: sess.UserID, Action: ActionName})
	if err != nil {
		return nil, err
	}
	defer func() {
		done(err)
		uc.metrics.IncAction(ActionName, action.Outcome(err))
	}()

	// 6. Создаем пакет
	credit := &domain.LessonCredit{
		ID:             uc.ids.NewID(),
		UserID:         req.UserID,
		CreditType:     domain.NormalizeCreditType(req.CreditType),
		TotalCredits:   req.TotalCredits,
		PurchaseDate:   now,
		ExpirationDate: ptr.Deref(req.ExpirationDate, now.AddDate(domain.DefaultGrantValidity, 0, 0)),
	}

	if err := uc.creditRepo.Create(ctx, credit); err != nil {
		uc.logger.Error("GrantCredits: failed to create credit for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to create credit: %v", ErrInternal, err)
	}

	// 7. Публикуем событие
	event := events.Event{
		Type:       events.TypeCreditsGranted,
		UserID:     req.UserID,
		EntityID:   credit.ID,
		CreditID:   credit.ID,
		OccurredAt: now,
		Attributes: map[string]string{"grantedBy": sess.UserID},
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("GrantCredits: failed to publish event: %v", err)
	}

	uc.logger.Info("GrantCredits: credit=%s granted to user=%s", credit.ID, req.UserID)
	return &Response{Credit: credit}, nil
}

func (uc *UseCase) requireAdmin(ctx context.Context, sess session.Session) error {
	profile, err := uc.profileRepo.GetProfile(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrAdminRequired
		}
		uc.logger.Error("GrantCredits: failed to get caller profile: %v", err)
		return fmt.Errorf("%w: failed to get caller profile: %v", ErrInternal, err)
	}
	if !profile.IsAdmin() {
		uc.logger.Warn("GrantCredits: user=%s is not admin", sess.UserID)
		return ErrAdminRequired
	}
	return nil
}
