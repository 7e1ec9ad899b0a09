package credits

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/service/credits/models"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

// Service сервис кредитов пользователя
type Service struct {
	creditRepo   CreditRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса кредитов
func NewService(creditRepo CreditRepository, logger Logger) *Service {
	return &Service{
		creditRepo:   creditRepo,
		timeProvider: realTime{},
		logger:       logger,
	}
}

// ListMine возвращает все кредиты текущего пользователя.
// Порядок: сначала действующие по сроку действия, затем остальные.
func (s *Service) ListMine(ctx context.Context, sess session.Session) (*models.CreditListResponse, error) {
	if err := sess.Require(); err != nil {
		return nil, err
	}

	credits, err := s.creditRepo.ListByUser(ctx, sess.UserID)
	if err != nil {
		s.logger.Error("ListMine: repository error for user=%s: %v", sess.UserID, err)
		return nil, fmt.Errorf("%w: ListMine - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	sortForDisplay(credits, now)

	return models.FromDomainCreditList(credits, now), nil
}

func sortForDisplay(credits []domain.LessonCredit, now time.Time) {
	sort.SliceStable(credits, func(i, j int) bool {
		ui, uj := credits[i].IsUsable(now), credits[j].IsUsable(now)
		if ui != uj {
			return ui
		}
		if !credits[i].ExpirationDate.Equal(credits[j].ExpirationDate) {
			return credits[i].ExpirationDate.Before(credits[j].ExpirationDate)
		}
		return credits[i].ID < credits[j].ID
	})
}

type realTime struct{}

func (realTime) Now() time.Time { return time.Now() }
