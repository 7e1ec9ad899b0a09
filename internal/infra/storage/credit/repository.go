package credit

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/storage/docstore"
	"github.com/m04kA/SMC-VolleyballService/internal/reconcile"
)

// Repository репозиторий кредитов пользователя (users/{id}/lessonPackages)
type Repository struct {
	store DocumentStore
}

// NewRepository создает новый экземпляр репозитория кредитов
func NewRepository(store DocumentStore) *Repository {
	return &Repository{store: store}
}

// ListByUser получает все кредиты пользователя, включая истекшие и израсходованные.
// Документы, которые не удалось привести к модели, пропускаются.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.LessonCredit, error) {
	docs, err := r.store.List(ctx, domain.UserPackagesPath(userID))
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser: %v", ErrStore, err)
	}

	credits := make([]domain.LessonCredit, 0, len(docs))
	for _, doc := range docs {
		c, err := reconcile.Credit(doc.ID, userID, doc.Data)
		if err != nil {
			continue
		}
		credits = append(credits, c)
	}

	return credits, nil
}

// GetByID получает кредит пользователя по ID
func (r *Repository) GetByID(ctx context.Context, userID, creditID string) (*domain.LessonCredit, error) {
	doc, err := r.store.Get(ctx, domain.UserPackagesPath(userID), creditID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrCreditNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID: %v", ErrStore, err)
	}

	c, err := reconcile.Credit(doc.ID, userID, doc.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, creditID, err)
	}

	return &c, nil
}

// Create записывает новый кредит; ID должен быть заполнен вызывающей стороной
func (r *Repository) Create(ctx context.Context, c *domain.LessonCredit) error {
	if err := r.store.Set(ctx, domain.UserPackagesPath(c.UserID), c.ID, reconcile.CreditDocument(*c)); err != nil {
		return fmt.Errorf("%w: Create: %v", ErrStore, err)
	}
	return nil
}
