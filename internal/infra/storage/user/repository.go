package user

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/storage/docstore"
	"github.com/m04kA/SMC-VolleyballService/internal/reconcile"
)

// Repository репозиторий профилей (users/{id}) и подписанных документов (users/{id}/documents)
type Repository struct {
	store DocumentStore
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(store DocumentStore) *Repository {
	return &Repository{store: store}
}

// GetProfile получает профиль пользователя
func (r *Repository) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	doc, err := r.store.Get(ctx, domain.CollectionUsers, userID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetProfile: %v", ErrStore, err)
	}

	p, err := reconcile.Profile(doc.ID, doc.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: profile %s: %v", ErrDecode, userID, err)
	}

	return &p, nil
}

// UpdateProfile обновляет редактируемые поля профиля; роль и прочие поля сохраняются
func (r *Repository) UpdateProfile(ctx context.Context, p *domain.UserProfile) error {
	err := r.store.Merge(ctx, domain.CollectionUsers, p.ID, reconcile.ProfileDocument(*p))
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateProfile: %v", ErrStore, err)
	}
	return nil
}

// ListDocuments получает подписанные документы пользователя, новые первыми
func (r *Repository) ListDocuments(ctx context.Context, userID string) ([]domain.SignedDocument, error) {
	docs, err := r.store.List(ctx, domain.UserDocumentsPath(userID))
	if err != nil {
		return nil, fmt.Errorf("%w: ListDocuments: %v", ErrStore, err)
	}

	result := make([]domain.SignedDocument, 0, len(docs))
	for _, doc := range docs {
		d, err := reconcile.SignedDocument(doc.ID, userID, doc.Data)
		if err != nil {
			continue
		}
		result = append(result, d)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].SignedAt.After(result[j].SignedAt)
	})

	return result, nil
}

// SaveDocument записывает подписанный документ; ID должен быть заполнен
func (r *Repository) SaveDocument(ctx context.Context, d *domain.SignedDocument) error {
	if err := r.store.Set(ctx, domain.UserDocumentsPath(d.UserID), d.ID, reconcile.SignedDocumentDocument(*d)); err != nil {
		return fmt.Errorf("%w: SaveDocument: %v", ErrStore, err)
	}
	return nil
}
