package class

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/storage/docstore"
	"github.com/m04kA/SMC-VolleyballService/internal/reconcile"
)

// Repository репозиторий групповых занятий и их участников
type Repository struct {
	store DocumentStore
}

// NewRepository создает новый экземпляр репозитория занятий
func NewRepository(store DocumentStore) *Repository {
	return &Repository{store: store}
}

// GetByID получает занятие по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.GroupClass, error) {
	doc, err := r.store.Get(ctx, domain.CollectionClasses, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID: %v", ErrStore, err)
	}

	c, err := reconcile.Class(doc.ID, doc.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, id, err)
	}

	return &c, nil
}

// ListUpcoming получает занятия, начинающиеся после from, по времени начала
func (r *Repository) ListUpcoming(ctx context.Context, from time.Time) ([]domain.GroupClass, error) {
	docs, err := r.store.List(ctx, domain.CollectionClasses)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming: %v", ErrStore, err)
	}

	classes := make([]domain.GroupClass, 0, len(docs))
	for _, doc := range docs {
		c, err := reconcile.Class(doc.ID, doc.Data)
		if err != nil || !c.StartTime.After(from) {
			continue
		}
		classes = append(classes, c)
	}

	sort.SliceStable(classes, func(i, j int) bool {
		return classes[i].StartTime.Before(classes[j].StartTime)
	})

	return classes, nil
}

// Save создает или перезаписывает занятие
func (r *Repository) Save(ctx context.Context, c *domain.GroupClass) error {
	if err := r.store.Set(ctx, domain.CollectionClasses, c.ID, reconcile.ClassDocument(*c)); err != nil {
		return fmt.Errorf("%w: Save: %v", ErrStore, err)
	}
	return nil
}

// Delete удаляет занятие вместе со списком участников
func (r *Repository) Delete(ctx context.Context, id string) error {
	err := r.store.DeleteTree(ctx, domain.CollectionClasses, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrClassNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Delete: %v", ErrStore, err)
	}
	return nil
}

// ListParticipants получает участников занятия
func (r *Repository) ListParticipants(ctx context.Context, classID string) ([]domain.ClassParticipant, error) {
	docs, err := r.store.List(ctx, domain.ClassParticipantsPath(classID))
	if err != nil {
		return nil, fmt.Errorf("%w: ListParticipants: %v", ErrStore, err)
	}

	participants := make([]domain.ClassParticipant, 0, len(docs))
	for _, doc := range docs {
		participants = append(participants, reconcile.Participant(doc.ID, doc.Data))
	}

	return participants, nil
}

// GetParticipant получает запись пользователя на занятие
func (r *Repository) GetParticipant(ctx context.Context, classID, userID string) (*domain.ClassParticipant, error) {
	doc, err := r.store.Get(ctx, domain.ClassParticipantsPath(classID), userID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrParticipantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetParticipant: %v", ErrStore, err)
	}

	p := reconcile.Participant(doc.ID, doc.Data)
	return &p, nil
}
