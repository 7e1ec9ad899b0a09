package schedule

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

// Repository репозиторий тренеров и их расписаний (trainers, trainers/{id}/schedules)
type Repository struct {
	store DocumentStore
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(store DocumentStore) *Repository {
	return &Repository{store: store}
}

// ListTrainers получает всех тренеров
func (r *Repository) ListTrainers(ctx context.Context) ([]domain.Trainer, error) {
	docs, err := r.store.List(ctx, domain.CollectionTrainers)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTrainers: %v", ErrStore, err)
	}

	trainers := make([]domain.Trainer, 0, len(docs))
	for _, doc := range docs {
		t, err := reconcile.Trainer(doc.ID, doc.Data)
		if err != nil {
			continue
		}
		trainers = append(trainers, t)
	}

	return trainers, nil
}

// GetTrainer получает тренера по ID
func (r *Repository) GetTrainer(ctx context.Context, trainerID string) (*domain.Trainer, error) {
	doc, err := r.store.Get(ctx, domain.CollectionTrainers, trainerID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrTrainerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTrainer: %v", ErrStore, err)
	}

	t, err := reconcile.Trainer(doc.ID, doc.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: trainer %s: %v", ErrDecode, trainerID, err)
	}

	return &t, nil
}

// GetSlot получает слот тренера по ID
func (r *Repository) GetSlot(ctx context.Context, trainerID, slotID string) (*domain.AvailabilitySlot, error) {
	doc, err := r.store.Get(ctx, domain.TrainerSchedulesPath(trainerID), slotID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlot: %v", ErrStore, err)
	}

	s, err := reconcile.Slot(doc.ID, trainerID, doc.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: slot %s: %v", ErrDecode, slotID, err)
	}

	return &s, nil
}

// ListOpenSlots получает открытые слоты тренера, начинающиеся после from, по времени начала
func (r *Repository) ListOpenSlots(ctx context.Context, trainerID string, from time.Time) ([]domain.AvailabilitySlot, error) {
	docs, err := r.store.List(ctx, domain.TrainerSchedulesPath(trainerID))
	if err != nil {
		return nil, fmt.Errorf("%w: ListOpenSlots: %v", ErrStore, err)
	}

	slots := make([]domain.AvailabilitySlot, 0, len(docs))
	for _, doc := range docs {
		s, err := reconcile.Slot(doc.ID, trainerID, doc.Data)
		if err != nil {
			continue
		}
		if !s.IsOpen() || !s.StartTime.After(from) {
			continue
		}
		slots = append(slots, s)
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartTime.Before(slots[j].StartTime)
	})

	return slots, nil
}

// SaveSlot создает или перезаписывает слот тренера
func (r *Repository) SaveSlot(ctx context.Context, s *domain.AvailabilitySlot) error {
	if err := r.store.Set(ctx, domain.TrainerSchedulesPath(s.TrainerID), s.ID, reconcile.SlotDocument(*s)); err != nil {
		return fmt.Errorf("%w: SaveSlot: %v", ErrStore, err)
	}
	return nil
}
