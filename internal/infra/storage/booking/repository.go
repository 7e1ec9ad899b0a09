package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/storage/docstore"
	"github.com/m04kA/SMC-VolleyballService/internal/reconcile"
)

// Repository репозиторий для чтения бронирований.
// Бронирования создает и отменяет бэкенд, сервис их только читает.
type Repository struct {
	store DocumentStore
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(store DocumentStore) *Repository {
	return &Repository{store: store}
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	doc, err := r.store.Get(ctx, domain.CollectionBookings, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID: %v", ErrStore, err)
	}

	booking, err := reconcile.Booking(doc.ID, doc.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, id, err)
	}

	return &booking, nil
}

// ListByClient получает бронирования клиента, упорядоченные по времени начала.
// Бронирования без времени начала идут последними.
// Документы, которые не удалось привести к модели, пропускаются.
func (r *Repository) ListByClient(ctx context.Context, clientID string) ([]domain.Booking, error) {
	docs, err := r.store.List(ctx, domain.CollectionBookings)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient: %v", ErrStore, err)
	}

	bookings := make([]domain.Booking, 0)
	for _, doc := range docs {
		b, err := reconcile.Booking(doc.ID, doc.Data)
		if err != nil || b.ClientID != clientID {
			continue
		}
		bookings = append(bookings, b)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		a, b := bookings[i].StartTime, bookings[j].StartTime
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})

	return bookings, nil
}
