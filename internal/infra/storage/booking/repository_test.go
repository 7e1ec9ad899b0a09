package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/storage/docstore"
)

func TestRepository_ListByClient(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	// GIVEN: бронирования в текущем и устаревшем формате, чужое и битое
	require.NoError(t, store.Set(ctx, domain.CollectionBookings, "b-2", map[string]interface{}{
		"clientId": "u-1", "trainerUID": "t-1", "scheduleSlotId": "s-2",
		"startTime": start.Add(48 * time.Hour),
	}))
	require.NoError(t, store.Set(ctx, domain.CollectionBookings, "b-1", map[string]interface{}{
		"clientId": "u-1", "trainerId": "t-1", "slotId": "s-1", "packageId": "c-1",
		"startTime": map[string]interface{}{"_seconds": start.Unix()},
		"bookedAt":  start.Add(-72 * time.Hour).Unix(),
	}))
	require.NoError(t, store.Set(ctx, domain.CollectionBookings, "b-3", map[string]interface{}{
		"clientId": "u-2", "trainerUID": "t-1", "scheduleSlotId": "s-3",
	}))
	require.NoError(t, store.Set(ctx, domain.CollectionBookings, "b-4", map[string]interface{}{
		"clientId": "u-1",
	}))
	require.NoError(t, store.Set(ctx, domain.CollectionBookings, "b-5", map[string]interface{}{
		"clientId": "u-1", "trainerUID": "t-2", "scheduleSlotId": "s-5", "status": "cancelled",
	}))

	repo := NewRepository(store)

	// WHEN
	bookings, err := repo.ListByClient(ctx, "u-1")

	// THEN: по времени начала, без времени в конце
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, "b-1", bookings[0].ID)
	assert.Equal(t, "c-1", bookings[0].CreditID)
	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)
	assert.True(t, start.Equal(*bookings[0].StartTime))
	assert.Equal(t, "b-2", bookings[1].ID)
	assert.Equal(t, "b-5", bookings[2].ID)
	assert.True(t, bookings[2].IsCancelled())
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()
	repo := NewRepository(store)

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	require.NoError(t, store.Set(ctx, domain.CollectionBookings, "broken", map[string]interface{}{"clientId": "u-1"}))
	_, err = repo.GetByID(ctx, "broken")
	assert.ErrorIs(t, err, ErrDecode)

	require.NoError(t, store.Set(ctx, domain.CollectionBookings, "b-1", map[string]interface{}{
		"clientId": "u-1", "trainerUID": "t-1", "scheduleSlotId": "s-1",
	}))
	b, err := repo.GetByID(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", b.ClientID)
	assert.Nil(t, b.StartTime)
}
