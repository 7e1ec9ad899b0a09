package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VolleyballService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/storage/docstore"
	"github.com/m04kA/SMC-VolleyballService/internal/reconcile"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
	"github.com/m04kA/SMC-VolleyballService/pkg/logger"
)

type fixedTime time.Time

func (f fixedTime) Now() time.Time { return time.Time(f) }

func TestService_ListMine(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	store := docstore.NewMemory()

	tomorrow := now.Add(23 * time.Hour)
	nextWeek := now.Add(7 * 24 * time.Hour)
	for _, b := range []domain.Booking{
		{ID: "b-soon", ClientID: "u-1", TrainerID: "t-1", SlotID: "s-1", StartTime: &tomorrow, Status: domain.StatusConfirmed},
		{ID: "b-later", ClientID: "u-1", TrainerID: "t-1", SlotID: "s-2", StartTime: &nextWeek, Status: domain.StatusConfirmed},
	} {
		require.NoError(t, store.Set(ctx, domain.CollectionBookings, b.ID, reconcile.BookingDocument(b)))
	}

	svc := NewService(bookingRepo.NewRepository(store), logger.Nop())
	svc.timeProvider = fixedTime(now)

	_, err := svc.ListMine(ctx, session.Session{})
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)

	resp, err := svc.ListMine(ctx, session.Session{UserID: "u-1"})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)

	// до начала меньше 24 часов: отменить уже нельзя
	assert.Equal(t, "b-soon", resp.Bookings[0].ID)
	assert.True(t, resp.Bookings[0].Upcoming)
	assert.False(t, resp.Bookings[0].CanCancel)

	assert.Equal(t, "b-later", resp.Bookings[1].ID)
	assert.True(t, resp.Bookings[1].CanCancel)
}

func TestService_GetByID_AccessDenied(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()
	require.NoError(t, store.Set(ctx, domain.CollectionBookings, "b-1", map[string]interface{}{
		"clientId": "u-2", "trainerUID": "t-1", "scheduleSlotId": "s-1",
	}))

	svc := NewService(bookingRepo.NewRepository(store), logger.Nop())

	_, err := svc.GetByID(ctx, session.Session{UserID: "u-1"}, "b-1")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(ctx, session.Session{UserID: "u-1"}, "b-404")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	got, err := svc.GetByID(ctx, session.Session{UserID: "u-2"}, "b-1")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)
	assert.False(t, got.Upcoming)
}
