package book_lesson

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VolleyballService/internal/action"
	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/eligibility"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/events"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/storage/credit"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/storage/docstore"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-VolleyballService/internal/integrations/functions"
	"github.com/m04kA/SMC-VolleyballService/internal/reconcile"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
	"github.com/m04kA/SMC-VolleyballService/pkg/logger"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

var now = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

type fixedTime struct{}

func (fixedTime) Now() time.Time { return now }

type nopMetrics struct{}

func (nopMetrics) IncAction(string, string) {}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

// fakeBackend имитирует bookLesson: списывает кредит, занимает слот, создает бронирование
type fakeBackend struct {
	store   *docstore.Memory
	calls   []string
	err     error
	release chan struct{}
}

func (b *fakeBackend) BookLesson(ctx context.Context, sess session.Session, trainerID, slotID, creditID string) (*functions.BookLessonResult, error) {
	b.calls = append(b.calls, creditID)
	if b.release != nil {
		<-b.release
	}
	if b.err != nil {
		return nil, b.err
	}

	if err := b.store.Merge(ctx, domain.UserPackagesPath(sess.UserID), creditID, map[string]interface{}{"usedCredits": 1}); err != nil {
		return nil, err
	}
	if err := b.store.Merge(ctx, domain.TrainerSchedulesPath(trainerID), slotID, map[string]interface{}{"status": "booked"}); err != nil {
		return nil, err
	}

	// ответ в устаревшем формате
	raw := map[string]interface{}{
		"id":        "booking-1",
		"trainerId": trainerID,
		"slotId":    slotID,
		"packageId": creditID,
		"startTime": map[string]interface{}{"_seconds": float64(now.Add(6 * time.Hour).Unix())},
	}
	booking, err := reconcile.Booking("", raw)
	if err != nil {
		return nil, err
	}
	return &functions.BookLessonResult{Booking: &booking}, nil
}

type fixture struct {
	store     *docstore.Memory
	backend   *fakeBackend
	publisher *recordingPublisher
	gate      *action.Gate
	uc        *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := docstore.NewMemory()
	backend := &fakeBackend{store: store}
	publisher := &recordingPublisher{}
	gate := action.NewGate()

	uc := NewUseCase(
		schedule.NewRepository(store),
		credit.NewRepository(store),
		backend,
		gate,
		publisher,
		nopMetrics{},
		logger.Nop(),
	)
	uc.timeProvider = fixedTime{}

	return &fixture{store: store, backend: backend, publisher: publisher, gate: gate, uc: uc}
}

func (f *fixture) addCredit(t *testing.T, c domain.LessonCredit) {
	t.Helper()
	require.NoError(t, f.store.Set(context.Background(), domain.UserPackagesPath(c.UserID), c.ID, reconcile.CreditDocument(c)))
}

func (f *fixture) addSlot(t *testing.T, s domain.AvailabilitySlot) {
	t.Helper()
	require.NoError(t, f.store.Set(context.Background(), domain.TrainerSchedulesPath(s.TrainerID), s.ID, reconcile.SlotDocument(s)))
}

func single(id string, expiresIn time.Duration) domain.LessonCredit {
	return domain.LessonCredit{
		ID:             id,
		UserID:         "u-1",
		CreditType:     domain.CreditSingle,
		TotalCredits:   1,
		PurchaseDate:   now.AddDate(0, -1, 0),
		ExpirationDate: now.Add(expiresIn),
	}
}

var client = session.Session{UserID: "u-1", IDToken: "token"}

// =============================================================================
// TESTS
// =============================================================================

func TestExecute_EndToEnd_PicksSoonestExpiringAndRefreshes(t *testing.T) {
	// GIVEN: два кредита single (3 и 10 дней), абонементов нет, слот через 6 часов
	f := newFixture(t)
	f.addCredit(t, single("credit-10d", 10*24*time.Hour))
	f.addCredit(t, single("credit-3d", 3*24*time.Hour))
	f.addSlot(t, domain.AvailabilitySlot{ID: "slot-1", TrainerID: "t-1", StartTime: now.Add(6 * time.Hour), EndTime: now.Add(7 * time.Hour), Status: domain.SlotOpen})
	f.addSlot(t, domain.AvailabilitySlot{ID: "slot-2", TrainerID: "t-1", StartTime: now.Add(30 * time.Hour), EndTime: now.Add(31 * time.Hour), Status: domain.SlotOpen})

	// WHEN: бронируем без явного кредита
	resp, err := f.uc.Execute(context.Background(), client, &Request{TrainerID: "t-1", SlotID: "slot-1"})

	// THEN: выбран кредит на 3 дня, вызов ушел один раз
	require.NoError(t, err)
	assert.Equal(t, []string{"credit-3d"}, f.backend.calls)
	assert.Equal(t, "credit-3d", resp.CreditID)
	assert.True(t, resp.AutoSelected)

	require.NotNil(t, resp.Booking)
	assert.Equal(t, "booking-1", resp.Booking.ID)
	assert.Equal(t, "u-1", resp.Booking.ClientID)
	assert.Equal(t, "credit-3d", resp.Booking.CreditID)

	// списки перечитаны: кредит израсходован, слот больше не открыт
	require.Len(t, resp.Credits, 2)
	for _, c := range resp.Credits {
		if c.ID == "credit-3d" {
			assert.Equal(t, 0, c.Remaining())
		} else {
			assert.Equal(t, 1, c.Remaining())
		}
	}
	require.Len(t, resp.OpenSlots, 1)
	assert.Equal(t, "slot-2", resp.OpenSlots[0].ID)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, events.TypeLessonBooked, f.publisher.events[0].Type)
	assert.Equal(t, "booking-1", f.publisher.events[0].EntityID)

	assert.Equal(t, action.StateIdle, f.gate.State(action.Key{UserID: "u-1", Action: ActionName}))
	assert.Zero(t, f.gate.Len())
}

func TestExecute_CutoffBoundary(t *testing.T) {
	f := newFixture(t)
	f.addCredit(t, single("c-1", 48*time.Hour))
	f.addSlot(t, domain.AvailabilitySlot{ID: "edge", TrainerID: "t-1", StartTime: now.Add(5 * time.Hour), Status: domain.SlotOpen})
	f.addSlot(t, domain.AvailabilitySlot{ID: "after", TrainerID: "t-1", StartTime: now.Add(5*time.Hour + time.Second), Status: domain.SlotOpen})

	_, err := f.uc.Execute(context.Background(), client, &Request{TrainerID: "t-1", SlotID: "edge"})
	assert.ErrorIs(t, err, eligibility.ErrTooCloseToStart)
	assert.Empty(t, f.backend.calls, "remote call is never attempted")
	assert.Equal(t, action.StateIdle, f.gate.State(action.Key{UserID: "u-1", Action: ActionName}))

	_, err = f.uc.Execute(context.Background(), client, &Request{TrainerID: "t-1", SlotID: "after"})
	require.NoError(t, err)
	assert.Len(t, f.backend.calls, 1)
}

func TestExecute_NoUsableCredit(t *testing.T) {
	f := newFixture(t)
	expired := single("expired", -time.Hour)
	pass := single("pass", 48*time.Hour)
	pass.CreditType = domain.CreditClassPass
	f.addCredit(t, expired)
	f.addCredit(t, pass)
	f.addSlot(t, domain.AvailabilitySlot{ID: "s", TrainerID: "t-1", StartTime: now.Add(24 * time.Hour), Status: domain.SlotOpen})

	_, err := f.uc.Execute(context.Background(), client, &Request{TrainerID: "t-1", SlotID: "s"})
	assert.ErrorIs(t, err, eligibility.ErrNoAvailableCredit)
	assert.Empty(t, f.backend.calls)
}

func TestExecute_ExplicitCreditBypassesSelection(t *testing.T) {
	f := newFixture(t)
	f.addCredit(t, single("expired", -time.Hour))
	f.addSlot(t, domain.AvailabilitySlot{ID: "s", TrainerID: "t-1", StartTime: now.Add(24 * time.Hour), Status: domain.SlotOpen})

	resp, err := f.uc.Execute(context.Background(), client, &Request{TrainerID: "t-1", SlotID: "s", CreditID: "expired"})
	require.NoError(t, err)
	assert.Equal(t, []string{"expired"}, f.backend.calls)
	assert.False(t, resp.AutoSelected)
}

func TestExecute_SlotChecks(t *testing.T) {
	f := newFixture(t)
	f.addCredit(t, single("c", 48*time.Hour))
	f.addSlot(t, domain.AvailabilitySlot{ID: "taken", TrainerID: "t-1", StartTime: now.Add(24 * time.Hour), Status: domain.SlotBooked})

	_, err := f.uc.Execute(context.Background(), client, &Request{TrainerID: "t-1", SlotID: "taken"})
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	_, err = f.uc.Execute(context.Background(), client, &Request{TrainerID: "t-1", SlotID: "missing"})
	assert.ErrorIs(t, err, ErrSlotNotFound)

	_, err = f.uc.Execute(context.Background(), client, &Request{TrainerID: "t-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), session.Session{}, &Request{TrainerID: "t-1", SlotID: "taken"})
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)

	assert.Empty(t, f.backend.calls)
}

func TestExecute_ServerErrorIsTerminal(t *testing.T) {
	f := newFixture(t)
	f.addCredit(t, single("c", 48*time.Hour))
	f.addSlot(t, domain.AvailabilitySlot{ID: "s", TrainerID: "t-1", StartTime: now.Add(24 * time.Hour), Status: domain.SlotOpen})
	f.backend.err = &functions.ServerError{Procedure: functions.ProcBookLesson, Message: "Slot already booked"}

	_, err := f.uc.Execute(context.Background(), client, &Request{TrainerID: "t-1", SlotID: "s"})

	var serverErr *functions.ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, "Slot already booked", serverErr.Message)
	assert.Len(t, f.backend.calls, 1, "no retries")
	assert.Empty(t, f.publisher.events)
}

func TestExecute_RejectsReentryWhileInFlight(t *testing.T) {
	f := newFixture(t)
	f.addCredit(t, single("c", 48*time.Hour))
	f.addSlot(t, domain.AvailabilitySlot{ID: "s", TrainerID: "t-1", StartTime: now.Add(24 * time.Hour), Status: domain.SlotOpen})
	f.backend.release = make(chan struct{})

	firstDone := make(chan error)
	go func() {
		_, err := f.uc.Execute(context.Background(), client, &Request{TrainerID: "t-1", SlotID: "s"})
		firstDone <- err
	}()

	require.Eventually(t, func() bool {
		return f.gate.State(action.Key{UserID: "u-1", Action: ActionName}) == action.StateInFlight
	}, time.Second, time.Millisecond)

	_, err := f.uc.Execute(context.Background(), client, &Request{TrainerID: "t-1", SlotID: "s"})
	assert.ErrorIs(t, err, action.ErrInFlight)

	close(f.backend.release)
	require.NoError(t, <-firstDone)
}
