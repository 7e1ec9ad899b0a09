package cancel_class_registration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VolleyballService/internal/action"
	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/eligibility"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/events"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/storage/class"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/storage/docstore"
	"github.com/m04kA/SMC-VolleyballService/internal/reconcile"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
	"github.com/m04kA/SMC-VolleyballService/pkg/logger"
)

var now = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

type fixedTime struct{}

func (fixedTime) Now() time.Time { return now }

type nopMetrics struct{}

func (nopMetrics) IncAction(string, string) {}

type fakeBackend struct {
	store *docstore.Memory
	calls []string
}

func (b *fakeBackend) CancelClassRegistration(ctx context.Context, sess session.Session, classID string) error {
	b.calls = append(b.calls, classID)
	if err := b.store.Delete(ctx, domain.ClassParticipantsPath(classID), sess.UserID); err != nil {
		return err
	}
	return b.store.Merge(ctx, domain.CollectionClasses, classID, map[string]interface{}{"currentParticipants": 0})
}

func newFixture(t *testing.T, startsIn time.Duration) (*UseCase, *fakeBackend) {
	t.Helper()
	ctx := context.Background()
	store := docstore.NewMemory()

	require.NoError(t, store.Set(ctx, domain.CollectionClasses, "class-1", reconcile.ClassDocument(domain.GroupClass{
		Title:                 "Serve receive",
		StartTime:             now.Add(startsIn),
		MaxParticipants:       6,
		CurrentParticipants:   1,
		IsOpenForRegistration: true,
	})))
	require.NoError(t, store.Set(ctx, domain.ClassParticipantsPath("class-1"), "u-1", map[string]interface{}{
		"lessonPackageId": "pass-1",
	}))

	backend := &fakeBackend{store: store}
	uc := NewUseCase(class.NewRepository(store), backend, action.NewGate(), events.Nop{}, nopMetrics{}, logger.Nop())
	uc.timeProvider = fixedTime{}
	return uc, backend
}

var client = session.Session{UserID: "u-1", IDToken: "token"}

func TestExecute_CancelsRegistration(t *testing.T) {
	uc, backend := newFixture(t, 48*time.Hour)

	resp, err := uc.Execute(context.Background(), client, &Request{ClassID: "class-1"})

	require.NoError(t, err)
	assert.Equal(t, []string{"class-1"}, backend.calls)
	require.NotNil(t, resp.Class)
	assert.Equal(t, 0, resp.Class.CurrentParticipants)
}

func TestExecute_ClassCutoffMessage(t *testing.T) {
	uc, backend := newFixture(t, 24*time.Hour)

	_, err := uc.Execute(context.Background(), client, &Request{ClassID: "class-1"})

	var tooClose *eligibility.TooCloseToCancelError
	require.True(t, errors.As(err, &tooClose))
	assert.Equal(t, eligibility.KindClass, tooClose.Kind)
	assert.Contains(t, tooClose.Message(), "class registrations")
	assert.Empty(t, backend.calls)
}

func TestExecute_MustBeParticipant(t *testing.T) {
	uc, backend := newFixture(t, 48*time.Hour)

	_, err := uc.Execute(context.Background(), session.Session{UserID: "u-2"}, &Request{ClassID: "class-1"})
	assert.ErrorIs(t, err, ErrNotRegistered)

	_, err = uc.Execute(context.Background(), client, &Request{ClassID: "missing"})
	assert.ErrorIs(t, err, ErrClassNotFound)

	_, err = uc.Execute(context.Background(), client, &Request{ClassID: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Empty(t, backend.calls)
}
