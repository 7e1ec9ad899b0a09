package grant_credits

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VolleyballService/internal/action"
	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/events"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/storage/credit"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/storage/docstore"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/storage/user"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
	"github.com/m04kA/SMC-VolleyballService/pkg/logger"
)

var now = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

type fixedTime struct{}

func (fixedTime) Now() time.Time { return now }

type fixedID struct{}

func (fixedID) NewID() string { return "grant-1" }

type nopMetrics struct{}

func (nopMetrics) IncAction(string, string) {}

func newFixture(t *testing.T) (*UseCase, *credit.Repository) {
	t.Helper()
	ctx := context.Background()
	store := docstore.NewMemory()

	require.NoError(t, store.Set(ctx, domain.CollectionUsers, "admin-1", map[string]interface{}{"email": "coach@example.com", "role": "admin"}))
	require.NoError(t, store.Set(ctx, domain.CollectionUsers, "u-1", map[string]interface{}{"email": "player@example.com"}))

	credits := credit.NewRepository(store)
	uc := NewUseCase(credits, user.NewRepository(store), action.NewGate(), events.Nop{}, nopMetrics{}, logger.Nop())
	uc.timeProvider = fixedTime{}
	uc.ids = fixedID{}
	return uc, credits
}

var admin = session.Session{UserID: "admin-1", IDToken: "token"}

func TestExecute_GrantsWithDefaultValidity(t *testing.T) {
	uc, credits := newFixture(t)

	resp, err := uc.Execute(context.Background(), admin, &Request{UserID: "u-1", CreditType: domain.CreditSingle, TotalCredits: 3})

	require.NoError(t, err)
	assert.Equal(t, "grant-1", resp.Credit.ID)
	assert.True(t, now.Equal(resp.Credit.PurchaseDate))
	assert.True(t, now.AddDate(1, 0, 0).Equal(resp.Credit.ExpirationDate))

	stored, err := credits.GetByID(context.Background(), "u-1", "grant-1")
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Remaining())
	assert.Equal(t, domain.CreditSingle, stored.CreditType)
	assert.True(t, stored.IsUsable(now))
}

func TestExecute_ExplicitExpiration(t *testing.T) {
	uc, _ := newFixture(t)
	exp := now.AddDate(0, 3, 0)

	resp, err := uc.Execute(context.Background(), admin, &Request{UserID: "u-1", CreditType: domain.CreditClassPass, TotalCredits: 1, ExpirationDate: &exp})

	require.NoError(t, err)
	assert.True(t, exp.Equal(resp.Credit.ExpirationDate))
}

func TestExecute_Rejections(t *testing.T) {
	uc, _ := newFixture(t)
	past := now.Add(-time.Hour)

	tests := []struct {
		name    string
		sess    session.Session
		req     *Request
		wantErr error
	}{
		{"not logged in", session.Session{}, &Request{UserID: "u-1", CreditType: domain.CreditSingle, TotalCredits: 1}, session.ErrNotAuthenticated},
		{"not admin", session.Session{UserID: "u-1"}, &Request{UserID: "u-1", CreditType: domain.CreditSingle, TotalCredits: 1}, ErrAdminRequired},
		{"unknown user", admin, &Request{UserID: "ghost", CreditType: domain.CreditSingle, TotalCredits: 1}, ErrUserNotFound},
		{"unknown type", admin, &Request{UserID: "u-1", CreditType: "gold", TotalCredits: 1}, ErrInvalidInput},
		{"zero credits", admin, &Request{UserID: "u-1", CreditType: domain.CreditSingle}, ErrInvalidInput},
		{"past expiration", admin, &Request{UserID: "u-1", CreditType: domain.CreditSingle, TotalCredits: 1, ExpirationDate: &past}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.sess, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
