package purchase_credits

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VolleyballService/internal/action"
	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/events"
	"github.com/m04kA/SMC-VolleyballService/internal/integrations/functions"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
	"github.com/m04kA/SMC-VolleyballService/pkg/logger"
)

type paymentCall struct {
	creditType domain.CreditType
	cents      int64
	trainerID  string
	userID     string
}

type fakeFunctions struct {
	customerErr error
	intents     []paymentCall
	confirmed   []string
	confirmErr  error
}

func (f *fakeFunctions) GetOrCreateCustomer(_ context.Context, _ session.Session, userID string) (string, error) {
	if f.customerErr != nil {
		return "", f.customerErr
	}
	return "cus_" + userID, nil
}

func (f *fakeFunctions) CreatePaymentIntent(_ context.Context, _ session.Session, creditType domain.CreditType, cents int64, trainerID, userID string) (string, error) {
	f.intents = append(f.intents, paymentCall{creditType: creditType, cents: cents, trainerID: trainerID, userID: userID})
	return "pi_123_secret_abc", nil
}

func (f *fakeFunctions) ConfirmPaymentAndCreatePackage(_ context.Context, _ session.Session, paymentIntentID, _ string) error {
	if f.confirmErr != nil {
		return f.confirmErr
	}
	f.confirmed = append(f.confirmed, paymentIntentID)
	return nil
}

type stubCredits struct {
	calls int
}

func (s *stubCredits) ListByUser(_ context.Context, userID string) ([]domain.LessonCredit, error) {
	s.calls++
	return []domain.LessonCredit{{ID: "new", UserID: userID, CreditType: domain.CreditClassPass, TotalCredits: 1}}, nil
}

type countingMetrics struct {
	outcomes map[string][]string
}

func (m *countingMetrics) IncAction(action, outcome string) {
	if m.outcomes == nil {
		m.outcomes = map[string][]string{}
	}
	m.outcomes[action] = append(m.outcomes[action], outcome)
}

func newUseCase() (*UseCase, *fakeFunctions, *stubCredits, *countingMetrics) {
	fn := &fakeFunctions{}
	credits := &stubCredits{}
	metrics := &countingMetrics{}
	uc := NewUseCase(credits, fn, action.NewGate(), events.Nop{}, metrics, logger.Nop())
	uc.timeProvider = fixedTime{}
	return uc, fn, credits, metrics
}

type fixedTime struct{}

func (fixedTime) Now() time.Time { return time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC) }

var client = session.Session{UserID: "u-1", IDToken: "token"}

func TestStart_UsesPriceTable(t *testing.T) {
	tests := []struct {
		creditType domain.CreditType
		cents      int64
		display    string
	}{
		{domain.CreditSingle, 8000, "$80.00"},
		{domain.CreditTwoAthlete, 14000, "$140.00"},
		{domain.CreditThreeAthlete, 18000, "$180.00"},
		{domain.CreditClassPass, 4500, "$45.00"},
	}

	for _, tt := range tests {
		t.Run(string(tt.creditType), func(t *testing.T) {
			uc, fn, _, _ := newUseCase()

			resp, err := uc.Start(context.Background(), client, &StartRequest{CreditType: tt.creditType, TrainerID: "t-1"})

			require.NoError(t, err)
			assert.Equal(t, "pi_123_secret_abc", resp.ClientSecret)
			assert.Equal(t, "cus_u-1", resp.CustomerID)
			assert.Equal(t, tt.cents, resp.AmountCents)
			assert.Equal(t, tt.display, resp.Display)
			require.Len(t, fn.intents, 1)
			assert.Equal(t, paymentCall{creditType: tt.creditType, cents: tt.cents, trainerID: "t-1", userID: "u-1"}, fn.intents[0])
		})
	}
}

func TestStart_Rejections(t *testing.T) {
	uc, fn, _, _ := newUseCase()

	_, err := uc.Start(context.Background(), client, &StartRequest{CreditType: "gold"})
	assert.ErrorIs(t, err, ErrUnknownCreditType)

	_, err = uc.Start(context.Background(), client, &StartRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Start(context.Background(), session.Session{}, &StartRequest{CreditType: domain.CreditSingle})
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)

	fn.customerErr = &functions.ServerError{Procedure: functions.ProcGetOrCreateCustomer, Message: "Stripe unavailable"}
	_, err = uc.Start(context.Background(), client, &StartRequest{CreditType: domain.CreditSingle})
	var serverErr *functions.ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, "Stripe unavailable", serverErr.Message)

	assert.Empty(t, fn.intents)
}

func TestComplete_ConfirmsAndReloads(t *testing.T) {
	uc, fn, credits, metrics := newUseCase()

	resp, err := uc.Complete(context.Background(), client, &CompleteRequest{
		Outcome:      domain.PaymentCompleted,
		ClientSecret: "pi_123_secret_abc",
	})

	require.NoError(t, err)
	assert.Equal(t, "pi_123", resp.PaymentIntentID)
	assert.Equal(t, []string{"pi_123"}, fn.confirmed)
	assert.Equal(t, 1, credits.calls)
	assert.Len(t, resp.Credits, 1)
	assert.Equal(t, []string{"succeeded"}, metrics.outcomes[ActionComplete])
}

func TestComplete_CancelledIsSilent(t *testing.T) {
	uc, fn, credits, metrics := newUseCase()

	resp, err := uc.Complete(context.Background(), client, &CompleteRequest{Outcome: domain.PaymentCanceled})

	assert.Nil(t, resp)
	assert.True(t, IsCancelled(err))
	assert.Empty(t, fn.confirmed)
	assert.Zero(t, credits.calls)
	assert.Equal(t, []string{"cancelled"}, metrics.outcomes[ActionComplete])
}

func TestComplete_FailedAndInvalid(t *testing.T) {
	uc, fn, _, _ := newUseCase()

	_, err := uc.Complete(context.Background(), client, &CompleteRequest{Outcome: domain.PaymentFailed})
	assert.ErrorIs(t, err, ErrPaymentFailed)

	_, err = uc.Complete(context.Background(), client, &CompleteRequest{Outcome: "unknown"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Complete(context.Background(), client, &CompleteRequest{Outcome: domain.PaymentCompleted, ClientSecret: "garbage"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	fn.confirmErr = functions.ErrInternal
	_, err = uc.Complete(context.Background(), client, &CompleteRequest{Outcome: domain.PaymentCompleted, PaymentIntentID: "pi_9"})
	assert.ErrorIs(t, err, functions.ErrInternal)

	assert.Empty(t, fn.confirmed)
}
