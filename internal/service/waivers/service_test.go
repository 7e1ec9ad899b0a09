package waivers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/storage/docstore"
	userRepo "github.com/m04kA/SMC-VolleyballService/internal/infra/storage/user"
	"github.com/m04kA/SMC-VolleyballService/internal/service/waivers/models"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
	"github.com/m04kA/SMC-VolleyballService/pkg/logger"
)

type fixedTime time.Time

func (f fixedTime) Now() time.Time { return time.Time(f) }

type fixedID string

func (f fixedID) NewID() string { return string(f) }

func TestService_SignAndStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	store := docstore.NewMemory()

	// подпись прошлой версии не считается
	require.NoError(t, store.Set(ctx, domain.UserDocumentsPath("u-1"), "old", map[string]interface{}{
		"documentType": domain.DocumentTypeLiabilityWaiver,
		"version":      "2023-01",
		"signerName":   "Ana",
		"signedAt":     now.AddDate(-1, 0, 0),
	}))

	svc := NewService(userRepo.NewRepository(store), logger.Nop())
	svc.timeProvider = fixedTime(now)
	svc.ids = fixedID("doc-1")
	sess := session.Session{UserID: "u-1"}

	status, err := svc.Status(ctx, sess)
	require.NoError(t, err)
	assert.False(t, status.Signed)
	assert.Len(t, status.Documents, 1)

	signed, err := svc.Sign(ctx, sess, &models.SignWaiverRequest{SignerName: " Ana Silva ", ParticipantName: "Mia"})
	require.NoError(t, err)
	assert.Equal(t, "doc-1", signed.ID)
	assert.Equal(t, "Ana Silva", signed.SignerName)
	assert.Equal(t, domain.CurrentWaiverVersion, signed.Version)

	status, err = svc.Status(ctx, sess)
	require.NoError(t, err)
	assert.True(t, status.Signed)
	require.Len(t, status.Documents, 2)
	assert.Equal(t, "doc-1", status.Documents[0].ID)
	assert.Equal(t, "Mia", status.Documents[0].ParticipantName)

	_, err = svc.Sign(ctx, sess, &models.SignWaiverRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
