package get_credits

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	creditRepo "github.com/m04kA/SMC-VolleyballService/internal/infra/storage/credit"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/storage/docstore"
	"github.com/m04kA/SMC-VolleyballService/internal/reconcile"
	creditsService "github.com/m04kA/SMC-VolleyballService/internal/service/credits"
	"github.com/m04kA/SMC-VolleyballService/internal/service/credits/models"
	"github.com/m04kA/SMC-VolleyballService/pkg/logger"
)

func TestHandle(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()
	expires := time.Now().AddDate(0, 3, 0).UTC().Truncate(time.Second)
	for _, c := range []domain.LessonCredit{
		{ID: "c-1", UserID: "u-1", CreditType: domain.CreditSingle, TotalCredits: 5, UsedCredits: 2, ExpirationDate: expires},
		{ID: "c-2", UserID: "u-1", CreditType: domain.CreditClassPass, TotalCredits: 3, ExpirationDate: expires},
	} {
		require.NoError(t, store.Set(ctx, domain.UserPackagesPath("u-1"), c.ID, reconcile.CreditDocument(c)))
	}
	h := NewHandler(creditsService.NewService(creditRepo.NewRepository(store), logger.Nop()), logger.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/credits", nil)
	req.Header.Set(middleware.HeaderUserID, "u-1")
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.CreditListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body.Credits, 2)
	assert.Equal(t, 3, body.LessonCreditsRemaining)
	assert.Equal(t, 3, body.ClassPassesRemaining)
}

func TestHandle_Unauthenticated(t *testing.T) {
	h := NewHandler(creditsService.NewService(creditRepo.NewRepository(docstore.NewMemory()), logger.Nop()), logger.Nop())

	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/credits", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
