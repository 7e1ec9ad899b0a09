package grant_credits

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
	grantCredits "github.com/m04kA/SMC-VolleyballService/internal/usecase/grant_credits"
	"github.com/m04kA/SMC-VolleyballService/pkg/logger"
)

type stubUseCase struct {
	gotReq *grantCredits.Request
	err    error
}

func (s *stubUseCase) Execute(_ context.Context, _ session.Session, req *grantCredits.Request) (*grantCredits.Response, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &grantCredits.Response{Credit: &domain.LessonCredit{
		ID:             "cr-new",
		UserID:         req.UserID,
		CreditType:     req.CreditType,
		TotalCredits:   req.TotalCredits,
		ExpirationDate: time.Now().AddDate(1, 0, 0),
	}}, nil
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/credits", strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, "admin-1")
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_Granted(t *testing.T) {
	uc := &stubUseCase{}

	rec := post(NewHandler(uc, logger.Nop()), `{"userId":"u-2","creditType":"single","totalCredits":5}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "u-2", uc.gotReq.UserID)
	assert.Equal(t, domain.CreditSingle, uc.gotReq.CreditType)
	assert.Nil(t, uc.gotReq.ExpirationDate)
	assert.Contains(t, rec.Body.String(), `"remaining":5`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not admin", err: grantCredits.ErrAdminRequired, wantStatus: http.StatusForbidden},
		{name: "invalid", err: grantCredits.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "unknown user", err: grantCredits.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "storage", err: grantCredits.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(NewHandler(&stubUseCase{err: tt.err}, logger.Nop()), `{"userId":"u-2","creditType":"single","totalCredits":5}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
