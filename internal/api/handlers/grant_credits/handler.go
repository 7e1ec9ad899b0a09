package grant_credits

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/api/handlers"
	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
	grantCredits "github.com/m04kA/SMC-VolleyballService/internal/usecase/grant_credits"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidGrant       = "invalid grant: userId, creditType and totalCredits (1-100) are required"
	msgAdminRequired      = "admin role required"
	msgUserNotFound       = "user not found"
)

type Handler struct {
	useCase GrantCreditsUseCase
	logger  Logger
}

func NewHandler(useCase GrantCreditsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/credits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GrantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/credits - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess := middleware.GetSession(r)

	result, err := h.useCase.Execute(r.Context(), sess, req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, grantCredits.ErrAdminRequired):
			h.logger.Warn("POST /admin/credits - Forbidden: user_id=%s", sess.UserID)
			handlers.RespondForbidden(w, msgAdminRequired)

		case errors.Is(err, grantCredits.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidGrant)

		case errors.Is(err, grantCredits.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			if handlers.RespondCommonError(w, err) {
				h.logger.Warn("POST /admin/credits - Rejected: error=%v", err)
				return
			}
			h.logger.Error("POST /admin/credits - Failed to grant credits: user_id=%s, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/credits - Granted: admin=%s, user_id=%s, credit_id=%s", sess.UserID, req.UserID, result.Credit.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, time.Now()))
}
