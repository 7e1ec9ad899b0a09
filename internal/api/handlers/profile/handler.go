package profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VolleyballService/internal/api/handlers"
	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
	"github.com/m04kA/SMC-VolleyballService/internal/service/profile"
	"github.com/m04kA/SMC-VolleyballService/internal/service/profile/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidEmail       = "email is malformed"
	msgNotFound           = "profile not found"
)

type Handler struct {
	service ProfileService
	logger  Logger
}

func NewHandler(service ProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/v1/profile
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	result, err := h.service.Get(r.Context(), sess)
	if err != nil {
		h.respondError(w, "GET /profile", sess.UserID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/profile
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess := middleware.GetSession(r)

	result, err := h.service.Update(r.Context(), sess, &req)
	if err != nil {
		h.respondError(w, "PUT /profile", sess.UserID, err)
		return
	}

	h.logger.Info("PUT /profile - Profile updated: user_id=%s", sess.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route, userID string, err error) {
	switch {
	case errors.Is(err, profile.ErrProfileNotFound):
		h.logger.Warn("%s - Profile not found: user_id=%s", route, userID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, profile.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidEmail)

	default:
		if handlers.RespondCommonError(w, err) {
			return
		}
		h.logger.Error("%s - Failed: user_id=%s, error=%v", route, userID, err)
		handlers.RespondInternalError(w)
	}
}
