package waivers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VolleyballService/internal/api/handlers"
	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
	"github.com/m04kA/SMC-VolleyballService/internal/service/waivers"
	"github.com/m04kA/SMC-VolleyballService/internal/service/waivers/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSignerRequired     = "signerName is required"
)

type Handler struct {
	service WaiverService
	logger  Logger
}

func NewHandler(service WaiverService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleStatus GET /api/v1/waivers
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	result, err := h.service.Status(r.Context(), sess)
	if err != nil {
		if handlers.RespondCommonError(w, err) {
			return
		}
		h.logger.Error("GET /waivers - Failed: user_id=%s, error=%v", sess.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSign POST /api/v1/waivers
func (h *Handler) HandleSign(w http.ResponseWriter, r *http.Request) {
	var req models.SignWaiverRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /waivers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess := middleware.GetSession(r)

	result, err := h.service.Sign(r.Context(), sess, &req)
	if err != nil {
		switch {
		case errors.Is(err, waivers.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgSignerRequired)

		default:
			if handlers.RespondCommonError(w, err) {
				return
			}
			h.logger.Error("POST /waivers - Failed to sign: user_id=%s, error=%v", sess.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /waivers - Waiver signed: user_id=%s, version=%s", sess.UserID, result.Version)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
