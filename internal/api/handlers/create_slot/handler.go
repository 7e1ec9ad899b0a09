package create_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VolleyballService/internal/api/handlers"
	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
	"github.com/m04kA/SMC-VolleyballService/internal/service/trainers"
	"github.com/m04kA/SMC-VolleyballService/internal/service/trainers/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSlot        = "endTime must be after startTime"
	msgAdminRequired      = "admin role required"
	msgTrainerNotFound    = "trainer not found"
)

type Handler struct {
	service TrainerService
	logger  Logger
}

func NewHandler(service TrainerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/trainers/{trainerId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trainerID := mux.Vars(r)["trainerId"]

	var req models.CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/trainers/{id}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess := middleware.GetSession(r)

	result, err := h.service.CreateSlot(r.Context(), sess, trainerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, trainers.ErrAdminRequired):
			h.logger.Warn("POST /admin/trainers/{id}/slots - Forbidden: user_id=%s", sess.UserID)
			handlers.RespondForbidden(w, msgAdminRequired)

		case errors.Is(err, trainers.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, trainers.ErrTrainerNotFound):
			handlers.RespondNotFound(w, msgTrainerNotFound)

		default:
			if handlers.RespondCommonError(w, err) {
				return
			}
			h.logger.Error("POST /admin/trainers/{id}/slots - Failed to create slot: trainer_id=%s, error=%v", trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/trainers/{id}/slots - Slot created: trainer_id=%s, slot_id=%s", trainerID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
