package get_trainers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VolleyballService/internal/api/handlers"
	"github.com/m04kA/SMC-VolleyballService/internal/service/trainers"
)

const (
	msgNotFound = "trainer not found"
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

// HandleList GET /api/v1/trainers
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /trainers - Failed to list trainers: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/trainers/{trainerId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	trainerID := mux.Vars(r)["trainerId"]

	result, err := h.service.Get(r.Context(), trainerID)
	if err != nil {
		h.respondError(w, "GET /trainers/{id}", trainerID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSlots GET /api/v1/trainers/{trainerId}/slots
func (h *Handler) HandleSlots(w http.ResponseWriter, r *http.Request) {
	trainerID := mux.Vars(r)["trainerId"]

	result, err := h.service.ListOpenSlots(r.Context(), trainerID)
	if err != nil {
		h.respondError(w, "GET /trainers/{id}/slots", trainerID, err)
		return
	}

	h.logger.Info("GET /trainers/{id}/slots - Slots retrieved: trainer_id=%s, count=%d", trainerID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route, trainerID string, err error) {
	if errors.Is(err, trainers.ErrTrainerNotFound) {
		h.logger.Warn("%s - Trainer not found: trainer_id=%s", route, trainerID)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}
	h.logger.Error("%s - Failed: trainer_id=%s, error=%v", route, trainerID, err)
	handlers.RespondInternalError(w)
}
