package manage_classes

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VolleyballService/internal/api/handlers"
	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
	"github.com/m04kA/SMC-VolleyballService/internal/service/classes"
	"github.com/m04kA/SMC-VolleyballService/internal/service/classes/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidClass       = "invalid class: title, start/end time and a positive capacity are required"
	msgAdminRequired      = "admin role required"
	msgNotFound           = "class not found"
	statusDeleted         = "deleted"
)

// Handler управление групповыми занятиями для администратора
type Handler struct {
	service ClassService
	logger  Logger
}

func NewHandler(service ClassService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/admin/classes
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.ClassRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/classes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), middleware.GetSession(r), &req)
	if err != nil {
		h.respondError(w, "POST /admin/classes", err)
		return
	}

	h.logger.Info("POST /admin/classes - Class created: class_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/admin/classes/{classId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	classID := mux.Vars(r)["classId"]

	var req models.ClassRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/classes/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), middleware.GetSession(r), classID, &req)
	if err != nil {
		h.respondError(w, "PUT /admin/classes/{id}", err)
		return
	}

	h.logger.Info("PUT /admin/classes/{id} - Class updated: class_id=%s", classID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/classes/{classId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	classID := mux.Vars(r)["classId"]

	if err := h.service.Delete(r.Context(), middleware.GetSession(r), classID); err != nil {
		h.respondError(w, "DELETE /admin/classes/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/classes/{id} - Class deleted: class_id=%s", classID)
	handlers.RespondJSON(w, http.StatusOK, handlers.StatusResponse{Status: statusDeleted})
}

// HandleParticipants GET /api/v1/admin/classes/{classId}/participants
func (h *Handler) HandleParticipants(w http.ResponseWriter, r *http.Request) {
	classID := mux.Vars(r)["classId"]

	result, err := h.service.ListParticipants(r.Context(), middleware.GetSession(r), classID)
	if err != nil {
		h.respondError(w, "GET /admin/classes/{id}/participants", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, classes.ErrAdminRequired):
		h.logger.Warn("%s - Forbidden: %v", route, err)
		handlers.RespondForbidden(w, msgAdminRequired)

	case errors.Is(err, classes.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidClass)

	case errors.Is(err, classes.ErrClassNotFound):
		handlers.RespondNotFound(w, msgNotFound)

	default:
		if handlers.RespondCommonError(w, err) {
			return
		}
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
