package get_classes

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VolleyballService/internal/api/handlers"
	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
	"github.com/m04kA/SMC-VolleyballService/internal/service/classes"
)

const (
	msgNotFound = "class not found"
)

// Handler чтение расписания групповых занятий, доступно и без входа
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

// HandleList GET /api/v1/classes
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	result, err := h.service.ListUpcoming(r.Context(), sess)
	if err != nil {
		h.logger.Error("GET /classes - Failed to list classes: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /classes - Classes retrieved: count=%d", len(result.Classes))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/classes/{classId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	classID := mux.Vars(r)["classId"]
	sess := middleware.GetSession(r)

	result, err := h.service.Get(r.Context(), sess, classID)
	if err != nil {
		if errors.Is(err, classes.ErrClassNotFound) {
			h.logger.Warn("GET /classes/{id} - Class not found: class_id=%s", classID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /classes/{id} - Failed to get class: class_id=%s, error=%v", classID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
