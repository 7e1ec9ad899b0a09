package cancel_class_registration

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VolleyballService/internal/api/handlers"
	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
	cancelRegistration "github.com/m04kA/SMC-VolleyballService/internal/usecase/cancel_class_registration"
)

const (
	msgInvalidClassID = "invalid class ID"
	msgNotFound       = "class not found"
	msgNotRegistered  = "you are not registered for this class"
)

type Handler struct {
	useCase CancelRegistrationUseCase
	logger  Logger
}

func NewHandler(useCase CancelRegistrationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/classes/{classId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	classID := mux.Vars(r)["classId"]
	sess := middleware.GetSession(r)

	result, err := h.useCase.Execute(r.Context(), sess, &cancelRegistration.Request{ClassID: classID})
	if err != nil {
		switch {
		case errors.Is(err, cancelRegistration.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidClassID)

		case errors.Is(err, cancelRegistration.ErrClassNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelRegistration.ErrNotRegistered):
			handlers.RespondConflict(w, msgNotRegistered)

		default:
			if handlers.RespondCommonError(w, err) {
				h.logger.Warn("POST /classes/{id}/cancel - Rejected: class_id=%s, error=%v", classID, err)
				return
			}
			h.logger.Error("POST /classes/{id}/cancel - Failed to cancel registration: class_id=%s, error=%v", classID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /classes/{id}/cancel - Registration cancelled: class_id=%s, user_id=%s", classID, sess.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
