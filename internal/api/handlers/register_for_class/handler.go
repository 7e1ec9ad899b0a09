package register_for_class

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VolleyballService/internal/api/handlers"
	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
	registerForClass "github.com/m04kA/SMC-VolleyballService/internal/usecase/register_for_class"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidClassID     = "invalid class ID"
	msgNotFound           = "class not found"
	msgAlreadyRegistered  = "you are already registered for this class"
	msgPassRequired       = "a class pass is required to register"
)

type Handler struct {
	useCase RegisterForClassUseCase
	logger  Logger
}

func NewHandler(useCase RegisterForClassUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/classes/{classId}/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	classID := mux.Vars(r)["classId"]

	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /classes/{id}/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess := middleware.GetSession(r)

	result, err := h.useCase.Execute(r.Context(), sess, &registerForClass.Request{ClassID: classID, CreditID: req.CreditID})
	if err != nil {
		switch {
		case errors.Is(err, registerForClass.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidClassID)

		case errors.Is(err, registerForClass.ErrClassNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, registerForClass.ErrAlreadyRegistered):
			handlers.RespondConflict(w, msgAlreadyRegistered)

		case errors.Is(err, registerForClass.ErrPassRequired):
			h.logger.Info("POST /classes/{id}/register - Pass required: class_id=%s, user_id=%s", classID, sess.UserID)
			handlers.RespondJSON(w, http.StatusPaymentRequired, passRequired(msgPassRequired))

		default:
			if handlers.RespondCommonError(w, err) {
				h.logger.Warn("POST /classes/{id}/register - Rejected: class_id=%s, error=%v", classID, err)
				return
			}
			h.logger.Error("POST /classes/{id}/register - Failed to register: class_id=%s, error=%v", classID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /classes/{id}/register - Registered: class_id=%s, user_id=%s", classID, sess.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, time.Now()))
}
