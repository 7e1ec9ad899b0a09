package book_lesson

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/api/handlers"
	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
	bookLesson "github.com/m04kA/SMC-VolleyballService/internal/usecase/book_lesson"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "trainerId and slotId are required"
	msgSlotNotFound       = "slot not found"
	msgSlotUnavailable    = "this slot is no longer available"
)

type Handler struct {
	useCase BookLessonUseCase
	logger  Logger
}

func NewHandler(useCase BookLessonUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/lessons/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookLessonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /lessons/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess := middleware.GetSession(r)

	result, err := h.useCase.Execute(r.Context(), sess, req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookLesson.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookLesson.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookLesson.ErrSlotUnavailable):
			handlers.RespondConflict(w, msgSlotUnavailable)

		default:
			if handlers.RespondCommonError(w, err) {
				h.logger.Warn("POST /lessons/book - Rejected: user_id=%s, slot_id=%s, error=%v", sess.UserID, req.SlotID, err)
				return
			}
			h.logger.Error("POST /lessons/book - Failed to book lesson: user_id=%s, slot_id=%s, error=%v",
				sess.UserID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /lessons/book - Lesson booked: user_id=%s, slot_id=%s, credit_id=%s",
		sess.UserID, req.SlotID, result.CreditID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, time.Now()))
}
