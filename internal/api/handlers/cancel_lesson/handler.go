package cancel_lesson

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VolleyballService/internal/api/handlers"
	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
	cancelLesson "github.com/m04kA/SMC-VolleyballService/internal/usecase/cancel_lesson"
)

const (
	msgInvalidBookingID = "invalid booking ID"
	msgNotFound         = "booking not found"
	msgForbidden        = "access denied"
	msgAlreadyCancelled = "booking is already cancelled"
	msgStartTimeUnknown = "booking start time is not known yet, please try again later"
)

type Handler struct {
	useCase CancelLessonUseCase
	logger  Logger
}

func NewHandler(useCase CancelLessonUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	sess := middleware.GetSession(r)

	result, err := h.useCase.Execute(r.Context(), sess, &cancelLesson.Request{BookingID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, cancelLesson.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, cancelLesson.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelLesson.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/cancel - Access denied: booking_id=%s, user_id=%s", bookingID, sess.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelLesson.ErrAlreadyCancelled):
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, cancelLesson.ErrStartUnknown):
			handlers.RespondConflict(w, msgStartTimeUnknown)

		default:
			if handlers.RespondCommonError(w, err) {
				h.logger.Warn("POST /bookings/{id}/cancel - Rejected: booking_id=%s, error=%v", bookingID, err)
				return
			}
			h.logger.Error("POST /bookings/{id}/cancel - Failed to cancel: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/cancel - Booking cancelled: booking_id=%s, user_id=%s", bookingID, sess.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, time.Now()))
}
