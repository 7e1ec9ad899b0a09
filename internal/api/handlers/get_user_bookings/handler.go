package get_user_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-VolleyballService/internal/api/handlers"
	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	result, err := h.service.ListMine(r.Context(), sess)
	if err != nil {
		if handlers.RespondCommonError(w, err) {
			return
		}
		h.logger.Error("GET /bookings - Failed to get bookings: user_id=%s, error=%v", sess.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: user_id=%s, count=%d",
		sess.UserID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
