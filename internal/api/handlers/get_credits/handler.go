package get_credits

import (
	"net/http"

	"github.com/m04kA/SMC-VolleyballService/internal/api/handlers"
	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
)

type Handler struct {
	service CreditService
	logger  Logger
}

func NewHandler(service CreditService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/credits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	result, err := h.service.ListMine(r.Context(), sess)
	if err != nil {
		if handlers.RespondCommonError(w, err) {
			return
		}
		h.logger.Error("GET /credits - Failed to get credits: user_id=%s, error=%v", sess.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /credits - Credits retrieved: user_id=%s, count=%d, lessons_remaining=%d",
		sess.UserID, len(result.Credits), result.LessonCreditsRemaining)
	handlers.RespondJSON(w, http.StatusOK, result)
}
