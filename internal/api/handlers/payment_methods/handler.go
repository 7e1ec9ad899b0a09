package payment_methods

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VolleyballService/internal/api/handlers"
	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
	"github.com/m04kA/SMC-VolleyballService/internal/service/payments"
)

const (
	msgInvalidMethodID = "invalid payment method ID"
	statusDetached     = "detached"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/payments/methods
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	result, err := h.service.ListMethods(r.Context(), sess)
	if err != nil {
		if handlers.RespondCommonError(w, err) {
			h.logger.Warn("GET /payments/methods - Rejected: user_id=%s, error=%v", sess.UserID, err)
			return
		}
		h.logger.Error("GET /payments/methods - Failed: user_id=%s, error=%v", sess.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDetach DELETE /api/v1/payments/methods/{paymentMethodId}
func (h *Handler) HandleDetach(w http.ResponseWriter, r *http.Request) {
	methodID := mux.Vars(r)["paymentMethodId"]
	sess := middleware.GetSession(r)

	if err := h.service.DetachMethod(r.Context(), sess, methodID); err != nil {
		if errors.Is(err, payments.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidMethodID)
			return
		}
		if handlers.RespondCommonError(w, err) {
			h.logger.Warn("DELETE /payments/methods/{id} - Rejected: method_id=%s, error=%v", methodID, err)
			return
		}
		h.logger.Error("DELETE /payments/methods/{id} - Failed: method_id=%s, error=%v", methodID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /payments/methods/{id} - Detached: user_id=%s, method_id=%s", sess.UserID, methodID)
	handlers.RespondJSON(w, http.StatusOK, handlers.StatusResponse{Status: statusDetached})
}

// HandlePrices GET /api/v1/prices
func (h *Handler) HandlePrices(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.PriceList())
}
