package purchase_credits

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/api/handlers"
	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
	purchaseCredits "github.com/m04kA/SMC-VolleyballService/internal/usecase/purchase_credits"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownCreditType  = "unknown credit type"
	msgInvalidPayment     = "invalid payment data"
	msgPaymentFailed      = "payment failed, please try another card"
)

const (
	statusCompleted = "completed"
	statusCancelled = "cancelled"
)

type Handler struct {
	useCase PurchaseUseCase
	logger  Logger
}

func NewHandler(useCase PurchaseUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleStart POST /api/v1/payments/intents
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/intents - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess := middleware.GetSession(r)

	result, err := h.useCase.Start(r.Context(), sess, req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, purchaseCredits.ErrUnknownCreditType):
			handlers.RespondBadRequest(w, msgUnknownCreditType)

		case errors.Is(err, purchaseCredits.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPayment)

		default:
			if handlers.RespondCommonError(w, err) {
				h.logger.Warn("POST /payments/intents - Rejected: credit_type=%s, error=%v", req.CreditType, err)
				return
			}
			h.logger.Error("POST /payments/intents - Failed to start payment: credit_type=%s, error=%v", req.CreditType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/intents - Payment started: user_id=%s, credit_type=%s, amount=%d", sess.UserID, result.CreditType, result.AmountCents)
	handlers.RespondJSON(w, http.StatusCreated, FromStartResponse(result))
}

// HandleComplete POST /api/v1/payments/complete
func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	var req CompleteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/complete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess := middleware.GetSession(r)

	result, err := h.useCase.Complete(r.Context(), sess, req.ToUseCaseRequest())
	if err != nil {
		switch {
		case purchaseCredits.IsCancelled(err):
			h.logger.Info("POST /payments/complete - Payment cancelled by user: user_id=%s", sess.UserID)
			handlers.RespondJSON(w, http.StatusOK, handlers.StatusResponse{Status: statusCancelled})

		case errors.Is(err, purchaseCredits.ErrPaymentFailed):
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentFailed)

		case errors.Is(err, purchaseCredits.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPayment)

		default:
			if handlers.RespondCommonError(w, err) {
				h.logger.Warn("POST /payments/complete - Rejected: error=%v", err)
				return
			}
			h.logger.Error("POST /payments/complete - Failed to confirm payment: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/complete - Payment confirmed: user_id=%s, payment_id=%s", sess.UserID, result.PaymentIntentID)
	handlers.RespondJSON(w, http.StatusOK, FromCompleteResponse(result, time.Now()))
}
