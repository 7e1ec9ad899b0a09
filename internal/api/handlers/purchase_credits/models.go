package purchase_credits

import (
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	creditModels "github.com/m04kA/SMC-VolleyballService/internal/service/credits/models"
	purchaseCredits "github.com/m04kA/SMC-VolleyballService/internal/usecase/purchase_credits"
)

// StartRequest HTTP request model
type StartRequest struct {
	CreditType string `json:"creditType"`
	TrainerID  string `json:"trainerId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в use case request
func (r *StartRequest) ToUseCaseRequest() *purchaseCredits.StartRequest {
	return &purchaseCredits.StartRequest{
		CreditType: domain.CreditType(r.CreditType),
		TrainerID:  r.TrainerID,
	}
}

// StartResponse данные для платежной формы
type StartResponse struct {
	ClientSecret string `json:"clientSecret"`
	CustomerID   string `json:"customerId"`
	CreditType   string `json:"creditType"`
	AmountCents  int64  `json:"amountCents"`
	Display      string `json:"display"`
}

// FromStartResponse конвертирует ответ use case в HTTP response
func FromStartResponse(resp *purchaseCredits.StartResponse) *StartResponse {
	return &StartResponse{
		ClientSecret: resp.ClientSecret,
		CustomerID:   resp.CustomerID,
		CreditType:   string(resp.CreditType),
		AmountCents:  resp.AmountCents,
		Display:      resp.Display,
	}
}

// CompleteRequest результат платежной формы
type CompleteRequest struct {
	Outcome         string `json:"outcome"`
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в use case request
func (r *CompleteRequest) ToUseCaseRequest() *purchaseCredits.CompleteRequest {
	return &purchaseCredits.CompleteRequest{
		Outcome:         domain.PaymentOutcome(r.Outcome),
		ClientSecret:    r.ClientSecret,
		PaymentIntentID: r.PaymentIntentID,
	}
}

// CompleteResponse подтвержденный платеж и свежие кредиты
type CompleteResponse struct {
	Status          string                           `json:"status"`
	PaymentIntentID string                           `json:"paymentIntentId"`
	Credits         *creditModels.CreditListResponse `json:"credits,omitempty"`
}

// FromCompleteResponse конвертирует ответ use case в HTTP response
func FromCompleteResponse(resp *purchaseCredits.CompleteResponse, now time.Time) *CompleteResponse {
	out := &CompleteResponse{
		Status:          statusCompleted,
		PaymentIntentID: resp.PaymentIntentID,
	}
	if resp.Credits != nil {
		out.Credits = creditModels.FromDomainCreditList(resp.Credits, now)
	}
	return out
}
