package register_for_class

import (
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	classModels "github.com/m04kA/SMC-VolleyballService/internal/service/classes/models"
	creditModels "github.com/m04kA/SMC-VolleyballService/internal/service/credits/models"
	registerForClass "github.com/m04kA/SMC-VolleyballService/internal/usecase/register_for_class"
)

// RegisterRequest HTTP request model; тело необязательно
type RegisterRequest struct {
	CreditID string `json:"creditId,omitempty"`
}

// RegisterResponse HTTP response model
type RegisterResponse struct {
	Message      string                           `json:"message,omitempty"`
	CreditID     string                           `json:"creditId"`
	AutoSelected bool                             `json:"autoSelected"`
	Class        *classModels.ClassResponse       `json:"class,omitempty"`
	Credits      *creditModels.CreditListResponse `json:"credits,omitempty"`
}

// PassRequiredResponse предложение купить абонемент
type PassRequiredResponse struct {
	Error       string `json:"error"`
	CreditType  string `json:"creditType"`
	AmountCents int64  `json:"amountCents"`
	Display     string `json:"display"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *registerForClass.Response, now time.Time) *RegisterResponse {
	out := &RegisterResponse{
		Message:      resp.Message,
		CreditID:     resp.CreditID,
		AutoSelected: resp.AutoSelected,
	}
	if resp.Class != nil {
		class := classModels.FromDomainClass(resp.Class, true)
		out.Class = &class
	}
	if resp.Credits != nil {
		out.Credits = creditModels.FromDomainCreditList(resp.Credits, now)
	}
	return out
}

func passRequired(message string) *PassRequiredResponse {
	cents, _ := domain.PriceCents(domain.CreditClassPass)
	return &PassRequiredResponse{
		Error:       message,
		CreditType:  string(domain.CreditClassPass),
		AmountCents: cents,
		Display:     domain.FormatUSD(cents),
	}
}
