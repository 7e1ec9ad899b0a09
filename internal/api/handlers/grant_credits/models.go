package grant_credits

import (
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	creditModels "github.com/m04kA/SMC-VolleyballService/internal/service/credits/models"
	grantCredits "github.com/m04kA/SMC-VolleyballService/internal/usecase/grant_credits"
)

// GrantRequest HTTP request model
type GrantRequest struct {
	UserID         string     `json:"userId"`
	CreditType     string     `json:"creditType"`
	TotalCredits   int        `json:"totalCredits"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в use case request
func (r *GrantRequest) ToUseCaseRequest() *grantCredits.Request {
	return &grantCredits.Request{
		UserID:         r.UserID,
		CreditType:     domain.CreditType(r.CreditType),
		TotalCredits:   r.TotalCredits,
		ExpirationDate: r.ExpirationDate,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *grantCredits.Response, now time.Time) creditModels.CreditResponse {
	return creditModels.FromDomainCredit(resp.Credit, now)
}
