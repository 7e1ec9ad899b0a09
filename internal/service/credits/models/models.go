package models

import (
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/eligibility"
)

// CreditResponse кредит пользователя
type CreditResponse struct {
	ID             string    `json:"id"`
	CreditType     string    `json:"creditType"`
	TotalCredits   int       `json:"totalCredits"`
	UsedCredits    int       `json:"usedCredits"`
	Remaining      int       `json:"remaining"`
	PurchaseDate   time.Time `json:"purchaseDate"`
	ExpirationDate time.Time `json:"expirationDate"`
	Expired        bool      `json:"expired"`
	Usable         bool      `json:"usable"`
}

// CreditListResponse кредиты пользователя и сводка по действующим
type CreditListResponse struct {
	Credits []CreditResponse `json:"credits"`
	// LessonCreditsRemaining занятия с тренером по действующим кредитам
	LessonCreditsRemaining int `json:"lessonCreditsRemaining"`
	// ClassPassesRemaining посещения групповых занятий по действующим абонементам
	ClassPassesRemaining int `json:"classPassesRemaining"`
}

// FromDomainCredit конвертирует domain модель в DTO
func FromDomainCredit(c *domain.LessonCredit, now time.Time) CreditResponse {
	return CreditResponse{
		ID:             c.ID,
		CreditType:     string(c.CreditType),
		TotalCredits:   c.TotalCredits,
		UsedCredits:    c.UsedCredits,
		Remaining:      c.Remaining(),
		PurchaseDate:   c.PurchaseDate,
		ExpirationDate: c.ExpirationDate,
		Expired:        c.IsExpired(now),
		Usable:         c.IsUsable(now),
	}
}

// FromDomainCreditList конвертирует список кредитов, ближайшие по сроку первыми
func FromDomainCreditList(credits []domain.LessonCredit, now time.Time) *CreditListResponse {
	resp := &CreditListResponse{
		Credits:                make([]CreditResponse, 0, len(credits)),
		LessonCreditsRemaining: eligibility.RemainingTotal(credits, eligibility.ForLesson, now),
		ClassPassesRemaining:   eligibility.RemainingTotal(credits, eligibility.ForClass, now),
	}

	for i := range credits {
		resp.Credits = append(resp.Credits, FromDomainCredit(&credits[i], now))
	}

	return resp
}
