package models

import "github.com/m04kA/SMC-VolleyballService/internal/domain"

// PaymentMethodResponse сохраненная карта
type PaymentMethodResponse struct {
	ID       string `json:"id"`
	Brand    string `json:"brand"`
	Last4    string `json:"last4"`
	ExpMonth int    `json:"expMonth"`
	ExpYear  int    `json:"expYear"`
}

// PaymentMethodListResponse список карт
type PaymentMethodListResponse struct {
	PaymentMethods []PaymentMethodResponse `json:"paymentMethods"`
}

// PriceResponse цена типа кредита
type PriceResponse struct {
	CreditType  string `json:"creditType"`
	AmountCents int64  `json:"amountCents"`
	Display     string `json:"display"`
}

// PriceListResponse прайс-лист
type PriceListResponse struct {
	Prices []PriceResponse `json:"prices"`
}

// FromDomainPaymentMethods конвертирует список карт
func FromDomainPaymentMethods(methods []domain.PaymentMethod) *PaymentMethodListResponse {
	resp := &PaymentMethodListResponse{PaymentMethods: make([]PaymentMethodResponse, 0, len(methods))}
	for _, m := range methods {
		resp.PaymentMethods = append(resp.PaymentMethods, PaymentMethodResponse{
			ID:       m.ID,
			Brand:    m.Brand,
			Last4:    m.Last4,
			ExpMonth: m.ExpMonth,
			ExpYear:  m.ExpYear,
		})
	}
	return resp
}
