package purchase_credits

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
)

// validateStartRequest проверяет тип кредита и возвращает его цену
func validateStartRequest(req *StartRequest) (int64, error) {
	if strings.TrimSpace(string(req.CreditType)) == "" {
		return 0, fmt.Errorf("%w: creditType is required", ErrInvalidInput)
	}

	cents, ok := domain.PriceCents(req.CreditType)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCreditType, req.CreditType)
	}
	return cents, nil
}

// validateCompleteRequest проверяет результат формы
func validateCompleteRequest(req *CompleteRequest) error {
	if !req.Outcome.IsValid() {
		return fmt.Errorf("%w: unknown outcome %q", ErrInvalidInput, req.Outcome)
	}
	return nil
}

// paymentIntentID возвращает ID платежа: явный или префикс client secret
func paymentIntentID(req *CompleteRequest) (string, error) {
	if id := strings.TrimSpace(req.PaymentIntentID); id != "" {
		return id, nil
	}

	idx := strings.Index(req.ClientSecret, secretSeparator)
	if idx <= 0 {
		return "", fmt.Errorf("%w: clientSecret or paymentIntentId is required", ErrInvalidInput)
	}
	return req.ClientSecret[:idx], nil
}
