package grant_credits

import (
	"fmt"
	"strings"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if !req.CreditType.IsKnown() {
		return fmt.Errorf("%w: unknown creditType %q", ErrInvalidInput, req.CreditType)
	}

	if req.TotalCredits < 1 || req.TotalCredits > maxGrantCredits {
		return fmt.Errorf("%w: totalCredits must be between 1 and %d", ErrInvalidInput, maxGrantCredits)
	}

	if req.ExpirationDate != nil && !req.ExpirationDate.After(now) {
		return fmt.Errorf("%w: expirationDate must be in the future", ErrInvalidInput)
	}

	return nil
}
