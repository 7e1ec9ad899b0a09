package classes

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VolleyballService/internal/service/classes/models"
)

// validateClassRequest валидирует данные занятия
func validateClassRequest(req *models.ClassRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if !req.EndTime.IsZero() && !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	if req.MaxParticipants <= 0 {
		return fmt.Errorf("%w: maxParticipants must be positive", ErrInvalidInput)
	}

	return nil
}
