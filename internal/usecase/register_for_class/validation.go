package register_for_class

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ClassID) == "" {
		return fmt.Errorf("%w: classId is required", ErrInvalidInput)
	}
	return nil
}
