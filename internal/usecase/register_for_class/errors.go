package register_for_class

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VolleyballService/internal/eligibility"
)

var (
	// ErrClassNotFound возвращается, когда занятие не найдено
	ErrClassNotFound = errors.New("register_for_class: class not found")

	// ErrAlreadyRegistered возвращается, когда пользователь уже записан
	ErrAlreadyRegistered = errors.New("register_for_class: already registered")

	// ErrPassRequired возвращается, когда у пользователя нет действующего абонемента.
	// Клиенту предлагается купить абонемент; errors.Is(err, eligibility.ErrNoAvailableCredit) == true
	ErrPassRequired = fmt.Errorf("register_for_class: class pass required: %w", eligibility.ErrNoAvailableCredit)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("register_for_class: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_for_class: internal error")
)
