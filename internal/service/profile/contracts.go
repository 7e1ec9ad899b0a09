package profile

import (
	"context"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
)

// UserRepository интерфейс репозитория профилей
type UserRepository interface {
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, p *domain.UserProfile) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
