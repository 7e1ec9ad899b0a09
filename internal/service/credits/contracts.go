package credits

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
)

// CreditRepository интерфейс репозитория кредитов
type CreditRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.LessonCredit, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
