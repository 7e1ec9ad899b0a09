package waivers

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
)

// DocumentRepository интерфейс репозитория подписанных документов
type DocumentRepository interface {
	ListDocuments(ctx context.Context, userID string) ([]domain.SignedDocument, error)
	SaveDocument(ctx context.Context, d *domain.SignedDocument) error
}

// IDGenerator генератор ID новых документов
type IDGenerator interface {
	NewID() string
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
