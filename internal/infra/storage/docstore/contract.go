package docstore

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VolleyballService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Document документ коллекции
type Document struct {
	ID         string
	Collection string
	Data       map[string]interface{}
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Store операции над документами; реализуется Repository (SQL) и Memory
type Store interface {
	Get(ctx context.Context, collection, id string) (*Document, error)
	List(ctx context.Context, collection string) ([]*Document, error)
	Set(ctx context.Context, collection, id string, data map[string]interface{}) error
	Merge(ctx context.Context, collection, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, collection, id string) error
	DeleteTree(ctx context.Context, collection, id string) error
}
