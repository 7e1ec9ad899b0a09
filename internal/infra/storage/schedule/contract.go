package schedule

import (
	"context"

	"github.com/m04kA/SMC-VolleyballService/internal/infra/storage/docstore"
)

// DocumentStore операции хранилища документов, которые использует репозиторий
type DocumentStore interface {
	Get(ctx context.Context, collection, id string) (*docstore.Document, error)
	List(ctx context.Context, collection string) ([]*docstore.Document, error)
	Set(ctx context.Context, collection, id string, data map[string]interface{}) error
}
