package docstore

import (
	"context"
	"fmt"
)

// Схема одинакова для postgres и sqlite
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		path       TEXT PRIMARY KEY,
		collection TEXT NOT NULL,
		doc_id     TEXT NOT NULL,
		data       TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents (collection, doc_id)`,
}

// Migrate создает таблицу документов, если её нет
func (r *Repository) Migrate(ctx context.Context) error {
	for i, stmt := range migrations {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: Migrate - step %d: %v", ErrExecQuery, i, err)
		}
	}
	return nil
}
