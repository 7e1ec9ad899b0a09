package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VolleyballService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VolleyballService/pkg/psqlbuilder"
)

const table = "documents"

var columns = []string{"collection", "doc_id", "data", "created_at", "updated_at"}

// Repository документное хранилище поверх одной SQL таблицы.
// Каждая коллекция (users, users/{id}/lessonPackages, bookings, ...) это набор строк
// с общим значением collection; данные документа хранятся в JSON.
type Repository struct {
	db        DBExecutor
	txManager TransactionManager
	now       func() time.Time
}

// NewRepository создает новый экземпляр репозитория документов.
// txManager может быть nil: тогда составные операции выполняются без транзакции.
func NewRepository(db DBExecutor, txManager TransactionManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Get получает документ по коллекции и ID
func (r *Repository) Get(ctx context.Context, collection, id string) (*Document, error) {
	if !validPath(collection, id) {
		return nil, ErrInvalidPath
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"path": docPath(collection, id)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	doc, err := scanDocument(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Get %s: %w", docPath(collection, id), err)
	}

	return doc, nil
}

// List получает все документы коллекции, упорядоченные по ID
func (r *Repository) List(ctx context.Context, collection string) ([]*Document, error) {
	if collection == "" {
		return nil, ErrInvalidPath
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"collection": collection}).
		OrderBy("doc_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	docs := make([]*Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("List %s: %w", collection, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return docs, nil
}

// Set создает или полностью перезаписывает документ
func (r *Repository) Set(ctx context.Context, collection, id string, data map[string]interface{}) error {
	if !validPath(collection, id) {
		return ErrInvalidPath
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	now := r.now()
	query, args, err := psqlbuilder.Insert(table).
		Columns("path", "collection", "doc_id", "data", "created_at", "updated_at").
		Values(docPath(collection, id), collection, id, string(payload), now, now).
		Suffix("ON CONFLICT (path) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// Merge обновляет указанные поля документа, остальные поля сохраняются.
// Документ должен существовать.
func (r *Repository) Merge(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	return r.inTx(ctx, func(ctx context.Context) error {
		doc, err := r.Get(ctx, collection, id)
		if err != nil {
			return err
		}

		for k, v := range fields {
			doc.Data[k] = v
		}

		return r.Set(ctx, collection, id, doc.Data)
	})
}

// Delete удаляет документ; подколлекции не затрагиваются
func (r *Repository) Delete(ctx context.Context, collection, id string) error {
	if !validPath(collection, id) {
		return ErrInvalidPath
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"path": docPath(collection, id)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteTree удаляет документ вместе со всеми его подколлекциями
// (например, classes/{id} и classes/{id}/participants/*) в одной транзакции
func (r *Repository) DeleteTree(ctx context.Context, collection, id string) error {
	if !validPath(collection, id) {
		return ErrInvalidPath
	}
	prefix := subtreePrefix(collection, id)

	return r.inTx(ctx, func(ctx context.Context) error {
		executor := dbmetrics.GetExecutor(ctx, r.db)

		query, args, err := psqlbuilder.Delete(table).
			Where(squirrel.Expr("substr(path, 1, ?) = ?", len(prefix), prefix)).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: DeleteTree - build delete query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: DeleteTree - delete subtree: %v", ErrExecQuery, err)
		}

		return r.Delete(ctx, collection, id)
	})
}

func (r *Repository) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if r.txManager == nil {
		return fn(ctx)
	}
	return r.txManager.Do(ctx, fn)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDocument(row rowScanner) (*Document, error) {
	var (
		doc     Document
		payload string
	)

	if err := row.Scan(&doc.Collection, &doc.ID, &payload, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
	}

	doc.Data = map[string]interface{}{}
	if err := json.Unmarshal([]byte(payload), &doc.Data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return &doc, nil
}
