package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Memory хранилище документов в памяти для тестов и локального запуска.
// Данные проходят через JSON так же, как в Repository, чтобы типы значений совпадали.
type Memory struct {
	mu   sync.RWMutex
	docs map[string]*Document
	now  func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		docs: make(map[string]*Document),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (m *Memory) Get(_ context.Context, collection, id string) (*Document, error) {
	if !validPath(collection, id) {
		return nil, ErrInvalidPath
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[docPath(collection, id)]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneDocument(doc)
}

func (m *Memory) List(_ context.Context, collection string) ([]*Document, error) {
	if collection == "" {
		return nil, ErrInvalidPath
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]*Document, 0)
	for _, doc := range m.docs {
		if doc.Collection != collection {
			continue
		}
		clone, err := cloneDocument(doc)
		if err != nil {
			return nil, err
		}
		docs = append(docs, clone)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (m *Memory) Set(_ context.Context, collection, id string, data map[string]interface{}) error {
	if !validPath(collection, id) {
		return ErrInvalidPath
	}
	normalized, err := roundTrip(data)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	path := docPath(collection, id)
	created := now
	if existing, ok := m.docs[path]; ok {
		created = existing.CreatedAt
	}

	m.docs[path] = &Document{
		ID:         id,
		Collection: collection,
		Data:       normalized,
		CreatedAt:  created,
		UpdatedAt:  now,
	}
	return nil
}

func (m *Memory) Merge(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	doc, err := m.Get(ctx, collection, id)
	if err != nil {
		return err
	}
	for k, v := range fields {
		doc.Data[k] = v
	}
	return m.Set(ctx, collection, id, doc.Data)
}

func (m *Memory) Delete(_ context.Context, collection, id string) error {
	if !validPath(collection, id) {
		return ErrInvalidPath
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	path := docPath(collection, id)
	if _, ok := m.docs[path]; !ok {
		return ErrNotFound
	}
	delete(m.docs, path)
	return nil
}

func (m *Memory) DeleteTree(ctx context.Context, collection, id string) error {
	if !validPath(collection, id) {
		return ErrInvalidPath
	}
	prefix := subtreePrefix(collection, id)

	m.mu.Lock()
	for path := range m.docs {
		if strings.HasPrefix(path, prefix) {
			delete(m.docs, path)
		}
	}
	m.mu.Unlock()

	return m.Delete(ctx, collection, id)
}

func roundTrip(data map[string]interface{}) (map[string]interface{}, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return out, nil
}

func cloneDocument(doc *Document) (*Document, error) {
	data, err := roundTrip(doc.Data)
	if err != nil {
		return nil, err
	}
	clone := *doc
	clone.Data = data
	return &clone, nil
}
