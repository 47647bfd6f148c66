package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"xactdiff/internal/domain"
	"xactdiff/internal/port"
)

type documentRepo struct {
	cache *cache[*domain.Document]
}

// NewDocumentRepo creates an in-memory DocumentStore.
func NewDocumentRepo(ttl time.Duration, maxEntries int) port.DocumentStore {
	return &documentRepo{cache: newCache[*domain.Document](ttl, maxEntries)}
}

func (r *documentRepo) SaveDocument(_ context.Context, doc *domain.Document) error {
	r.cache.put(doc.ID, doc)
	return nil
}

func (r *documentRepo) GetDocument(_ context.Context, id uuid.UUID) (*domain.Document, error) {
	doc, ok := r.cache.get(id)
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return doc, nil
}
