package contract

import (
	"context"

	"jarvis-assistant-be/internal/entity"
)

// DocumentIndex stores (id, vector, payload) records and supports
// nearest-neighbor lookup by cosine similarity.
type DocumentIndex interface {
	// Upsert inserts or replaces each record by id. Every vector must match
	// the index's fixed dimension; a mismatch fails the whole batch before
	// any write. Records are submitted to the backend in fixed-size chunks,
	// which does not change observable results.
	Upsert(ctx context.Context, records []*entity.DocumentRecord) error

	// Search returns up to topK records ordered by non-increasing similarity.
	// Searching an empty index returns an empty slice, never an error.
	Search(ctx context.Context, embedding []float32, topK int) ([]*entity.RetrievedDocument, error)

	// Dimension reports the fixed vector dimension of this index.
	Dimension() int
}
