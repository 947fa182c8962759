package memory

import (
	"context"
	"fmt"
	"math"
	"sort"

	"jarvis-assistant-be/internal/entity"
	"jarvis-assistant-be/internal/repository/contract"
	"jarvis-assistant-be/pkg/apperrors"

	"github.com/patrickmn/go-cache"
)

// DocumentIndex is an in-process index backed by go-cache. It mirrors the
// pgvector repository's contract so the pipeline can run without Postgres
// (local development and tests).
type DocumentIndex struct {
	cache     *cache.Cache
	dimension int
}

func NewDocumentIndex(dimension int) *DocumentIndex {
	if dimension <= 0 {
		dimension = 384
	}
	// Index records never expire; the store lives as long as the process.
	c := cache.New(cache.NoExpiration, 0)
	return &DocumentIndex{
		cache:     c,
		dimension: dimension,
	}
}

var _ contract.DocumentIndex = &DocumentIndex{}

func (r *DocumentIndex) Dimension() int {
	return r.dimension
}

func (r *DocumentIndex) Upsert(ctx context.Context, records []*entity.DocumentRecord) error {
	for _, rec := range records {
		if len(rec.Embedding) != r.dimension {
			return fmt.Errorf("%w: record %s has %d dimensions, index expects %d",
				apperrors.ErrDimensionMismatch, rec.Id, len(rec.Embedding), r.dimension)
		}
	}
	for _, rec := range records {
		stored := *rec
		r.cache.Set(rec.Id, &stored, cache.DefaultExpiration)
	}
	return nil
}

func (r *DocumentIndex) Search(ctx context.Context, embedding []float32, topK int) ([]*entity.RetrievedDocument, error) {
	if len(embedding) != r.dimension {
		return nil, fmt.Errorf("%w: query vector has %d dimensions, index expects %d",
			apperrors.ErrDimensionMismatch, len(embedding), r.dimension)
	}
	if topK <= 0 {
		topK = 5
	}

	matches := make([]*entity.RetrievedDocument, 0)
	for _, item := range r.cache.Items() {
		rec := item.Object.(*entity.DocumentRecord)
		matches = append(matches, &entity.RetrievedDocument{
			Id:     rec.Id,
			Text:   rec.Text,
			Source: rec.Source,
			Score:  cosineSimilarity(embedding, rec.Embedding),
		})
	}

	// Non-increasing score, ties broken by id for determinism.
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Id < matches[j].Id
	})

	if topK > len(matches) {
		topK = len(matches)
	}
	return matches[:topK], nil
}

// DeleteAll drops every record. Maintenance hook for seeding and tests.
func (r *DocumentIndex) DeleteAll(ctx context.Context) error {
	r.cache.Flush()
	return nil
}

func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
