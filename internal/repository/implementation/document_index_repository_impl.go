package implementation

import (
	"context"
	"fmt"

	"jarvis-assistant-be/internal/entity"
	"jarvis-assistant-be/internal/mapper"
	"jarvis-assistant-be/internal/model"
	"jarvis-assistant-be/internal/repository/contract"
	"jarvis-assistant-be/pkg/apperrors"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsertChunkSize bounds the number of records per INSERT to keep statements
// within backend limits. Purely a batching choice, results are unaffected.
const upsertChunkSize = 100

type DocumentIndexRepositoryImpl struct {
	db        *gorm.DB
	dimension int
	mapper    *mapper.DocumentMapper
}

func NewDocumentIndexRepository(db *gorm.DB, dimension int) contract.DocumentIndex {
	if dimension <= 0 {
		dimension = 384
	}
	return &DocumentIndexRepositoryImpl{
		db:        db,
		dimension: dimension,
		mapper:    mapper.NewDocumentMapper(),
	}
}

func (r *DocumentIndexRepositoryImpl) Dimension() int {
	return r.dimension
}

func (r *DocumentIndexRepositoryImpl) Upsert(ctx context.Context, records []*entity.DocumentRecord) error {
	// Validate the whole batch up front so a dimension fault never commits
	// a partial write.
	for _, rec := range records {
		if len(rec.Embedding) != r.dimension {
			return fmt.Errorf("%w: record %s has %d dimensions, index expects %d",
				apperrors.ErrDimensionMismatch, rec.Id, len(rec.Embedding), r.dimension)
		}
	}

	models := r.mapper.ToModels(records)

	// Chunked submit. A connectivity failure mid-batch can leave earlier
	// chunks committed; the pipeline treats indexing as at-least-once.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"text", "source", "embedding_value", "updated_at"}),
		}).
		CreateInBatches(models, upsertChunkSize).Error
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrIndexUnavailable, err)
	}
	return nil
}

func (r *DocumentIndexRepositoryImpl) Search(ctx context.Context, embedding []float32, topK int) ([]*entity.RetrievedDocument, error) {
	if len(embedding) != r.dimension {
		return nil, fmt.Errorf("%w: query vector has %d dimensions, index expects %d",
			apperrors.ErrDimensionMismatch, len(embedding), r.dimension)
	}
	if topK <= 0 {
		topK = 5
	}

	// Cosine distance in pgvector is 1 - cosine_similarity, so
	// 1 - (embedding_value <=> query) is the similarity score.
	type result struct {
		model.DocumentEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("document_embeddings").
		Select("document_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Order("similarity DESC").
		Order("id ASC").
		Limit(topK).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrIndexUnavailable, err)
	}

	matches := make([]*entity.RetrievedDocument, len(results))
	for i, res := range results {
		matches[i] = &entity.RetrievedDocument{
			Id:     res.Id,
			Text:   res.Text,
			Source: res.Source,
			Score:  res.Similarity,
		}
	}
	return matches, nil
}

// DeleteAll drops every record. Maintenance hook for seeding and tests; the
// public API exposes no deletion path.
func (r *DocumentIndexRepositoryImpl) DeleteAll(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.DocumentEmbedding{}).Error
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrIndexUnavailable, err)
	}
	return nil
}
