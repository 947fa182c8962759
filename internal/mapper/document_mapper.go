package mapper

import (
	"jarvis-assistant-be/internal/entity"
	"jarvis-assistant-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToModel(r *entity.DocumentRecord) *model.DocumentEmbedding {
	if r == nil {
		return nil
	}
	return &model.DocumentEmbedding{
		Id:             r.Id,
		Text:           r.Text,
		Source:         r.Source,
		EmbeddingValue: pgvector.NewVector(r.Embedding),
	}
}

func (m *DocumentMapper) ToRecord(d *model.DocumentEmbedding) *entity.DocumentRecord {
	if d == nil {
		return nil
	}
	return &entity.DocumentRecord{
		Id:        d.Id,
		Text:      d.Text,
		Source:    d.Source,
		Embedding: d.EmbeddingValue.Slice(),
	}
}

func (m *DocumentMapper) ToModels(records []*entity.DocumentRecord) []*model.DocumentEmbedding {
	models := make([]*model.DocumentEmbedding, len(records))
	for i, r := range records {
		models[i] = m.ToModel(r)
	}
	return models
}
