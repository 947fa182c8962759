package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

type DocumentEmbedding struct {
	Id             string          `gorm:"type:text;primaryKey"`
	Text           string          `gorm:"type:text;not null"`
	Source         string          `gorm:"type:text;not null;default:'unknown'"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(384)"` // all-minilm produces 384 dimensions
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (DocumentEmbedding) TableName() string {
	return "document_embeddings"
}
