package dto

import "time"

type ChatRequest struct {
	Query string `json:"query" validate:"required"`
	TopK  *int   `json:"top_k,omitempty" validate:"omitempty,min=1"`
}

type ChatResponseSource struct {
	Id   string `json:"id"`
	Text string `json:"text"`
}

type ChatResponse struct {
	Answer       string                `json:"answer"`
	Sources      []*ChatResponseSource `json:"sources"`
	ContextCount int                   `json:"context_count"`
}

// IndexDocumentDTO is one document in an index request. Source is optional
// and defaults to "unknown".
type IndexDocumentDTO struct {
	Id     string `json:"id" validate:"required"`
	Text   string `json:"text" validate:"required"`
	Source string `json:"source,omitempty"`
}

type IndexRequest struct {
	Documents []*IndexDocumentDTO `json:"documents" validate:"required,min=1,dive,required"`
}

type IndexResponse struct {
	Status           string `json:"status"`
	DocumentsIndexed int    `json:"documents_indexed"`
	Message          string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// DocumentsIndexedMessage is the event payload published after a successful
// indexing run.
type DocumentsIndexedMessage struct {
	DocumentIds []string  `json:"document_ids"`
	Count       int       `json:"count"`
	IndexedAt   time.Time `json:"indexed_at"`
}
