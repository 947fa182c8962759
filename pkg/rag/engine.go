package rag

import (
	"context"
	"fmt"
	"strings"

	"jarvis-assistant-be/internal/entity"
	"jarvis-assistant-be/internal/repository/contract"
	"jarvis-assistant-be/pkg/apperrors"
	"jarvis-assistant-be/pkg/embedding"
	"jarvis-assistant-be/pkg/llm"
	"jarvis-assistant-be/pkg/rag/prompt"
)

const (
	// DefaultTopK is the number of documents retrieved when the caller does
	// not ask for a specific amount.
	DefaultTopK = 5

	generationTemperature = 0.7
	generationMaxTokens   = 512

	// sourcePreviewLength bounds the document text echoed back in answer
	// sources. The ellipsis marker is appended unconditionally, matching the
	// documented pipeline behavior even for shorter texts.
	sourcePreviewLength = 100

	defaultSource = "unknown"
)

// Engine sequences the answering pipeline: embed the query, retrieve the
// nearest documents, assemble a prompt, generate once. No step retries and
// every failure aborts the whole call.
type Engine struct {
	embedder    embedding.EmbeddingProvider
	index       contract.DocumentIndex
	generator   llm.LLMProvider
	defaultTopK int
}

func NewEngine(embedder embedding.EmbeddingProvider, index contract.DocumentIndex, generator llm.LLMProvider, defaultTopK int) *Engine {
	if defaultTopK <= 0 {
		defaultTopK = DefaultTopK
	}
	return &Engine{
		embedder:    embedder,
		index:       index,
		generator:   generator,
		defaultTopK: defaultTopK,
	}
}

// Answer runs the full pipeline for one query. topK is a per-call parameter;
// values <= 0 fall back to the engine default.
func (e *Engine) Answer(ctx context.Context, query string, topK int) (*entity.ChatAnswer, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query cannot be empty", apperrors.ErrValidation)
	}
	if topK <= 0 {
		topK = e.defaultTopK
	}

	queryEmbedding, err := e.embedder.EmbedOne(ctx, query)
	if err != nil {
		return nil, err
	}

	matches, err := e.index.Search(ctx, queryEmbedding, topK)
	if err != nil {
		return nil, err
	}

	// The generator is invoked even with zero matches; an empty context
	// section steers it toward the refusal sentence.
	ragPrompt := prompt.NewBuilder(query, matches).Build()

	answerText, err := e.generator.Generate(ctx, ragPrompt,
		llm.WithTemperature(generationTemperature),
		llm.WithMaxTokens(generationMaxTokens),
	)
	if err != nil {
		return nil, err
	}

	sources := make([]*entity.AnswerSource, len(matches))
	for i, doc := range matches {
		sources[i] = &entity.AnswerSource{
			Id:   doc.Id,
			Text: previewText(doc.Text),
		}
	}

	return &entity.ChatAnswer{
		Answer:       strings.TrimSpace(answerText),
		Sources:      sources,
		ContextCount: len(matches),
	}, nil
}

// IndexDocuments embeds the batch in one pass and upserts it into the index.
// Returns the number of documents indexed.
func (e *Engine) IndexDocuments(ctx context.Context, documents []*entity.Document) (int, error) {
	if len(documents) == 0 {
		return 0, fmt.Errorf("%w: documents list cannot be empty", apperrors.ErrValidation)
	}

	texts := make([]string, len(documents))
	for i, doc := range documents {
		texts[i] = doc.Text
	}

	vectors, err := e.embedder.EmbedMany(ctx, texts)
	if err != nil {
		return 0, err
	}

	records := make([]*entity.DocumentRecord, len(documents))
	for i, doc := range documents {
		source := doc.Source
		if source == "" {
			source = defaultSource
		}
		records[i] = &entity.DocumentRecord{
			Id:        doc.Id,
			Text:      doc.Text,
			Source:    source,
			Embedding: vectors[i],
		}
	}

	if err := e.index.Upsert(ctx, records); err != nil {
		return 0, err
	}

	return len(documents), nil
}

// previewText returns the first sourcePreviewLength characters of text with
// the ellipsis marker always appended.
func previewText(text string) string {
	runes := []rune(text)
	if len(runes) > sourcePreviewLength {
		runes = runes[:sourcePreviewLength]
	}
	return string(runes) + "..."
}
