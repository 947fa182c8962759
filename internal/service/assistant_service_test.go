package service

import (
	"context"
	"testing"

	"jarvis-assistant-be/internal/dto"
	"jarvis-assistant-be/internal/entity"
	"jarvis-assistant-be/pkg/apperrors"
	"jarvis-assistant-be/pkg/llm"
	"jarvis-assistant-be/pkg/rag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type capturingPublisher struct {
	published []*dto.DocumentsIndexedMessage
	err       error
}

func (p *capturingPublisher) PublishDocumentsIndexed(ctx context.Context, payload *dto.DocumentsIndexedMessage) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, payload)
	return nil
}

type stubEmbedder struct{}

func (stubEmbedder) EmbedOne(ctx context.Context, text string) ([]float32, error) {
	return []float32{1, 0}, nil
}

func (stubEmbedder) EmbedMany(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{1, 0}
	}
	return vectors, nil
}

func (stubEmbedder) Dimension() int { return 2 }

type stubIndex struct {
	matches  []*entity.RetrievedDocument
	upserted []*entity.DocumentRecord
	lastTopK int
}

func (s *stubIndex) Upsert(ctx context.Context, records []*entity.DocumentRecord) error {
	s.upserted = append(s.upserted, records...)
	return nil
}

func (s *stubIndex) Search(ctx context.Context, embedding []float32, topK int) ([]*entity.RetrievedDocument, error) {
	s.lastTopK = topK
	return s.matches, nil
}

func (s *stubIndex) Dimension() int { return 2 }

type stubGenerator struct {
	answer string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.answer, nil
}

func newTestService(index *stubIndex, answer string) (IAssistantService, *capturingPublisher) {
	engine := rag.NewEngine(stubEmbedder{}, index, &stubGenerator{answer: answer}, 5)
	publisher := &capturingPublisher{}
	return NewAssistantService(engine, publisher, noopLogger{}), publisher
}

func TestChatMapsAnswerToResponse(t *testing.T) {
	index := &stubIndex{matches: []*entity.RetrievedDocument{
		{Id: "d1", Text: "some context", Source: "s", Score: 0.9},
	}}
	svc, _ := newTestService(index, "an answer")

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{Query: "q"})
	require.NoError(t, err)

	assert.Equal(t, "an answer", res.Answer)
	assert.Equal(t, 1, res.ContextCount)
	require.Len(t, res.Sources, 1)
	assert.Equal(t, "d1", res.Sources[0].Id)
	assert.Equal(t, "some context...", res.Sources[0].Text)
}

func TestChatPassesTopKThrough(t *testing.T) {
	index := &stubIndex{}
	svc, _ := newTestService(index, "ok")

	topK := 2
	_, err := svc.Chat(context.Background(), &dto.ChatRequest{Query: "q", TopK: &topK})
	require.NoError(t, err)
	assert.Equal(t, 2, index.lastTopK)

	// Without the field the engine default applies.
	_, err = svc.Chat(context.Background(), &dto.ChatRequest{Query: "q"})
	require.NoError(t, err)
	assert.Equal(t, 5, index.lastTopK)
}

func TestChatRejectsWhitespaceQuery(t *testing.T) {
	svc, _ := newTestService(&stubIndex{}, "ok")

	_, err := svc.Chat(context.Background(), &dto.ChatRequest{Query: "  \t "})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestIndexDocumentsPublishesEvent(t *testing.T) {
	index := &stubIndex{}
	svc, publisher := newTestService(index, "")

	res, err := svc.IndexDocuments(context.Background(), &dto.IndexRequest{
		Documents: []*dto.IndexDocumentDTO{
			{Id: "d1", Text: "first", Source: "manual"},
			{Id: "d2", Text: "second"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "success", res.Status)
	assert.Equal(t, 2, res.DocumentsIndexed)
	assert.Equal(t, "Successfully indexed 2 documents", res.Message)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, []string{"d1", "d2"}, publisher.published[0].DocumentIds)
	assert.Equal(t, 2, publisher.published[0].Count)
	assert.False(t, publisher.published[0].IndexedAt.IsZero())

	require.Len(t, index.upserted, 2)
	assert.Equal(t, "manual", index.upserted[0].Source)
	assert.Equal(t, "unknown", index.upserted[1].Source)
}

func TestIndexDocumentsSucceedsWhenPublishFails(t *testing.T) {
	index := &stubIndex{}
	engine := rag.NewEngine(stubEmbedder{}, index, &stubGenerator{}, 5)
	publisher := &capturingPublisher{err: assert.AnError}
	svc := NewAssistantService(engine, publisher, noopLogger{})

	res, err := svc.IndexDocuments(context.Background(), &dto.IndexRequest{
		Documents: []*dto.IndexDocumentDTO{{Id: "d1", Text: "t"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.DocumentsIndexed)
}
