package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jarvis-assistant-be/internal/dto"
	"jarvis-assistant-be/internal/entity"
	"jarvis-assistant-be/internal/pkg/logger"
	"jarvis-assistant-be/pkg/apperrors"
	"jarvis-assistant-be/pkg/rag"
)

type IAssistantService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	IndexDocuments(ctx context.Context, req *dto.IndexRequest) (*dto.IndexResponse, error)
}

type assistantService struct {
	engine           *rag.Engine
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewAssistantService(
	engine *rag.Engine,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) IAssistantService {
	return &assistantService{
		engine:           engine,
		publisherService: publisherService,
		logger:           sysLogger,
	}
}

func (s *assistantService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, fmt.Errorf("%w: query cannot be empty", apperrors.ErrValidation)
	}

	topK := 0
	if req.TopK != nil {
		topK = *req.TopK
	}

	answer, err := s.engine.Answer(ctx, query, topK)
	if err != nil {
		s.logger.Error("assistant", "Chat pipeline failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("assistant", "Chat answered", map[string]interface{}{
		"context_count": answer.ContextCount,
	})

	sources := make([]*dto.ChatResponseSource, len(answer.Sources))
	for i, src := range answer.Sources {
		sources[i] = &dto.ChatResponseSource{
			Id:   src.Id,
			Text: src.Text,
		}
	}

	return &dto.ChatResponse{
		Answer:       answer.Answer,
		Sources:      sources,
		ContextCount: answer.ContextCount,
	}, nil
}

func (s *assistantService) IndexDocuments(ctx context.Context, req *dto.IndexRequest) (*dto.IndexResponse, error) {
	documents := make([]*entity.Document, len(req.Documents))
	ids := make([]string, len(req.Documents))
	for i, doc := range req.Documents {
		documents[i] = &entity.Document{
			Id:     doc.Id,
			Text:   doc.Text,
			Source: doc.Source,
		}
		ids[i] = doc.Id
	}

	count, err := s.engine.IndexDocuments(ctx, documents)
	if err != nil {
		s.logger.Error("assistant", "Indexing failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("assistant", "Documents indexed", map[string]interface{}{
		"count": count,
	})

	// Best-effort notification; indexing already succeeded.
	if err := s.publisherService.PublishDocumentsIndexed(ctx, &dto.DocumentsIndexedMessage{
		DocumentIds: ids,
		Count:       count,
		IndexedAt:   time.Now(),
	}); err != nil {
		s.logger.Warn("assistant", "Failed to publish indexed event", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return &dto.IndexResponse{
		Status:           "success",
		DocumentsIndexed: count,
		Message:          fmt.Sprintf("Successfully indexed %d documents", count),
	}, nil
}
