package bootstrap

import (
	"log"
	"time"

	"jarvis-assistant-be/internal/config"
	"jarvis-assistant-be/internal/controller"
	"jarvis-assistant-be/internal/pkg/logger"
	"jarvis-assistant-be/internal/repository/contract"
	"jarvis-assistant-be/internal/repository/implementation"
	"jarvis-assistant-be/internal/repository/memory"
	"jarvis-assistant-be/internal/service"
	"jarvis-assistant-be/pkg/embedding"
	"jarvis-assistant-be/pkg/llm/ollama"
	"jarvis-assistant-be/pkg/rag"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Capability Providers
	timeout := time.Duration(cfg.Ai.OllamaTimeoutSeconds) * time.Second

	embeddingProvider := embedding.NewOllamaProvider(
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OllamaEmbeddingModel,
		cfg.Index.Dimension,
		timeout,
	)
	log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s, %d dimensions)", cfg.Ai.OllamaEmbeddingModel, cfg.Index.Dimension)

	llmProvider := ollama.NewOllamaProvider(
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OllamaModel,
		timeout,
	)
	log.Printf("[INFO] Using LLM Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)

	// 4. Similarity Index
	var documentIndex contract.DocumentIndex
	if cfg.Index.Store == "memory" {
		documentIndex = memory.NewDocumentIndex(cfg.Index.Dimension)
		log.Printf("[INFO] Using Vector Store: MEMORY")
	} else {
		documentIndex = implementation.NewDocumentIndexRepository(db, cfg.Index.Dimension)
		log.Printf("[INFO] Using Vector Store: PGVECTOR")
	}

	// 5. RAG Engine
	engine := rag.NewEngine(embeddingProvider, documentIndex, llmProvider, cfg.Rag.TopK)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Rag.IndexedEventTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Rag.IndexedEventTopic, sysLogger)
	assistantService := service.NewAssistantService(engine, publisherService, sysLogger)

	// 7. Controllers
	assistantController := controller.NewAssistantController(assistantService)

	return &Container{
		AssistantController: assistantController,
		ConsumerService:     consumerService,
		Logger:              sysLogger,
	}
}
