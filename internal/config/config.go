package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Index    IndexConfig
	Ai       AIConfig
	Rag      RagConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type IndexConfig struct {
	Store     string // "pgvector" or "memory"
	Dimension int
}

type AIConfig struct {
	OllamaBaseURL        string
	OllamaModel          string // generation model, e.g. "llama3"
	OllamaEmbeddingModel string // e.g. "all-minilm" (384 dimensions)
	OllamaTimeoutSeconds int
}

type RagConfig struct {
	TopK              int
	IndexedEventTopic string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Index: IndexConfig{
			Store:     getEnv("VECTOR_STORE", "pgvector"),
			Dimension: getEnvAsInt("EMBEDDING_DIMENSION", 384),
		},
		Ai: AIConfig{
			OllamaBaseURL:        getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:          getEnv("OLLAMA_MODEL", "llama3"),
			OllamaEmbeddingModel: getEnv("OLLAMA_EMBEDDING_MODEL", "all-minilm"),
			OllamaTimeoutSeconds: getEnvAsInt("OLLAMA_TIMEOUT_SECONDS", 60),
		},
		Rag: RagConfig{
			TopK:              getEnvAsInt("RAG_TOP_K", 5),
			IndexedEventTopic: getEnv("DOCUMENTS_INDEXED_TOPIC_NAME", "DOCUMENTS_INDEXED"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
