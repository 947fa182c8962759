package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"jarvis-assistant-be/pkg/apperrors"
)

// OllamaProvider implements EmbeddingProvider against a local Ollama server
// (e.g. all-minilm, nomic-embed-text).
type OllamaProvider struct {
	BaseURL   string
	Model     string
	dimension int
	client    *http.Client
}

func NewOllamaProvider(baseURL, model string, dimension int, timeout time.Duration) *OllamaProvider {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "all-minilm"
	}
	if dimension <= 0 {
		dimension = 384
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OllamaProvider{
		BaseURL:   baseURL,
		Model:     model,
		dimension: dimension,
		client:    &http.Client{Timeout: timeout},
	}
}

type ollamaEmbeddingRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type ollamaEmbeddingResponse struct {
	Embedding []float64 `json:"embedding"`
}

func (p *OllamaProvider) Dimension() int {
	return p.dimension
}

func (p *OllamaProvider) EmbedOne(ctx context.Context, text string) ([]float32, error) {
	jsonBody, err := json.Marshal(ollamaEmbeddingRequest{Model: p.Model, Prompt: text})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/api/embeddings", p.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot reach ollama at %s: %v", apperrors.ErrEmbedderUnavailable, p.BaseURL, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama embedding error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var ollamaResp ollamaEmbeddingResponse
	if err := json.Unmarshal(bodyBytes, &ollamaResp); err != nil {
		return nil, err
	}

	if len(ollamaResp.Embedding) != p.dimension {
		return nil, fmt.Errorf("%w: model %s returned %d dimensions, expected %d",
			apperrors.ErrDimensionMismatch, p.Model, len(ollamaResp.Embedding), p.dimension)
	}

	values := make([]float32, len(ollamaResp.Embedding))
	for i, v := range ollamaResp.Embedding {
		values[i] = float32(v)
	}

	// Cosine distance in the index expects unit-length vectors.
	return normalizeVector(values), nil
}

// EmbedMany embeds each text with a separate call; the Ollama embeddings
// endpoint takes one prompt at a time. Output order matches input order.
func (p *OllamaProvider) EmbedMany(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := p.EmbedOne(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// normalizeVector scales a vector to unit length (magnitude = 1).
func normalizeVector(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)

	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
