package embedding

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jarvis-assistant-be/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeOllama(t *testing.T, dimension int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/embeddings", r.URL.Path)
		var req ollamaEmbeddingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		// Derive a deterministic vector from the prompt so callers can tell
		// responses apart.
		vec := make([]float64, dimension)
		for i := range vec {
			vec[i] = float64(len(req.Prompt) + i)
		}
		json.NewEncoder(w).Encode(ollamaEmbeddingResponse{Embedding: vec})
	}))
}

func TestEmbedOneReturnsNormalizedVector(t *testing.T) {
	server := newFakeOllama(t, 4)
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "all-minilm", 4, 5*time.Second)
	vec, err := provider.EmbedOne(context.Background(), "hello")
	require.NoError(t, err)
	require.Len(t, vec, 4)

	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(magnitude), 1e-5)
}

func TestEmbedOneDeterministic(t *testing.T) {
	server := newFakeOllama(t, 4)
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "all-minilm", 4, 5*time.Second)
	first, err := provider.EmbedOne(context.Background(), "same input")
	require.NoError(t, err)
	second, err := provider.EmbedOne(context.Background(), "same input")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEmbedManyPreservesOrderAndLength(t *testing.T) {
	server := newFakeOllama(t, 4)
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "all-minilm", 4, 5*time.Second)
	texts := []string{"a", "bb", "ccc"}
	vectors, err := provider.EmbedMany(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, vectors, len(texts))

	// Same text embeds to the same vector, so positions are distinguishable
	// by input length in the fake.
	single, err := provider.EmbedOne(context.Background(), "bb")
	require.NoError(t, err)
	assert.Equal(t, single, vectors[1])
}

func TestEmbedOneDimensionMismatch(t *testing.T) {
	server := newFakeOllama(t, 8)
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "all-minilm", 4, 5*time.Second)
	_, err := provider.EmbedOne(context.Background(), "hello")
	assert.ErrorIs(t, err, apperrors.ErrDimensionMismatch)
}

func TestEmbedOneUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	provider := NewOllamaProvider(baseURL, "all-minilm", 4, time.Second)
	_, err := provider.EmbedOne(context.Background(), "hello")
	assert.ErrorIs(t, err, apperrors.ErrEmbedderUnavailable)
}
