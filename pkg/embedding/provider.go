package embedding

import "context"

// EmbeddingProvider converts text into fixed-length numeric vectors.
// Implementations are stateless after construction; identical input within
// the same model load yields identical output.
type EmbeddingProvider interface {
	// EmbedOne returns the embedding vector for a single text.
	EmbedOne(ctx context.Context, text string) ([]float32, error)

	// EmbedMany returns one vector per input text, order preserved and equal
	// in length to the input.
	EmbedMany(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension reports the fixed output dimension of this provider.
	Dimension() int
}
