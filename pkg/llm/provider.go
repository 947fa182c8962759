package llm

import "context"

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

// WithTemperature sets sampling randomness in [0,1]. 0 leans deterministic,
// 1 is maximally varied.
func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

// WithMaxTokens sets a hard ceiling on output length. The model may stop
// earlier.
func WithMaxTokens(maxTokens int) Option {
	return func(o *Options) {
		o.MaxTokens = maxTokens
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider defines the contract for any text-generation backend.
type LLMProvider interface {
	// Generate sends a single prompt to the model and returns the generated
	// text. The call is bounded by the provider's configured wall-clock
	// timeout; no internal retry.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
