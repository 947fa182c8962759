package apperrors

import "errors"

// Sentinel errors for the answering pipeline. Callers wrap these with
// fmt.Errorf("%w: ...") and the HTTP layer maps them to status codes with
// errors.Is.
var (
	// ErrValidation marks a caller fault: empty query, empty document batch,
	// malformed request. Rejected before any side effect.
	ErrValidation = errors.New("validation error")

	// ErrDimensionMismatch is raised when a vector's length does not equal the
	// index's fixed dimension. Treated as a validation error by the HTTP layer.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrIndexUnavailable means the vector index backend could not be reached.
	ErrIndexUnavailable = errors.New("vector index unavailable")

	// ErrEmbedderUnavailable means the embedding backend could not be reached.
	ErrEmbedderUnavailable = errors.New("embedding backend unavailable")

	// ErrGeneratorUnavailable means the generation backend could not be reached.
	ErrGeneratorUnavailable = errors.New("generation backend unavailable")

	// ErrGenerationBackend means the generation backend answered with a
	// non-success status. The wrapped message carries status and body.
	ErrGenerationBackend = errors.New("generation backend error")

	// ErrGenerationTimeout means the generation call exceeded its wall-clock
	// bound. Distinct from ErrGeneratorUnavailable.
	ErrGenerationTimeout = errors.New("generation timeout")
)
