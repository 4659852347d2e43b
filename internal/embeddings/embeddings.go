package embeddings

import (
	"context"
	"errors"
	"fmt"
)

// Vector is a simple float32 slice wrapper.
type Vector []float32

// ErrProvider wraps failures of the external embedding provider.
var ErrProvider = errors.New("embedding provider failure")

// ErrDimensionMismatch reports two vectors of different lengths. Mismatched
// dimensionality is a configuration fault and is never coerced by truncation
// or padding.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// Embedder defines the embedding interface.
type Embedder interface {
	Embed(ctx context.Context, text string) (Vector, error)
}

// DotProduct returns the sum of elementwise products of a and b. Unlike
// cosine similarity it is sensitive to magnitude, so the provider's scale
// conventions carry through to the ranking.
func DotProduct(a, b Vector) (float32, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum, nil
}
