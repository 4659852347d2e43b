package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"emotone/internal/embeddings"
)

// Cache stores query-text embeddings so repeated analyses of the same text
// skip the provider call. The classification result itself is never cached;
// only the provider response is.
type Cache interface {
	// GetEmbedding retrieves a cached vector by key.
	// Returns nil if not found.
	GetEmbedding(ctx context.Context, key string) (embeddings.Vector, error)

	// SetEmbedding stores a vector with TTL.
	SetEmbedding(ctx context.Context, key string, vec embeddings.Vector, ttl time.Duration) error

	// Close closes the cache connection.
	Close() error
}

// Key derives a stable cache key from the embedding model and input text.
// The model is part of the key so switching models never serves stale
// vectors of the wrong dimensionality.
func Key(model, text string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + text))
	return hex.EncodeToString(sum[:])
}
