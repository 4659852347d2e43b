package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"emotone/internal/cache"
	"emotone/internal/embeddings"
	"emotone/internal/emotion"
	"emotone/internal/store"
)

// ErrPartialGeneration means at least one of the six reference embeddings
// could not be produced. The whole attempt is discarded; the prior store,
// if any, stays on disk unmodified.
var ErrPartialGeneration = errors.New("reference generation incomplete")

// DefaultThreshold is the documented confidence cutoff, in normalized
// percentage points.
const DefaultThreshold float32 = 70.0

// Options configures a Classifier.
type Options struct {
	// Threshold is the minimum normalized percentage for a confident
	// classification.
	Threshold float32

	// Model names the embedding model; it only scopes cache keys.
	Model string

	// CacheTTL bounds how long a query embedding stays cached.
	CacheTTL time.Duration
}

// Classifier builds the reference embedding set and scores input texts
// against it.
type Classifier struct {
	embedder embeddings.Embedder
	cache    cache.Cache
	store    *store.FileStore
	opts     Options
	log      *slog.Logger
}

func New(embedder embeddings.Embedder, c cache.Cache, st *store.FileStore, log *slog.Logger, opts Options) *Classifier {
	return &Classifier{
		embedder: embedder,
		cache:    c,
		store:    st,
		opts:     opts,
		log:      log,
	}
}

// Generate embeds each of the six emotion labels and persists the full set
// as one atomic unit. The six provider calls run concurrently; they are
// independent and order only matters at scoring time. If any call fails
// nothing is written.
func (c *Classifier) Generate(ctx context.Context) (store.Set, error) {
	labels := emotion.All()
	vectors := make([]embeddings.Vector, len(labels))

	g, ctx := errgroup.WithContext(ctx)
	for i, label := range labels {
		g.Go(func() error {
			c.log.Info("generating reference embedding", "label", label)
			vec, err := c.embedder.Embed(ctx, string(label))
			if err != nil {
				return fmt.Errorf("%w: label %q: %w", ErrPartialGeneration, label, err)
			}
			vectors[i] = vec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	set := make(store.Set, len(labels))
	for i, label := range labels {
		set[label] = vectors[i]
	}
	if err := c.store.Save(set); err != nil {
		return nil, err
	}
	return set, nil
}

// LoadStore reads the persisted reference set. Scoring must never run
// without a valid, fully populated store.
func (c *Classifier) LoadStore() (store.Set, error) {
	return c.store.Load()
}

// Score classifies text against the reference set. Given the same provider
// response it is a pure function of (text, set): the six raw dot products,
// their percentages relative to the maximum, the arg-max label, and whether
// that label clears the threshold.
func (c *Classifier) Score(ctx context.Context, text string, set store.Set) (emotion.Result, error) {
	query, err := c.embedText(ctx, text)
	if err != nil {
		return emotion.Result{}, err
	}
	if len(query) != set.Dimensions() {
		return emotion.Result{}, fmt.Errorf("%w: query has %d dimensions, store has %d",
			embeddings.ErrDimensionMismatch, len(query), set.Dimensions())
	}

	labels := emotion.All()
	scores := make([]emotion.Score, len(labels))
	best := 0
	for i, label := range labels {
		raw, err := embeddings.DotProduct(query, set[label])
		if err != nil {
			return emotion.Result{}, err
		}
		scores[i] = emotion.Score{Label: label, Raw: raw}
		// Strictly greater, so ties resolve to the earlier label.
		if raw > scores[best].Raw {
			best = i
		}
	}

	maxRaw := scores[best].Raw
	if maxRaw > 0 {
		for i := range scores {
			scores[i].Percent = 100 * scores[i].Raw / maxRaw
		}
	}
	// maxRaw <= 0 leaves every percentage at zero: dividing by a
	// non-positive maximum is meaningless, so the result reports zero
	// confidence instead.

	return emotion.Result{
		Scores:     scores,
		Best:       scores[best].Label,
		Confidence: scores[best].Percent,
		Confident:  maxRaw > 0 && scores[best].Percent >= c.opts.Threshold,
	}, nil
}

// embedText resolves the query vector through the cache, falling back to
// the provider. Cache trouble degrades to a provider call, never an error.
func (c *Classifier) embedText(ctx context.Context, text string) (embeddings.Vector, error) {
	key := cache.Key(c.opts.Model, text)
	if vec, err := c.cache.GetEmbedding(ctx, key); err != nil {
		c.log.Warn("embedding cache read failed", "err", err)
	} else if vec != nil {
		c.log.Debug("embedding cache hit")
		return vec, nil
	}

	vec, err := c.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	if err := c.cache.SetEmbedding(ctx, key, vec, c.opts.CacheTTL); err != nil {
		c.log.Warn("embedding cache write failed", "err", err)
	}
	return vec, nil
}
