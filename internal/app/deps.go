package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"emotone/internal/cache"
	"emotone/internal/classifier"
	"emotone/internal/config"
	"emotone/internal/embeddings"
	"emotone/internal/logger"
	"emotone/internal/store"
)

// Deps bundles common runtime dependencies for the CLI commands.
type Deps struct {
	Config     config.Config
	Log        *slog.Logger
	Classifier *classifier.Classifier
}

// Build loads env, config, and shared components.
func Build() (Deps, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return Deps{}, err
	}
	log := logger.New(cfg.LogLevel)

	embedder, err := buildEmbedder(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize embedder: %w", err)
	}
	c, err := buildCache(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize cache: %w", err)
	}

	cls := classifier.New(embedder, c, store.NewFileStore(cfg.StorePath), log, classifier.Options{
		Threshold: cfg.Threshold,
		Model:     cfg.EmbeddingModel,
		CacheTTL:  time.Duration(cfg.CacheTTL) * time.Second,
	})
	return Deps{
		Config:     cfg,
		Log:        log,
		Classifier: cls,
	}, nil
}

func buildEmbedder(cfg config.Config, log *slog.Logger) (embeddings.Embedder, error) {
	switch cfg.EmbedderProvider {
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when EMBEDDER_PROVIDER=openai")
		}
		embedder, err := embeddings.NewOpenAIEmbedder(cfg.OpenAIKey, openai.EmbeddingModel(cfg.EmbeddingModel))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI embedder: %w", err)
		}
		log.Info("using OpenAI embedder", "model", cfg.EmbeddingModel)
		return embedder, nil
	default:
		return nil, fmt.Errorf("invalid EMBEDDER_PROVIDER: %s (valid option: openai)", cfg.EmbedderProvider)
	}
}

func buildCache(cfg config.Config, log *slog.Logger) (cache.Cache, error) {
	switch cfg.CacheProvider {
	case "redis":
		c, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			// Caching is an optimization; a dead Redis must not block
			// classification.
			log.Warn("redis unavailable, falling back to no-op cache", "err", err)
			return cache.NewNoOpCache(), nil
		}
		log.Info("using Redis embedding cache", "addr", cfg.RedisAddr)
		return c, nil
	case "none":
		return cache.NewNoOpCache(), nil
	default:
		return nil, fmt.Errorf("invalid CACHE_PROVIDER: %s (valid options: none, redis)", cfg.CacheProvider)
	}
}
