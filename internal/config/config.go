package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Config holds minimal runtime configuration. Extend as needed.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Similarity scoring
	Threshold float32 `env:"THRESHOLD" envDefault:"70" validate:"gte=0,lte=100"`
	StorePath string  `env:"STORE_PATH" envDefault:"data/emotion-embeddings.json" validate:"required"`

	// Embeddings
	EmbedderProvider string `env:"EMBEDDER_PROVIDER" envDefault:"openai" validate:"oneof=openai"`
	OpenAIKey        string `env:"OPENAI_API_KEY"`
	EmbeddingModel   string `env:"EMBEDDING_MODEL" envDefault:"text-embedding-3-small"`

	// Cache
	CacheProvider string `env:"CACHE_PROVIDER" envDefault:"none" validate:"oneof=none redis"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	CacheTTL      int    `env:"CACHE_TTL" envDefault:"86400"` // seconds
}

var validate = validator.New()

// Load reads configuration from environment variables with defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
