package embed

import (
	"context"
	"fmt"
	"strings"

	"github.com/credlens/credlens/internal/model"
)

// Provider maps free text to a fixed-dimension vector
type Provider interface {
	// Name returns the provider name
	Name() string

	// Embed returns the embedding vector for text
	Embed(ctx context.Context, text string) ([]float32, error)
}

// NewProvider creates an embedding provider based on configuration
func NewProvider(cfg model.EmbeddingConfig) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIProvider(cfg)

	case "local", "":
		return NewLocalProvider(cfg.Dimensions), nil

	default:
		return nil, fmt.Errorf("unknown embedding provider: %s (supported: local, openai)", cfg.Provider)
	}
}
