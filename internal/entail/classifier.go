package entail

import (
	"context"
	"fmt"
	"strings"

	"github.com/credlens/credlens/internal/model"
)

// Result is a single entailment judgment
type Result struct {
	Relation   model.Relation
	Confidence float64 // 0-1
}

// Classifier judges the logical stance of an evidence statement toward a
// claim. Implementations must be safe for concurrent use.
type Classifier interface {
	// Name returns the classifier name
	Name() string

	// Classify returns the relation of evidence toward claim
	Classify(ctx context.Context, claim, evidence string) (Result, error)
}

// NewClassifier creates an entailment classifier based on configuration
func NewClassifier(cfg model.EntailmentConfig) (Classifier, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIClassifier(cfg)

	case "lexical", "":
		return NewLexicalClassifier(), nil

	default:
		return nil, fmt.Errorf("unknown entailment provider: %s (supported: lexical, openai)", cfg.Provider)
	}
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
