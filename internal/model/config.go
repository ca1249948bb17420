package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the complete CredLens configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Retrieval   RetrievalConfig   `yaml:"retrieval"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Verdict     VerdictConfig     `yaml:"verdict"`
	Embedding   EmbeddingConfig   `yaml:"embedding"`
	Entailment  EntailmentConfig  `yaml:"entailment"`
	Trust       TrustConfig       `yaml:"trust"`
	Cache       CacheConfig       `yaml:"cache"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig controls outbound article fetching
type HTTPConfig struct {
	Timeout           time.Duration `yaml:"timeout"`
	UserAgent         string        `yaml:"user_agent"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	RequestsPerSecond float64       `yaml:"requests_per_second"` // per-domain
	Burst             int           `yaml:"burst"`
	HTTPProxy         string        `yaml:"http_proxy,omitempty"`
	HTTPSProxy        string        `yaml:"https_proxy,omitempty"`
	NoProxy           string        `yaml:"no_proxy,omitempty"`
}

// ConcurrencyConfig bounds pipeline fan-out
type ConcurrencyConfig struct {
	ClassifyWorkers int           `yaml:"classify_workers"` // concurrent entailment calls per request
	BatchWorkers    int           `yaml:"batch_workers"`    // concurrent pipeline invocations in batch mode
	ProviderTimeout time.Duration `yaml:"provider_timeout"` // per-request budget for evidence providers
}

// RetrievalConfig controls corpus retrieval
type RetrievalConfig struct {
	TopK       int    `yaml:"top_k"`
	CorpusPath string `yaml:"corpus_path"` // empty = built-in seed corpus
}

// ScoringConfig holds the credibility fingerprint weights. These are fixed
// configuration, not learned; tests inject their own values.
type ScoringConfig struct {
	SourceWeight        float64 `yaml:"source_weight"`
	CorroborationWeight float64 `yaml:"corroboration_weight"`
	LanguageWeight      float64 `yaml:"language_weight"`
	CorroborationTarget int     `yaml:"corroboration_target"` // count at which corroboration saturates
	RiskSteepness       float64 `yaml:"risk_steepness"`       // density scaling for language risk
}

// VerdictConfig holds the decision-table thresholds
type VerdictConfig struct {
	NetSignal        float64 `yaml:"net_signal"`        // |net| cutoff for a directional verdict
	MinTrueScore     float64 `yaml:"min_true_score"`    // overall_score floor for LIKELY_TRUE
	MaxFalseScore    float64 `yaml:"max_false_score"`   // overall_score ceiling for LIKELY_FALSE
	UnverifiedScore  float64 `yaml:"unverified_score"`  // below this with no URLs -> UNVERIFIED
	HighConfidence   float64 `yaml:"high_confidence"`   // threshold for "conflicting high-confidence" detection
	ConfidenceNet    float64 `yaml:"confidence_net"`    // weight of |net| in reported confidence
	ConfidenceScore  float64 `yaml:"confidence_score"`  // weight of overall_score in reported confidence
	MaxReasons       int     `yaml:"max_reasons"`
	MaxNamedPhrases  int     `yaml:"max_named_phrases"` // flagged phrases named in reasons
}

// EmbeddingConfig selects and configures the embedding provider
type EmbeddingConfig struct {
	Provider   string `yaml:"provider"` // "local", "openai"
	Model      string `yaml:"model,omitempty"`
	APIKey     string `yaml:"api_key,omitempty"`
	BaseURL    string `yaml:"base_url,omitempty"`
	Dimensions int    `yaml:"dimensions"` // local provider vector width
}

// EntailmentConfig selects and configures the entailment classifier
type EntailmentConfig struct {
	Provider string `yaml:"provider"` // "lexical", "openai"
	Model    string `yaml:"model,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Timeout  int    `yaml:"timeout"` // seconds, per classification call
}

// TrustConfig extends or overrides the built-in domain trust table
type TrustConfig struct {
	DomainWeights map[string]float64 `yaml:"domain_weights,omitempty"`
	DefaultWeight float64            `yaml:"default_weight"`
}

// CacheConfig controls page caching and identical-claim memoization
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// OutputConfig controls CLI rendering
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults. Threshold values follow the
// documented decision table; whether they were empirically calibrated is an
// open question, so every one of them is overridable.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:           30 * time.Second,
			UserAgent:         "CredLens/0.1 (+https://github.com/credlens/credlens)",
			MaxBodyBytes:      2_000_000,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Concurrency: ConcurrencyConfig{
			ClassifyWorkers: 5,
			BatchWorkers:    4,
			ProviderTimeout: 20 * time.Second,
		},
		Retrieval: RetrievalConfig{
			TopK: 5,
		},
		Scoring: ScoringConfig{
			SourceWeight:        0.4,
			CorroborationWeight: 0.3,
			LanguageWeight:      0.3,
			CorroborationTarget: 3,
			RiskSteepness:       3,
		},
		Verdict: VerdictConfig{
			NetSignal:       0.3,
			MinTrueScore:    0.5,
			MaxFalseScore:   0.6,
			UnverifiedScore: 0.45,
			HighConfidence:  0.7,
			ConfidenceNet:   0.7,
			ConfidenceScore: 0.3,
			MaxReasons:      3,
			MaxNamedPhrases: 2,
		},
		Embedding: EmbeddingConfig{
			Provider:   "local",
			Dimensions: 256,
		},
		Entailment: EntailmentConfig{
			Provider: "lexical",
			Timeout:  30,
		},
		Trust: TrustConfig{
			DefaultWeight: 0.5,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
	}
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "credlens-cache")
	}
	return filepath.Join(home, ".credlens", "cache")
}
