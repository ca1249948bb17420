package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/credlens/credlens/internal/model"
	"github.com/credlens/credlens/internal/pipeline"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	timeout            time.Duration
	userAgent          string
	maxBytes           int64
	noCache            bool
	corpusPath         string
	embeddingProvider  string
	entailmentProvider string
	topK               int
	asJSON             bool
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <claim-or-url>",
	Short: "Verify a claim or article and explain the verdict",
	Long: `Verify runs the full pipeline on a single input:
- Extract the central factual claim (fetching the article first for URLs)
- Retrieve the most similar reference statements from the corpus
- Classify each as supporting, contradicting, or neutral
- Score source credibility, corroboration, and manipulative language
- Decide the verdict and attach a media-literacy micro-lesson

Example:
  credlens verify "5G networks spread coronavirus"
  credlens verify https://example.com/article --json
  credlens verify "Vaccines cause autism" --entailment openai`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	verifyCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall verification timeout")
	verifyCmd.Flags().StringVar(&userAgent, "ua", "CredLens/0.1 (+https://github.com/credlens/credlens)", "HTTP User-Agent")
	verifyCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	verifyCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching and memoization")
	verifyCmd.Flags().StringVar(&corpusPath, "corpus", "", "corpus JSON file (default: built-in seed corpus)")
	verifyCmd.Flags().StringVar(&embeddingProvider, "embedding", "", "embedding provider (local, openai)")
	verifyCmd.Flags().StringVar(&entailmentProvider, "entailment", "", "entailment provider (lexical, openai)")
	verifyCmd.Flags().IntVar(&topK, "top-k", 0, "number of corpus candidates to retrieve")
}

// loadConfig returns the defaults merged with whatever viper read from the
// config file and environment. Config keys follow the yaml tags of
// model.Config.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	err := viper.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring malformed configuration: %v\n", err)
	}

	return cfg
}

// buildConfig assembles the effective configuration: defaults, then config
// file and environment, then the flags the user actually set
func buildConfig(cmd *cobra.Command) *model.Config {
	cfg := loadConfig()

	flags := cmd.Flags()
	if flags.Changed("ua") {
		cfg.HTTP.UserAgent = userAgent
	}
	if flags.Changed("max-bytes") {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if corpusPath != "" {
		cfg.Retrieval.CorpusPath = corpusPath
	}
	if embeddingProvider != "" {
		cfg.Embedding.Provider = embeddingProvider
	}
	if entailmentProvider != "" {
		cfg.Entailment.Provider = entailmentProvider
	}
	if topK > 0 {
		cfg.Retrieval.TopK = topK
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		if cfg.Embedding.APIKey == "" {
			cfg.Embedding.APIKey = key
		}
		if cfg.Entailment.APIKey == "" {
			cfg.Entailment.APIKey = key
		}
	}

	return cfg
}

// newVerifier constructs the pipeline and builds the initial index
func newVerifier(ctx context.Context, cfg *model.Config) (*pipeline.Verifier, error) {
	v, err := pipeline.NewVerifier(cfg)
	if err != nil {
		return nil, err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Indexing %d corpus records...\n", v.CorpusSize())
	}
	if err := v.RebuildIndex(ctx); err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}

	return v, nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Verifying: %s\n", input)
	}

	cfg := buildConfig(cmd)
	if cmd.Flags().Changed("timeout") {
		cfg.HTTP.Timeout = timeout
	}

	v, err := newVerifier(ctx, cfg)
	if err != nil {
		return err
	}

	result, err := v.Verify(ctx, input)
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}

	if asJSON {
		return renderJSON(os.Stdout, result)
	}
	return renderText(os.Stdout, result)
}
