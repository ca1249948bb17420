package cli

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/credlens/credlens/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency   int
	outputDir     string
	batchTimeout  time.Duration
	verifyTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Verify multiple claims or URLs from a file in parallel",
	Long: `Batch verifies many inputs concurrently:
- Read inputs from a file (one claim or URL per line, # for comments)
- Verify inputs in parallel with a configurable worker count
- Write one JSON result per input to the output directory

Example:
  credlens batch claims.txt
  credlens batch claims.txt --concurrency 8 --output-dir ./results`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./credlens-results", "output directory for results")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	batchCmd.Flags().DurationVar(&verifyTimeout, "verify-timeout", 30*time.Second, "timeout for individual verifications")
	batchCmd.Flags().StringVar(&userAgent, "ua", "CredLens/0.1 (+https://github.com/credlens/credlens)", "HTTP User-Agent")
	batchCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching and memoization")
	batchCmd.Flags().StringVar(&corpusPath, "corpus", "", "corpus JSON file (default: built-in seed corpus)")
	batchCmd.Flags().StringVar(&embeddingProvider, "embedding", "", "embedding provider (local, openai)")
	batchCmd.Flags().StringVar(&entailmentProvider, "entailment", "", "entailment provider (lexical, openai)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := buildConfig(cmd)
	if cmd.Flags().Changed("verify-timeout") {
		cfg.HTTP.Timeout = verifyTimeout
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency.BatchWorkers = concurrency
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	v, err := newVerifier(ctx, cfg)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(v, cfg.Concurrency.BatchWorkers)

	fmt.Fprintf(os.Stderr, "Reading inputs from %s...\n", file)
	outcomes, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	successCount := 0
	failureCount := 0

	for _, outcome := range outcomes {
		if outcome.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", outcome.Input, outcome.Error)
			continue
		}

		successCount++

		path := filepath.Join(outputDir, resultFilename(outcome.Input))
		data, err := json.MarshalIndent(outcome.Result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: marshal result: %v\n", outcome.Input, err)
			continue
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: write result: %v\n", outcome.Input, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "OK   %s -> %s (%s)\n", outcome.Input, path, outcome.Result.Verdict)
	}

	fmt.Fprintf(os.Stderr, "\nBatch complete: %d total, %d ok, %d failed, output in %s\n",
		len(outcomes), successCount, failureCount, outputDir)

	return nil
}

// resultFilename derives a stable, filesystem-safe name for an input
func resultFilename(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:8]) + ".json"
}
