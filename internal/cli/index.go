package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/credlens/credlens/internal/pipeline"
	"github.com/spf13/cobra"
)

// indexCmd groups vector index operations
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the corpus vector index",
}

var indexRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Re-embed the corpus and rebuild the vector index",
	Long: `Rebuild re-embeds every corpus record and constructs a fresh index.
Use it after editing the corpus file or switching embedding providers.

Example:
  credlens index rebuild --corpus ./corpus.json
  credlens index rebuild --embedding openai`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		cfg := buildConfig(cmd)

		v, err := pipeline.NewVerifier(cfg)
		if err != nil {
			return err
		}

		start := time.Now()
		if err := v.RebuildIndex(ctx); err != nil {
			return fmt.Errorf("rebuild index: %w", err)
		}

		fmt.Printf("Indexed %d records in %v\n", v.IndexSize(), time.Since(start).Round(time.Millisecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.AddCommand(indexRebuildCmd)

	indexRebuildCmd.Flags().StringVar(&corpusPath, "corpus", "", "corpus JSON file (default: built-in seed corpus)")
	indexRebuildCmd.Flags().StringVar(&embeddingProvider, "embedding", "", "embedding provider (local, openai)")
}
