package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/credlens/credlens/internal/cache"
	"github.com/credlens/credlens/internal/corpus"
	"github.com/credlens/credlens/internal/embed"
	"github.com/credlens/credlens/internal/entail"
	"github.com/credlens/credlens/internal/evidence"
	"github.com/credlens/credlens/internal/extract"
	"github.com/credlens/credlens/internal/index"
	"github.com/credlens/credlens/internal/lesson"
	"github.com/credlens/credlens/internal/model"
	"github.com/credlens/credlens/internal/risk"
	"github.com/credlens/credlens/internal/score"
	"github.com/credlens/credlens/internal/trust"
	"github.com/credlens/credlens/internal/verdict"
)

// Verifier orchestrates the full verification pipeline: extract the claim,
// gather evidence, score credibility, decide the verdict, and attach the
// micro-lesson. Verify is total: any input yields a result, with failures
// surfacing as UNVERIFIED verdicts rather than errors.
type Verifier struct {
	fetcher    *Fetcher
	extractor  *extract.Extractor
	detector   *risk.Detector
	store      *corpus.Store
	manager    *index.Manager
	embedder   embed.Provider
	aggregator *evidence.Aggregator
	scorer     *score.Scorer
	engine     *verdict.Engine
	mapper     *lesson.Mapper
	memo       cache.Cache
	verbose    bool
}

// NewVerifier wires the pipeline from configuration. The vector index starts
// empty; call RebuildIndex before the first Verify.
func NewVerifier(cfg *model.Config) (*Verifier, error) {
	store, err := corpus.Load(cfg.Retrieval.CorpusPath)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	embedder, err := embed.NewProvider(cfg.Embedding)
	if err != nil {
		return nil, fmt.Errorf("create embedding provider: %w", err)
	}

	classifier, err := entail.NewClassifier(cfg.Entailment)
	if err != nil {
		return nil, fmt.Errorf("create entailment classifier: %w", err)
	}

	var pageCache, memo cache.Cache
	if cfg.Cache.Enabled {
		layered := cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		pageCache = layered
		memo = layered
	}

	manager := index.NewManager(nil)
	detector := risk.NewDetector()
	lookup := trust.NewLookup(&cfg.Trust)

	aggregator := evidence.NewAggregator(
		store,
		manager,
		embedder,
		classifier,
		nil,
		cfg.Retrieval.TopK,
		cfg.Concurrency.ClassifyWorkers,
		cfg.Concurrency.ProviderTimeout,
	)

	return &Verifier{
		fetcher:    NewFetcher(cfg.HTTP, pageCache),
		extractor:  extract.NewExtractor(),
		detector:   detector,
		store:      store,
		manager:    manager,
		embedder:   embedder,
		aggregator: aggregator,
		scorer:     score.NewScorer(lookup, detector, cfg.Scoring),
		engine:     verdict.NewEngine(cfg.Verdict),
		mapper:     lesson.NewMapper(),
		memo:       memo,
		verbose:    cfg.Output.Verbose,
	}, nil
}

// RebuildIndex re-embeds the full corpus and swaps in a fresh index snapshot.
// In-flight Verify calls keep searching the previous snapshot until the swap.
func (v *Verifier) RebuildIndex(ctx context.Context) error {
	return v.manager.Rebuild(func() (*index.Index, error) {
		records := v.store.Records()
		vectors := make([][]float32, len(records))

		for i, record := range records {
			vec, err := v.embedder.Embed(ctx, record.Statement)
			if err != nil {
				return nil, fmt.Errorf("embed record %s: %w", record.ID, err)
			}
			vectors[i] = vec
		}

		return index.Build(vectors)
	})
}

// Verify runs the full pipeline for one input, either a bare claim or an
// article URL. Identical inputs against the same corpus and config produce
// identical results.
func (v *Verifier) Verify(ctx context.Context, input string) (*model.VerificationResult, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return v.unverified(input, "No claim text was provided."), nil
	}

	memoKey := cache.Key("claim", input)
	if v.memo != nil {
		if data, found := v.memo.Get(memoKey); found {
			var result model.VerificationResult
			if err := json.Unmarshal(data, &result); err == nil {
				v.logf("cache hit for input")
				return &result, nil
			}
		}
	}

	text := input
	fromArticle := false
	hasAuthor := false

	if isURL(input) {
		fromArticle = true
		article, err := v.fetchArticle(ctx, input)
		if err != nil {
			v.logf("fetch failed: %v", err)
			return v.unverified(input, fmt.Sprintf("Could not fetch the article: %v.", err)), nil
		}
		hasAuthor = article.Author != ""
		text = article.Body
		if article.Title != "" {
			text = article.Title + ". " + text
		}
	}

	claim := v.extractor.Extract(text)
	if claim == "" {
		return v.unverified(input, "No verifiable claim found in the input."), nil
	}
	v.logf("extracted claim: %s", claim)

	query := &model.ClaimQuery{RawInput: input, ExtractedClaim: claim}
	phrases := v.detector.Detect(query.ExtractedClaim)
	items, degraded := v.aggregator.Gather(ctx, query)
	v.logf("gathered %d evidence items (%d degraded components)", len(items), len(degraded))

	fp := v.scorer.Fingerprint(query.ExtractedClaim, items)
	outcome := v.engine.Decide(items, fp, phrases)

	explanation := outcome.Explanation
	if len(degraded) > 0 {
		explanation += " Some evidence sources were unavailable: " + strings.Join(degraded, ", ") + "."
	}

	result := &model.VerificationResult{
		ExtractedClaim:    claim,
		Verdict:           outcome.Verdict,
		Confidence:        outcome.Confidence,
		Explanation:       explanation,
		Reasons:           outcome.Reasons,
		Evidence:          items,
		Fingerprint:       fp,
		SuspiciousPhrases: phrases,
		Lesson: v.mapper.Lesson(lesson.Signals{
			SuspiciousPhrases: phrases,
			Evidence:          items,
			Fingerprint:       fp,
			FromArticle:       fromArticle,
			HasAuthor:         hasAuthor,
		}),
	}

	// Degraded runs are not memoized; a retry may do better
	if v.memo != nil && len(degraded) == 0 {
		if data, err := json.Marshal(result); err == nil {
			_ = v.memo.Set(memoKey, data, 0)
		}
	}

	return result, nil
}

// fetchArticle fetches and parses the page behind rawURL
func (v *Verifier) fetchArticle(ctx context.Context, rawURL string) (extract.Article, error) {
	fetched, err := v.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return extract.Article{}, err
	}

	article, err := extract.ParseArticle(fetched.HTML)
	if err != nil {
		return extract.Article{}, err
	}
	if article.Body == "" {
		return extract.Article{}, fmt.Errorf("article has no readable text")
	}

	return article, nil
}

// unverified builds the degraded result shape: UNVERIFIED with the risk
// signals that do not depend on evidence
func (v *Verifier) unverified(input, explanation string) *model.VerificationResult {
	claim := v.extractor.Extract(input)
	if claim == "" {
		claim = input
	}
	phrases := v.detector.Detect(claim)
	fp := v.scorer.Fingerprint(claim, nil)

	return &model.VerificationResult{
		ExtractedClaim:    claim,
		Verdict:           model.VerdictUnverified,
		Confidence:        0,
		Explanation:       explanation,
		Evidence:          []model.EvidenceItem{},
		Fingerprint:       fp,
		SuspiciousPhrases: phrases,
		Lesson: v.mapper.Lesson(lesson.Signals{
			SuspiciousPhrases: phrases,
			Fingerprint:       fp,
		}),
	}
}

// ClearCache drops all cached pages and memoized results
func (v *Verifier) ClearCache() error {
	if v.memo == nil {
		return nil
	}
	return v.memo.Clear()
}

// CorpusSize returns the number of records available for retrieval
func (v *Verifier) CorpusSize() int {
	return v.store.Len()
}

// IndexSize returns the number of vectors in the active index snapshot
func (v *Verifier) IndexSize() int {
	return v.manager.Active().Len()
}

func (v *Verifier) logf(format string, args ...any) {
	if v.verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// isURL reports whether input is an absolute http(s) URL
func isURL(input string) bool {
	if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
		return false
	}
	parsed, err := url.Parse(input)
	if err != nil {
		return false
	}
	return parsed.Host != ""
}
