package evidence

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/credlens/credlens/internal/corpus"
	"github.com/credlens/credlens/internal/embed"
	"github.com/credlens/credlens/internal/entail"
	"github.com/credlens/credlens/internal/index"
	"github.com/credlens/credlens/internal/model"
)

// Aggregator produces the bounded evidence list for a claim: top-K corpus
// candidates scored by the entailment classifier, merged with items from
// external providers, deduplicated and ordered. It never fails a request; a
// broken collaborator degrades the output instead.
type Aggregator struct {
	store      *corpus.Store
	manager    *index.Manager
	embedder   embed.Provider
	classifier entail.Classifier
	providers  []Provider
	topK       int
	workers    int
	timeout    time.Duration
}

// NewAggregator creates an evidence aggregator
func NewAggregator(
	store *corpus.Store,
	manager *index.Manager,
	embedder embed.Provider,
	classifier entail.Classifier,
	providers []Provider,
	topK int,
	workers int,
	timeout time.Duration,
) *Aggregator {
	if topK <= 0 {
		topK = 5
	}
	if workers <= 0 {
		workers = 5
	}

	return &Aggregator{
		store:      store,
		manager:    manager,
		embedder:   embedder,
		classifier: classifier,
		providers:  providers,
		topK:       topK,
		workers:    workers,
		timeout:    timeout,
	}
}

// Gather returns the deduplicated, ordered evidence list for the query's
// claim, plus the names of any collaborators that failed along the way. The
// claim embedding is recorded on the query for the rest of the request. An
// empty list is a valid output that downstream stages must handle.
func (a *Aggregator) Gather(ctx context.Context, query *model.ClaimQuery) ([]model.EvidenceItem, []string) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	var items []model.EvidenceItem
	var degraded []string

	corpusItems, failed := a.corpusEvidence(ctx, query)
	items = append(items, corpusItems...)
	degraded = append(degraded, failed...)

	for _, p := range a.providers {
		ext, err := p.Gather(ctx, query.ExtractedClaim)
		if err != nil {
			degraded = append(degraded, p.Name())
			continue
		}
		for _, item := range ext {
			items = append(items, sanitize(item))
		}
	}

	items = Dedupe(items)
	SortItems(items)
	return items, degraded
}

// corpusEvidence retrieves and scores corpus candidates. The classifier is
// invoked concurrently per candidate; a per-candidate failure falls back to
// transferring the record's ground-truth verdict instead of dropping the hit.
func (a *Aggregator) corpusEvidence(ctx context.Context, query *model.ClaimQuery) ([]model.EvidenceItem, []string) {
	if a.store == nil || a.store.Len() == 0 || a.manager == nil {
		return nil, nil
	}

	vec, err := a.embedder.Embed(ctx, query.ExtractedClaim)
	if err != nil {
		return nil, []string{"embedding provider"}
	}
	query.Embedding = vec

	hits, err := a.manager.Active().Search(vec, a.topK)
	if err != nil {
		return nil, []string{"vector index"}
	}
	if len(hits) == 0 {
		return nil, nil
	}

	results := make([]model.EvidenceItem, len(hits))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, a.workers)

	for i, hit := range hits {
		wg.Add(1)
		go func(idx int, h index.Hit) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				record := a.store.At(h.ID)
				results[idx] = a.verdictTransfer(record, h.Similarity)
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			record := a.store.At(h.ID)
			stance, err := a.classifier.Classify(ctx, query.ExtractedClaim, record.Statement)
			if err != nil {
				// Classifier unavailable for this pair: transfer the
				// record's known verdict, discounted by similarity
				results[idx] = a.verdictTransfer(record, h.Similarity)
				return
			}

			relation, confidence := composeRelation(stance, record.Verdict)
			results[idx] = recordItem(record, relation, confidence, h.Similarity)
		}(i, hit)
	}

	wg.Wait()
	return results, nil
}

// composeRelation combines the classifier's stance between claim and
// statement with the statement's ground-truth verdict. A statement known to
// be FALSE that entails the claim is evidence against it, and vice versa.
func composeRelation(stance entail.Result, verdict model.CorpusVerdict) (model.Relation, float64) {
	switch verdict {
	case model.CorpusMixed:
		return model.RelationNeutral, stance.Confidence
	case model.CorpusFalse:
		switch stance.Relation {
		case model.RelationSupports:
			return model.RelationContradicts, stance.Confidence
		case model.RelationContradicts:
			return model.RelationSupports, stance.Confidence
		}
	}
	return stance.Relation, stance.Confidence
}

// verdictTransfer builds an evidence item from the record verdict alone
func (a *Aggregator) verdictTransfer(record model.CorpusRecord, similarity float64) model.EvidenceItem {
	relation := model.RelationNeutral
	switch record.Verdict {
	case model.CorpusTrue:
		relation = model.RelationSupports
	case model.CorpusFalse:
		relation = model.RelationContradicts
	}

	confidence := similarity + 0.1
	if confidence > 0.8 {
		confidence = 0.8
	}

	return recordItem(record, relation, confidence, similarity)
}

func recordItem(record model.CorpusRecord, relation model.Relation, confidence, similarity float64) model.EvidenceItem {
	text := record.Explanation
	if text == "" {
		text = record.Statement
	}

	return sanitize(model.EvidenceItem{
		Text:               text,
		Source:             record.SourceName,
		URL:                record.SourceURL,
		Relation:           relation,
		RelationConfidence: confidence,
		SimilarityScore:    similarity,
	})
}

// sanitize clamps scores into [0,1] and defaults a missing relation
func sanitize(item model.EvidenceItem) model.EvidenceItem {
	item.RelationConfidence = clamp01(item.RelationConfidence)
	item.SimilarityScore = clamp01(item.SimilarityScore)
	switch item.Relation {
	case model.RelationSupports, model.RelationContradicts, model.RelationNeutral:
	default:
		item.Relation = model.RelationNeutral
	}
	return item
}

// Dedupe merges items with identical source+url, keeping the higher
// relation confidence
func Dedupe(items []model.EvidenceItem) []model.EvidenceItem {
	if len(items) == 0 {
		return items
	}

	best := make(map[string]int, len(items))
	var out []model.EvidenceItem

	for _, item := range items {
		key := item.Source + "|" + item.URL
		if idx, seen := best[key]; seen {
			kept := out[idx]
			if item.RelationConfidence > kept.RelationConfidence ||
				(item.RelationConfidence == kept.RelationConfidence && item.SimilarityScore > kept.SimilarityScore) {
				out[idx] = item
			}
			continue
		}
		best[key] = len(out)
		out = append(out, item)
	}

	return out
}

// SortItems orders evidence by relation confidence descending, ties broken
// by similarity descending. Remaining ties fall back to source and text so
// identical inputs always produce identical output order.
func SortItems(items []model.EvidenceItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].RelationConfidence != items[j].RelationConfidence {
			return items[i].RelationConfidence > items[j].RelationConfidence
		}
		if items[i].SimilarityScore != items[j].SimilarityScore {
			return items[i].SimilarityScore > items[j].SimilarityScore
		}
		if items[i].Source != items[j].Source {
			return items[i].Source < items[j].Source
		}
		return items[i].Text < items[j].Text
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
