package evidence

import (
	"context"

	"github.com/credlens/credlens/internal/model"
)

// Provider supplies pre-formed evidence items for a claim. External
// fact-check, news, and web search integrations all sit behind this single
// interface; the aggregator does not know or care how items were produced,
// only that they conform to the EvidenceItem contract.
type Provider interface {
	// Name identifies the provider in degradation messages
	Name() string

	// Gather returns evidence items for the claim
	Gather(ctx context.Context, claim string) ([]model.EvidenceItem, error)
}

// StaticProvider serves a fixed evidence list regardless of claim. Used for
// curated feeds and tests.
type StaticProvider struct {
	name  string
	items []model.EvidenceItem
}

// NewStaticProvider creates a provider that always returns items
func NewStaticProvider(name string, items []model.EvidenceItem) *StaticProvider {
	return &StaticProvider{name: name, items: items}
}

// Name identifies the provider
func (p *StaticProvider) Name() string {
	return p.name
}

// Gather returns a copy of the fixed evidence list
func (p *StaticProvider) Gather(_ context.Context, _ string) ([]model.EvidenceItem, error) {
	out := make([]model.EvidenceItem, len(p.items))
	copy(out, p.items)
	return out, nil
}
