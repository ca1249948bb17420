package model

import (
	"net/url"
	"strings"
)

// Relation is the logical stance of an evidence item toward a claim
type Relation string

const (
	RelationSupports    Relation = "SUPPORTS"
	RelationContradicts Relation = "CONTRADICTS"
	RelationNeutral     Relation = "NEUTRAL"
)

// EvidenceItem is a retrieved or externally supplied statement judged for its
// relation to a claim. RelationConfidence and SimilarityScore are independent:
// similarity measures closeness to corpus text, relation measures logical
// stance regardless of how the pair was retrieved.
type EvidenceItem struct {
	Text               string   `json:"text"`
	Source             string   `json:"source"`
	URL                string   `json:"url,omitempty"`
	Relation           Relation `json:"relation"`
	RelationConfidence float64  `json:"relation_confidence"` // 0-1
	SimilarityScore    float64  `json:"similarity_score"`    // 0-1
}

// Domain returns the attribution domain used for deduplication and
// corroboration counting: the URL host when present, otherwise the
// lowercased source name.
func (e EvidenceItem) Domain() string {
	if e.URL != "" {
		if parsed, err := url.Parse(e.URL); err == nil && parsed.Host != "" {
			return NormalizeDomain(parsed.Host)
		}
	}
	return strings.ToLower(strings.TrimSpace(e.Source))
}

// NormalizeDomain lowercases a host and strips the port and a leading www.
func NormalizeDomain(host string) string {
	host = strings.ToLower(host)
	if idx := strings.Index(host, ":"); idx > 0 {
		host = host[:idx]
	}
	return strings.TrimPrefix(host, "www.")
}
