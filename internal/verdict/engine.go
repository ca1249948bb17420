package verdict

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/credlens/credlens/internal/model"
)

// Engine turns the deduplicated evidence list and credibility fingerprint
// into a categorical verdict, numeric confidence, deterministic explanation,
// and ranked reasons. Identical inputs always produce identical output.
type Engine struct {
	cfg model.VerdictConfig
}

// NewEngine creates a verdict engine with the given thresholds
func NewEngine(cfg model.VerdictConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Outcome is the engine's decision
type Outcome struct {
	Verdict     model.Verdict
	Confidence  float64
	Explanation string
	Reasons     []string
}

// Decide evaluates the decision table over the evidence.
// net = (sum of SUPPORTS confidence - sum of CONTRADICTS confidence),
// normalized by the count of non-neutral items.
func (e *Engine) Decide(items []model.EvidenceItem, fp model.CredibilityFingerprint, phrases []model.SuspiciousPhrase) Outcome {
	supports, contradicts := tally(items)
	net := netSignal(items)

	out := Outcome{
		Confidence: e.confidence(net, fp.OverallScore),
		Reasons:    e.reasons(items, fp, phrases),
	}

	switch {
	case len(items) == 0:
		out.Verdict = model.VerdictUnverified
		out.Explanation = "No evidence found to verify this claim."

	case e.conflicting(items) || math.Abs(net) < e.cfg.NetSignal:
		out.Verdict = model.VerdictMixed
		out.Explanation = fmt.Sprintf("Evidence is mixed: %d supporting, %d contradicting.", supports, contradicts)

	case net >= e.cfg.NetSignal && fp.OverallScore >= e.cfg.MinTrueScore:
		out.Verdict = model.VerdictLikelyTrue
		out.Explanation = fmt.Sprintf("Evidence largely supports this claim (%d of %d items supporting).", supports, len(items))

	case net <= -e.cfg.NetSignal && fp.OverallScore < e.cfg.MaxFalseScore:
		out.Verdict = model.VerdictLikelyFalse
		out.Explanation = fmt.Sprintf("Evidence largely contradicts this claim (%d of %d items contradicting).", contradicts, len(items))

	case fp.OverallScore < e.cfg.UnverifiedScore && !anySourced(items):
		out.Verdict = model.VerdictUnverified
		out.Explanation = "Evidence exists but lacks credible sourcing; unable to verify this claim."

	default:
		// Directional signal without the credibility to back it
		out.Verdict = model.VerdictMixed
		out.Explanation = fmt.Sprintf("Evidence is inconclusive: %d supporting, %d contradicting, with limited credibility.", supports, contradicts)
	}

	return out
}

// netSignal computes the normalized support-minus-contradiction signal
func netSignal(items []model.EvidenceItem) float64 {
	var sum float64
	nonNeutral := 0
	for _, item := range items {
		switch item.Relation {
		case model.RelationSupports:
			sum += item.RelationConfidence
			nonNeutral++
		case model.RelationContradicts:
			sum -= item.RelationConfidence
			nonNeutral++
		}
	}
	if nonNeutral == 0 {
		return 0
	}
	return sum / float64(nonNeutral)
}

// conflicting reports high-confidence evidence on both sides
func (e *Engine) conflicting(items []model.EvidenceItem) bool {
	strongSupport, strongContradict := false, false
	for _, item := range items {
		if item.RelationConfidence < e.cfg.HighConfidence {
			continue
		}
		switch item.Relation {
		case model.RelationSupports:
			strongSupport = true
		case model.RelationContradicts:
			strongContradict = true
		}
	}
	return strongSupport && strongContradict
}

func (e *Engine) confidence(net, overall float64) float64 {
	c := math.Abs(net)*e.cfg.ConfidenceNet + e.cfg.ConfidenceScore*overall
	if c > 1 {
		return 1
	}
	return c
}

// reasons assembles the ranked reason list, highest priority first:
// missing corroboration, flagged manipulative language, dominant source.
func (e *Engine) reasons(items []model.EvidenceItem, fp model.CredibilityFingerprint, phrases []model.SuspiciousPhrase) []string {
	var reasons []string

	if fp.CorroborationCount == 0 {
		reasons = append(reasons, "no independent sourced evidence corroborates this claim")
	}

	if len(phrases) > 0 {
		named := make([]string, 0, e.cfg.MaxNamedPhrases)
		for _, p := range phrases {
			if len(named) >= e.cfg.MaxNamedPhrases {
				break
			}
			named = append(named, fmt.Sprintf("%q", p.Phrase))
		}
		reasons = append(reasons, "manipulative language detected: "+strings.Join(named, ", "))
	}

	if domain := dominantDomain(items); domain != "" {
		reasons = append(reasons, "most evidence comes from "+domain)
	}

	max := e.cfg.MaxReasons
	if max <= 0 {
		max = 3
	}
	if len(reasons) > max {
		reasons = reasons[:max]
	}
	return reasons
}

// dominantDomain returns the most frequent evidence domain, ties broken
// alphabetically for determinism
func dominantDomain(items []model.EvidenceItem) string {
	counts := make(map[string]int)
	for _, item := range items {
		if d := item.Domain(); d != "" {
			counts[d]++
		}
	}
	if len(counts) == 0 {
		return ""
	}

	domains := make([]string, 0, len(counts))
	for d := range counts {
		domains = append(domains, d)
	}
	sort.Strings(domains)

	best := domains[0]
	for _, d := range domains[1:] {
		if counts[d] > counts[best] {
			best = d
		}
	}
	return best
}

func tally(items []model.EvidenceItem) (supports, contradicts int) {
	for _, item := range items {
		switch item.Relation {
		case model.RelationSupports:
			supports++
		case model.RelationContradicts:
			contradicts++
		}
	}
	return supports, contradicts
}

func anySourced(items []model.EvidenceItem) bool {
	for _, item := range items {
		if item.URL != "" {
			return true
		}
	}
	return false
}
