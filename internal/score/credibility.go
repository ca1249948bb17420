package score

import (
	"math"

	"github.com/credlens/credlens/internal/model"
	"github.com/credlens/credlens/internal/risk"
	"github.com/credlens/credlens/internal/trust"
)

// Scorer computes the credibility fingerprint for a claim and its evidence.
// Fingerprint is a pure function of its inputs: same claim and evidence list
// always produce the same fingerprint.
type Scorer struct {
	trust    *trust.Lookup
	detector *risk.Detector
	cfg      model.ScoringConfig
}

// NewScorer creates a credibility scorer
func NewScorer(lookup *trust.Lookup, detector *risk.Detector, cfg model.ScoringConfig) *Scorer {
	if lookup == nil {
		lookup = trust.NewLookup(nil)
	}
	if detector == nil {
		detector = risk.NewDetector()
	}
	return &Scorer{trust: lookup, detector: detector, cfg: cfg}
}

// Fingerprint computes the multi-factor credibility summary.
// overall_score = source_weight*source_credibility
//   + corroboration_weight*min(corroboration/target, 1)
//   + language_weight*(1-language_risk), clamped to [0,1].
// The formula is monotone non-decreasing in source credibility and
// corroboration, non-increasing in language risk.
func (s *Scorer) Fingerprint(claim string, items []model.EvidenceItem) model.CredibilityFingerprint {
	fp := model.CredibilityFingerprint{
		SourceCredibility:  s.sourceCredibility(items),
		CorroborationCount: CorroborationCount(items),
		LanguageRisk:       s.languageRisk(claim),
	}
	fp.OverallScore = s.Overall(fp)
	return fp
}

// Overall combines an existing fingerprint's factors into the overall score
func (s *Scorer) Overall(fp model.CredibilityFingerprint) float64 {
	target := s.cfg.CorroborationTarget
	if target <= 0 {
		target = 3
	}

	corroboration := float64(fp.CorroborationCount) / float64(target)
	if corroboration > 1 {
		corroboration = 1
	}

	score := s.cfg.SourceWeight*fp.SourceCredibility +
		s.cfg.CorroborationWeight*corroboration +
		s.cfg.LanguageWeight*(1-fp.LanguageRisk)

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// sourceCredibility is the mean trust weight across evidence items that
// carry a URL; 0 when no evidence is sourced.
func (s *Scorer) sourceCredibility(items []model.EvidenceItem) float64 {
	var sum float64
	n := 0
	for _, item := range items {
		if item.URL == "" {
			continue
		}
		sum += s.trust.Weight(item.Domain())
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// languageRisk maps flagged-phrase density through 1-exp(-k*density) so risk
// reflects phrase density with diminishing returns on long inputs.
func (s *Scorer) languageRisk(claim string) float64 {
	phrases := s.detector.Detect(claim)
	density := risk.Density(claim, phrases)
	if density == 0 {
		return 0
	}

	steepness := s.cfg.RiskSteepness
	if steepness <= 0 {
		steepness = 3
	}

	return 1 - math.Exp(-steepness*density)
}

// CorroborationCount counts supporting evidence items with distinct domains
func CorroborationCount(items []model.EvidenceItem) int {
	domains := make(map[string]struct{})
	for _, item := range items {
		if item.Relation != model.RelationSupports {
			continue
		}
		domains[item.Domain()] = struct{}{}
	}
	return len(domains)
}
