package lesson

import "github.com/credlens/credlens/internal/model"

// Mapper turns the detected failure pattern into a single educational tip.
// Rules are checked in priority order and the first match wins; tip selection
// is deterministic so identical analyses always teach the same lesson.
type Mapper struct{}

// NewMapper creates a lesson mapper
func NewMapper() *Mapper {
	return &Mapper{}
}

// Signals is the analysis summary the mapper keys off
type Signals struct {
	SuspiciousPhrases []model.SuspiciousPhrase
	Evidence          []model.EvidenceItem
	Fingerprint       model.CredibilityFingerprint
	FromArticle       bool // input was a fetched article
	HasAuthor         bool // article exposed author metadata
}

// Lesson returns the tip for the detected failure pattern
func (m *Mapper) Lesson(sig Signals) model.Lesson {
	if len(sig.SuspiciousPhrases) > 0 {
		return model.Lesson{
			Tip:      "Urgent or sensational wording is a manipulation signal - verify the claim through an official channel before sharing.",
			Category: model.LessonLanguageAnalysis,
		}
	}

	if sig.FromArticle && !sig.HasAuthor {
		return model.Lesson{
			Tip:      "This article names no author. Look for named authorship and verify the author's credentials on the topic.",
			Category: model.LessonSourceVerification,
		}
	}

	if !anySourced(sig.Evidence) {
		return model.Lesson{
			Tip:      "None of the available evidence links to a source. Seek independent corroboration from outlets you can inspect yourself.",
			Category: model.LessonCrossReferencing,
		}
	}

	if hasConflict(sig.Evidence) {
		return model.Lesson{
			Tip:      "Sources disagree on this claim. Compare outlets with different perspectives and watch for your own confirmation bias.",
			Category: model.LessonBiasAwareness,
		}
	}

	return model.Lesson{
		Tip:      "Check whether multiple independent sources report the same information before trusting a claim.",
		Category: model.LessonEvidenceEvaluation,
	}
}

func anySourced(items []model.EvidenceItem) bool {
	for _, item := range items {
		if item.URL != "" {
			return true
		}
	}
	return false
}

func hasConflict(items []model.EvidenceItem) bool {
	supports, contradicts := false, false
	for _, item := range items {
		switch item.Relation {
		case model.RelationSupports:
			supports = true
		case model.RelationContradicts:
			contradicts = true
		}
	}
	return supports && contradicts
}
