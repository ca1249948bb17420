package lesson

import (
	"testing"

	"github.com/credlens/credlens/internal/model"
)

func TestLesson_SuspiciousLanguageWins(t *testing.T) {
	m := NewMapper()

	// Language beats every other signal, including missing authorship
	got := m.Lesson(Signals{
		SuspiciousPhrases: []model.SuspiciousPhrase{{Phrase: "shocking"}},
		FromArticle:       true,
		HasAuthor:         false,
	})

	if got.Category != model.LessonLanguageAnalysis {
		t.Errorf("expected language_analysis, got %s", got.Category)
	}
	if got.Tip == "" {
		t.Error("expected a tip")
	}
}

func TestLesson_MissingAuthor(t *testing.T) {
	m := NewMapper()

	got := m.Lesson(Signals{FromArticle: true, HasAuthor: false})
	if got.Category != model.LessonSourceVerification {
		t.Errorf("expected source_verification, got %s", got.Category)
	}
}

func TestLesson_AuthoredArticleSkipsSourceRule(t *testing.T) {
	m := NewMapper()

	got := m.Lesson(Signals{FromArticle: true, HasAuthor: true})
	if got.Category == model.LessonSourceVerification {
		t.Error("authored article should not trigger source_verification")
	}
}

func TestLesson_NoSourcedEvidence(t *testing.T) {
	m := NewMapper()

	got := m.Lesson(Signals{
		Evidence: []model.EvidenceItem{{Source: "note", Relation: model.RelationSupports}},
	})
	if got.Category != model.LessonCrossReferencing {
		t.Errorf("expected cross_referencing, got %s", got.Category)
	}
}

func TestLesson_ConflictingEvidence(t *testing.T) {
	m := NewMapper()

	got := m.Lesson(Signals{
		Evidence: []model.EvidenceItem{
			{URL: "https://a.example", Relation: model.RelationSupports},
			{URL: "https://b.example", Relation: model.RelationContradicts},
		},
	})
	if got.Category != model.LessonBiasAwareness {
		t.Errorf("expected bias_awareness, got %s", got.Category)
	}
}

func TestLesson_Default(t *testing.T) {
	m := NewMapper()

	got := m.Lesson(Signals{
		Evidence: []model.EvidenceItem{
			{URL: "https://a.example", Relation: model.RelationSupports},
		},
	})
	if got.Category != model.LessonEvidenceEvaluation {
		t.Errorf("expected evidence_evaluation, got %s", got.Category)
	}
}

func TestLesson_Deterministic(t *testing.T) {
	m := NewMapper()

	sig := Signals{
		SuspiciousPhrases: []model.SuspiciousPhrase{{Phrase: "urgent"}},
		Evidence: []model.EvidenceItem{
			{URL: "https://a.example", Relation: model.RelationSupports},
			{URL: "https://b.example", Relation: model.RelationContradicts},
		},
	}

	first := m.Lesson(sig)
	for i := 0; i < 5; i++ {
		if again := m.Lesson(sig); again != first {
			t.Errorf("run %d: %+v differs from %+v", i, again, first)
		}
	}
}
