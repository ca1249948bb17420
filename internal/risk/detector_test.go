package risk

import (
	"strings"
	"testing"

	"github.com/credlens/credlens/internal/model"
)

func TestDetect_Lexicon(t *testing.T) {
	d := NewDetector()

	phrases := d.Detect("This shocking discovery was revealed yesterday.")

	if len(phrases) != 2 {
		t.Fatalf("expected 2 phrases, got %d: %+v", len(phrases), phrases)
	}
	if phrases[0].Phrase != "shocking" || phrases[0].Reason != ReasonSensational {
		t.Errorf("unexpected first phrase: %+v", phrases[0])
	}
	if phrases[1].Phrase != "revealed" {
		t.Errorf("unexpected second phrase: %+v", phrases[1])
	}
}

func TestDetect_CaseInsensitiveWithOriginalCasing(t *testing.T) {
	d := NewDetector()

	phrases := d.Detect("A Shocking claim.")
	if len(phrases) != 1 {
		t.Fatalf("expected 1 phrase, got %d", len(phrases))
	}
	if phrases[0].Phrase != "Shocking" {
		t.Errorf("expected original casing preserved, got %q", phrases[0].Phrase)
	}
}

func TestDetect_Capitalization(t *testing.T) {
	d := NewDetector()

	phrases := d.Detect("SHARE this with everyone")
	if len(phrases) != 1 {
		t.Fatalf("expected 1 phrase, got %d", len(phrases))
	}
	if phrases[0].Reason != ReasonCapitalization {
		t.Errorf("expected capitalization reason, got %q", phrases[0].Reason)
	}
}

func TestDetect_AcronymsNotFlagged(t *testing.T) {
	d := NewDetector()

	if phrases := d.Detect("The WHO and CDC published new guidance."); len(phrases) != 0 {
		t.Errorf("acronyms should not be flagged, got %+v", phrases)
	}
}

func TestDetect_Punctuation(t *testing.T) {
	d := NewDetector()

	phrases := d.Detect("This is true!!!")
	if len(phrases) != 1 {
		t.Fatalf("expected 1 phrase, got %d", len(phrases))
	}
	if phrases[0].Phrase != "!!!" || phrases[0].Reason != ReasonPunctuation {
		t.Errorf("unexpected phrase: %+v", phrases[0])
	}
}

func TestDetect_Empty(t *testing.T) {
	d := NewDetector()

	if phrases := d.Detect(""); phrases != nil {
		t.Errorf("expected nil for empty text, got %+v", phrases)
	}
	if phrases := d.Detect("The town library opens at nine."); len(phrases) != 0 {
		t.Errorf("expected no phrases for neutral text, got %+v", phrases)
	}
}

func TestDetect_OffsetsValidAndNonOverlapping(t *testing.T) {
	d := NewDetector()

	texts := []string{
		"URGENT!!! shocking news they don't want you to know about!!!",
		"BREAKING: this one trick doctors hate, click here NOW!!!",
		"wake up people, the mainstream media lies about the cover-up",
	}

	for _, text := range texts {
		phrases := d.Detect(text)
		lastEnd := -1

		for _, p := range phrases {
			if p.StartPos < 0 || p.EndPos > len(text) || p.StartPos >= p.EndPos {
				t.Errorf("%q: invalid offsets %d-%d", text, p.StartPos, p.EndPos)
			}
			if text[p.StartPos:p.EndPos] != p.Phrase {
				t.Errorf("%q: offsets %d-%d yield %q, want %q",
					text, p.StartPos, p.EndPos, text[p.StartPos:p.EndPos], p.Phrase)
			}
			if p.StartPos < lastEnd {
				t.Errorf("%q: phrase at %d overlaps previous ending at %d", text, p.StartPos, lastEnd)
			}
			lastEnd = p.EndPos
		}
	}
}

func TestDetect_OverlapPrefersLongest(t *testing.T) {
	d := NewDetector()

	// "they don't want you to know" contains no shorter lexicon term, but
	// URGENT!! overlaps caps and punctuation candidates at adjacent offsets
	phrases := d.Detect("they don't want you to know the truth")
	if len(phrases) != 1 {
		t.Fatalf("expected 1 phrase, got %d: %+v", len(phrases), phrases)
	}
	if phrases[0].Phrase != "they don't want you to know" {
		t.Errorf("expected the long lexicon match, got %q", phrases[0].Phrase)
	}
}

func TestDetect_Deterministic(t *testing.T) {
	d := NewDetector()
	text := "URGENT!!! SHOCKING cover-up EXPOSED, wake up!!!"

	first := d.Detect(text)
	for i := 0; i < 5; i++ {
		again := d.Detect(text)
		if len(again) != len(first) {
			t.Fatalf("run %d: got %d phrases, want %d", i, len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Errorf("run %d: phrase %d differs: %+v vs %+v", i, j, again[j], first[j])
			}
		}
	}
}

func TestDensity(t *testing.T) {
	text := "0123456789"
	phrases := []model.SuspiciousPhrase{
		{StartPos: 0, EndPos: 5},
	}

	if got := Density(text, phrases); got != 0.5 {
		t.Errorf("expected density 0.5, got %f", got)
	}
	if got := Density(text, nil); got != 0 {
		t.Errorf("expected density 0 for no phrases, got %f", got)
	}
	if got := Density("", phrases); got != 0 {
		t.Errorf("expected density 0 for empty text, got %f", got)
	}
}

func TestDensity_Clamped(t *testing.T) {
	text := "ab"
	phrases := []model.SuspiciousPhrase{
		{StartPos: 0, EndPos: 2},
		{StartPos: 0, EndPos: 2},
	}

	if got := Density(text, phrases); got != 1 {
		t.Errorf("expected density clamped to 1, got %f", got)
	}
}

func TestDetect_LongText(t *testing.T) {
	d := NewDetector()

	// A long neutral tail dilutes density but detection still fires
	text := "SHOCKING!!! " + strings.Repeat("The council met on Tuesday. ", 50)
	phrases := d.Detect(text)
	if len(phrases) == 0 {
		t.Fatal("expected phrases in long text")
	}

	density := Density(text, phrases)
	if density <= 0 || density >= 0.1 {
		t.Errorf("expected small positive density, got %f", density)
	}
}
