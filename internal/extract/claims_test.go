package extract

import (
	"strings"
	"testing"
)

func TestExtract_PassthroughShortClaim(t *testing.T) {
	e := NewExtractor()

	input := "5G networks spread coronavirus"
	if got := e.Extract(input); got != input {
		t.Errorf("expected passthrough, got %q", got)
	}
}

func TestExtract_Empty(t *testing.T) {
	e := NewExtractor()

	if got := e.Extract(""); got != "" {
		t.Errorf("expected empty output for empty input, got %q", got)
	}
	if got := e.Extract("   \n\t  "); got != "" {
		t.Errorf("expected empty output for whitespace input, got %q", got)
	}
}

func TestExtract_NeverEmptyForNonEmptyInput(t *testing.T) {
	e := NewExtractor()

	inputs := []string{
		"x",
		"Why? How? When?",
		"word",
		strings.Repeat("a", 300),
		"Click here! Subscribe! Sign up!",
	}

	for _, input := range inputs {
		if got := e.Extract(input); got == "" {
			t.Errorf("Extract(%q) returned empty", input)
		}
	}
}

func TestExtract_PicksFactualSentence(t *testing.T) {
	e := NewExtractor()

	input := "Welcome to our site. " +
		"A recent study shows that 75 percent of participants improved after treatment. " +
		"Click here to subscribe to our newsletter."

	got := e.Extract(input)
	if !strings.Contains(got, "75 percent") {
		t.Errorf("expected the factual sentence, got %q", got)
	}
}

func TestExtract_PenalizesQuestions(t *testing.T) {
	e := NewExtractor()

	input := "Could this common household item be dangerous? " +
		"Researchers confirmed the chemical causes irritation in 30 percent of cases."

	got := e.Extract(input)
	if strings.Contains(got, "?") {
		t.Errorf("expected the declarative sentence, got %q", got)
	}
}

func TestExtract_FallbackFirstSentence(t *testing.T) {
	e := NewExtractor()

	// No factual markers anywhere; first sentence wins
	input := "Purple monkey dishwasher banana telephone. Red green blue yellow orange pink."
	got := e.Extract(input)
	if got != "Purple monkey dishwasher banana telephone." {
		t.Errorf("expected first sentence fallback, got %q", got)
	}
}

func TestExtract_TruncatesUnsplittableInput(t *testing.T) {
	e := NewExtractor()

	input := strings.Repeat("word ", 150) // no sentence terminator
	got := e.Extract(input)
	if len(got) > 200 {
		t.Errorf("expected truncated output, got %d bytes", len(got))
	}
	if got == "" {
		t.Error("expected non-empty output")
	}
}

func TestExtract_CollapsesWhitespace(t *testing.T) {
	e := NewExtractor()

	got := e.Extract("The   Earth\n\tis   round")
	if got != "The Earth is round" {
		t.Errorf("expected collapsed whitespace, got %q", got)
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  hello   world  ", "hello world"},
		{"line\nbreak", "line break"},
		{"", ""},
		{"tabs\t\tand\t\tspaces", "tabs and spaces"},
	}

	for _, tt := range tests {
		if got := CleanText(tt.in); got != tt.want {
			t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitSentences(t *testing.T) {
	text := "The first sentence is here. The second one follows! Is this really the third one? Yes indeed it is the fourth."
	sentences := splitSentences(text)

	if len(sentences) != 4 {
		t.Fatalf("expected 4 sentences, got %d: %v", len(sentences), sentences)
	}
	if sentences[0] != "The first sentence is here." {
		t.Errorf("unexpected first sentence: %q", sentences[0])
	}
}

func TestSplitSentences_FiltersTooShort(t *testing.T) {
	sentences := splitSentences("Ok. This sentence is comfortably long enough to keep.")
	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d: %v", len(sentences), sentences)
	}
}
