package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/credlens/credlens/internal/model"
)

// fakeCache is an in-memory cache.Cache for tests
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	val, ok := c.entries[key]
	return val, ok
}

func (c *fakeCache) Set(key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *fakeCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]byte)
	return nil
}

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	return cfg
}

func newTestVerifier(t *testing.T) *Verifier {
	t.Helper()

	v, err := NewVerifier(testConfig())
	if err != nil {
		t.Fatalf("NewVerifier failed: %v", err)
	}
	if err := v.RebuildIndex(context.Background()); err != nil {
		t.Fatalf("RebuildIndex failed: %v", err)
	}
	return v
}

func TestVerifier_EmptyInput(t *testing.T) {
	v := newTestVerifier(t)

	for _, input := range []string{"", "   ", "\n\t"} {
		result, err := v.Verify(context.Background(), input)
		if err != nil {
			t.Fatalf("Verify(%q) returned error %v, want UNVERIFIED result", input, err)
		}
		if result.Verdict != model.VerdictUnverified {
			t.Errorf("Verify(%q): expected UNVERIFIED, got %s", input, result.Verdict)
		}
		if result.Confidence != 0 {
			t.Errorf("Verify(%q): expected zero confidence, got %f", input, result.Confidence)
		}
		if result.Explanation == "" {
			t.Errorf("Verify(%q): expected an explanation", input)
		}
	}
}

func TestVerifier_Idempotent(t *testing.T) {
	v := newTestVerifier(t)
	ctx := context.Background()
	input := "Vaccines cause autism in children."

	first, err := v.Verify(ctx, input)
	if err != nil {
		t.Fatalf("first verify failed: %v", err)
	}
	second, err := v.Verify(ctx, input)
	if err != nil {
		t.Fatalf("second verify failed: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("identical inputs produced different results:\n%s\n%s", a, b)
	}
}

func TestVerifier_SensationalFalseClaim(t *testing.T) {
	v := newTestVerifier(t)

	result, err := v.Verify(context.Background(), "URGENT!!! 5G networks spread coronavirus, wake up people!")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	if result.Verdict != model.VerdictLikelyFalse {
		t.Errorf("expected LIKELY_FALSE, got %s", result.Verdict)
	}
	if len(result.SuspiciousPhrases) == 0 {
		t.Error("expected suspicious phrases to be flagged")
	}
	if result.Lesson.Category != model.LessonLanguageAnalysis {
		t.Errorf("expected language_analysis lesson, got %s", result.Lesson.Category)
	}
	if result.Fingerprint.LanguageRisk <= 0 {
		t.Error("expected positive language risk")
	}
}

func TestVerifier_ResultInvariants(t *testing.T) {
	v := newTestVerifier(t)

	inputs := []string{
		"The Earth is flat.",
		"Drinking bleach cures infections.",
		"Regular exercise improves health.",
		"The moon landing was staged, share before they delete this!",
	}

	for _, input := range inputs {
		result, err := v.Verify(context.Background(), input)
		if err != nil {
			t.Fatalf("verify %q failed: %v", input, err)
		}

		if result.ExtractedClaim == "" {
			t.Errorf("%q: empty extracted claim", input)
		}
		if result.Confidence < 0 || result.Confidence > 1 {
			t.Errorf("%q: confidence %f out of range", input, result.Confidence)
		}
		if result.Fingerprint.OverallScore < 0 || result.Fingerprint.OverallScore > 1 {
			t.Errorf("%q: overall score %f out of range", input, result.Fingerprint.OverallScore)
		}
		if result.Explanation == "" {
			t.Errorf("%q: empty explanation", input)
		}
		if result.Lesson.Tip == "" || result.Lesson.Category == "" {
			t.Errorf("%q: incomplete lesson", input)
		}
		if len(result.Reasons) > 3 {
			t.Errorf("%q: %d reasons, want at most 3", input, len(result.Reasons))
		}
		for _, item := range result.Evidence {
			if item.RelationConfidence < 0 || item.RelationConfidence > 1 {
				t.Errorf("%q: relation confidence %f out of range", input, item.RelationConfidence)
			}
			if item.SimilarityScore < 0 || item.SimilarityScore > 1 {
				t.Errorf("%q: similarity %f out of range", input, item.SimilarityScore)
			}
		}
		// Phrase offsets index the extracted claim
		for _, phrase := range result.SuspiciousPhrases {
			if phrase.StartPos < 0 || phrase.EndPos > len(result.ExtractedClaim) || phrase.StartPos >= phrase.EndPos {
				t.Errorf("%q: invalid offsets [%d,%d) for claim of length %d",
					input, phrase.StartPos, phrase.EndPos, len(result.ExtractedClaim))
				continue
			}
			if got := result.ExtractedClaim[phrase.StartPos:phrase.EndPos]; got != phrase.Phrase {
				t.Errorf("%q: offsets yield %q, phrase is %q", input, got, phrase.Phrase)
			}
		}
	}
}

func TestVerifier_ArticleURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = fmt.Fprint(w, `<html><head><title>Local News</title></head><body>
<p>The town council approved the new library budget on Tuesday.</p>
</body></html>`)
	}))
	defer server.Close()

	v := newTestVerifier(t)

	result, err := v.Verify(context.Background(), server.URL+"/article")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	if result.ExtractedClaim == "" {
		t.Error("expected a claim extracted from the article")
	}
	// Page exposes no author metadata
	if result.Lesson.Category != model.LessonSourceVerification {
		t.Errorf("expected source_verification lesson, got %s", result.Lesson.Category)
	}
}

func TestVerifier_FetchFailure(t *testing.T) {
	v := newTestVerifier(t)

	result, err := v.Verify(context.Background(), "http://127.0.0.1:1/unreachable")
	if err != nil {
		t.Fatalf("verify should not fail on fetch errors, got %v", err)
	}

	if result.Verdict != model.VerdictUnverified {
		t.Errorf("expected UNVERIFIED for unreachable article, got %s", result.Verdict)
	}
	if result.Confidence != 0 {
		t.Errorf("expected zero confidence, got %f", result.Confidence)
	}
}

func TestVerifier_Memoization(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = true
	cfg.Cache.Dir = t.TempDir()

	v, err := NewVerifier(cfg)
	if err != nil {
		t.Fatalf("NewVerifier failed: %v", err)
	}
	if err := v.RebuildIndex(context.Background()); err != nil {
		t.Fatalf("RebuildIndex failed: %v", err)
	}

	input := "The Earth is approximately spherical."

	first, err := v.Verify(context.Background(), input)
	if err != nil {
		t.Fatalf("first verify failed: %v", err)
	}
	second, err := v.Verify(context.Background(), input)
	if err != nil {
		t.Fatalf("second verify failed: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Error("memoized result differs from original")
	}
}

func TestVerifier_RebuildDuringQueries(t *testing.T) {
	v := newTestVerifier(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				if _, err := v.Verify(ctx, "Vaccines are safe and effective."); err != nil {
					t.Errorf("verify during rebuild failed: %v", err)
					return
				}
			}
		}()
	}

	for i := 0; i < 3; i++ {
		if err := v.RebuildIndex(ctx); err != nil {
			t.Fatalf("rebuild failed: %v", err)
		}
	}
	wg.Wait()

	if v.IndexSize() != v.CorpusSize() {
		t.Errorf("index size %d != corpus size %d", v.IndexSize(), v.CorpusSize())
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"http://example.com/article", true},
		{"https://example.com", true},
		{"The Earth is round.", false},
		{"ftp://example.com", false},
		{"http://", false},
		{"example.com/article", false},
	}

	for _, tt := range tests {
		if got := isURL(tt.input); got != tt.want {
			t.Errorf("isURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
