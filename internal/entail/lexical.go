package entail

import (
	"context"
	"strings"
	"unicode"

	"github.com/credlens/credlens/internal/model"
)

// Stance cue phrases checked against the evidence text
var (
	contradictCues = []string{
		"false", "debunked", "incorrect", "no evidence", "myth", "hoax",
		"misleading", "unfounded", "retracted", "no association", "disproven",
		"not supported", "contrary to",
	}
	supportCues = []string{
		"confirmed", "verified", "evidence shows", "research indicates",
		"proven", "accurate", "safe and effective", "demonstrated",
		"studies show", "consistent with", "establish",
	}
)

var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"that": {}, "this": {}, "it": {}, "its": {}, "as": {}, "from": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
}

var negations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "cannot": {}, "nor": {},
	"don": {}, "doesn": {}, "didn": {}, "isn": {}, "aren": {},
	"wasn": {}, "weren": {}, "shouldn": {}, "couldn": {}, "wouldn": {},
}

// LexicalClassifier is a deterministic offline entailment heuristic. It keys
// off explicit stance cues, negation asymmetry, and content-word overlap.
// It is deliberately conservative: low overlap always yields NEUTRAL so
// unrelated retrieval candidates do not sway the verdict.
type LexicalClassifier struct{}

// NewLexicalClassifier creates a lexical classifier
func NewLexicalClassifier() *LexicalClassifier {
	return &LexicalClassifier{}
}

// Name returns the classifier name
func (c *LexicalClassifier) Name() string {
	return "lexical"
}

// Classify returns the relation of evidence toward claim
func (c *LexicalClassifier) Classify(_ context.Context, claim, evidence string) (Result, error) {
	claimWords, claimNeg := contentWords(claim)
	evidenceWords, evidenceNeg := contentWords(evidence)

	overlap := coverage(claimWords, evidenceWords)
	if overlap < 0.25 {
		return Result{Relation: model.RelationNeutral, Confidence: 0.4}, nil
	}

	evidenceLower := strings.ToLower(evidence)

	if n := countCues(evidenceLower, contradictCues); n > 0 {
		return Result{
			Relation:   model.RelationContradicts,
			Confidence: clampConfidence(0.55 + 0.1*float64(n)),
		}, nil
	}

	// One side negates what the other asserts
	if claimNeg != evidenceNeg {
		return Result{Relation: model.RelationContradicts, Confidence: 0.75}, nil
	}

	if n := countCues(evidenceLower, supportCues); n > 0 {
		return Result{
			Relation:   model.RelationSupports,
			Confidence: clampConfidence(0.55 + 0.1*float64(n)),
		}, nil
	}

	if overlap >= 0.5 {
		conf := 0.5 + 0.3*overlap
		if conf > 0.85 {
			conf = 0.85
		}
		return Result{Relation: model.RelationSupports, Confidence: conf}, nil
	}

	return Result{Relation: model.RelationNeutral, Confidence: 0.5}, nil
}

// contentWords returns the non-stopword token set and whether the text
// contains a negation marker
func contentWords(text string) (map[string]struct{}, bool) {
	words := make(map[string]struct{})
	negated := false

	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	for _, tok := range tokens {
		if _, ok := negations[tok]; ok {
			negated = true
			continue
		}
		if _, ok := stopwords[tok]; ok {
			continue
		}
		if len(tok) < 2 {
			continue
		}
		words[tok] = struct{}{}
	}

	return words, negated
}

// coverage is the fraction of claim content words present in the evidence
func coverage(claim, evidence map[string]struct{}) float64 {
	if len(claim) == 0 {
		return 0
	}
	shared := 0
	for w := range claim {
		if _, ok := evidence[w]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(claim))
}

func countCues(text string, cues []string) int {
	n := 0
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			n++
		}
	}
	return n
}
