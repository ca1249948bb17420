package extract

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// Inputs at or under this length that already read as one declarative
	// sentence pass through unchanged
	passthroughMaxLen = 240

	// Candidate sentence length bounds
	minSentenceLen = 20
	maxSentenceLen = 500

	// Candidates scoring below this fall back to the first sentence
	minClaimScore = 0.2

	// Hard cap applied when no usable sentence exists
	truncateLen = 200
)

// factualMarkers are verbs and reporting phrases that signal a factual
// assertion
var factualMarkers = []string{
	"is", "are", "was", "were", "will", "would", "can", "could",
	"shows", "proves", "indicates", "reveals", "confirms", "causes",
	"according to", "study", "research", "report", "data", "percent",
}

// negativeMarkers signal questions, instructions, or promotional copy
var negativeMarkers = []string{
	"?", "how to", "what is", "click here", "subscribe", "sign up",
	"read more", "find out",
}

var digitRE = regexp.MustCompile(`\d`)

// Extractor reduces raw input to a single canonical factual claim
type Extractor struct{}

// NewExtractor creates a claim extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the primary factual assertion in text. It fails soft:
// for any non-empty input it returns a non-empty claim, falling back to the
// first sentence or the truncated input when nothing scores well.
func (e *Extractor) Extract(text string) string {
	text = CleanText(text)
	if text == "" {
		return ""
	}

	// Short declarative input is already the claim
	if len(text) <= passthroughMaxLen && isDeclarative(text) && countSentences(text) <= 1 {
		return text
	}

	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return truncate(text, truncateLen)
	}

	bestIdx, bestScore := 0, -1.0
	for i, sentence := range sentences {
		score := scoreSentence(sentence, i, len(sentences))
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}

	if bestScore >= minClaimScore {
		return sentences[bestIdx]
	}
	return sentences[0]
}

// scoreSentence combines factual-marker density, a numeric bonus, a length
// band bonus, and an early-position bonus. Leads typically carry the main
// claim in article bodies.
func scoreSentence(sentence string, position, total int) float64 {
	lower := strings.ToLower(sentence)
	score := 0.0

	for _, marker := range factualMarkers {
		if strings.Contains(lower, marker) {
			score += 0.1
		}
	}

	for _, marker := range negativeMarkers {
		if strings.Contains(lower, marker) {
			score -= 0.2
		}
	}

	if digitRE.MatchString(sentence) {
		score += 0.15
	}

	if words := len(strings.Fields(sentence)); words >= 10 && words <= 50 {
		score += 0.2
	}

	if total > 1 {
		score += 0.2 * (1 - float64(position)/float64(total))
	}

	if score < 0 {
		return 0
	}
	return score
}

// isDeclarative reports whether text looks like a statement rather than a
// question or fragment
func isDeclarative(text string) bool {
	if strings.HasSuffix(strings.TrimRight(text, " "), "?") {
		return false
	}
	return len(strings.Fields(text)) >= 3
}

func countSentences(text string) int {
	n := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if i+1 >= len(text) || text[i+1] == ' ' || text[i+1] == '\t' {
				n++
			}
		}
	}
	return n
}

// splitSentences splits text on sentence terminators, keeping sentences
// within the candidate length bounds
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		if len(sentence) >= minSentenceLen && len(sentence) <= maxSentenceLen {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	for i, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			// Look ahead to avoid splitting on abbreviations
			if i+1 < len(text) && (text[i+1] == ' ' || text[i+1] == '\t') {
				flush()
			}
		}
	}
	flush()

	return sentences
}

// CleanText collapses whitespace and strips control characters
func CleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !lastSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			lastSpace = true
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}

	return strings.TrimSpace(b.String())
}

func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := text[:max]
	if idx := strings.LastIndex(cut, " "); idx > max/2 {
		cut = cut[:idx]
	}
	return cut
}
