package risk

import (
	"regexp"
	"sort"

	"github.com/credlens/credlens/internal/model"
)

// Reasons attached to detected phrases
const (
	ReasonSensational    = "Sensational/emotional language"
	ReasonPunctuation    = "Excessive punctuation (emotional appeal)"
	ReasonCapitalization = "Excessive capitalization (emphasis/shouting)"
)

// lexicon is the fixed set of manipulation markers. Matching is
// case-insensitive but offsets preserve the original casing.
var lexicon = []string{
	"shocking", "unbelievable", "incredible", "amazing", "breaking",
	"urgent", "must see", "revealed", "exposed", "secret", "hidden",
	"they don't want you to know", "mainstream media", "cover-up",
	"conspiracy", "hoax", "fake news", "lies", "deception",
	"exclusive", "insider", "leaked", "bombshell", "stunning",
	"explosive", "you won't believe", "doctors hate", "this one trick",
	"click here", "act now", "wake up",
}

// commonAcronyms are ALL-CAPS tokens that are not shouting
var commonAcronyms = map[string]struct{}{
	"USA": {}, "FBI": {}, "CIA": {}, "WHO": {}, "NASA": {}, "CEO": {},
	"NATO": {}, "GDP": {}, "COVID": {}, "DNA": {}, "CDC": {}, "NIH": {},
	"BBC": {}, "NHS": {}, "GMO": {}, "HIV": {}, "API": {}, "FAQ": {},
}

// Detector scans text for manipulation markers
type Detector struct {
	terms  []*regexp.Regexp
	capsRE *regexp.Regexp
	bangRE *regexp.Regexp
}

// NewDetector compiles the fixed lexicon
func NewDetector() *Detector {
	terms := make([]*regexp.Regexp, 0, len(lexicon))
	for _, term := range lexicon {
		terms = append(terms, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(term)+`\b`))
	}

	return &Detector{
		terms:  terms,
		capsRE: regexp.MustCompile(`\b[A-Z]{3,}\b`),
		bangRE: regexp.MustCompile(`!{2,}`),
	}
}

// Detect returns suspicious phrases with byte offsets into text. Output is
// sorted by start position and non-overlapping: overlapping candidates are
// resolved by preferring the longest match starting earliest.
func (d *Detector) Detect(text string) []model.SuspiciousPhrase {
	if text == "" {
		return nil
	}

	var candidates []model.SuspiciousPhrase

	for _, re := range d.terms {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			candidates = append(candidates, model.SuspiciousPhrase{
				Phrase:   text[loc[0]:loc[1]],
				StartPos: loc[0],
				EndPos:   loc[1],
				Reason:   ReasonSensational,
			})
		}
	}

	for _, loc := range d.capsRE.FindAllStringIndex(text, -1) {
		token := text[loc[0]:loc[1]]
		if _, ok := commonAcronyms[token]; ok {
			continue
		}
		candidates = append(candidates, model.SuspiciousPhrase{
			Phrase:   token,
			StartPos: loc[0],
			EndPos:   loc[1],
			Reason:   ReasonCapitalization,
		})
	}

	for _, loc := range d.bangRE.FindAllStringIndex(text, -1) {
		candidates = append(candidates, model.SuspiciousPhrase{
			Phrase:   text[loc[0]:loc[1]],
			StartPos: loc[0],
			EndPos:   loc[1],
			Reason:   ReasonPunctuation,
		})
	}

	return resolveOverlaps(candidates)
}

// resolveOverlaps keeps the longest match starting earliest. Ties are broken
// by reason so repeated runs produce identical output.
func resolveOverlaps(candidates []model.SuspiciousPhrase) []model.SuspiciousPhrase {
	if len(candidates) == 0 {
		return nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].StartPos != candidates[j].StartPos {
			return candidates[i].StartPos < candidates[j].StartPos
		}
		li := candidates[i].EndPos - candidates[i].StartPos
		lj := candidates[j].EndPos - candidates[j].StartPos
		if li != lj {
			return li > lj
		}
		return candidates[i].Reason < candidates[j].Reason
	})

	result := candidates[:0]
	lastEnd := -1
	for _, c := range candidates {
		if c.StartPos < lastEnd {
			continue
		}
		result = append(result, c)
		lastEnd = c.EndPos
	}

	return result
}

// Density is the fraction of text covered by flagged phrases
func Density(text string, phrases []model.SuspiciousPhrase) float64 {
	if len(text) == 0 || len(phrases) == 0 {
		return 0
	}

	flagged := 0
	for _, p := range phrases {
		flagged += p.EndPos - p.StartPos
	}

	density := float64(flagged) / float64(len(text))
	if density > 1 {
		density = 1
	}
	return density
}
