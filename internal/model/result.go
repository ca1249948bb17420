package model

// Verdict is the categorical outcome of a verification request
type Verdict string

const (
	VerdictLikelyTrue  Verdict = "LIKELY_TRUE"
	VerdictMixed       Verdict = "MIXED"
	VerdictLikelyFalse Verdict = "LIKELY_FALSE"
	VerdictUnverified  Verdict = "UNVERIFIED"
)

// CredibilityFingerprint is the multi-factor trust summary for a claim.
// OverallScore is monotonically non-decreasing in SourceCredibility and
// CorroborationCount and non-increasing in LanguageRisk.
type CredibilityFingerprint struct {
	SourceCredibility  float64 `json:"source_credibility"`  // 0-1, mean per-evidence trust weight
	CorroborationCount int     `json:"corroboration_count"` // supporting items with distinct domains
	LanguageRisk       float64 `json:"language_risk"`       // 0-1, higher = more manipulative phrasing
	OverallScore       float64 `json:"overall_score"`       // 0-1, weighted combination
}

// LessonCategory tags a micro-lesson with one of a fixed closed set
type LessonCategory string

const (
	LessonSourceVerification LessonCategory = "source_verification"
	LessonLanguageAnalysis   LessonCategory = "language_analysis"
	LessonCrossReferencing   LessonCategory = "cross_referencing"
	LessonEvidenceEvaluation LessonCategory = "evidence_evaluation"
	LessonBiasAwareness      LessonCategory = "bias_awareness"
)

// Lesson is a single educational tip mapped from the detected failure pattern
type Lesson struct {
	Tip      string         `json:"tip"`
	Category LessonCategory `json:"category"`
}

// VerificationResult is the terminal output of one pipeline invocation,
// immutable once returned.
type VerificationResult struct {
	ExtractedClaim    string                 `json:"extracted_claim"`
	Verdict           Verdict                `json:"verdict"`
	Confidence        float64                `json:"confidence"` // 0-1
	Explanation       string                 `json:"explanation"`
	Reasons           []string               `json:"reasons,omitempty"` // ranked, at most 3
	Evidence          []EvidenceItem         `json:"evidence"`
	Fingerprint       CredibilityFingerprint `json:"fingerprint"`
	SuspiciousPhrases []SuspiciousPhrase     `json:"suspicious_phrases,omitempty"`
	Lesson            Lesson                 `json:"lesson"`
}
