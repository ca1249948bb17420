package model

// ClaimQuery is the per-request working state of one pipeline invocation.
// It is owned by a single request and discarded once the result is produced.
type ClaimQuery struct {
	RawInput       string    `json:"raw_input"`
	ExtractedClaim string    `json:"extracted_claim"`
	Embedding      []float32 `json:"-"`
}

// SuspiciousPhrase is a manipulation marker found in the analyzed claim.
// StartPos and EndPos are byte offsets into the ExtractedClaim text of the
// result that carries the phrase, not into the raw request input (the claim
// is the text the detector scanned). Returned phrases are non-overlapping
// and sorted by StartPos.
type SuspiciousPhrase struct {
	Phrase   string `json:"phrase"`
	StartPos int    `json:"start_pos"`
	EndPos   int    `json:"end_pos"`
	Reason   string `json:"reason"`
}
