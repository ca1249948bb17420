package model

// CorpusRecord is a curated reference statement with a known ground-truth
// verdict. Records are immutable once loaded; the corpus is replaced only by
// a full reload.
type CorpusRecord struct {
	ID          string        `json:"id"`
	Statement   string        `json:"statement"`
	Verdict     CorpusVerdict `json:"verdict"`
	SourceName  string        `json:"source_name"`
	SourceURL   string        `json:"source_url,omitempty"`
	Category    string        `json:"category,omitempty"`
	Explanation string        `json:"explanation,omitempty"` // Optional reviewer note carried into evidence
}

// CorpusVerdict is the ground-truth label attached to a corpus statement
type CorpusVerdict string

const (
	CorpusTrue  CorpusVerdict = "TRUE"
	CorpusFalse CorpusVerdict = "FALSE"
	CorpusMixed CorpusVerdict = "MIXED"
)
