package domain

import "time"

// MaxSuggestions is the hard cap on suggestions returned by one generation run.
const MaxSuggestions = 3

// Suggestion sources as stored with each run and reported to the frontend.
const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

// Run kinds recorded in the suggestion history.
const (
	KindGenerate = "generate"
	KindApply    = "apply"
)

// SuggestionSet is one generation result for a document. Suggestions keeps
// insertion order, which is also presentation order, and never holds more
// than MaxSuggestions entries. DocumentVersion is the version the source was
// read at; a frontend holding an older set can detect it is stale.
type SuggestionSet struct {
	DocumentID      string    `json:"document_id"`
	DocumentVersion int64     `json:"document_version"`
	Suggestions     []string  `json:"suggestions"`
	Source          string    `json:"source"`
	Model           string    `json:"model,omitempty"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// ApplyResult is the outcome of a successful apply: the new document content
// and the version the compare-and-swap write produced.
type ApplyResult struct {
	DocumentID string `json:"document_id"`
	Content    string `json:"content"`
	Version    int64  `json:"version"`
}

// SuggestionRun is one audit record of a pipeline call, persisted for
// debugging model output after the fact.
type SuggestionRun struct {
	ID              string    `json:"id"`
	DocumentID      string    `json:"document_id"`
	DocumentVersion int64     `json:"document_version"`
	Kind            string    `json:"kind"`
	Model           string    `json:"model"`
	Suggestions     []string  `json:"suggestions,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// FallbackSuggestions is the fixed advisory list shown when generation fails.
// It is substituted by the HTTP layer so the editor never renders an empty
// suggestion panel.
func FallbackSuggestions() []string {
	return []string{
		"Suggestions are unavailable right now; check that the AI service credential is configured.",
		"Review the file for unused variables and dead code paths.",
		"Consider extracting repeated logic into small named helpers.",
	}
}
