// Package service implements the suggestion pipeline: turning the active
// document's source into a short improvement list, and turning one chosen
// suggestion into a validated replacement of that source.
package service

import (
	"context"

	"github.com/webcode-studio/studio-backend/config"
	docdomain "github.com/webcode-studio/studio-backend/internal/documents/domain"
	"github.com/webcode-studio/studio-backend/internal/suggestions/domain"
	"github.com/webcode-studio/studio-backend/internal/suggestions/llm"
)

// CompletionClient is the outbound model dependency.
type CompletionClient interface {
	Complete(ctx context.Context, p llm.Prompt) (string, error)
	Model() string
}

// DocumentStore is the slice of the document layer the pipeline needs: read
// a buffer by value, and write a replacement back with a version token.
type DocumentStore interface {
	Get(ctx context.Context, id string) (*docdomain.Document, error)
	UpdateContent(ctx context.Context, id, content string, expectedVersion int64) (int64, error)
}

// HistoryStore records pipeline runs for later debugging.
type HistoryStore interface {
	RecordRun(ctx context.Context, run *domain.SuggestionRun) error
}

// SuggestionCache holds the latest generated set per document plus the
// in-flight markers guarding re-entrancy.
type SuggestionCache interface {
	AcquireInFlight(ctx context.Context, kind, documentID string) (bool, error)
	ReleaseInFlight(ctx context.Context, kind, documentID string) error
	PutSet(ctx context.Context, set *domain.SuggestionSet) error
	GetSet(ctx context.Context, documentID string) (*domain.SuggestionSet, error)
	DropSet(ctx context.Context, documentID string) error
}

// Service coordinates one generate or apply round trip at a time per
// document. It holds no per-request state itself; the in-flight markers
// live in the cache so the guard also covers multiple API replicas.
type Service struct {
	cfg     config.AIConfig
	client  CompletionClient
	docs    DocumentStore
	history HistoryStore
	cache   SuggestionCache
}

// NewService creates a new suggestion pipeline service
func NewService(cfg config.AIConfig, client CompletionClient, docs DocumentStore, history HistoryStore, cache SuggestionCache) *Service {
	return &Service{
		cfg:     cfg,
		client:  client,
		docs:    docs,
		history: history,
		cache:   cache,
	}
}

// CachedSuggestions returns the last generated set for a document, if any.
func (s *Service) CachedSuggestions(ctx context.Context, documentID string) (*domain.SuggestionSet, error) {
	return s.cache.GetSet(ctx, documentID)
}
