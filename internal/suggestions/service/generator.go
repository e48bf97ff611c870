package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/webcode-studio/studio-backend/internal/suggestions"
	"github.com/webcode-studio/studio-backend/internal/suggestions/domain"
)

// Generate reads the document, asks the model for improvement suggestions
// and returns the parsed set. It fails with domain.ErrNoCredential before
// any network call when no API key is configured, and with
// domain.ErrEmptyResult when the response parsed to nothing. The caller is
// expected to downgrade any failure to the fixed fallback list.
func (s *Service) Generate(ctx context.Context, documentID string) (*domain.SuggestionSet, error) {
	logger := NewLogger(ctx)

	if s.cfg.APIKey == "" {
		return nil, domain.ErrNoCredential
	}

	doc, err := s.docs.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}

	ok, err := s.cache.AcquireInFlight(ctx, domain.KindGenerate, doc.ID)
	if err != nil {
		return nil, fmt.Errorf("in-flight guard: %w", err)
	}
	if !ok {
		return nil, domain.ErrInFlight
	}
	// Every exit path below must end back in the idle state.
	defer func() {
		if err := s.cache.ReleaseInFlight(ctx, domain.KindGenerate, doc.ID); err != nil {
			logger.LogWarnf("generate", "release in-flight marker: %v", err)
		}
	}()

	start := time.Now()
	raw, err := s.client.Complete(ctx, generatePrompt(doc.Content))
	recordModelCall(time.Since(start), err)
	if err != nil {
		logger.LogError("generate", err)
		return nil, fmt.Errorf("model completion: %w", err)
	}

	parsed := suggestions.ParseSuggestions(raw)
	if len(parsed) == 0 {
		logger.LogWarnf("generate", "response parsed to zero suggestions (len=%d)", len(raw))
		return nil, domain.ErrEmptyResult
	}

	set := &domain.SuggestionSet{
		DocumentID:      doc.ID,
		DocumentVersion: doc.Version,
		Suggestions:     parsed,
		Source:          domain.SourceLLM,
		Model:           s.client.Model(),
		GeneratedAt:     time.Now().UTC(),
	}

	if err := s.cache.PutSet(ctx, set); err != nil {
		logger.LogWarnf("generate", "cache suggestion set: %v", err)
	}
	if err := s.history.RecordRun(ctx, &domain.SuggestionRun{
		ID:              uuid.New().String(),
		DocumentID:      doc.ID,
		DocumentVersion: doc.Version,
		Kind:            domain.KindGenerate,
		Model:           set.Model,
		Suggestions:     parsed,
	}); err != nil {
		logger.LogWarnf("generate", "record run: %v", err)
	}

	recordGenerateRun()
	logger.LogInfof("generate", "document=%s version=%d suggestions=%d", doc.ID, doc.Version, len(parsed))
	return set, nil
}
