package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/webcode-studio/studio-backend/internal/suggestions/domain"
)

// Apply asks the model to rewrite the document implementing one suggestion
// and writes the result back with a compare-and-swap on the version read at
// request start. A response that trims to nothing or echoes the input fails
// with domain.ErrNoChange; a document that changed while the call was in
// flight fails with the document layer's version-conflict error. The
// document is only ever written on full validated success.
func (s *Service) Apply(ctx context.Context, documentID, suggestion string) (*domain.ApplyResult, error) {
	logger := NewLogger(ctx)

	if s.cfg.APIKey == "" {
		return nil, domain.ErrNoCredential
	}

	suggestion = strings.TrimSpace(suggestion)
	if suggestion == "" {
		return nil, fmt.Errorf("suggestion required")
	}

	doc, err := s.docs.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}

	ok, err := s.cache.AcquireInFlight(ctx, domain.KindApply, doc.ID)
	if err != nil {
		return nil, fmt.Errorf("in-flight guard: %w", err)
	}
	if !ok {
		return nil, domain.ErrInFlight
	}
	defer func() {
		if err := s.cache.ReleaseInFlight(ctx, domain.KindApply, doc.ID); err != nil {
			logger.LogWarnf("apply", "release in-flight marker: %v", err)
		}
	}()

	start := time.Now()
	raw, err := s.client.Complete(ctx, applyPrompt(doc.Content, suggestion))
	recordModelCall(time.Since(start), err)
	if err != nil {
		logger.LogError("apply", err)
		return nil, fmt.Errorf("model completion: %w", err)
	}

	updated := strings.TrimSpace(raw)
	if updated == "" || updated == doc.Content {
		logger.LogWarnf("apply", "document=%s model returned no usable change", doc.ID)
		return nil, domain.ErrNoChange
	}

	version, err := s.docs.UpdateContent(ctx, doc.ID, updated, doc.Version)
	if err != nil {
		logger.LogError("apply", err)
		return nil, err
	}

	if err := s.cache.DropSet(ctx, doc.ID); err != nil {
		logger.LogWarnf("apply", "drop cached suggestions: %v", err)
	}
	if err := s.history.RecordRun(ctx, &domain.SuggestionRun{
		ID:              uuid.New().String(),
		DocumentID:      doc.ID,
		DocumentVersion: doc.Version,
		Kind:            domain.KindApply,
		Model:           s.client.Model(),
		Suggestions:     []string{suggestion},
	}); err != nil {
		logger.LogWarnf("apply", "record run: %v", err)
	}

	recordApplyRun()
	logger.LogInfof("apply", "document=%s version=%d->%d", doc.ID, doc.Version, version)
	return &domain.ApplyResult{DocumentID: doc.ID, Content: updated, Version: version}, nil
}
