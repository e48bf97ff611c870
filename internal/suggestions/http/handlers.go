package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	docdomain "github.com/webcode-studio/studio-backend/internal/documents/domain"
	"github.com/webcode-studio/studio-backend/internal/suggestions/domain"
	"github.com/webcode-studio/studio-backend/internal/suggestions/repository"
	"github.com/webcode-studio/studio-backend/internal/suggestions/service"
)

// Pipeline is the suggestion service surface the handlers call.
type Pipeline interface {
	Generate(ctx context.Context, documentID string) (*domain.SuggestionSet, error)
	Apply(ctx context.Context, documentID, suggestion string) (*domain.ApplyResult, error)
	CachedSuggestions(ctx context.Context, documentID string) (*domain.SuggestionSet, error)
}

// History lists past pipeline runs for a document.
type History interface {
	ListByDocument(ctx context.Context, documentID string, limit int) ([]domain.SuggestionRun, error)
}

// Handler translates pipeline outcomes into the HTTP contract the editor
// frontend relies on: generation failures degrade to advisory fallback
// content, apply failures are blocking.
type Handler struct {
	pipeline Pipeline
	history  History
}

func New(pipeline Pipeline, history History) *Handler {
	return &Handler{pipeline: pipeline, history: history}
}

// generate always answers 200 with a ready-to-display list. The only
// blocking outcomes are a missing document and a request already in flight;
// every other failure is downgraded to the fixed fallback suggestions.
func (h *Handler) generate(c *gin.Context) {
	set, err := h.pipeline.Generate(c.Request.Context(), c.Param("doc_id"))
	if err != nil {
		switch {
		case errors.Is(err, docdomain.ErrDocumentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "document not found"})
		case errors.Is(err, domain.ErrInFlight):
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "a suggestion request is already running"})
		default:
			service.RecordFallback()
			c.JSON(http.StatusOK, gin.H{
				"ok":          true,
				"suggestions": domain.FallbackSuggestions(),
				"source":      domain.SourceFallback,
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":               true,
		"suggestions":      set.Suggestions,
		"source":           set.Source,
		"model":            set.Model,
		"document_version": set.DocumentVersion,
		"generated_at":     set.GeneratedAt,
	})
}

func (h *Handler) getCached(c *gin.Context) {
	set, err := h.pipeline.CachedSuggestions(c.Request.Context(), c.Param("doc_id"))
	if err != nil {
		if errors.Is(err, repository.ErrSetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "no suggestions generated yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "set": set})
}

// apply surfaces every failure as a blocking response; the document is only
// reported changed when the pipeline wrote it back in full.
func (h *Handler) apply(c *gin.Context) {
	var req applyReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Suggestion) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	res, err := h.pipeline.Apply(c.Request.Context(), c.Param("doc_id"), req.Suggestion)
	if err != nil {
		switch {
		case errors.Is(err, docdomain.ErrDocumentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "document not found"})
		case errors.Is(err, domain.ErrNoCredential):
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "ai credential is not configured"})
		case errors.Is(err, domain.ErrInFlight):
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "an apply is already running for this document"})
		case errors.Is(err, docdomain.ErrVersionConflict):
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "document changed while applying, reload and retry"})
		case errors.Is(err, domain.ErrNoChange):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": "model returned no usable change, retry or edit manually"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "apply failed: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"document": res,
	})
}

func (h *Handler) listHistory(c *gin.Context) {
	runs, err := h.history.ListByDocument(c.Request.Context(), c.Param("doc_id"), 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "runs": runs})
}

func (h *Handler) metrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "metrics": service.GetMetrics()})
}
