package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/webcode-studio/studio-backend/internal/documents/domain"
	"github.com/webcode-studio/studio-backend/internal/documents/service"
)

// Handler exposes document CRUD and the active-buffer pointer to the editor.
type Handler struct {
	docs *service.DocumentService
}

func New(docs *service.DocumentService) *Handler {
	return &Handler{docs: docs}
}

func (h *Handler) create(c *gin.Context) {
	var req createDocumentReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	d, err := h.docs.Create(c.Request.Context(), c.Param("public_id"), req.Name, req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "document name already used"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "document": d})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.docs.List(c.Request.Context(), c.Param("public_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "documents": items})
}

func (h *Handler) get(c *gin.Context) {
	d, err := h.docs.Get(c.Request.Context(), c.Param("doc_id"))
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "document": d})
}

func (h *Handler) updateContent(c *gin.Context) {
	var req updateContentReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Version < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	version, err := h.docs.UpdateContent(c.Request.Context(), c.Param("doc_id"), req.Content, req.Version)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDocumentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "document not found"})
		case errors.Is(err, domain.ErrVersionConflict):
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "document changed, reload and retry"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "version": version})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.docs.Delete(c.Request.Context(), c.Param("doc_id")); err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) setActive(c *gin.Context) {
	var req setActiveReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.DocumentID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if err := h.docs.SetActive(c.Request.Context(), c.Param("public_id"), req.DocumentID); err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) getActive(c *gin.Context) {
	d, err := h.docs.GetActive(c.Request.Context(), c.Param("public_id"))
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveDocument) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "no active document"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "document": d})
}
