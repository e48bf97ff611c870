package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/webcode-studio/studio-backend/internal/workspaces/domain"
	"github.com/webcode-studio/studio-backend/internal/workspaces/repository"
)

type Handler struct {
	repo *repository.WorkspaceRepository
}

func New(repo *repository.WorkspaceRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	w, err := h.repo.Create(c.Request.Context(), strings.TrimSpace(req.Name), strings.TrimSpace(req.Template))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "workspace": w})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "workspaces": items})
}

func (h *Handler) get(c *gin.Context) {
	w, err := h.repo.Get(c.Request.Context(), c.Param("public_id"))
	if err != nil {
		if errors.Is(err, domain.ErrWorkspaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "workspace not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "workspace": w})
}

func (h *Handler) rename(c *gin.Context) {
	var req renameReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	w, err := h.repo.Rename(c.Request.Context(), c.Param("public_id"), strings.TrimSpace(req.Name))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "workspace not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "workspace": w})
}

func (h *Handler) delete(c *gin.Context) {
	ok, err := h.repo.SoftDelete(c.Request.Context(), c.Param("public_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "workspace not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
