package http

import "github.com/gin-gonic/gin"

// RegisterWorkspaceSubroutes attaches document routes under a workspace group.
func (h *Handler) RegisterWorkspaceSubroutes(rg *gin.RouterGroup) {
	rg.POST("/:public_id/documents", h.create)
	rg.GET("/:public_id/documents", h.list)
	rg.GET("/:public_id/documents/:doc_id", h.get)
	rg.PUT("/:public_id/documents/:doc_id", h.updateContent)
	rg.DELETE("/:public_id/documents/:doc_id", h.delete)
	rg.PUT("/:public_id/active", h.setActive)
	rg.GET("/:public_id/active", h.getActive)
}
