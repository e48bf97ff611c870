package http

import "github.com/gin-gonic/gin"

// RegisterWorkspaceSubroutes attaches suggestion routes under a workspace group.
func (h *Handler) RegisterWorkspaceSubroutes(rg *gin.RouterGroup) {
	rg.POST("/:public_id/documents/:doc_id/suggestions", h.generate)
	rg.GET("/:public_id/documents/:doc_id/suggestions", h.getCached)
	rg.POST("/:public_id/documents/:doc_id/suggestions/apply", h.apply)
	rg.GET("/:public_id/documents/:doc_id/suggestions/history", h.listHistory)
}

// RegisterMetrics exposes the pipeline counters.
func (h *Handler) RegisterMetrics(rg *gin.RouterGroup) {
	rg.GET("/metrics/ai", h.metrics)
}
