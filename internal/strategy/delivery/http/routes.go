package http

import (
	"engagement-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		st := api.Group("/strategy")
		st.GET("", h.Get)
		st.PUT("/ratio", h.UpdateRatio)
		st.PUT("/expression-days", h.UpdateExpressionDays)
		st.PUT("/comment", h.UpdateCommentStrategy)
		st.GET("/health", h.Health)
		st.GET("/schedule", h.Schedule)
		st.GET("/today", h.Today)
		st.GET("/export", h.Export)
		st.POST("/import", h.Import)
	}
}
