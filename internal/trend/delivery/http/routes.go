package http

import (
	"engagement-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")

	trends := api.Group("/trends")
	trends.Use(mw.Auth())
	{
		trends.GET("", h.Detect)
	}

	// Cache invalidation is operational tooling, not a user feature.
	internal := api.Group("/trends")
	internal.Use(mw.InternalAuth())
	{
		internal.DELETE("/cache", h.InvalidateCache)
	}
}
