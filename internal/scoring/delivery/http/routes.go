package http

import (
	"engagement-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		scores := api.Group("/scores")
		scores.POST("/calculate", h.Calculate)
		scores.GET("/history", h.History)
		scores.GET("/rank", h.Rank)
	}
}
