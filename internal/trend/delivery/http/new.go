package http

import (
	"engagement-srv/internal/trend"
	"engagement-srv/pkg/discord"
	"engagement-srv/pkg/log"

	"engagement-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho trend HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      trend.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc trend.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
