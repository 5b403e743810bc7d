package http

import (
	"engagement-srv/internal/strategy"
	"engagement-srv/pkg/discord"
	"engagement-srv/pkg/log"

	"engagement-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho strategy HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      strategy.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc strategy.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
