package http

import (
	"engagement-srv/internal/scoring"
	"engagement-srv/pkg/discord"
	"engagement-srv/pkg/log"

	"engagement-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho scoring HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      scoring.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc scoring.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
