package http

import (
	"engagement-srv/internal/model"
	"engagement-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processClassifyRequest(c *gin.Context) (classifyReq, model.Scope, error) {
	var req classifyReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
