package http

import (
	"engagement-srv/internal/model"
	"engagement-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processDetectRequest(c *gin.Context) (detectReq, model.Scope, error) {
	var req detectReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processInvalidateRequest(c *gin.Context) (invalidateReq, error) {
	var req invalidateReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	return req, nil
}
