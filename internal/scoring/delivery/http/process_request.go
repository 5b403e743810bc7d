package http

import (
	"engagement-srv/internal/model"
	"engagement-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processCalculateRequest(c *gin.Context) (calculateReq, model.Scope, error) {
	var req calculateReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processHistoryRequest(c *gin.Context) (historyReq, model.Scope, error) {
	req := historyReq{Days: 7}

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processRankRequest(c *gin.Context) (rankReq, error) {
	var req rankReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	return req, nil
}
