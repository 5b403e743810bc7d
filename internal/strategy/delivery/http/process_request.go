package http

import (
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processUpdateRatioRequest(c *gin.Context) (updateRatioReq, model.Scope, error) {
	var req updateRatioReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processUpdateExpressionDaysRequest(c *gin.Context) (updateExpressionDaysReq, model.Scope, error) {
	var req updateExpressionDaysReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processUpdateCommentStrategyRequest(c *gin.Context) (updateCommentStrategyReq, model.Scope, error) {
	var req updateCommentStrategyReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processHealthRequest(c *gin.Context) (healthReq, model.Scope, error) {
	var req healthReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processScheduleRequest(c *gin.Context) (time.Time, model.Scope, error) {
	var req scheduleReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return time.Time{}, model.Scope{}, err
	}

	var start time.Time
	if req.Start != "" {
		var err error
		start, err = time.ParseInLocation("2006-01-02", req.Start, time.Local)
		if err != nil {
			return time.Time{}, model.Scope{}, err
		}
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return start, sc, nil
}

func (h *handler) processImportRequest(c *gin.Context) (importReq, model.Scope, error) {
	var req importReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
