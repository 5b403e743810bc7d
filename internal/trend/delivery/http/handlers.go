package http

import (
	"engagement-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const actionCommentStrategies = "comment-strategies"

// Detect - Detect trending topics
// @Summary Detect trending topics
// @Description Return trending topics for a platform with hashtag, pattern, and timing analysis. With action=comment-strategies, return commenting suggestions instead.
// @Tags Trend
// @Produce json
// @Param platform query string true "Platform (twitter | instagram | tiktok)"
// @Param category query string false "Category filter"
// @Param limit query int false "Max topics (1-50, default 10)"
// @Param include_hashtags query bool false "Include hashtag analysis (default true)"
// @Param include_buzz_patterns query bool false "Include buzz patterns (default true)"
// @Param action query string false "Set to comment-strategies for commenting suggestions"
// @Success 200 {object} detectResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/trends [get]
func (h *handler) Detect(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processDetectRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "trend.delivery.http.Detect: processDetectRequest failed: %v", err)
		response.Error(c, errInvalidQuery, h.discord)
		return
	}

	input := req.toInput()

	// 2. Route on action: one endpoint serves both shapes
	if req.Action == actionCommentStrategies {
		recs, err := h.uc.CommentStrategies(ctx, sc, input)
		if err != nil {
			h.l.Errorf(ctx, "trend.delivery.http.Detect: usecase CommentStrategies failed: %v", err)
			response.Error(c, h.mapError(err), h.discord)
			return
		}
		response.OK(c, newCommentStrategiesResp(recs))
		return
	}

	// 3. Call UseCase
	out, err := h.uc.Detect(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "trend.delivery.http.Detect: usecase Detect failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	response.OK(c, newDetectResp(out))
}

// InvalidateCache - Drop cached trend sets
// @Summary Drop cached trend sets
// @Description Delete cached trend sets for one platform, or all platforms when none is given. Requires the internal key.
// @Tags Trend
// @Produce json
// @Param platform query string false "Platform to invalidate"
// @Success 200 {object} invalidateResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/trends/cache [delete]
func (h *handler) InvalidateCache(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInvalidateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "trend.delivery.http.InvalidateCache: processInvalidateRequest failed: %v", err)
		response.Error(c, errInvalidQuery, h.discord)
		return
	}

	if err := h.uc.InvalidateCache(ctx, req.toPlatform()); err != nil {
		h.l.Errorf(ctx, "trend.delivery.http.InvalidateCache: usecase InvalidateCache failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, invalidateResp{Invalidated: true})
}
