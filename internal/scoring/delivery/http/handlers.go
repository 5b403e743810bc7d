package http

import (
	"engagement-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Calculate - Calculate platform favorability score
// @Summary Calculate platform favorability score
// @Description Calculate the favorability score for one platform from a behavior snapshot. Missing behavior fields are sampled.
// @Tags Scoring
// @Accept json
// @Produce json
// @Param body body calculateReq true "Calculation request"
// @Success 200 {object} calculateResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/scores/calculate [post]
func (h *handler) Calculate(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processCalculateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "scoring.delivery.http.Calculate: processCalculateRequest failed: %v", err)
		response.Error(c, errInvalidBody, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.Calculate(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "scoring.delivery.http.Calculate: usecase Calculate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	response.OK(c, h.newCalculateResp(output))
}

// History - Get stored score history
// @Summary Get stored score history
// @Description List persisted score history for one platform, newest first
// @Tags Scoring
// @Produce json
// @Param platform query string true "Platform (twitter | instagram | tiktok)"
// @Param days query int false "Window in days (1-90, default 7)"
// @Success 200 {object} historyResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/scores/history [get]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processHistoryRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "scoring.delivery.http.History: processHistoryRequest failed: %v", err)
		response.Error(c, errInvalidQuery, h.discord)
		return
	}

	entries, err := h.uc.History(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "scoring.delivery.http.History: usecase History failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newHistoryResp(entries))
}

// Rank - Resolve an overall score to its rank
// @Summary Resolve an overall score to its rank
// @Description Map an overall score (0-100) to its letter grade, color and label
// @Tags Scoring
// @Produce json
// @Param score query int true "Overall score (0-100)"
// @Success 200 {object} rankResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/scores/rank [get]
func (h *handler) Rank(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRankRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "scoring.delivery.http.Rank: processRankRequest failed: %v", err)
		response.Error(c, errInvalidQuery, h.discord)
		return
	}

	response.OK(c, h.newRankResp(req.Score))
}
