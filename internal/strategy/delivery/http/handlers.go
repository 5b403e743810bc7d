package http

import (
	"engagement-srv/pkg/response"
	"engagement-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Get - Get current strategy
// @Summary Get current strategy
// @Description Return the user's engagement strategy, or the default when none is stored
// @Tags Strategy
// @Produce json
// @Success 200 {object} strategyResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/strategy [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	s, err := h.uc.Get(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "strategy.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newStrategyResp(s))
}

// UpdateRatio - Update impression ratio
// @Summary Update impression ratio
// @Description Set the impression ratio. Values outside [0.5, 1.0] are clamped.
// @Tags Strategy
// @Accept json
// @Produce json
// @Param body body updateRatioReq true "Ratio update"
// @Success 200 {object} strategyResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/strategy/ratio [put]
func (h *handler) UpdateRatio(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateRatioRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "strategy.delivery.http.UpdateRatio: processUpdateRatioRequest failed: %v", err)
		response.Error(c, errInvalidBody, h.discord)
		return
	}

	s, err := h.uc.UpdateRatio(ctx, sc, req.ImpressionRatio)
	if err != nil {
		h.l.Errorf(ctx, "strategy.delivery.http.UpdateRatio: usecase UpdateRatio failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newStrategyResp(s))
}

// UpdateExpressionDays - Update weekly expression days
// @Summary Update weekly expression days
// @Description Replace the weekdays reserved for self-expression posts (0=Sunday .. 6=Saturday)
// @Tags Strategy
// @Accept json
// @Produce json
// @Param body body updateExpressionDaysReq true "Expression days update"
// @Success 200 {object} strategyResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/strategy/expression-days [put]
func (h *handler) UpdateExpressionDays(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateExpressionDaysRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "strategy.delivery.http.UpdateExpressionDays: processUpdateExpressionDaysRequest failed: %v", err)
		response.Error(c, errInvalidBody, h.discord)
		return
	}

	s, err := h.uc.UpdateExpressionDays(ctx, sc, req.Days)
	if err != nil {
		h.l.Errorf(ctx, "strategy.delivery.http.UpdateExpressionDays: usecase UpdateExpressionDays failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newStrategyResp(s))
}

// UpdateCommentStrategy - Update comment strategy
// @Summary Update comment strategy
// @Description Merge the supplied comment strategy fields; omitted fields keep their value
// @Tags Strategy
// @Accept json
// @Produce json
// @Param body body updateCommentStrategyReq true "Comment strategy update"
// @Success 200 {object} strategyResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/strategy/comment [put]
func (h *handler) UpdateCommentStrategy(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateCommentStrategyRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "strategy.delivery.http.UpdateCommentStrategy: processUpdateCommentStrategyRequest failed: %v", err)
		response.Error(c, errInvalidBody, h.discord)
		return
	}

	s, err := h.uc.UpdateCommentStrategy(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "strategy.delivery.http.UpdateCommentStrategy: usecase UpdateCommentStrategy failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newStrategyResp(s))
}

// Health - Evaluate ratio health
// @Summary Evaluate ratio health
// @Description Classify the current impression ratio as healthy, acceptable, warning, or critical. A ratio query overrides the stored value.
// @Tags Strategy
// @Produce json
// @Param ratio query number false "Impression ratio to evaluate instead of the stored one"
// @Success 200 {object} ratioHealthResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/strategy/health [get]
func (h *handler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processHealthRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "strategy.delivery.http.Health: processHealthRequest failed: %v", err)
		response.Error(c, errInvalidBody, h.discord)
		return
	}

	health, err := h.uc.Health(ctx, sc, req.Ratio)
	if err != nil {
		h.l.Errorf(ctx, "strategy.delivery.http.Health: usecase Health failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, ratioHealthResp{
		Status:  string(health.Status),
		Message: health.Message,
	})
}

// Schedule - Get 7-day posting schedule
// @Summary Get 7-day posting schedule
// @Description Build the posting calendar for 7 consecutive days, starting today or at the given start date
// @Tags Strategy
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD, default today)"
// @Success 200 {object} scheduleResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/strategy/schedule [get]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	start, sc, err := h.processScheduleRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "strategy.delivery.http.Schedule: processScheduleRequest failed: %v", err)
		response.Error(c, errInvalidBody, h.discord)
		return
	}

	entries, err := h.uc.Schedule(ctx, sc, start)
	if err != nil {
		h.l.Errorf(ctx, "strategy.delivery.http.Schedule: usecase Schedule failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newScheduleResp(entries))
}

// Today - Get today's recommended mode
// @Summary Get today's recommended mode
// @Description Return today's schedule entry with the recommended posting mode
// @Tags Strategy
// @Produce json
// @Success 200 {object} scheduleEntryResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/strategy/today [get]
func (h *handler) Today(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	entry, err := h.uc.Today(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "strategy.delivery.http.Today: usecase Today failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newScheduleEntryResp(entry))
}

// Export - Export strategy
// @Summary Export strategy
// @Description Serialize the strategy into an encrypted portable blob
// @Tags Strategy
// @Produce json
// @Success 200 {object} exportResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/strategy/export [get]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	blob, err := h.uc.Export(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "strategy.delivery.http.Export: usecase Export failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, exportResp{Blob: blob})
}

// Import - Import strategy
// @Summary Import strategy
// @Description Restore a strategy from an exported blob
// @Tags Strategy
// @Accept json
// @Produce json
// @Param body body importReq true "Import request"
// @Success 200 {object} strategyResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/strategy/import [post]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processImportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "strategy.delivery.http.Import: processImportRequest failed: %v", err)
		response.Error(c, errInvalidBody, h.discord)
		return
	}

	s, err := h.uc.Import(ctx, sc, req.Blob)
	if err != nil {
		h.l.Errorf(ctx, "strategy.delivery.http.Import: usecase Import failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newStrategyResp(s))
}
