package http

import (
	"engagement-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Classify - Classify a post draft
// @Summary Classify a post draft
// @Description Decide whether a draft reads as impression (audience-pleasing) or expression (self-expression) content
// @Tags Classifier
// @Accept json
// @Produce json
// @Param body body classifyReq true "Draft to classify"
// @Success 200 {object} classifyResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/classify [post]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processClassifyRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "classifier.delivery.http.Classify: processClassifyRequest failed: %v", err)
		response.Error(c, errInvalidBody, h.discord)
		return
	}

	out, err := h.uc.Classify(ctx, sc, req.Content)
	if err != nil {
		h.l.Errorf(ctx, "classifier.delivery.http.Classify: usecase Classify failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newClassifyResp(out))
}
