package http

import (
	"github.com/gin-gonic/gin"

	"school-case-management/pkg/response"
)

// Compute godoc
// @Summary     Compute a deadline
// @Description Projects a duration descriptor ("48 horas", "3 días hábiles") from a start instant and classifies the result.
// @Tags        Deadlines
// @Produce     json
// @Param       duration query string true  "Duration descriptor"
// @Param       start    query string false "Start: now, hoy, mañana, YYYY-MM-DD, RFC3339 (default: now)"
// @Success     200 {object} computeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/deadlines/compute [GET]
func (h *handler) Compute(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processComputeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Compute(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Compute: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newComputeResp(output))
}

// Classify godoc
// @Summary     Classify a deadline
// @Description Returns the traffic-light urgency of an explicit deadline relative to now.
// @Tags        Deadlines
// @Produce     json
// @Param       deadline query string false "Deadline: YYYY-MM-DD or RFC3339; empty means none"
// @Success     200 {object} classifyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/deadlines/classify [GET]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Classify(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Classify: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newClassifyResp(output))
}
