package http

import (
	"github.com/gin-gonic/gin"

	"school-case-management/pkg/response"
)

// List godoc
// @Summary     List cases by urgency
// @Description Returns open cases with resolved protocol deadlines, most urgent first.
// @Tags        Cases
// @Produce     json
// @Param       status         query string false "Backend status filter (open/in_progress/closed)"
// @Param       urgency        query string false "Urgency filter (critical/warning/on_time/none)"
// @Param       include_closed query bool   false "Include closed cases"
// @Param       limit          query int    false "Page size (default: 20)"
// @Param       offset         query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Backend unavailable"
// @Router      /api/v1/cases [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get case deadlines
// @Description Returns a single case with the resolved deadline and urgency of every protocol step.
// @Tags        Cases
// @Produce     json
// @Param       id path string true "Case ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Backend unavailable"
// @Router      /api/v1/cases/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Summary godoc
// @Summary     Traffic-light summary
// @Description Counts open cases per urgency tier.
// @Tags        Cases
// @Produce     json
// @Success     200 {object} summaryResp
// @Failure     502 {object} response.Resp "Backend unavailable"
// @Router      /api/v1/cases/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Summary(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSummaryResp(output))
}
