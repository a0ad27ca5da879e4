package http

import (
	"github.com/gin-gonic/gin"

	"smart-day-planner/pkg/response"
)

// PlanDay godoc
// @Summary     Plan a day
// @Description Schedules pending backlog tasks into the free slots of the given day.
// @Description Set dry_run to preview the plan without persisting anything.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Plan request"
// @Success     200  {object} planResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/plan [POST]
func (h *handler) PlanDay(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.PlanDay(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.PlanDay: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newPlanResp(output))
}

// GetDay godoc
// @Summary     Get a day's schedule
// @Description Returns the stored events of a single day in start order.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       date query string false "Day to fetch (YYYY-MM-DD or relative, default today)"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/day [GET]
func (h *handler) GetDay(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetDay(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GetDay: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newDayResp(output))
}
