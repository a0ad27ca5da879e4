package http

import (
	"github.com/gin-gonic/gin"

	"smart-day-planner/internal/model"
)

// scope builds the request scope. The planner is single-user, so HTTP
// callers share one scope; the client IP is kept for log correlation.
func (h *handler) scope(c *gin.Context) model.Scope {
	return model.Scope{UserID: c.ClientIP()}
}

// processPlanReq binds and validates the plan request body.
func (h *handler) processPlanReq(c *gin.Context) (planReq, error) {
	var req planReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	return req, req.validate()
}

// processDayReq binds and validates the day query parameters.
func (h *handler) processDayReq(c *gin.Context) (dayReq, error) {
	var req dayReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
