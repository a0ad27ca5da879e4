package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-day-planner/internal/backlog"
	"smart-day-planner/pkg/response"
)

// mapError translates domain/use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, backlog.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, backlog.ErrTitleRequired),
		errors.Is(err, backlog.ErrInvalidDuration),
		errors.Is(err, backlog.ErrInvalidPriority),
		errors.Is(err, backlog.ErrInvalidStatus):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
