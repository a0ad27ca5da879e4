package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-day-planner/internal/planner"
	"smart-day-planner/pkg/response"
)

// mapError translates domain/use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrInvalidDate):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
