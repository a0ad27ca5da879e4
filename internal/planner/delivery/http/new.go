package http

import (
	"github.com/gin-gonic/gin"

	"smart-day-planner/internal/planner"
	"smart-day-planner/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	PlanDay(c *gin.Context)
	GetDay(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
