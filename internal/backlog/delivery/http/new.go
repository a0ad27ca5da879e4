package http

import (
	"github.com/gin-gonic/gin"

	"smart-day-planner/internal/backlog"
	"smart-day-planner/pkg/log"
)

// Handler is the public interface for the backlog HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Archive(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc backlog.UseCase
}

// New creates a new HTTP handler for the backlog domain.
func New(l log.Logger, uc backlog.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
