package http

import (
	"github.com/gin-gonic/gin"

	"smart-day-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())
	{
		rg.POST("/plan", h.PlanDay)
		rg.GET("/day", h.GetDay)
	}
}
