package httpserver

import (
	"context"

	"smart-day-planner/internal/middleware"
	plannerHTTP "smart-day-planner/internal/planner/delivery/http"

	"github.com/gin-gonic/gin"
)

// setupPlannerDomain registers the planner domain's HTTP routes.
func (srv HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. HTTP Handler
	h := plannerHTTP.New(srv.l, srv.plannerUC)

	// 2. Routes: registers /api/v1/planner/plan and /api/v1/planner/day
	plannerHTTP.RegisterRoutes(api.Group("/planner"), h, mw)

	srv.l.Infof(ctx, "Planner domain registered")
	return nil
}
