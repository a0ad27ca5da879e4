package httpserver

import (
	"context"

	backlogHTTP "smart-day-planner/internal/backlog/delivery/http"
	"smart-day-planner/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupBacklogDomain registers the backlog domain's HTTP routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv HTTPServer) setupBacklogDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. HTTP Handler
	h := backlogHTTP.New(srv.l, srv.backlogUC)

	// 2. Routes: registers /api/v1/backlog/tasks
	backlogHTTP.RegisterRoutes(api.Group("/backlog"), h, mw)

	srv.l.Infof(ctx, "Backlog domain registered")
	return nil
}
