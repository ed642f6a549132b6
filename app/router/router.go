package router

import (
	"vdcdisplay/app/handler"
	"vdcdisplay/app/middleware"

	"github.com/gin-gonic/gin"
)

// Router Router
type Router struct {
	dashboardHandler *handler.DashboardHandler
	progressHandler  *handler.ProgressHandler
}

// NewRouter creates a new Router
func NewRouter(dashboardHandler *handler.DashboardHandler, progressHandler *handler.ProgressHandler) *Router {
	return &Router{
		dashboardHandler: dashboardHandler,
		progressHandler:  progressHandler,
	}
}

// Setup sets up routes
func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger())

	api := engine.Group("/api/v1")
	{
		// Combined payload the TV polls
		api.GET("/dashboard", r.dashboardHandler.GetDashboard)

		// Raw progress queries with explicit shift/date filters
		progress := api.Group("/progress")
		{
			progress.GET("/workload", r.progressHandler.GetWorkload)
			progress.GET("/stages", r.progressHandler.GetStages)
		}
	}

	// Health check
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
