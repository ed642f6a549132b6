package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"vdcdisplay/app/handler"
	"vdcdisplay/app/router"
	"vdcdisplay/internal/jobs"
	"vdcdisplay/internal/service"
	"vdcdisplay/pkg/config"
	"vdcdisplay/pkg/logger"
	sqlitestore "vdcdisplay/pkg/store/sqlite"

	"github.com/gin-gonic/gin"
)

// initConfig initializes configuration
func (app *Application) initConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	app.config = cfg
	return nil
}

// initLogger initializes logging
func (app *Application) initLogger() error {
	if err := logger.Init(app.config.Logger); err != nil {
		return err
	}
	app.registerCleanup(func() {
		logger.Sync()
		logger.InfoCtx(app.ctx, "Logging system has been closed")
	})
	return nil
}

// initStore opens the read-only logistics store. A missing store file is not
// fatal: the service still starts and the dashboard serves the demo dataset,
// which is what a showroom TV without a database should display.
func (app *Application) initStore() error {
	repo, err := sqlitestore.NewRepository(app.config.Database.Path)
	if err != nil {
		if errors.Is(err, sqlitestore.ErrStoreNotFound) {
			logger.WarnCtx(app.ctx, "logistics store missing at %s, dashboard will serve demo data", app.config.Database.Path)
			return nil
		}
		return err
	}

	app.repo = repo
	app.registerCleanup(func() {
		repo.Close()
		logger.InfoCtx(app.ctx, "Store connection has been closed")
	})

	return nil
}

// initServices initializes service layer
func (app *Application) initServices() error {
	if app.repo == nil {
		logger.InfoCtx(app.ctx, "No store available, skipping service layer")
		return nil
	}

	app.workloadService = service.NewWorkloadService(
		app.repo.Vehicle,
		app.repo.WorkOrder,
		app.repo.ShiftSummary,
	)
	app.stageService = service.NewStageService(app.repo.Stage)

	return nil
}

// initJobs initializes background tasks
func (app *Application) initJobs() error {
	if app.workloadService == nil {
		return nil
	}

	app.jobsManager = jobs.NewManager(app.ctx)

	interval := time.Duration(app.config.Display.RefreshIntervalMinutes) * time.Minute
	app.jobsManager.Register(jobs.NewProgressLogJob(app.workloadService, interval))

	return nil
}

// initHandlers initializes handler layer
func (app *Application) initHandlers() error {
	app.dashboardHandler = handler.NewDashboardHandler(
		app.workloadService,
		app.stageService,
		app.config.Display.RefreshIntervalMinutes,
	)
	app.progressHandler = handler.NewProgressHandler(app.workloadService, app.stageService)
	return nil
}

// initHTTPServer initializes HTTP server
func (app *Application) initHTTPServer() error {
	// Initialize router
	r := router.NewRouter(app.dashboardHandler, app.progressHandler)

	// Set Gin mode
	gin.SetMode(app.config.Server.Mode)

	// Create Gin engine
	app.ginEngine = gin.New()
	app.ginEngine.Use(gin.Recovery())

	// Setup routes
	r.Setup(app.ginEngine)

	// Create HTTP server
	app.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: app.ginEngine,
	}

	return nil
}
