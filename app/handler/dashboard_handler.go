package handler

import (
	"net/http"
	"time"

	"vdcdisplay/internal/model"
	"vdcdisplay/internal/service"
	"vdcdisplay/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Data source labels for the dashboard payload. The TV must be able to tell
// live numbers from the sample dataset at a glance.
const (
	SourceLive = "live"
	SourceDemo = "demo"
)

// DashboardHandler serves the combined payload the TV front-end polls. When
// the service was started without a logistics store, it substitutes the
// clearly-labeled demo dataset instead of failing the display.
type DashboardHandler struct {
	workloadService *service.WorkloadService
	stageService    *service.StageService
	refreshMinutes  int
}

// NewDashboardHandler creates a new dashboard handler. Nil services indicate
// the store was absent at startup; the handler then serves demo data.
func NewDashboardHandler(workloadService *service.WorkloadService, stageService *service.StageService, refreshMinutes int) *DashboardHandler {
	return &DashboardHandler{
		workloadService: workloadService,
		stageService:    stageService,
		refreshMinutes:  refreshMinutes,
	}
}

// GetDashboard retrieves the full board payload for the active shift
// @Summary Get the shift progress dashboard
// @Description Workload summary plus stage breakdown for the active shift, with refresh cadence
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{} "workload, stages, source, refresh_interval_minutes, generated_at"
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	now := time.Now()

	if h.workloadService == nil || h.stageService == nil {
		h.respond(c, SourceDemo, service.DemoWorkload(now), service.DemoStages(), now)
		return
	}

	workload, err := h.workloadService.ComputeWorkload(c.Request.Context(), nil, nil)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "failed to compute workload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Stage breakdown is scoped to the shift the workload resolved, matching
	// what the headline numbers describe.
	shift := workload.Shift
	stages, err := h.stageService.ComputeStageBreakdown(c.Request.Context(), &shift, nil)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "failed to compute stage breakdown: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.respond(c, SourceLive, workload, stages, now)
}

func (h *DashboardHandler) respond(c *gin.Context, source string, workload *model.WorkloadSummary, stages []model.StageSummary, now time.Time) {
	c.JSON(http.StatusOK, gin.H{
		"source":                   source,
		"workload":                 workload,
		"stages":                   stages,
		"refresh_interval_minutes": h.refreshMinutes,
		"generated_at":             now.Format(time.RFC3339),
	})
}
