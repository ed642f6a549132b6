package handler

import (
	"net/http"
	"time"

	"vdcdisplay/internal/model"
	"vdcdisplay/internal/service"
	"vdcdisplay/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ProgressHandler handles raw shift-progress HTTP requests
type ProgressHandler struct {
	workloadService *service.WorkloadService
	stageService    *service.StageService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(workloadService *service.WorkloadService, stageService *service.StageService) *ProgressHandler {
	return &ProgressHandler{
		workloadService: workloadService,
		stageService:    stageService,
	}
}

// GetWorkload retrieves the workload summary for one shift-date
// @Summary Get shift workload summary
// @Description Aggregated hours, percent complete and vehicle counts for a shift
// @Tags progress
// @Produce json
// @Param shift query string false "Shift label (day|night); defaults to the active shift"
// @Param date query string false "Calendar date (YYYY-MM-DD); defaults to today"
// @Success 200 {object} model.WorkloadSummary
// @Router /api/v1/progress/workload [get]
func (h *ProgressHandler) GetWorkload(c *gin.Context) {
	if h.workloadService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "logistics store unavailable"})
		return
	}

	shift, day, ok := parseProgressParams(c)
	if !ok {
		return
	}

	summary, err := h.workloadService.ComputeWorkload(c.Request.Context(), shift, day)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "failed to compute workload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetStages retrieves the per-stage breakdown for one date
// @Summary Get stage breakdown
// @Description Per-production-stage vehicle counts and hours, every catalog stage present
// @Tags progress
// @Produce json
// @Param shift query string false "Shift label (day|night); omitted means all shifts"
// @Param date query string false "Calendar date (YYYY-MM-DD); defaults to today"
// @Success 200 {object} map[string]interface{} "Ordered stage summaries"
// @Router /api/v1/progress/stages [get]
func (h *ProgressHandler) GetStages(c *gin.Context) {
	if h.stageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "logistics store unavailable"})
		return
	}

	shift, day, ok := parseProgressParams(c)
	if !ok {
		return
	}

	stages, err := h.stageService.ComputeStageBreakdown(c.Request.Context(), shift, day)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "failed to compute stage breakdown: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stages": stages,
		"total":  len(stages),
	})
}

// parseProgressParams parses the optional shift and date query params. On a
// malformed value it writes a 400 response and returns ok=false.
func parseProgressParams(c *gin.Context) (*model.Shift, *time.Time, bool) {
	var shift *model.Shift
	if raw := c.Query("shift"); raw != "" {
		parsed, err := model.ParseShift(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, nil, false
		}
		shift = &parsed
	}

	var day *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := model.ParseShiftDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, nil, false
		}
		day = &parsed
	}

	return shift, day, true
}
