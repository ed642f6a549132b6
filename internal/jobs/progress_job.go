package jobs

import (
	"context"
	"time"

	"vdcdisplay/internal/service"
	"vdcdisplay/pkg/logger"
)

// ProgressLogJob logs the current shift progress on the display refresh
// cadence. It gives operations an append-only trace of what the board was
// showing without touching the store beyond the same read queries.
type ProgressLogJob struct {
	workload *service.WorkloadService
	interval time.Duration
}

// NewProgressLogJob creates the job. The interval mirrors the front-end
// refresh interval from config.
func NewProgressLogJob(workload *service.WorkloadService, interval time.Duration) *ProgressLogJob {
	return &ProgressLogJob{
		workload: workload,
		interval: interval,
	}
}

func (j *ProgressLogJob) Name() string {
	return "shift-progress-log"
}

func (j *ProgressLogJob) Interval() time.Duration {
	return j.interval
}

func (j *ProgressLogJob) Run(ctx context.Context) error {
	// Current shift, current date: the same view the board shows by default.
	summary, err := j.workload.ComputeWorkload(ctx, nil, nil)
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "shift progress: shift=%s date=%s completed=%.1fh total=%.1fh (%d%%) vehicles=%d/%d",
		summary.Shift, summary.Date, summary.CompletedHours, summary.TotalHours,
		summary.PercentComplete, summary.VehiclesCompleted, summary.VehiclesTotal)
	return nil
}
