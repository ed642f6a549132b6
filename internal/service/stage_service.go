package service

import (
	"context"
	"time"

	"vdcdisplay/internal/model"
	"vdcdisplay/pkg/percent"
	"vdcdisplay/pkg/store/sqlite"
)

// StageService computes the per-production-stage breakdown of the workload.
type StageService struct {
	stages *sqlite.StageRepository
}

// NewStageService creates a new stage service
func NewStageService(stages *sqlite.StageRepository) *StageService {
	return &StageService{stages: stages}
}

// ComputeStageBreakdown returns one summary per catalog stage in stage-order,
// aggregated over vehicles that arrived on the target date. Unlike the
// workload calculator, a nil shift here means "all shifts for the date", not
// "resolve from the clock". Stages with no vehicles still appear with zero
// metrics. Percentages use the same truncating zero-guard rule, computed
// independently per stage.
func (s *StageService) ComputeStageBreakdown(ctx context.Context, shift *model.Shift, day *time.Time) ([]model.StageSummary, error) {
	target := time.Now()
	if day != nil {
		target = *day
	}
	date := model.FormatShiftDate(target)

	var shiftFilter *string
	if shift != nil {
		label := string(*shift)
		shiftFilter = &label
	}

	rows, err := s.stages.Aggregates(ctx, date, shiftFilter)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.StageSummary, 0, len(rows))
	for _, row := range rows {
		total := row.HoursRemaining + row.HoursCompleted
		summaries = append(summaries, model.StageSummary{
			StageName:       row.StageName,
			StageOrder:      row.StageOrder,
			VehicleCount:    row.VehicleCount,
			HoursRemaining:  row.HoursRemaining,
			HoursCompleted:  row.HoursCompleted,
			PercentComplete: percent.Complete(row.HoursCompleted, total),
		})
	}
	return summaries, nil
}
