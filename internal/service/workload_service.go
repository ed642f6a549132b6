package service

import (
	"context"
	"time"

	"vdcdisplay/internal/model"
	"vdcdisplay/pkg/percent"
	"vdcdisplay/pkg/store/sqlite"
)

// WorkloadService computes the per-shift workload summary. Stateless: every
// call produces a fresh snapshot from the read-only store.
type WorkloadService struct {
	vehicles   *sqlite.VehicleRepository
	workOrders *sqlite.WorkOrderRepository
	summaries  *sqlite.ShiftSummaryRepository
}

// NewWorkloadService creates a new workload service
func NewWorkloadService(vehicles *sqlite.VehicleRepository, workOrders *sqlite.WorkOrderRepository, summaries *sqlite.ShiftSummaryRepository) *WorkloadService {
	return &WorkloadService{
		vehicles:   vehicles,
		workOrders: workOrders,
		summaries:  summaries,
	}
}

// ComputeWorkload aggregates vehicle, work-order and carryover data for one
// shift-date. A nil shift resolves from the wall clock; a nil day uses the
// current calendar date. Empty result sets produce zeros; query failures
// propagate unchanged.
func (s *WorkloadService) ComputeWorkload(ctx context.Context, shift *model.Shift, day *time.Time) (*model.WorkloadSummary, error) {
	now := time.Now()

	resolved := model.CurrentShift(now)
	if shift != nil {
		resolved = *shift
	}
	target := now
	if day != nil {
		target = *day
	}
	date := model.FormatShiftDate(target)

	stats, err := s.vehicles.StatsByShiftDate(ctx, string(resolved), date)
	if err != nil {
		return nil, err
	}

	completedHours, err := s.workOrders.CompletedHours(ctx, string(resolved), date)
	if err != nil {
		return nil, err
	}

	carryoverHours := 0.0
	record, found, err := s.summaries.LatestCarryover(ctx, date, string(resolved))
	if err != nil {
		return nil, err
	}
	if found {
		carryoverHours = record.CarryoverHours
	}

	newHours := stats.TotalHours
	totalHours := newHours + carryoverHours

	return &model.WorkloadSummary{
		Shift:             resolved,
		Date:              date,
		NewHours:          newHours,
		CarryoverHours:    carryoverHours,
		TotalHours:        totalHours,
		CompletedHours:    completedHours,
		PercentComplete:   percent.Complete(completedHours, totalHours),
		VehiclesTotal:     stats.TotalVehicles,
		VehiclesCompleted: stats.CompletedVehicles,
	}, nil
}
