package service

import (
	"time"

	"vdcdisplay/internal/model"
)

// Static sample dataset for environments without a live logistics store.
// Same shape as real results; the presentation layer labels it clearly so a
// TV showing demo numbers is never mistaken for live progress.

// DemoWorkload returns the sample workload summary for the current shift.
func DemoWorkload(now time.Time) *model.WorkloadSummary {
	return &model.WorkloadSummary{
		Shift:             model.CurrentShift(now),
		Date:              model.FormatShiftDate(now),
		NewHours:          126.0,
		CarryoverHours:    6.0,
		TotalHours:        132.0,
		CompletedHours:    87.0,
		PercentComplete:   65, // floor(87/132*100)
		VehiclesTotal:     48,
		VehiclesCompleted: 32,
	}
}

// DemoStages returns the sample stage breakdown.
func DemoStages() []model.StageSummary {
	return []model.StageSummary{
		{
			StageName:       "Installation",
			StageOrder:      1,
			VehicleCount:    12,
			HoursRemaining:  18.5,
			HoursCompleted:  42.0,
			PercentComplete: 69,
		},
		{
			StageName:       "PPO",
			StageOrder:      2,
			VehicleCount:    8,
			HoursRemaining:  12.0,
			HoursCompleted:  24.0,
			PercentComplete: 66, // floor(24/36*100)
		},
		{
			StageName:       "Shuttle",
			StageOrder:      3,
			VehicleCount:    6,
			HoursRemaining:  3.0,
			HoursCompleted:  9.0,
			PercentComplete: 75,
		},
		{
			StageName:       "FQA",
			StageOrder:      4,
			VehicleCount:    10,
			HoursRemaining:  8.0,
			HoursCompleted:  12.0,
			PercentComplete: 60,
		},
	}
}
