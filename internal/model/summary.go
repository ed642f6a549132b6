package model

// WorkloadSummary is the per-shift progress snapshot shown on the board.
// Recomputed on every request, never persisted.
type WorkloadSummary struct {
	Shift             Shift   `json:"shift"`
	Date              string  `json:"date"` // ISO calendar date
	NewHours          float64 `json:"new_hours"`
	CarryoverHours    float64 `json:"carryover_hours"`
	TotalHours        float64 `json:"total_hours"`
	CompletedHours    float64 `json:"completed_hours"`
	PercentComplete   int     `json:"percent_complete"`
	VehiclesTotal     int     `json:"vehicles_total"`
	VehiclesCompleted int     `json:"vehicles_completed"`
}

// StageSummary is the per-production-stage slice of the same workload.
type StageSummary struct {
	StageName       string  `json:"stage_name"`
	StageOrder      int     `json:"stage_order"`
	VehicleCount    int     `json:"vehicle_count"`
	HoursRemaining  float64 `json:"hours_remaining"`
	HoursCompleted  float64 `json:"hours_completed"`
	PercentComplete int     `json:"percent_complete"`
}
