package model

// Typed projections for the read-only aggregate queries. The access layer
// scans query rows into these directly so calculators never touch
// column-name maps.

// VehicleStats vehicle counts and estimated hours for one shift-date
type VehicleStats struct {
	TotalVehicles     int     `json:"total_vehicles"`
	TotalHours        float64 `json:"total_hours"`
	CompletedVehicles int     `json:"completed_vehicles"`
}

// CarryoverRecord authoritative carryover hours for one shift-date
type CarryoverRecord struct {
	CarryoverHours float64 `json:"carryover_hours"`
}

// StageAggregateRow per-stage vehicle and hours aggregate, one row per
// catalog stage
type StageAggregateRow struct {
	StageName      string  `json:"stage_name"`
	StageOrder     int     `json:"stage_order"`
	VehicleCount   int     `json:"vehicle_count"`
	HoursRemaining float64 `json:"hours_remaining"`
	HoursCompleted float64 `json:"hours_completed"`
}
