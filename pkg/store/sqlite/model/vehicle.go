package model

import "time"

// VehicleStatus lifecycle status of a vehicle in the shop
type VehicleStatus string

const (
	VehicleStatusInProgress VehicleStatus = "in_progress"
	VehicleStatusDelivered  VehicleStatus = "delivered" // counted as completed
)

// Vehicle SQLite model for the vehicles table
type Vehicle struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	VIN                 string    `gorm:"column:vin;type:varchar(32);not null;uniqueIndex:idx_vin_unique" json:"vin"`
	ArrivalTime         time.Time `gorm:"column:arrival_time;not null;index:idx_arrival_time" json:"arrival_time"`
	ShiftAssigned       string    `gorm:"column:shift_assigned;type:varchar(16);not null;index:idx_shift_assigned" json:"shift_assigned"`
	EstimatedLaborHours float64   `gorm:"column:estimated_labor_hours;not null;default:0" json:"estimated_labor_hours"`
	CurrentStageID      *int64    `gorm:"column:current_stage_id;index:idx_current_stage" json:"current_stage_id,omitempty"`
	Status              string    `gorm:"column:status;type:varchar(32);not null;default:in_progress" json:"status"`
	CreatedAt           time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName specifies the table name for Vehicle
func (Vehicle) TableName() string {
	return "vehicles"
}
