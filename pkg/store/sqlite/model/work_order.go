package model

import "time"

// WorkOrderStatus completion status of a work order
type WorkOrderStatus string

const (
	WorkOrderStatusPending  WorkOrderStatus = "pending"
	WorkOrderStatusComplete WorkOrderStatus = "complete"
)

// WorkOrder SQLite model for the work_orders table. A work order belongs to
// exactly one vehicle and carries estimated and actual labor hours.
type WorkOrder struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	VehicleID      int64     `gorm:"column:vehicle_id;not null;index:idx_vehicle_id" json:"vehicle_id"`
	Description    string    `gorm:"column:description;type:varchar(255);not null;default:''" json:"description"`
	EstimatedHours float64   `gorm:"column:estimated_hours;not null;default:0" json:"estimated_hours"`
	ActualHours    float64   `gorm:"column:actual_hours;not null;default:0" json:"actual_hours"`
	Status         string    `gorm:"column:status;type:varchar(32);not null;default:pending;index:idx_status" json:"status"`
	CreatedAt      time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName specifies the table name for WorkOrder
func (WorkOrder) TableName() string {
	return "work_orders"
}
