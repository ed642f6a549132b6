package model

import "time"

// ShiftSummary SQLite model for the shift_summaries table. Multiple rows may
// exist for the same (shift_date, shift_type) pair; the most recently created
// one is authoritative.
type ShiftSummary struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ShiftDate      string    `gorm:"column:shift_date;type:varchar(10);not null;index:idx_shift_date_type" json:"shift_date"`
	ShiftType      string    `gorm:"column:shift_type;type:varchar(16);not null;index:idx_shift_date_type" json:"shift_type"`
	CarryoverHours float64   `gorm:"column:carryover_hours;not null;default:0" json:"carryover_hours"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;index:idx_created_at" json:"created_at"`
}

// TableName specifies the table name for ShiftSummary
func (ShiftSummary) TableName() string {
	return "shift_summaries"
}
