package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"vdcdisplay/internal/model"
	"vdcdisplay/pkg/store/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newWorkloadService(t *testing.T) (*WorkloadService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	repo := sqlite.NewRepositoryFromDB(db)
	return NewWorkloadService(repo.Vehicle, repo.WorkOrder, repo.ShiftSummary), db
}

func day(shift model.Shift) (*model.Shift, *time.Time) {
	d := time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC)
	return &shift, &d
}

func TestComputeWorkload_EmptyShift(t *testing.T) {
	svc, _ := newWorkloadService(t)

	shift, target := day(model.ShiftDay)
	summary, err := svc.ComputeWorkload(context.Background(), shift, target)
	require.NoError(t, err)

	// No vehicles, no work orders, no carryover: all zeros, no error.
	assert.Equal(t, model.ShiftDay, summary.Shift)
	assert.Equal(t, "2026-01-16", summary.Date)
	assert.Zero(t, summary.NewHours)
	assert.Zero(t, summary.CarryoverHours)
	assert.Zero(t, summary.TotalHours)
	assert.Zero(t, summary.CompletedHours)
	assert.Zero(t, summary.PercentComplete)
	assert.Zero(t, summary.VehiclesTotal)
	assert.Zero(t, summary.VehiclesCompleted)
}

func TestComputeWorkload_WithCarryover(t *testing.T) {
	svc, db := newWorkloadService(t)

	// 10 vehicles at 10h each, 5 delivered; completed work orders sum to 50h.
	for i := 0; i < 10; i++ {
		status := "in_progress"
		if i < 5 {
			status = "delivered"
		}
		vin := fmt.Sprintf("5YJ3E1EA7KF0000%02d", i)
		id := seedVehicle(t, db, vin, "day", status, 10, nil)
		if i < 5 {
			seedWorkOrder(t, db, id, "complete", 10, 10)
		} else {
			seedWorkOrder(t, db, id, "pending", 10, 0)
		}
	}

	// Two summaries for the pair: only the most recently created counts.
	seedCarryover(t, db, "2026-01-16", "day", 35, time.Date(2026, 1, 16, 6, 0, 0, 0, time.UTC))
	seedCarryover(t, db, "2026-01-16", "day", 20, time.Date(2026, 1, 16, 12, 0, 0, 0, time.UTC))

	shift, target := day(model.ShiftDay)
	summary, err := svc.ComputeWorkload(context.Background(), shift, target)
	require.NoError(t, err)

	assert.Equal(t, 100.0, summary.NewHours)
	assert.Equal(t, 20.0, summary.CarryoverHours)
	assert.Equal(t, 120.0, summary.TotalHours)
	assert.Equal(t, 50.0, summary.CompletedHours)
	assert.Equal(t, 41, summary.PercentComplete) // floor(50/120*100)
	assert.Equal(t, 10, summary.VehiclesTotal)
	assert.Equal(t, 5, summary.VehiclesCompleted)
	assert.LessOrEqual(t, summary.VehiclesCompleted, summary.VehiclesTotal)
}

func TestComputeWorkload_AbsentCarryover(t *testing.T) {
	svc, db := newWorkloadService(t)

	id := seedVehicle(t, db, "5YJ3E1EA7KF000101", "day", "in_progress", 40, nil)
	seedWorkOrder(t, db, id, "complete", 12, 12)

	shift, target := day(model.ShiftDay)
	summary, err := svc.ComputeWorkload(context.Background(), shift, target)
	require.NoError(t, err)

	// Absent carryover record means zero, and total equals new hours.
	assert.Zero(t, summary.CarryoverHours)
	assert.Equal(t, summary.NewHours, summary.TotalHours)
	assert.Equal(t, 40.0, summary.TotalHours)
	assert.Equal(t, 30, summary.PercentComplete) // floor(12/40*100)
}

func TestComputeWorkload_FiltersShiftAndDate(t *testing.T) {
	svc, db := newWorkloadService(t)

	seedVehicle(t, db, "5YJ3E1EA7KF000110", "day", "in_progress", 8, nil)
	seedVehicle(t, db, "5YJ3E1EA7KF000111", "night", "in_progress", 9, nil)

	// Night-shift view must not see the day-shift vehicle.
	shift, target := day(model.ShiftNight)
	summary, err := svc.ComputeWorkload(context.Background(), shift, target)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.VehiclesTotal)
	assert.Equal(t, 9.0, summary.NewHours)

	// A different date sees nothing at all.
	other := time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC)
	dayShift := model.ShiftDay
	summary, err = svc.ComputeWorkload(context.Background(), &dayShift, &other)
	require.NoError(t, err)
	assert.Zero(t, summary.VehiclesTotal)
	assert.Zero(t, summary.TotalHours)
}
