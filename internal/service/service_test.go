package service

import (
	"testing"
	"time"

	storemodel "vdcdisplay/pkg/store/sqlite/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an in-memory store with the logistics schema. A single
// connection keeps every query on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&storemodel.Vehicle{},
		&storemodel.WorkOrder{},
		&storemodel.ShiftSummary{},
		&storemodel.ProductionStage{},
	))
	return db
}

func arrival(hour int) time.Time {
	return time.Date(2026, 1, 16, hour, 0, 0, 0, time.UTC)
}

func seedVehicle(t *testing.T, db *gorm.DB, vin, shift, status string, hours float64, stageID *int64) int64 {
	t.Helper()
	v := storemodel.Vehicle{
		VIN:                 vin,
		ArrivalTime:         arrival(8),
		ShiftAssigned:       shift,
		EstimatedLaborHours: hours,
		CurrentStageID:      stageID,
		Status:              status,
	}
	require.NoError(t, db.Create(&v).Error)
	return v.ID
}

func seedWorkOrder(t *testing.T, db *gorm.DB, vehicleID int64, status string, estimated, actual float64) {
	t.Helper()
	wo := storemodel.WorkOrder{
		VehicleID:      vehicleID,
		EstimatedHours: estimated,
		ActualHours:    actual,
		Status:         status,
	}
	require.NoError(t, db.Create(&wo).Error)
}

func seedStage(t *testing.T, db *gorm.DB, name string, order int) int64 {
	t.Helper()
	s := storemodel.ProductionStage{StageName: name, StageOrder: order}
	require.NoError(t, db.Create(&s).Error)
	return s.ID
}

func seedCarryover(t *testing.T, db *gorm.DB, date, shift string, hours float64, createdAt time.Time) {
	t.Helper()
	summary := storemodel.ShiftSummary{
		ShiftDate:      date,
		ShiftType:      shift,
		CarryoverHours: hours,
		CreatedAt:      createdAt,
	}
	require.NoError(t, db.Create(&summary).Error)
}
