package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"vdcdisplay/pkg/store/sqlite/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestNewDatastore_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such.db")

	ds, err := NewDatastore(path)
	assert.Nil(t, ds)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStoreNotFound))
	assert.Contains(t, err.Error(), path)
}

func newStoreTestDB(t *testing.T) *gorm.DB {
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
		&model.Vehicle{},
		&model.WorkOrder{},
		&model.ShiftSummary{},
		&model.ProductionStage{},
	))
	return db
}

func TestLatestCarryover(t *testing.T) {
	db := newStoreTestDB(t)
	repo := NewRepositoryFromDB(db)

	seed := func(hours float64, createdAt time.Time) {
		require.NoError(t, db.Create(&model.ShiftSummary{
			ShiftDate:      "2026-01-16",
			ShiftType:      "day",
			CarryoverHours: hours,
			CreatedAt:      createdAt,
		}).Error)
	}

	// Absent record is (nil, false, nil), not an error.
	record, found, err := repo.ShiftSummary.LatestCarryover(context.Background(), "2026-01-16", "day")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, record)

	seed(35, time.Date(2026, 1, 16, 6, 0, 0, 0, time.UTC))
	seed(20, time.Date(2026, 1, 16, 12, 0, 0, 0, time.UTC))

	record, found, err = repo.ShiftSummary.LatestCarryover(context.Background(), "2026-01-16", "day")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 20.0, record.CarryoverHours)

	// The other shift of the same date has its own (empty) history.
	_, found, err = repo.ShiftSummary.LatestCarryover(context.Background(), "2026-01-16", "night")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestVehicleStats_DistinctCounts(t *testing.T) {
	db := newStoreTestDB(t)
	repo := NewRepositoryFromDB(db)

	arrival := time.Date(2026, 1, 16, 8, 0, 0, 0, time.UTC)
	vehicle := model.Vehicle{
		VIN:                 "5YJ3E1EA7KF000601",
		ArrivalTime:         arrival,
		ShiftAssigned:       "day",
		EstimatedLaborHours: 12,
		Status:              "delivered",
	}
	require.NoError(t, db.Create(&vehicle).Error)

	// Two work orders on the same vehicle must not inflate vehicle counts.
	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&model.WorkOrder{
			VehicleID:      vehicle.ID,
			EstimatedHours: 6,
			ActualHours:    6,
			Status:         "complete",
		}).Error)
	}

	stats, err := repo.Vehicle.StatsByShiftDate(context.Background(), "day", "2026-01-16")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalVehicles)
	assert.Equal(t, 1, stats.CompletedVehicles)
	assert.Equal(t, 12.0, stats.TotalHours)

	completed, err := repo.WorkOrder.CompletedHours(context.Background(), "day", "2026-01-16")
	require.NoError(t, err)
	assert.Equal(t, 12.0, completed)
}
